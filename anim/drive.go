package anim

import (
	"context"
	"time"
)

// Drive ticks a set from a wall-clock ticker until ctx is cancelled. Each
// tick passes the elapsed time since the previous one, so a stalled ticker
// produces one larger dt rather than dropped progress.
//
// Drive blocks; run it on its own goroutine when the caller has other work.
func Drive(ctx context.Context, s *Set, step time.Duration) {
	drive(ctx, s, step, false)
}

// DriveUntilIdle is Drive, but it also returns once no member animation is
// running any more. Useful for one-shot sequences where the caller starts a
// batch and waits for the terrain to settle.
func DriveUntilIdle(ctx context.Context, s *Set, step time.Duration) {
	drive(ctx, s, step, true)
}

func drive(ctx context.Context, s *Set, step time.Duration, untilIdle bool) {
	if step <= 0 {
		step = time.Second / 60
	}
	ticker := time.NewTicker(step)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Tick(now.Sub(last).Seconds())
			last = now
			if untilIdle && len(s.Running()) == 0 {
				return
			}
		}
	}
}
