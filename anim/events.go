package anim

// Handle identifies one event subscription, so subscribers (in particular
// the set coordinator) can detach exactly the handler they attached.
type Handle int

// StartedFunc observes an animation entering its run.
type StartedFunc func(a *PointAnimation)

// FinishedFunc observes an animation ending its run. completed is true for
// natural completion (progress reached 1) and false for any abort: explicit
// stop, conflict eviction, or a degenerate start.
type FinishedFunc func(a *PointAnimation, completed bool)

// SetStartedFunc observes a member animation starting, with set context.
type SetStartedFunc func(s *Set, a *PointAnimation)

// SetFinishedFunc observes a member animation finishing, with set context.
type SetFinishedFunc func(s *Set, a *PointAnimation, completed bool)

// ConflictFunc observes a conflict eviction: evicted was stopped because
// incoming claims the same target point.
type ConflictFunc func(evicted, incoming string)

// AdvisoryFunc observes informational coordinator notices (empty batch
// starts, point-budget warnings, isolated start failures).
type AdvisoryFunc func(message string)

// dispatch is a small ordered handler table with detachable subscriptions.
type dispatch[T any] struct {
	next  Handle
	subs  map[Handle]T
	order []Handle
}

func (d *dispatch[T]) add(fn T) Handle {
	if d.subs == nil {
		d.subs = make(map[Handle]T)
	}
	d.next++
	h := d.next
	d.subs[h] = fn
	d.order = append(d.order, h)
	return h
}

func (d *dispatch[T]) remove(h Handle) {
	if d.subs == nil {
		return
	}
	delete(d.subs, h)
	for i, o := range d.order {
		if o == h {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// each calls every subscribed handler in attach order. The order is
// snapshotted first, so handlers may detach themselves (or others) while
// the fan-out is in flight.
func (d *dispatch[T]) each(call func(T)) {
	if len(d.subs) == 0 {
		return
	}
	snapshot := append([]Handle(nil), d.order...)
	for _, h := range snapshot {
		if fn, ok := d.subs[h]; ok {
			call(fn)
		}
	}
}
