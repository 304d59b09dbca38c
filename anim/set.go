package anim

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// DefaultPointBudget is the shape size above which starting an animation
// surfaces a performance advisory. Informational only; nothing is blocked.
const DefaultPointBudget = 100

// Set coordinates a named collection of point animations: start/stop by
// name or batch, at-most-one-running-animation-per-point enforcement, and
// lifecycle event relaying with set context.
//
// The registry keeps insertion order, so Tick fans out to members in
// registration order. A set is not safe for concurrent use; the engine is
// a single-threaded cooperative model driven by one tick source.
type Set struct {
	name        string
	anims       *linkedhashmap.Map // id -> *PointAnimation
	relays      map[string]relay   // attached per-start, detached on finish
	pointBudget int

	setStarted  dispatch[SetStartedFunc]
	setFinished dispatch[SetFinishedFunc]
	evicted     dispatch[ConflictFunc]
	advisories  dispatch[AdvisoryFunc]
}

// relay records the coordinator's per-start subscriptions on one member.
type relay struct {
	started  Handle
	finished Handle
}

// NewSet creates an empty animation set.
func NewSet(name string) *Set {
	return &Set{
		name:        name,
		anims:       linkedhashmap.New(),
		relays:      make(map[string]relay),
		pointBudget: DefaultPointBudget,
	}
}

// Name returns the set's name.
func (s *Set) Name() string { return s.name }

// SetPointBudget overrides the advisory threshold for shape point counts.
func (s *Set) SetPointBudget(n int) {
	if n <= 0 {
		n = DefaultPointBudget
	}
	s.pointBudget = n
}

// Register adds an animation under its id. Duplicate ids are a
// configuration error and fail fast; nothing is merged or overwritten.
func (s *Set) Register(a *PointAnimation) error {
	if a == nil {
		return fmt.Errorf("%w: nil animation", ErrBadSpec)
	}
	if _, present := s.anims.Get(a.ID()); present {
		return fmt.Errorf("%w: %q", ErrDuplicateID, a.ID())
	}
	s.anims.Put(a.ID(), a)
	return nil
}

// Animation looks a member up by id.
func (s *Set) Animation(id string) (*PointAnimation, bool) {
	v, ok := s.anims.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*PointAnimation), true
}

// Len returns the number of registered animations.
func (s *Set) Len() int { return s.anims.Size() }

// each visits members in registration order.
func (s *Set) each(visit func(a *PointAnimation)) {
	s.anims.Each(func(_ interface{}, value interface{}) {
		visit(value.(*PointAnimation))
	})
}

// OnSetStarted subscribes to member-start events with set context.
func (s *Set) OnSetStarted(fn SetStartedFunc) Handle { return s.setStarted.add(fn) }

// OffSetStarted detaches a set-start subscription.
func (s *Set) OffSetStarted(h Handle) { s.setStarted.remove(h) }

// OnSetFinished subscribes to member-finish events with set context.
func (s *Set) OnSetFinished(fn SetFinishedFunc) Handle { return s.setFinished.add(fn) }

// OffSetFinished detaches a set-finish subscription.
func (s *Set) OffSetFinished(h Handle) { s.setFinished.remove(h) }

// OnConflictEvicted subscribes to conflict-eviction notices.
func (s *Set) OnConflictEvicted(fn ConflictFunc) Handle { return s.evicted.add(fn) }

// OffConflictEvicted detaches a conflict subscription.
func (s *Set) OffConflictEvicted(h Handle) { s.evicted.remove(h) }

// OnAdvisory subscribes to informational notices.
func (s *Set) OnAdvisory(fn AdvisoryFunc) Handle { return s.advisories.add(fn) }

// OffAdvisory detaches an advisory subscription.
func (s *Set) OffAdvisory(h Handle) { s.advisories.remove(h) }

func (s *Set) advise(message string) {
	tracer().Infof("set %q: %s", s.name, message)
	s.advisories.each(func(fn AdvisoryFunc) { fn(message) })
}

// Start starts one animation by id. Any other member currently running on
// the same target point is stopped first (last-writer-wins) and a conflict
// notice names both animations. Relay subscriptions are attached before the
// member starts and detach themselves when it finishes, so repeated starts
// never stack subscriptions.
func (s *Set) Start(id string) error {
	a, ok := s.Animation(id)
	if !ok {
		tracer().Errorf("set %q: no animation %q", s.name, id)
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if a.shape == nil {
		tracer().Errorf("set %q: animation %q has no shape bound", s.name, id)
		return fmt.Errorf("%w: %q", ErrMissingShape, id)
	}
	s.each(func(other *PointAnimation) {
		if other == a || other.State() != Running || other.Index() != a.Index() {
			return
		}
		tracer().Infof("set %q: %q evicts %q from point %d", s.name, id, other.ID(), a.Index())
		other.Stop()
		s.evicted.each(func(fn ConflictFunc) { fn(other.ID(), id) })
	})
	s.attachRelay(a)
	if err := a.Start(); err != nil {
		return err
	}
	if n := a.shape.N(); n > s.pointBudget {
		s.advise(fmt.Sprintf("shape of %q has %d points (budget %d); per-tick updates may be costly", id, n, s.pointBudget))
	}
	return nil
}

// StartMany starts the given ids in order. Each start is independent: a
// failure is surfaced as an advisory and later entries still attempt.
// An empty batch performs no starts and surfaces a single advisory.
func (s *Set) StartMany(ids ...string) {
	if len(ids) == 0 {
		s.advise("start request with no animation ids")
		return
	}
	for _, id := range ids {
		if err := s.Start(id); err != nil {
			s.advise(fmt.Sprintf("cannot start %q: %v", id, err))
		}
	}
}

// Tick advances every running member by dt seconds, in registration order.
func (s *Set) Tick(dt float64) {
	s.each(func(a *PointAnimation) {
		a.Tick(dt)
	})
}

// StopAll aborts every running member, in registration order.
func (s *Set) StopAll() {
	s.each(func(a *PointAnimation) {
		if a.State() == Running {
			a.Stop()
		}
	})
}

// Running returns the ids of all running members, in registration order.
func (s *Set) Running() []string {
	var ids []string
	s.each(func(a *PointAnimation) {
		if a.State() == Running {
			ids = append(ids, a.ID())
		}
	})
	return ids
}

// CaptureInitialPositions snapshots the current world position of every
// member's target point as its session-start reference. Call once at
// session start, before any RelativeToInitial animation runs; capturing
// again while members are moving points corrupts their reference and is
// surfaced as an advisory.
func (s *Set) CaptureInitialPositions() {
	if running := s.Running(); len(running) > 0 {
		s.advise(fmt.Sprintf("capturing initial positions while %d animation(s) run; references may be corrupted", len(running)))
	}
	s.each(func(a *PointAnimation) {
		a.CaptureInitial()
	})
}

func (s *Set) attachRelay(a *PointAnimation) {
	if _, attached := s.relays[a.ID()]; attached {
		return
	}
	r := relay{}
	r.started = a.OnStarted(func(a *PointAnimation) {
		s.setStarted.each(func(fn SetStartedFunc) { fn(s, a) })
	})
	r.finished = a.OnFinished(func(a *PointAnimation, completed bool) {
		s.setFinished.each(func(fn SetFinishedFunc) { fn(s, a, completed) })
		s.detachRelay(a)
	})
	s.relays[a.ID()] = r
}

func (s *Set) detachRelay(a *PointAnimation) {
	r, ok := s.relays[a.ID()]
	if !ok {
		return
	}
	a.OffStarted(r.started)
	a.OffFinished(r.finished)
	delete(s.relays, a.ID())
}
