/*
Package anim implements the point-animation engine for terrain outlines:
per-point animations that move one control point of a shape toward a
resolved target over time, shaped by an easing curve, plus the set
coordinator that starts and stops animations by name, resolves point
ownership conflicts and fans out lifecycle events.

Animations are resumable step functions, not goroutines: an external driver
owns the clock and feeds Tick(dt) once per frame. See Drive for a ready-made
wall-clock loop.

# BSD License

# Copyright (c) the dynterrain authors

All rights reserved.

Please refer to the license file for more information.
*/
package anim

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rexxmagtar/dynterrain"
)

// tracer writes to trace with key 'dynterrain.anim'
func tracer() tracing.Trace {
	return tracing.Select("dynterrain.anim")
}

// Shape is the geometry a point animation mutates: an ordered sequence of
// 2D control points in a local coordinate space, with a placement transform
// into world space. outline.Outline implements it; any other geometry
// representation can be adapted.
type Shape interface {
	N() int
	Z(i int) dynterrain.Pair
	SetZ(i int, p dynterrain.Pair) error
	ToWorld(p dynterrain.Pair) dynterrain.Pair
	ToLocal(p dynterrain.Pair) dynterrain.Pair
}

// Mode selects how an animation's endpoint value is interpreted.
type Mode int

const (
	// Absolute : the value is the target world position itself.
	Absolute Mode = iota
	// RelativeToCurrent : the target is the point's world position at start
	// time, offset by the value.
	RelativeToCurrent
	// RelativeToInitial : the target is the point's captured session-start
	// position, offset by the value. Before capture it behaves like
	// RelativeToCurrent (authoring preview).
	RelativeToInitial
)

func (m Mode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case RelativeToCurrent:
		return "relative-to-current"
	case RelativeToInitial:
		return "relative-to-initial"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ModeByName parses a config-surface mode name.
func ModeByName(name string) (Mode, error) {
	switch name {
	case "absolute":
		return Absolute, nil
	case "relative-to-current":
		return RelativeToCurrent, nil
	case "relative-to-initial":
		return RelativeToInitial, nil
	}
	return Absolute, fmt.Errorf("%w: unknown mode %q", ErrBadSpec, name)
}

// State enumerates the animation lifecycle.
type State int

const (
	// Idle : never started, or reset.
	Idle State = iota
	// Running : ticking toward the endpoint.
	Running
	// Finished : reached progress 1; restartable.
	Finished
	// Aborted : stopped before completion; restartable.
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// PointAnimation moves a single control point of a shape toward a resolved
// endpoint. It is a plain state machine: all run state lives in fields, so
// the same instance can be inspected, stopped, and restarted.
type PointAnimation struct {
	id    string
	index int
	mode  Mode
	value dynterrain.Pair
	curve Curve
	speed float64

	shape Shape

	initial    dynterrain.Pair // world position captured at session start
	hasInitial bool

	state State
	t     float64         // accumulated normalized parameter since start
	from  dynterrain.Pair // world position when the run started
	dir   dynterrain.Pair // unit direction toward the endpoint
	dist  float64         // distance from 'from' to the endpoint

	started  dispatch[StartedFunc]
	finished dispatch[FinishedFunc]
}

// New creates a point animation. index is the target control point, value
// is interpreted per mode, speed multiplies elapsed time per tick and must
// be positive. A nil curve defaults to Linear.
func New(id string, index int, mode Mode, value dynterrain.Pair, curve Curve, speed float64) (*PointAnimation, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrBadSpec)
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: negative point index %d", ErrBadSpec, index)
	}
	if speed <= 0 {
		return nil, fmt.Errorf("%w: speed must be positive, got %g", ErrBadSpec, speed)
	}
	if curve == nil {
		curve = Linear
	}
	return &PointAnimation{
		id:    id,
		index: index,
		mode:  mode,
		value: value,
		curve: curve,
		speed: speed,
	}, nil
}

// ID returns the animation's name within its set.
func (a *PointAnimation) ID() string { return a.id }

// Index returns the target control point index.
func (a *PointAnimation) Index() int { return a.index }

// Mode returns the endpoint interpretation mode.
func (a *PointAnimation) Mode() Mode { return a.mode }

// State returns the current lifecycle state.
func (a *PointAnimation) State() State { return a.state }

// BindShape attaches the geometry this animation mutates. Rebinding while
// running is not supported; the running tick keeps using the cached start
// data until it finishes.
func (a *PointAnimation) BindShape(s Shape) {
	a.shape = s
}

// OnStarted subscribes to the start event.
func (a *PointAnimation) OnStarted(fn StartedFunc) Handle {
	return a.started.add(fn)
}

// OffStarted detaches a start subscription.
func (a *PointAnimation) OffStarted(h Handle) {
	a.started.remove(h)
}

// OnFinished subscribes to the finish event.
func (a *PointAnimation) OnFinished(fn FinishedFunc) Handle {
	return a.finished.add(fn)
}

// OffFinished detaches a finish subscription.
func (a *PointAnimation) OffFinished(h Handle) {
	a.finished.remove(h)
}

func (a *PointAnimation) emitStarted() {
	a.started.each(func(fn StartedFunc) { fn(a) })
}

func (a *PointAnimation) emitFinished(completed bool) {
	a.finished.each(func(fn FinishedFunc) { fn(a, completed) })
}

// shapeUsable reports whether the bound shape can serve this animation.
func (a *PointAnimation) shapeUsable() bool {
	return a.shape != nil && a.shape.N() > 0
}

func (a *PointAnimation) currentWorld() dynterrain.Pair {
	return a.shape.ToWorld(a.shape.Z(a.index))
}

// CaptureInitial records the point's current world position as the session
// reference for RelativeToInitial resolution. Capturing again overwrites;
// that is only meaningful before animations have moved the point.
func (a *PointAnimation) CaptureInitial() {
	if !a.shapeUsable() || a.index >= a.shape.N() {
		tracer().Errorf("cannot capture initial position for %q: no usable shape", a.id)
		return
	}
	a.initial = a.currentWorld()
	a.hasInitial = true
	tracer().Debugf("captured initial position %v for %q", a.initial, a.id)
}

// ResolveEndpoint computes the absolute world-space target for this
// animation. It is a pure query: RelativeToInitial falls back to the
// current position while no initial position has been captured yet, without
// mutating anything.
func (a *PointAnimation) ResolveEndpoint() dynterrain.Pair {
	if a.mode == Absolute {
		return a.value
	}
	if !a.shapeUsable() || a.index >= a.shape.N() {
		tracer().Debugf("resolving endpoint of %q without usable shape", a.id)
		return a.value
	}
	if a.mode == RelativeToInitial && a.hasInitial {
		return a.initial + a.value
	}
	return a.currentWorld() + a.value
}

// Start begins a run. Preconditions: not already running, a usable shape,
// a valid point index. Violations never panic: the animation reports
// Finished(completed=false) where the lifecycle contract demands it and
// returns the classified error.
//
// If the point already sits at the resolved endpoint (distance below
// epsilon) the run short-circuits: Started and Finished(false) fire
// back-to-back with no Running phase and no position write.
func (a *PointAnimation) Start() error {
	if a.state == Running {
		tracer().Errorf("animation %q is already running, start ignored", a.id)
		return fmt.Errorf("%w: %q", ErrAlreadyRunning, a.id)
	}
	if !a.shapeUsable() {
		a.state = Aborted
		a.emitFinished(false)
		return fmt.Errorf("%w: %q", ErrMissingShape, a.id)
	}
	if a.index >= a.shape.N() {
		a.state = Aborted
		a.emitFinished(false)
		return fmt.Errorf("%w: %q targets point %d of %d", ErrIndexOutOfRange, a.id, a.index, a.shape.N())
	}
	a.emitStarted()
	a.from = a.currentWorld()
	end := a.ResolveEndpoint()
	a.dist = dynterrain.Dist(a.from, end)
	if a.dist < dynterrain.Epsilon {
		tracer().Debugf("animation %q already at target %v", a.id, end)
		a.state = Finished
		a.emitFinished(false)
		return nil
	}
	a.dir = (end - a.from).Unit()
	a.t = 0
	a.state = Running
	tracer().Debugf("animation %q running: %v -> %v (dist %g)", a.id, a.from, end, a.dist)
	return nil
}

// Tick advances the run by dt seconds. It is a no-op unless Running.
// The progress sample is applied unclamped; the tick that reaches progress
// 1 still writes its own (possibly overshooting) sample before finishing.
func (a *PointAnimation) Tick(dt float64) {
	if a.state != Running {
		return
	}
	a.t += a.speed * dt
	progress := a.curve(a.t)
	pos := a.from + a.dir.Scaled(progress*a.dist)
	if err := a.shape.SetZ(a.index, a.shape.ToLocal(pos)); err != nil {
		tracer().Errorf("animation %q cannot write point %d: %v", a.id, a.index, err)
		a.state = Aborted
		a.emitFinished(false)
		return
	}
	if progress >= 1.0 || dynterrain.Is1(progress) {
		a.state = Finished
		a.emitFinished(true)
	}
}

// Stop aborts a running animation synchronously: no further tick will write,
// and Finished(completed=false) fires exactly once. Stopping an animation
// that is not running is a warned no-op.
func (a *PointAnimation) Stop() {
	if a.state != Running {
		tracer().Infof("animation %q is not running, stop ignored", a.id)
		return
	}
	a.state = Aborted
	a.emitFinished(false)
}
