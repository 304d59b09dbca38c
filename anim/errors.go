package anim

import "errors"

var (
	// ErrNotFound indicates a start request for an unregistered animation id.
	ErrNotFound = errors.New("no animation with this id")
	// ErrDuplicateID indicates two animations registered under the same id.
	ErrDuplicateID = errors.New("animation id already registered")
	// ErrAlreadyRunning indicates a start request for an animation that is
	// currently running.
	ErrAlreadyRunning = errors.New("animation already running")
	// ErrMissingShape indicates an animation without a usable shape bound:
	// no shape at all, or a shape with zero points.
	ErrMissingShape = errors.New("animation has no usable shape")
	// ErrIndexOutOfRange indicates a target point index invalid for the
	// bound shape.
	ErrIndexOutOfRange = errors.New("target point index out of range")
	// ErrBadSpec indicates an invalid animation or set specification.
	ErrBadSpec = errors.New("invalid animation spec")
	// ErrUnknownCurve indicates a curve name with no catalog entry.
	ErrUnknownCurve = errors.New("unknown easing curve")
)
