/*
Package outline implements terrain outlines: cyclic (or open) sequences of
2D control points in a local coordinate space, together with a placement
transform into world space. Outlines are the shape geometry that point
animations mutate.

# BSD License

# Copyright (c) the dynterrain authors

All rights reserved.

Please refer to the license file for more information.
*/
package outline

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rexxmagtar/dynterrain"
)

// tracer writes to trace with key 'dynterrain.outline'
func tracer() tracing.Trace {
	return tracing.Select("dynterrain.outline")
}

var (
	// ErrNilOutline indicates a nil outline pointer.
	ErrNilOutline = errors.New("outline must not be nil")
	// ErrTooFewKnots indicates knot count is insufficient for an operation.
	ErrTooFewKnots = errors.New("outline has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("outline has invalid knot coordinate")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("outline has degenerate segment")
	// ErrDuplicateTerminalKnot indicates a cyclic outline redundantly repeats
	// its first knot as last knot.
	ErrDuplicateTerminalKnot = errors.New("cyclic outline must not repeat first knot as terminal knot")
	// ErrOpenOutline indicates an operation requiring a closed boundary was
	// called on an open outline.
	ErrOpenOutline = errors.New("outline is not cyclic")
	// ErrIndexOutOfRange indicates a knot index outside [0,N).
	ErrIndexOutOfRange = errors.New("knot index out of range")
	// ErrSingularPlacement indicates a placement transform without an inverse.
	ErrSingularPlacement = errors.New("placement transform is singular")
)

// Outline is the concrete type for building and mutating a terrain boundary.
// To construct an outline, start with NullOutline(), which creates an empty
// one, and then extend it with builder calls.
type Outline struct {
	knots   []dynterrain.Pair // knot i, in local coordinates
	cycle   bool              // is this outline a closed boundary ?
	toWorld dynterrain.AT     // placement: local -> world
	toLocal dynterrain.AT     // inverse placement: world -> local
}

// NullOutline creates an empty outline, to be extended by subsequent builder
// calls. The following example builds a closed boundary of three knots:
//
//	o := NullOutline().Knot(P(0,0)).Knot(P(4,0)).Knot(P(2,3)).Cycle()
//
// Calling Cycle() or End() returns the outline. Its placement transform is
// the identity until Placed(...) is called.
func NullOutline() *Outline {
	return &Outline{
		toWorld: dynterrain.Identity(),
		toLocal: dynterrain.Identity(),
	}
}

// Box creates a cyclic rectangular outline from a top-left and a
// bottom-right corner.
func Box(topleft, botright dynterrain.Pair) *Outline {
	return NullOutline().
		Knot(topleft).
		Knot(dynterrain.P(botright.X(), topleft.Y())).
		Knot(botright).
		Knot(dynterrain.P(topleft.X(), botright.Y())).
		Cycle()
}

// Knot appends a control point, in local coordinates.
// Part of builder functionality.
func (o *Outline) Knot(p dynterrain.Pair) *Outline {
	o.knots = append(o.knots, p)
	return o
}

// Cycle closes the outline into a boundary. Part of builder functionality.
func (o *Outline) Cycle() *Outline {
	o.cycle = true
	return o
}

// End finishes an open outline (a ridge line rather than a boundary).
// Part of builder functionality.
func (o *Outline) End() *Outline {
	return o
}

// IsCycle is a predicate: is this outline a closed boundary?
func (o *Outline) IsCycle() bool {
	return o.cycle
}

// N returns the number of knots.
func (o *Outline) N() int {
	return len(o.knots)
}

// Z returns the knot at position (i mod N), in local coordinates.
// Cyclic indexing keeps neighbour arithmetic simple for closed boundaries.
func (o *Outline) Z(i int) dynterrain.Pair {
	n := o.N()
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return o.knots[i]
}

// SetZ replaces the knot at position i, in local coordinates. Unlike Z,
// mutation never wraps: i must lie in [0,N).
func (o *Outline) SetZ(i int, p dynterrain.Pair) error {
	if i < 0 || i >= o.N() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, o.N())
	}
	o.knots[i] = p
	return nil
}

// Placed sets the outline's placement, i.e. the transform from local to
// world coordinates. The world-to-local direction is derived by inversion.
func (o *Outline) Placed(at dynterrain.AT) error {
	inv, ok := at.Inverted()
	if !ok {
		return ErrSingularPlacement
	}
	o.toWorld = at
	o.toLocal = inv
	return nil
}

// ToWorld maps a local-space point into world space.
func (o *Outline) ToWorld(p dynterrain.Pair) dynterrain.Pair {
	return o.toWorld.Transform(p)
}

// ToLocal maps a world-space point into local space.
func (o *Outline) ToLocal(p dynterrain.Pair) dynterrain.Pair {
	return o.toLocal.Transform(p)
}

// Validate checks outline geometry: enough knots, finite coordinates, no
// degenerate segments, no redundant terminal knot on cycles.
func (o *Outline) Validate() error {
	if o == nil {
		return ErrNilOutline
	}
	n := o.N()
	if o.cycle {
		if n < 3 {
			return fmt.Errorf("%w: cycle needs at least 3 knots, got %d", ErrTooFewKnots, n)
		}
		if cmplx.Abs((o.knots[0] - o.knots[n-1]).C()) <= dynterrain.Epsilon {
			return ErrDuplicateTerminalKnot
		}
	} else if n < 2 {
		return fmt.Errorf("%w: open outline needs at least 2 knots, got %d", ErrTooFewKnots, n)
	}
	for i, z := range o.knots {
		x, y := z.F()
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	limit := n - 1
	if o.cycle {
		limit = n
	}
	for i := 0; i < limit; i++ {
		j := (i + 1) % n
		if cmplx.Abs((o.knots[j] - o.knots[i]).C()) <= dynterrain.Epsilon {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, j)
		}
	}
	return nil
}

// AsString returns an outline as a (debugging) string, knot by knot:
//
//	(0,0) .. (4,0) .. (2,3) .. cycle
func AsString(o *Outline) string {
	if o == nil {
		return "<nil outline>"
	}
	var s string
	for i := 0; i < o.N(); i++ {
		if i > 0 {
			s += " .. "
		}
		s += fmt.Sprintf("(%.4g,%.4g)", o.Z(i).X(), o.Z(i).Y())
	}
	if o.IsCycle() {
		s += " .. cycle"
	}
	return s
}
