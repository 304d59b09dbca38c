package outline

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/rexxmagtar/dynterrain"
)

// Polygon converts a cyclic outline into a polyclip polygon with a single
// contour, in local coordinates. Boolean polygon operations (union,
// intersection, difference) are then available through polyclip directly.
func (o *Outline) Polygon() (polyclip.Polygon, error) {
	if o == nil {
		return nil, ErrNilOutline
	}
	if !o.IsCycle() {
		return nil, ErrOpenOutline
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	contour := make(polyclip.Contour, 0, o.N())
	for _, z := range o.knots {
		contour = append(contour, polyclip.Point{X: z.X(), Y: z.Y()})
	}
	return polyclip.Polygon{contour}, nil
}

// Overlaps reports whether two cyclic outlines share interior area. Both
// outlines are interpreted in the same local space; place them into a common
// space first if their placements differ.
func (o *Outline) Overlaps(other *Outline) (bool, error) {
	p, err := o.Polygon()
	if err != nil {
		return false, fmt.Errorf("overlap subject: %w", err)
	}
	q, err := other.Polygon()
	if err != nil {
		return false, fmt.Errorf("overlap clip: %w", err)
	}
	section := p.Construct(polyclip.INTERSECTION, q)
	return section.NumVertices() > 0, nil
}

// Area returns the absolute enclosed area of a cyclic outline, in local
// coordinates (shoelace formula).
func (o *Outline) Area() (float64, error) {
	a, err := o.signedArea()
	if err != nil {
		return 0, err
	}
	if a < 0 {
		a = -a
	}
	return a, nil
}

// Clockwise reports the winding direction of a cyclic outline.
func (o *Outline) Clockwise() (bool, error) {
	a, err := o.signedArea()
	if err != nil {
		return false, err
	}
	return a < 0, nil
}

func (o *Outline) signedArea() (float64, error) {
	if o == nil {
		return 0, ErrNilOutline
	}
	if !o.IsCycle() {
		return 0, ErrOpenOutline
	}
	n := o.N()
	if n < 3 {
		return 0, fmt.Errorf("%w: area needs at least 3 knots, got %d", ErrTooFewKnots, n)
	}
	var sum float64
	for i := 0; i < n; i++ {
		p, q := o.Z(i), o.Z(i+1)
		sum += p.X()*q.Y() - q.X()*p.Y()
	}
	return dynterrain.Zap(sum / 2), nil
}
