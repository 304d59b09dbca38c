package outline

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/rexxmagtar/dynterrain"
)

func diamond() *Outline {
	return NullOutline().
		Knot(dynterrain.P(1, 1)).
		Knot(dynterrain.P(2, 2)).
		Knot(dynterrain.P(3, 1)).
		Knot(dynterrain.P(2, 0)).Cycle()
}

func TestSmoothDeterministicSnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	controls, err := diamond().Smooth()
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	p0post := controls.PostControl(0)
	if math.Abs(p0post.X()-1.0000) > 0.0002 || math.Abs(p0post.Y()-1.5523) > 0.0002 {
		t.Fatalf("unexpected post control[0]: %v", p0post)
	}
	p1pre := controls.PreControl(1)
	if math.Abs(p1pre.X()-1.4477) > 0.0002 || math.Abs(p1pre.Y()-2.0000) > 0.0002 {
		t.Fatalf("unexpected pre control[1]: %v", p1pre)
	}
	p2post := controls.PostControl(2)
	if math.Abs(p2post.X()-3.0000) > 0.0002 || math.Abs(p2post.Y()-0.4477) > 0.0002 {
		t.Fatalf("unexpected post control[2]: %v", p2post)
	}
}

func TestSmoothSymmetry(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// The diamond is symmetric around x=2, so pre and post controls at the
	// top knot must mirror each other.
	controls, err := diamond().Smooth()
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	pre := controls.PreControl(1)
	post := controls.PostControl(1)
	if math.Abs((pre.X()-2)+(post.X()-2)) > 0.0005 {
		t.Errorf("controls at top knot not mirrored: pre=%v post=%v", pre, post)
	}
	if math.Abs(pre.Y()-post.Y()) > 0.0005 {
		t.Errorf("controls at top knot differ in height: pre=%v post=%v", pre, post)
	}
}

func TestSmoothRejectsOpenOutline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ridge := NullOutline().Knot(dynterrain.P(0, 0)).Knot(dynterrain.P(1, 1)).Knot(dynterrain.P(2, 0)).End()
	_, err := ridge.Smooth()
	if !errors.Is(err, ErrOpenOutline) {
		t.Fatalf("expected ErrOpenOutline, got %v", err)
	}
}

func TestSmoothRejectsInvalidGeometry(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := NullOutline().Knot(dynterrain.P(0, 0)).Knot(dynterrain.P(1, 0)).Cycle()
	_, err := o.Smooth()
	if !errors.Is(err, ErrTooFewKnots) {
		t.Fatalf("expected ErrTooFewKnots, got %v", err)
	}
	degenerate := NullOutline().
		Knot(dynterrain.P(0, 0)).
		Knot(dynterrain.P(0, 0)).
		Knot(dynterrain.P(1, 1)).Cycle()
	_, err = degenerate.Smooth()
	if !errors.Is(err, ErrDegenerateSegment) {
		t.Fatalf("expected ErrDegenerateSegment, got %v", err)
	}
	invalid := NullOutline().
		Knot(dynterrain.P(0, 0)).
		Knot(dynterrain.P(math.NaN(), 0)).
		Knot(dynterrain.P(1, 1)).Cycle()
	_, err = invalid.Smooth()
	if !errors.Is(err, ErrInvalidKnot) {
		t.Fatalf("expected ErrInvalidKnot, got %v", err)
	}
}

func TestSmoothStringContainsControls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := diamond()
	controls, err := o.Smooth()
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	s := SmoothString(o, controls)
	if len(s) == 0 {
		t.Fatal("empty smooth string")
	}
	if s[len(s)-8:] != ".. cycle" {
		t.Errorf("smooth string should end in '.. cycle': %q", s)
	}
}
