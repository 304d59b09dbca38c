package dynterrain

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestDistAndUnit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 5.0, Dist(P(0, 0), P(3, 4)), 1e-9)
	u := (P(3, 4) - P(0, 0)).Unit()
	assert.InDelta(t, 1.0, u.Abs(), 1e-9)
	assert.True(t, Origin.Unit().IsOrigin(), "unit of origin should stay origin")
}

func TestInterp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mid := Interp(P(0, 0), P(10, 0), 0.5)
	if !mid.Equal(P(5, 0)) {
		t.Errorf("Expected midpoint (5,0), got %v", mid)
	}
	over := Interp(P(0, 0), P(10, 0), 1.2)
	if !over.Equal(P(12, 0)) {
		t.Errorf("Expected overshoot (12,0), got %v", over)
	}
}

func TestScaling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Scaling(2, 3).Transform(P(1, 1))
	if !p.Equal(P(2, 3)) {
		t.Errorf("Expected (2,3), got %v", p)
	}
}

func TestInverted(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	T := Translation(P(4, -2)).Combine(Rotation(30 * Deg2Rad)).Combine(Scaling(2, 2))
	inv, ok := T.Inverted()
	assert.True(t, ok)
	p := P(1.5, -3)
	back := inv.Transform(T.Transform(p))
	assert.InDelta(t, p.X(), back.X(), 1e-9)
	assert.InDelta(t, p.Y(), back.Y(), 1e-9)
}

func TestInvertedSingular(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, ok := Scaling(0, 1).Inverted()
	if ok {
		t.Errorf("Expected singular transform to report !ok")
	}
}

func TestRotatedAround(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(2, 1).Rotatedaround(P(1, 1), 180*Deg2Rad)
	if !p.Equal(P(0, 1)) {
		t.Errorf("Expected (0,1), got %v", p)
	}
}
