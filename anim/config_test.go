package anim

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const coastlineYAML = `
name: coastline
point_budget: 200
animations:
  - id: raise-cliff
    point: 3
    mode: relative-to-initial
    value: { x: 0, y: -2.5 }
    curve: in-out-quad
    speed: 0.5
  - id: slide-dune
    point: 1
    mode: relative-to-current
    value: { x: 4, y: 0 }
`

func TestLoadSetSpec(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec, err := LoadSetSpec([]byte(coastlineYAML))
	assert.NoError(t, err)
	assert.Equal(t, "coastline", spec.Name)
	assert.Equal(t, 200, spec.PointBudget)
	assert.Len(t, spec.Animations, 2)
	assert.Equal(t, -2.5, spec.Animations[0].Value.Y)
}

func TestLoadSetSpecRejectsNameless(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := LoadSetSpec([]byte("animations: []"))
	assert.True(t, errors.Is(err, ErrBadSpec))
}

func TestLoadSetSpecRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := LoadSetSpec([]byte(":\n:::"))
	assert.Error(t, err)
}

func TestBuildSet(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec, err := LoadSetSpec([]byte(coastlineYAML))
	assert.NoError(t, err)
	s, err := BuildSet(spec)
	assert.NoError(t, err)
	assert.Equal(t, "coastline", s.Name())
	assert.Equal(t, 2, s.Len())
	a, ok := s.Animation("raise-cliff")
	assert.True(t, ok)
	assert.Equal(t, 3, a.Index())
	assert.Equal(t, RelativeToInitial, a.Mode())
	b, _ := s.Animation("slide-dune")
	assert.Equal(t, RelativeToCurrent, b.Mode())
}

func TestBuildSetRejectsUnknownCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := &SetSpec{
		Name: "bad",
		Animations: []AnimationSpec{
			{ID: "a", Point: 0, Mode: "absolute", Curve: "wobble"},
		},
	}
	_, err := BuildSet(spec)
	assert.True(t, errors.Is(err, ErrUnknownCurve))
}

func TestBuildSetRejectsUnknownMode(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := &SetSpec{
		Name: "bad",
		Animations: []AnimationSpec{
			{ID: "a", Point: 0, Mode: "sideways"},
		},
	}
	_, err := BuildSet(spec)
	assert.True(t, errors.Is(err, ErrBadSpec))
}

func TestBuildSetRejectsDuplicateIDs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := &SetSpec{
		Name: "bad",
		Animations: []AnimationSpec{
			{ID: "twin", Point: 0, Mode: "absolute"},
			{ID: "twin", Point: 1, Mode: "absolute"},
		},
	}
	_, err := BuildSet(spec)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestLoadSetFromFile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := filepath.Join(t.TempDir(), "coastline.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(coastlineYAML), 0644))
	s, err := LoadSet(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	_, err = LoadSet(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
