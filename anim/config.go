package anim

import (
	"fmt"
	"os"

	"github.com/rexxmagtar/dynterrain"
	"gopkg.in/yaml.v3"
)

// SetSpec is the declarative form of an animation set, loadable from YAML.
//
//	name: coastline
//	point_budget: 200
//	animations:
//	  - id: raise-cliff
//	    point: 3
//	    mode: relative-to-initial
//	    value: { x: 0, y: -2.5 }
//	    curve: in-out-quad
//	    speed: 0.5
type SetSpec struct {
	Name        string          `yaml:"name"`
	PointBudget int             `yaml:"point_budget,omitempty"`
	Animations  []AnimationSpec `yaml:"animations"`
}

// AnimationSpec describes one point animation.
type AnimationSpec struct {
	ID    string  `yaml:"id"`
	Point int     `yaml:"point"`
	Mode  string  `yaml:"mode"`
	Value VecSpec `yaml:"value"`
	Curve string  `yaml:"curve,omitempty"`
	Speed float64 `yaml:"speed,omitempty"`
}

// VecSpec is a 2D displacement or position in spec files.
type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadSetSpec parses a YAML set description.
func LoadSetSpec(data []byte) (*SetSpec, error) {
	var spec SetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing set spec: %w", err)
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: set spec without a name", ErrBadSpec)
	}
	return &spec, nil
}

// BuildSet constructs a set from a parsed spec. Unknown modes or curves and
// duplicate ids fail fast; a missing curve defaults to linear, a missing
// speed to 1.
func BuildSet(spec *SetSpec) (*Set, error) {
	s := NewSet(spec.Name)
	if spec.PointBudget > 0 {
		s.SetPointBudget(spec.PointBudget)
	}
	for _, aspec := range spec.Animations {
		mode, err := ModeByName(aspec.Mode)
		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", aspec.ID, err)
		}
		curve := Linear
		if aspec.Curve != "" {
			curve, err = CurveByName(aspec.Curve)
			if err != nil {
				return nil, fmt.Errorf("animation %q: %w", aspec.ID, err)
			}
		}
		speed := aspec.Speed
		if speed == 0 {
			speed = 1.0
		}
		a, err := New(aspec.ID, aspec.Point, mode, dynterrain.P(aspec.Value.X, aspec.Value.Y), curve, speed)
		if err != nil {
			return nil, err
		}
		if err := s.Register(a); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LoadSet reads a YAML set description from a file and builds the set.
func LoadSet(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading set spec: %w", err)
	}
	spec, err := LoadSetSpec(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	set, err := BuildSet(spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}
