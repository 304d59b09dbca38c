package anim

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// Curve is an easing sample function: it maps the normalized elapsed
// parameter to a progress scalar. The nominal domain and range are [0,1],
// but neither is enforced; curves with overshoot (elastic, back) legally
// return values above 1 or below 0 and the engine applies them unclamped.
type Curve func(t float64) float64

// Linear is the identity curve.
var Linear Curve = func(t float64) float64 { return t }

// FromEase adapts one of the gween easing functions to a Curve, sampling it
// over a unit time span with unit value change.
func FromEase(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// The catalog maps config names onto the gween easing collection.
var curveCatalog = map[string]Curve{
	"linear":         FromEase(ease.Linear),
	"in-quad":        FromEase(ease.InQuad),
	"out-quad":       FromEase(ease.OutQuad),
	"in-out-quad":    FromEase(ease.InOutQuad),
	"in-cubic":       FromEase(ease.InCubic),
	"out-cubic":      FromEase(ease.OutCubic),
	"in-out-cubic":   FromEase(ease.InOutCubic),
	"in-quart":       FromEase(ease.InQuart),
	"out-quart":      FromEase(ease.OutQuart),
	"in-out-quart":   FromEase(ease.InOutQuart),
	"in-quint":       FromEase(ease.InQuint),
	"out-quint":      FromEase(ease.OutQuint),
	"in-out-quint":   FromEase(ease.InOutQuint),
	"in-sine":        FromEase(ease.InSine),
	"out-sine":       FromEase(ease.OutSine),
	"in-out-sine":    FromEase(ease.InOutSine),
	"in-expo":        FromEase(ease.InExpo),
	"out-expo":       FromEase(ease.OutExpo),
	"in-out-expo":    FromEase(ease.InOutExpo),
	"in-circ":        FromEase(ease.InCirc),
	"out-circ":       FromEase(ease.OutCirc),
	"in-out-circ":    FromEase(ease.InOutCirc),
	"in-back":        FromEase(ease.InBack),
	"out-back":       FromEase(ease.OutBack),
	"in-out-back":    FromEase(ease.InOutBack),
	"in-elastic":     FromEase(ease.InElastic),
	"out-elastic":    FromEase(ease.OutElastic),
	"in-out-elastic": FromEase(ease.InOutElastic),
	"in-bounce":      FromEase(ease.InBounce),
	"out-bounce":     FromEase(ease.OutBounce),
	"in-out-bounce":  FromEase(ease.InOutBounce),
}

// CurveByName looks an easing curve up by its config name.
func CurveByName(name string) (Curve, error) {
	c, ok := curveCatalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return c, nil
}

// CurveNames returns the catalog names in sorted order.
func CurveNames() []string {
	names := make([]string, 0, len(curveCatalog))
	for name := range curveCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
