package outline

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/rexxmagtar/dynterrain"
)

// Controls collects cubic control points computed for a smoothed outline.
// PreControl(i) and PostControl(i) frame knot i: the Bezier segment from
// knot i to knot i+1 uses PostControl(i) and PreControl(i+1).
type Controls struct {
	prec  []dynterrain.Pair
	postc []dynterrain.Pair
}

// PreControl returns the incoming control point at knot i.
func (c *Controls) PreControl(i int) dynterrain.Pair {
	return getPair(c.prec, i, dynterrain.Pair(cmplx.NaN()))
}

// PostControl returns the outgoing control point at knot i.
func (c *Controls) PostControl(i int) dynterrain.Pair {
	return getPair(c.postc, i, dynterrain.Pair(cmplx.NaN()))
}

func (c *Controls) setPreControl(i int, p dynterrain.Pair) {
	c.prec = extendPairs(c.prec, i, dynterrain.Pair(cmplx.NaN()))
	c.prec[i] = p
}

func (c *Controls) setPostControl(i int, p dynterrain.Pair) {
	c.postc = extendPairs(c.postc, i, dynterrain.Pair(cmplx.NaN()))
	c.postc[i] = p
}

// Smooth computes spline control points for a cyclic outline, using Hobby's
// interpolation with neutral curl and unit tension at every knot. The result
// is a smooth closed curve through all knots, suitable for rendering a
// terrain boundary. Smoothing does not mutate the outline; callers re-smooth
// after animations have moved knots.
//
// Open outlines are rejected with ErrOpenOutline.
func (o *Outline) Smooth() (*Controls, error) {
	if o == nil {
		return nil, ErrNilOutline
	}
	if !o.IsCycle() {
		return nil, fmt.Errorf("%w: smoothing needs a closed boundary", ErrOpenOutline)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	n := o.N()
	theta := solveCyclicAngles(o)
	controls := &Controls{}
	for i := 0; i < n; i++ {
		phi := -turnAngle(o, i+1) - theta[i+1]
		dvec := o.Z(i+1) - o.Z(i)
		post, pre := controlOffsets(theta[i], phi, dvec)
		controls.setPostControl(i%n, o.Z(i)+post)
		controls.setPreControl((i+1)%n, o.Z(i+1)-pre)
	}
	tracer().Infof("smoothed %s", SmoothString(o, controls))
	return controls, nil
}

// Solve the cyclic tridiagonal system for the tangent angles theta at every
// knot, following Hobby's derivation with all tensions fixed to 1 and no
// explicit directions (every knot is smooth). The sherman-morrison style
// correction term w closes the cycle.
func solveCyclicAngles(o *Outline) []float64 {
	n := o.N()
	u := make([]float64, n+2)
	v := make([]float64, n+2)
	w := make([]float64, n+2)
	theta := make([]float64, n+2)
	u[0], v[0], w[0] = 0, 0, 1
	for i := 1; i <= n; i++ {
		dprev := segLen(o, i-1)
		dnext := segLen(o, i)
		A := 1 / dprev
		B := 2 / dprev
		C := 2 / dnext
		D := 1 / dnext
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*turnAngle(o, i) - D*turnAngle(o, i+1) - A*v[i-1]) / t
		w[i] = -A * w[i-1] / t
	}
	var a, b float64 = 0, 1
	for i := n; i > 0; i-- {
		a = v[i] - a*u[i]
		b = w[i] - b*u[i]
	}
	t0 := (v[n] - a*u[n]) / (1 - (w[n] - b*u[n]))
	v[0] = t0
	for i := 1; i <= n; i++ {
		v[i] += w[i] * t0
	}
	theta[0], theta[n] = t0, t0
	for i := n - 1; i > 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}
	return theta
}

// Control point offsets for the segment leaving knot i with tangent angle
// theta and arriving with angle phi, per Hobby's velocity formulas.
func controlOffsets(theta, phi float64, dvec dynterrain.Pair) (dynterrain.Pair, dynterrain.Pair) {
	constA := 1.41421356     // sqrt(2) -- empiric constants, as explained by J.Hobby
	constB := 0.0625         // 1/16
	constC := 0.38196601125  // (3 - sqrt(5)) / 2
	constCC := 0.61803398875 // 1 - c
	st, ct := math.Sin(theta), math.Cos(theta)
	sf, cf := math.Sin(phi), math.Cos(phi)
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	rho := (2 + alpha) / beta
	sigma := (2 - alpha) / beta
	dx, dy := dvec.F()
	outdir := dynterrain.P(dx*ct-dy*st, dx*st+dy*ct)
	indir := dynterrain.P(dx*cf+dy*sf, -dx*sf+dy*cf)
	post := dynterrain.Pair(complex(rho/3, 0)) * outdir
	pre := dynterrain.Pair(complex(sigma/3, 0)) * indir
	return post, pre
}

// Length of the segment from knot i to knot i+1 (cyclic).
func segLen(o *Outline, i int) float64 {
	return (o.Z(i+1) - o.Z(i)).Abs()
}

// Turning angle at knot i, reduced to -pi .. pi.
func turnAngle(o *Outline, i int) float64 {
	din := o.Z(i) - o.Z(i-1)
	dout := o.Z(i+1) - o.Z(i)
	psi := cmplx.Phase(dout.C()) - cmplx.Phase(din.C())
	if math.Abs(psi) > math.Pi {
		if psi > 0 {
			psi -= 2 * math.Pi
		} else {
			psi += 2 * math.Pi
		}
	}
	return psi
}

// SmoothString returns an outline with its computed control points as a
// (debugging) string, in a MetaPost-like format:
//
//	(1,1) .. controls (1.0000,1.5523) and (1.4477,2.0000)
//	 .. (2,2) .. [...] .. cycle
func SmoothString(o *Outline, c *Controls) string {
	var s string
	for i := 0; i < o.N(); i++ {
		if i > 0 {
			s += fmt.Sprintf(" and %s\n  .. ", ctrlString(c.PreControl(i)))
		}
		s += fmt.Sprintf("(%.4g,%.4g)", o.Z(i).X(), o.Z(i).Y())
		s += fmt.Sprintf(" .. controls %s", ctrlString(c.PostControl(i)))
	}
	s += fmt.Sprintf(" and %s\n ", ctrlString(c.PreControl(0)))
	s += " .. cycle"
	return s
}

func ctrlString(p dynterrain.Pair) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	return fmt.Sprintf("(%.4f,%.4f)", p.X(), p.Y())
}

// Extend a slice of pairs to make room for index i.
// Will do nothing if the slice is already large enough.
func extendPairs(arr []dynterrain.Pair, i int, deflt dynterrain.Pair) []dynterrain.Pair {
	l := len(arr)
	if i >= l {
		arr = append(arr, make([]dynterrain.Pair, i-l+1)...)
		for ; i >= l; i-- {
			arr[i] = deflt
		}
	}
	return arr
}

// Get a value from a slice if present, default value deflt otherwise.
func getPair(arr []dynterrain.Pair, i int, deflt dynterrain.Pair) dynterrain.Pair {
	if i >= len(arr) || cmplx.IsNaN(arr[i].C()) {
		return deflt
	}
	return arr[i]
}
