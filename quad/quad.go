package quad

import (
	"errors"
	"fmt"
	"math"
)

// Defaults match scipy.integrate.quad.
const (
	DefaultAbsTol       = 1.49e-8
	DefaultRelTol       = 1.49e-8
	DefaultMaxIntervals = 50
)

// ErrNoConvergence is returned when the interval budget is exhausted
// before the error estimate meets the tolerance.
var ErrNoConvergence = errors.New("quad: integral did not converge within the interval budget")

// Config configures Adaptive. Zero values produce the defaults above.
type Config struct {
	AbsTol       float64 // absolute tolerance; zero → DefaultAbsTol
	RelTol       float64 // relative tolerance; zero → DefaultRelTol
	MaxIntervals int     // subdivision budget; zero → DefaultMaxIntervals
}

// Result holds the integral estimate and its diagnostics.
type Result struct {
	Value  float64 // integral estimate
	ErrEst float64 // estimated absolute error bound
	Evals  int     // number of integrand evaluations
}

// segment is one subinterval with its local estimate and error.
type segment struct {
	a, b        float64
	val, errEst float64
}

// Adaptive integrates f over [a, b] to within max(AbsTol, RelTol·|I|).
// The bounds may be given in either order; a reversed interval negates
// the result. Returns ErrNoConvergence (with the best estimate so far)
// when MaxIntervals bisections are not enough.
func Adaptive(f func(float64) float64, a, b float64, cfg Config) (Result, error) {
	absTol := cfg.AbsTol
	if absTol == 0 {
		absTol = DefaultAbsTol
	}
	relTol := cfg.RelTol
	if relTol == 0 {
		relTol = DefaultRelTol
	}
	maxIntervals := cfg.MaxIntervals
	if maxIntervals == 0 {
		maxIntervals = DefaultMaxIntervals
	}
	if absTol < 0 || relTol < 0 || maxIntervals < 1 {
		return Result{}, fmt.Errorf("quad: invalid config: abstol=%g reltol=%g intervals=%d",
			absTol, relTol, maxIntervals)
	}

	if a == b {
		return Result{}, nil
	}
	sign := 1.0
	if b < a {
		a, b = b, a
		sign = -1
	}

	segs := make([]segment, 1, maxIntervals)
	segs[0] = gk15(f, a, b)
	evals := 15

	for {
		var total, totalErr float64
		worst := 0
		for i, s := range segs {
			total += s.val
			totalErr += s.errEst
			if s.errEst > segs[worst].errEst {
				worst = i
			}
		}

		if totalErr <= math.Max(absTol, relTol*math.Abs(total)) {
			return Result{Value: sign * total, ErrEst: totalErr, Evals: evals}, nil
		}
		if len(segs) >= maxIntervals {
			return Result{Value: sign * total, ErrEst: totalErr, Evals: evals},
				fmt.Errorf("%w: %d intervals, error estimate %g", ErrNoConvergence, len(segs), totalErr)
		}

		// Bisect the worst interval in place.
		w := segs[worst]
		mid := 0.5 * (w.a + w.b)
		segs[worst] = gk15(f, w.a, mid)
		segs = append(segs, gk15(f, mid, w.b))
		evals += 30
	}
}

// 15-point Kronrod abscissae on (0, 1); xgk[1], xgk[3], xgk[5] and the
// midpoint are the embedded 7-point Gauss nodes.
var xgk = [7]float64{
	0.991455371120813,
	0.949107912342759,
	0.864864423359769,
	0.741531185599394,
	0.586087235467691,
	0.405845151377397,
	0.207784955007898,
}

// Kronrod weights; wgkc is the midpoint weight.
var wgk = [7]float64{
	0.022935322010529,
	0.063092092629979,
	0.104790010322250,
	0.140653259715525,
	0.169004726639267,
	0.190350578064785,
	0.204432940075298,
}

const wgkc = 0.209482141084728

// 7-point Gauss weights for xgk[1], xgk[3], xgk[5]; wgc is the midpoint weight.
var wg = [3]float64{
	0.129484966168870,
	0.279705391489277,
	0.381830050505119,
}

const wgc = 0.417959183673469

// gk15 applies the Gauss–Kronrod 7-15 pair to [a, b]. The Kronrod sum is
// the value; |K15 - G7| scaled by the half-width is the error estimate.
func gk15(f func(float64) float64, a, b float64) segment {
	c := 0.5 * (a + b)
	h := 0.5 * (b - a)

	fc := f(c)
	resK := wgkc * fc
	resG := wgc * fc

	for i, x := range xgk {
		fsum := f(c-h*x) + f(c+h*x)
		resK += wgk[i] * fsum
		if i%2 == 1 {
			resG += wg[i/2] * fsum
		}
	}

	return segment{a: a, b: b, val: resK * h, errEst: math.Abs((resK - resG) * h)}
}
