package linearize

import (
	"fmt"
	"math"

	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/internal/options"
	"github.com/arloliu/chifit/sample"
)

// Triple is one coordinate system: abscissa, ordinate and ordinate uncertainty.
type Triple struct {
	X, Y, DY []float64
}

// Sample validates the triple into a sample.Set.
func (t *Triple) Sample() (sample.Set, error) {
	if t == nil {
		return sample.Set{}, fmt.Errorf("%w: view was not requested", errs.ErrEmptyInput)
	}

	return sample.New(t.X, t.Y, t.DY)
}

// Views holds the linearized coordinate systems. A view that was not
// requested is nil.
type Views struct {
	Linear  *Triple
	Semilog *Triple
	LogLog  *Triple
}

// Get returns the triple for v, or nil if it was not built.
func (vs *Views) Get(v View) *Triple {
	switch v {
	case ViewLinear:
		return vs.Linear
	case ViewSemilog:
		return vs.Semilog
	case ViewLogLog:
		return vs.LogLog
	default:
		return nil
	}
}

// Linearize builds the requested views of (x, y, dy). All views are built by
// default. Every returned slice is newly allocated.
func Linearize(x, y, dy []float64, opts ...Option) (*Views, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if len(x) != len(y) || len(x) != len(dy) {
		return nil, fmt.Errorf("%w: x=%d y=%d dy=%d", errs.ErrLengthMismatch, len(x), len(y), len(dy))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: nothing to linearize", errs.ErrEmptyInput)
	}
	for _, c := range []struct {
		name string
		v    []float64
	}{{"x", x}, {"y", y}, {"dy", dy}} {
		if err := checkFinite(c.name, c.v); err != nil {
			return nil, err
		}
	}
	for i, d := range dy {
		if !(d > 0) {
			return nil, fmt.Errorf("%w: dy[%d] = %g", errs.ErrInvalidUncertainty, i, d)
		}
	}

	logY := cfg.views[ViewSemilog] || cfg.views[ViewLogLog]
	logX := cfg.views[ViewLogLog]
	if logY {
		if err := checkPositive("y", y); err != nil {
			return nil, err
		}
	}
	if logX {
		if err := checkPositive("x", x); err != nil {
			return nil, err
		}
	}

	vs := &Views{}
	if cfg.views[ViewLinear] {
		vs.Linear = &Triple{X: clone(x), Y: clone(y), DY: clone(dy)}
	}

	var lnY, dLnY []float64
	if logY {
		lnY = make([]float64, len(y))
		dLnY = make([]float64, len(y))
		for i, yi := range y {
			lnY[i] = math.Log(yi)
			dLnY[i] = dy[i] / yi
		}
	}

	if cfg.views[ViewSemilog] {
		vs.Semilog = &Triple{X: clone(x), Y: lnY, DY: dLnY}
	}
	if logX {
		lnX := make([]float64, len(x))
		for i, xi := range x {
			lnX[i] = math.Log(xi)
		}
		ly, dly := lnY, dLnY
		if cfg.views[ViewSemilog] {
			ly, dly = clone(lnY), clone(dLnY)
		}
		vs.LogLog = &Triple{X: lnX, Y: ly, DY: dly}
	}

	return vs, nil
}

// LinearizeSet is Linearize over a sample.Set.
func LinearizeSet(s sample.Set, opts ...Option) (*Views, error) {
	return Linearize(s.X(), s.Y(), s.DY(), opts...)
}

// SemilogToExponential maps a line ln y = slope*x + intercept fitted in the
// semilog view back to y = A e^(Bx): A = e^intercept, B = slope.
func SemilogToExponential(slope, intercept float64) (a, b float64) {
	return math.Exp(intercept), slope
}

// LoglogToPowerLaw maps a line ln y = slope*ln x + intercept fitted in the
// log-log view back to y = A x^B: A = e^intercept, B = slope.
func LoglogToPowerLaw(slope, intercept float64) (a, b float64) {
	return math.Exp(intercept), slope
}

func checkPositive(name string, v []float64) error {
	for i, vi := range v {
		if !(vi > 0) {
			return fmt.Errorf("%w: %s[%d] = %g", errs.ErrNonPositiveValue, name, i, vi)
		}
	}

	return nil
}

func checkFinite(name string, v []float64) error {
	for i, vi := range v {
		if math.IsNaN(vi) || math.IsInf(vi, 0) {
			return fmt.Errorf("%w: %s[%d] = %g", errs.ErrNonFinite, name, i, vi)
		}
	}

	return nil
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
