package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/internal/pool"
	"github.com/arloliu/chifit/model"
	"github.com/arloliu/chifit/sample"
)

// singularTolerance bounds the normalised determinant of the 2×2 normal
// equations below which the x values are treated as a single point.
const singularTolerance = 1e-12

// Linear fits y = a + b*x by weighted least squares with weights 1/dy².
//
// The result's Params are [a, b] and Errors their standard errors
// σa = √(Σw x²/Δ), σb = √(Σw/Δ) with Δ = Σw·Σw x² - (Σw x)².
//
// Parameters:
//   - s: Sample set with at least three observations
//
// Returns:
//   - *Result: Fitted line with chi-squared, R², RMSE and formula
//   - error: errs.ErrDegreesOfFreedom for N <= 2, errs.ErrSingularFit when
//     every x is the same
func Linear(s sample.Set) (*Result, error) {
	n := s.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty sample set", errs.ErrEmptyInput)
	}
	if n <= 2 {
		return nil, fmt.Errorf("%w: linear fit needs more than 2 observations, got %d", errs.ErrDegreesOfFreedom, n)
	}

	x, y, dy := s.X(), s.Y(), s.DY()

	w, cleanup := pool.GetFloat64Slice(n)
	defer cleanup()

	var sw, swx, swxx float64
	for i := range n {
		wi := 1 / (dy[i] * dy[i])
		w[i] = wi
		sw += wi
		swx += wi * x[i]
		swxx += wi * x[i] * x[i]
	}

	delta := sw*swxx - swx*swx
	if !(delta > singularTolerance*sw*swxx) || math.IsInf(delta, 0) {
		return nil, fmt.Errorf("%w: x values do not span a line", errs.ErrSingularFit)
	}

	// Rescale the weights to sum to n. The fitted line does not change, and
	// gonum's weighted (co)variances divide by Σw - 1.
	scale := float64(n) / sw
	for i := range w {
		w[i] *= scale
	}

	intercept, slope := stat.LinearRegression(x, y, w, false)
	params := []float64{intercept, slope}
	paramErrs := []float64{math.Sqrt(swxx / delta), math.Sqrt(sw / delta)}

	return newResult(s, model.Linear{}, params, paramErrs)
}
