package chisq

import (
	"fmt"
	"math"

	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/internal/pool"
	"github.com/arloliu/chifit/model"
	"github.com/arloliu/chifit/sample"
)

// Score returns the reduced chi-squared of m evaluated at args against (x, y, dy).
func Score(x, y, dy []float64, m model.Model, args []float64) (float64, error) {
	if len(x) != len(y) || len(x) != len(dy) {
		return 0, fmt.Errorf("%w: x=%d y=%d dy=%d", errs.ErrLengthMismatch, len(x), len(y), len(dy))
	}
	if m == nil {
		return 0, fmt.Errorf("%w: nil model", errs.ErrInvalidParameters)
	}

	fx, cleanup := pool.GetFloat64Slice(len(x))
	defer cleanup()

	if err := m.EvaluateTo(fx, x, args); err != nil {
		return 0, err
	}

	dof, err := DOF(len(x), len(args))
	if err != nil {
		return 0, err
	}

	return weightedSum(fx, y, dy, dof)
}

// ScoreSet returns the reduced chi-squared of m evaluated at args against s.
func ScoreSet(s sample.Set, m model.Model, args []float64) (float64, error) {
	return Score(s.X(), s.Y(), s.DY(), m, args)
}

// DOF returns the degrees of freedom n - k for n observations and k free
// parameters. A non-positive result fails with errs.ErrDegreesOfFreedom.
func DOF(n, k int) (int, error) {
	dof := n - k
	if dof <= 0 {
		return 0, fmt.Errorf("%w: %d observations, %d parameters", errs.ErrDegreesOfFreedom, n, k)
	}

	return dof, nil
}

// Residuals returns f(x_i) - y_i for every observation.
func Residuals(x, y []float64, m model.Model, args []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x=%d y=%d", errs.ErrLengthMismatch, len(x), len(y))
	}

	res, err := model.Evaluate(m, x, args)
	if err != nil {
		return nil, err
	}
	for i := range res {
		res[i] -= y[i]
	}

	return res, nil
}

// weightedSum computes (1/dof) * Σ (fx_i - y_i)² / dy_i².
func weightedSum(fx, y, dy []float64, dof int) (float64, error) {
	var sum float64
	for i := range fx {
		d := dy[i]
		if d == 0 {
			return 0, fmt.Errorf("%w: dy[%d]", errs.ErrDivisionByZero, i)
		}
		if d < 0 {
			return 0, fmt.Errorf("%w: dy[%d] = %g", errs.ErrInvalidUncertainty, i, d)
		}
		r := fx[i] - y[i]
		sum += r * r / (d * d)
	}

	score := (1 / float64(dof)) * sum
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("%w: chi-squared = %g", errs.ErrNonFinite, score)
	}

	return score, nil
}
