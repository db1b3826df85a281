package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/arloliu/chifit/chisq"
	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/model"
	"github.com/arloliu/chifit/sample"
)

// convergeIterations is how many major iterations may pass without an
// improvement larger than the tolerance before the search stops.
const convergeIterations = 100

// Minimize searches for the parameters of m that minimise the reduced
// chi-squared against s, starting from init.
//
// Any model works, including ones without a closed-form fit. Parameter
// errors come from the inverse of a finite-difference Hessian at the
// optimum and are nil when that Hessian is not positive definite.
//
// Parameters:
//   - s: Sample set with more observations than m has parameters
//   - m: Model to fit
//   - init: Starting parameter vector; must score to a finite value
//   - opts: WithMethod, WithMaxIterations, WithMaxEvaluations, WithTolerance
//
// Returns:
//   - *Result: Best parameters found, with Status and Evaluations set
//   - error: Validation errors from chisq, or errs.ErrOptimizeFailed
func Minimize(s sample.Set, m model.Model, init []float64, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	obj, err := chisq.NewObjective(s, m)
	if err != nil {
		return nil, err
	}
	if _, err := obj.Score(init); err != nil {
		return nil, fmt.Errorf("initial parameters: %w", err)
	}

	f := obj.Func()
	problem := optimize.Problem{Func: f}
	if cfg.Method.needsGradient() {
		problem.Grad = func(grad, x []float64) {
			fd.Gradient(grad, f, x, &fd.Settings{Formula: fd.Central})
		}
	}

	settings := &optimize.Settings{
		MajorIterations: cfg.MaxIterations,
		FuncEvaluations: cfg.MaxEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.Tolerance,
			Relative:   cfg.Tolerance,
			Iterations: convergeIterations,
		},
	}

	// A line search that stalls near the optimum reports an error together
	// with the best location found; that location is still returned, with
	// the failure visible in Result.Status.
	opt, err := optimize.Minimize(problem, append([]float64(nil), init...), settings, cfg.Method.gonum())
	if opt == nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrOptimizeFailed, cfg.Method, err)
	}
	if math.IsNaN(opt.F) || math.IsInf(opt.F, 0) {
		return nil, fmt.Errorf("%w: %s ended at a non-finite score", errs.ErrOptimizeFailed, cfg.Method)
	}

	params := append([]float64(nil), opt.X...)
	res, err := newResult(s, m, params, hessianErrors(f, params, obj.DOF()))
	if err != nil {
		return nil, err
	}
	res.Status = opt.Status.String()
	res.Evaluations = opt.Stats.FuncEvaluations

	return res, nil
}

// hessianErrors estimates parameter standard errors from the curvature of
// the reduced chi-squared f at x. The covariance is (dof/2 · ∇²f)⁻¹.
func hessianErrors(f func([]float64) float64, x []float64, dof int) []float64 {
	k := len(x)
	h := mat.NewSymDense(k, nil)
	fd.Hessian(h, f, x, nil)

	for i := range k {
		for j := i; j < k; j++ {
			v := h.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil
			}
		}
	}
	h.ScaleSym(float64(dof)/2, h)

	var chol mat.Cholesky
	if ok := chol.Factorize(h); !ok {
		return nil
	}

	var cov mat.SymDense
	if err := chol.InverseTo(&cov); err != nil {
		return nil
	}

	out := make([]float64, k)
	for i := range k {
		v := cov.At(i, i)
		if !(v > 0) || math.IsInf(v, 0) {
			return nil
		}
		out[i] = math.Sqrt(v)
	}

	return out
}
