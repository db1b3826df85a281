package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/chifit/chisq"
	"github.com/arloliu/chifit/model"
	"github.com/arloliu/chifit/sample"
)

// Result represents a fitted model with its goodness-of-fit metadata.
//
// Fields:
//   - Kind: The model family
//   - Model: The fitted model, usable with model.Evaluate
//   - Params: The fitted parameter vector in the model's own parameterization
//   - Errors: Standard errors of Params, nil when they could not be estimated
//   - ChiSquared: Reduced chi-squared on the original data (lower is better, ~1 is ideal)
//   - DOF: Degrees of freedom N - k
//   - RSquared: Coefficient of determination on the original data
//   - RMSE: Root mean square error on the original data
//   - Formula: Human-readable formula
//   - DataID: Fingerprint of the sample set the model was fitted to
type Result struct {
	// Kind is the model family.
	Kind model.Kind
	// Model is the fitted model.
	Model model.Model
	// Params contains the fitted parameters.
	Params []float64
	// Errors contains the standard error of each parameter, or nil.
	Errors []float64
	// ChiSquared is the reduced chi-squared on the original data.
	ChiSquared float64
	// DOF is the number of degrees of freedom.
	DOF int
	// RSquared is the coefficient of determination (unweighted).
	RSquared float64
	// RMSE is the root mean square error (unweighted).
	RMSE float64
	// Formula is a human-readable representation of the fitted model.
	Formula string
	// DataID is sample.Set.Fingerprint of the fitted data. Two results with
	// the same DataID were fitted to identical observations.
	DataID uint64
	// Linearized is the straight-line fit in the semilog or log-log frame
	// for exponential and power-law results, nil otherwise.
	Linearized *Result
	// Status is the optimizer's termination status for Minimize results.
	Status string
	// Evaluations counts objective evaluations for Minimize results.
	Evaluations int
}

// String returns a string representation of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Kind: %s, χ²ν: %.4f, DOF: %d, R²: %.4f, RMSE: %.4f, Formula: %s}",
		r.Kind, r.ChiSquared, r.DOF, r.RSquared, r.RMSE, r.Formula)
}

// Estimator returns the fitted model together with a copy of its parameters,
// ready to be passed to model.Evaluate.
func (r *Result) Estimator() (model.Model, []float64) {
	return r.Model, append([]float64(nil), r.Params...)
}

// Predict evaluates the fitted model at x.
func (r *Result) Predict(x []float64) ([]float64, error) {
	return model.Evaluate(r.Model, x, r.Params)
}

// newResult scores params against s and fills in every derived metric.
func newResult(s sample.Set, m model.Model, params, paramErrs []float64) (*Result, error) {
	chi2, err := chisq.ScoreSet(s, m, params)
	if err != nil {
		return nil, err
	}

	predicted, err := model.Evaluate(m, s.X(), params)
	if err != nil {
		return nil, err
	}

	dof, err := chisq.DOF(s.Len(), m.NumParams())
	if err != nil {
		return nil, err
	}

	return &Result{
		Kind:       m.Kind(),
		Model:      m,
		Params:     params,
		Errors:     paramErrs,
		ChiSquared: chi2,
		DOF:        dof,
		RSquared:   rSquared(s.Y(), predicted),
		RMSE:       rmse(s.Y(), predicted),
		Formula:    model.Formula(m, params),
		DataID:     s.Fingerprint(),
	}, nil
}

// rSquared returns 1 - SSres/SStot, or 0 when the observations are constant.
func rSquared(observed, predicted []float64) float64 {
	if len(observed) < 2 {
		return 0
	}

	r2 := stat.RSquaredFrom(predicted, observed, nil)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		return 0
	}

	return r2
}

// rmse returns √(Σ(observed - predicted)² / n).
func rmse(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	return floats.Distance(observed, predicted, 2) / math.Sqrt(float64(len(observed)))
}
