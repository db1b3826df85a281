// Package chifit measures how well parametric models describe experimental
// data with per-point uncertainties.
//
// The central quantity is the reduced chi-squared
//
//	χ²ν = (1/(N-k)) Σ (f(xᵢ) - yᵢ)² / dyᵢ²
//
// where N is the number of observations and k the number of model
// parameters. A value near 1 means the model explains the data to within the
// stated uncertainties; values well above 1 point to a poor model or
// underestimated uncertainties; values well below 1 usually mean the
// uncertainties are overestimated.
//
// # Core Features
//
//   - Parametric models: linear, polynomial (any degree), exponential, power law
//   - Reduced chi-squared scoring with explicit degrees-of-freedom checks
//   - Reduction of repeated trials to mean and standard error of the mean
//   - Semilog and log-log linearization with uncertainty propagation
//   - Weighted least-squares fits, model comparison, numerical minimization
//     and parameter grid scans (package fit)
//
// # Basic Usage
//
// Scoring a model against data:
//
//	import "github.com/arloliu/chifit"
//
//	score, err := chifit.Score(x, y, dy, model.Linear{}, []float64{0, 1})
//
// Turning repeated trials into a sample set:
//
//	s, err := chifit.SampleFromTrials(x, trials) // trials[i] holds the repeats at x[i]
//
// Picking the best-describing family:
//
//	best, err := chifit.BestFit(s)
//	fmt.Println(best.Formula, best.ChiSquared)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the model,
// chisq, trial, linearize and fit packages for the most common use cases.
// For fine-grained control, use those packages directly.
package chifit

import (
	"github.com/arloliu/chifit/chisq"
	"github.com/arloliu/chifit/fit"
	"github.com/arloliu/chifit/linearize"
	"github.com/arloliu/chifit/model"
	"github.com/arloliu/chifit/sample"
	"github.com/arloliu/chifit/trial"
)

// Score returns the reduced chi-squared of m at args against (x, y, dy).
//
// It is a shorthand for chisq.Score; see there for the validation rules.
//
// Example:
//
//	score, err := chifit.Score(x, y, dy, model.Linear{}, []float64{0, 1})
func Score(x, y, dy []float64, m model.Model, args []float64) (float64, error) {
	return chisq.Score(x, y, dy, m, args)
}

// NewSample validates and copies (x, y, dy) into a sample set.
func NewSample(x, y, dy []float64) (sample.Set, error) {
	return sample.New(x, y, dy)
}

// SampleFromTrials reduces repeated trials to means and standard errors and
// pairs them with x. trials[i] holds the repeated measurements at x[i]; every
// row needs the same number of trials, at least two.
//
// Example:
//
//	s, err := chifit.SampleFromTrials(
//	    []float64{1, 2, 3},
//	    [][]float64{{1.1, 0.9, 1.0}, {2.2, 1.8, 2.1}, {2.9, 3.2, 3.0}},
//	)
func SampleFromTrials(x []float64, trials [][]float64) (sample.Set, error) {
	tbl, err := trial.NewTable(trials)
	if err != nil {
		return sample.Set{}, err
	}

	return tbl.Sample(x)
}

// Linearize builds the linear, semilog and log-log views of (x, y, dy).
//
// It is a shorthand for linearize.Linearize with all views enabled; every
// x and y must be strictly positive.
func Linearize(x, y, dy []float64) (*linearize.Views, error) {
	return linearize.Linearize(x, y, dy)
}

// BestFit fits the linear, exponential and power-law families to s and
// returns the one with the lowest reduced chi-squared.
//
// Use fit.Compare to see every candidate and the families that were skipped.
func BestFit(s sample.Set) (*fit.Result, error) {
	c, err := fit.Compare(s)
	if err != nil {
		return nil, err
	}

	return c.Best, nil
}
