package fit

import (
	"fmt"

	"github.com/arloliu/chifit/linearize"
	"github.com/arloliu/chifit/model"
	"github.com/arloliu/chifit/sample"
)

// Exponential fits y = A e^(B x) through the semilog view (x, ln y, dy/y).
//
// A weighted line ln y = m x + b is fitted in the semilog frame and mapped
// back with A = e^b, B = m. The result's ChiSquared is scored on the original
// data; the straight-line fit, with its own chi-squared, is kept in
// Result.Linearized. Errors are propagated to first order: σA = A σb, σB = σm.
//
// Returns errs.ErrNonPositiveValue when any y <= 0.
func Exponential(s sample.Set) (*Result, error) {
	return logFit(s, linearize.ViewSemilog, model.Exponential{}, linearize.SemilogToExponential)
}

// PowerLaw fits y = A x^B through the log-log view (ln x, ln y, dy/y).
//
// See Exponential for how the line is mapped back and how errors propagate.
//
// Returns errs.ErrNonPositiveValue when any x <= 0 or y <= 0.
func PowerLaw(s sample.Set) (*Result, error) {
	return logFit(s, linearize.ViewLogLog, model.PowerLaw{}, linearize.LoglogToPowerLaw)
}

func logFit(s sample.Set, view linearize.View, m model.Model, back func(slope, intercept float64) (a, b float64)) (*Result, error) {
	views, err := linearize.LinearizeSet(s, linearize.WithViews(view))
	if err != nil {
		return nil, fmt.Errorf("%s fit: %w", m.Kind(), err)
	}

	ls, err := views.Get(view).Sample()
	if err != nil {
		return nil, fmt.Errorf("%s fit: %w", m.Kind(), err)
	}

	line, err := Linear(ls)
	if err != nil {
		return nil, fmt.Errorf("%s fit in %s frame: %w", m.Kind(), view, err)
	}

	a, b := back(line.Params[1], line.Params[0])
	paramErrs := []float64{a * line.Errors[0], line.Errors[1]}

	res, err := newResult(s, m, []float64{a, b}, paramErrs)
	if err != nil {
		return nil, fmt.Errorf("%s fit: %w", m.Kind(), err)
	}
	res.Linearized = line

	return res, nil
}
