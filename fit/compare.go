package fit

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/model"
	"github.com/arloliu/chifit/sample"
)

// Comparison is the outcome of fitting several model families to one set.
type Comparison struct {
	// Best is the result with the lowest reduced chi-squared.
	Best *Result
	// All contains every fitted family ranked by reduced chi-squared (best first).
	All []*Result
	// Skipped maps families that could not be fitted to the reason.
	Skipped map[model.Kind]error
}

// String returns a string representation of the comparison.
func (c *Comparison) String() string {
	if c.Best == nil {
		return "Comparison{Best: nil}"
	}

	return fmt.Sprintf("Comparison{Best: %s, Fitted: %d, Skipped: %d}", c.Best, len(c.All), len(c.Skipped))
}

type familyFit struct {
	kind model.Kind
	fit  func(sample.Set) (*Result, error)
}

var families = []familyFit{
	{model.KindLinear, Linear},
	{model.KindExponential, Exponential},
	{model.KindPowerLaw, PowerLaw},
}

// Compare fits the linear, exponential and power-law families to s and ranks
// them by reduced chi-squared on the original data, lowest first. Every
// family has two parameters, so the scores share the same degrees of freedom.
//
// A family whose linearization is undefined for s (non-positive x or y) or
// whose back-mapped model overflows is recorded in Skipped rather than
// failing the comparison. Any other error aborts it, and errs.ErrNonFinite
// is returned when every family was skipped.
func Compare(s sample.Set) (*Comparison, error) {
	c := &Comparison{Skipped: make(map[model.Kind]error)}

	for _, f := range families {
		r, err := f.fit(s)
		if err != nil {
			if errors.Is(err, errs.ErrNonPositiveValue) || errors.Is(err, errs.ErrNonFinite) {
				c.Skipped[f.kind] = err
				continue
			}

			return nil, err
		}
		c.All = append(c.All, r)
	}

	slices.SortStableFunc(c.All, func(a, b *Result) int {
		return cmp.Compare(a.ChiSquared, b.ChiSquared)
	})
	if len(c.All) == 0 {
		return nil, fmt.Errorf("%w: no family could be fitted", errs.ErrNonFinite)
	}
	c.Best = c.All[0]

	return c, nil
}
