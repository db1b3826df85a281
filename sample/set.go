// Package sample defines the Sample Set: N paired observations (x, y, dy)
// with strictly positive per-point uncertainties.
package sample

import (
	"fmt"
	"math"

	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/internal/hash"
)

// Set is an immutable, validated collection of observations.
//
// The zero value is an empty set and is rejected by every scorer; use New.
type Set struct {
	x, y, dy []float64
}

// New validates and copies x, y and dy into a Set.
//
// Requirements: equal lengths, at least one observation, finite values and
// dy[i] > 0 for every i. x need not be sorted or unique.
func New(x, y, dy []float64) (Set, error) {
	if len(x) != len(y) || len(x) != len(dy) {
		return Set{}, fmt.Errorf("%w: x=%d y=%d dy=%d", errs.ErrLengthMismatch, len(x), len(y), len(dy))
	}
	if len(x) == 0 {
		return Set{}, fmt.Errorf("%w: sample set needs at least one observation", errs.ErrEmptyInput)
	}

	for i := range x {
		if !finite(x[i]) || !finite(y[i]) || !finite(dy[i]) {
			return Set{}, fmt.Errorf("%w: observation %d (%g, %g ± %g)", errs.ErrNonFinite, i, x[i], y[i], dy[i])
		}
		if dy[i] <= 0 {
			return Set{}, fmt.Errorf("%w: dy[%d] = %g", errs.ErrInvalidUncertainty, i, dy[i])
		}
	}

	return Set{
		x:  append([]float64(nil), x...),
		y:  append([]float64(nil), y...),
		dy: append([]float64(nil), dy...),
	}, nil
}

// WithUniformUncertainty builds a Set where every observation has uncertainty dy.
func WithUniformUncertainty(x, y []float64, dy float64) (Set, error) {
	u := make([]float64, len(x))
	for i := range u {
		u[i] = dy
	}

	return New(x, y, u)
}

// Len returns the number of observations.
func (s Set) Len() int { return len(s.x) }

// X returns the independent-variable values. The slice must not be modified.
func (s Set) X() []float64 { return s.x }

// Y returns the measured values. The slice must not be modified.
func (s Set) Y() []float64 { return s.y }

// DY returns the per-point uncertainties. The slice must not be modified.
func (s Set) DY() []float64 { return s.dy }

// Scaled returns a copy of s with every uncertainty multiplied by factor,
// e.g. to check how an overestimated uncertainty lowers chi-squared.
func (s Set) Scaled(factor float64) (Set, error) {
	dy := make([]float64, len(s.dy))
	for i, v := range s.dy {
		dy[i] = v * factor
	}

	return New(s.x, s.y, dy)
}

// Fingerprint returns a content hash of the set. Two sets with bit-identical
// observations have the same fingerprint.
func (s Set) Fingerprint() uint64 {
	return hash.Float64s(s.x, s.y, s.dy)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
