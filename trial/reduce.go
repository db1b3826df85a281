package trial

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/sample"
)

// Reduce returns the per-row mean and standard error of the mean of t.
//
// Both slices are freshly allocated and have t.Rows() elements. A row whose
// trials are all equal yields exactly that value as mean and exactly 0 as sem.
func Reduce(t Table) (mean, sem []float64, err error) {
	if t.Rows() == 0 {
		return nil, nil, fmt.Errorf("%w: trial table has no rows", errs.ErrEmptyInput)
	}
	if t.trials < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", errs.ErrInsufficientTrials, t.trials)
	}

	n := float64(t.trials)
	mean = make([]float64, t.Rows())
	sem = make([]float64, t.Rows())
	for i, row := range t.rows {
		m, variance := meanVariance(row)
		mean[i] = m
		sem[i] = stat.StdErr(math.Sqrt(variance), n)
	}

	return mean, sem, nil
}

// ReduceRows is a shorthand for NewTable followed by Reduce.
func ReduceRows(rows [][]float64) (mean, sem []float64, err error) {
	t, err := NewTable(rows)
	if err != nil {
		return nil, nil, err
	}

	return Reduce(t)
}

// Sample reduces t and pairs the result with the setting values x.
//
// Rows with zero spread produce a zero uncertainty, which sample.New rejects
// with errs.ErrInvalidUncertainty.
func (t Table) Sample(x []float64) (sample.Set, error) {
	if len(x) != t.Rows() {
		return sample.Set{}, fmt.Errorf("%w: %d settings, %d rows", errs.ErrLengthMismatch, len(x), t.Rows())
	}

	mean, sem, err := Reduce(t)
	if err != nil {
		return sample.Set{}, err
	}

	return sample.New(x, mean, sem)
}

// meanVariance computes the mean and the Bessel-corrected variance of v with
// Welford's recurrence. len(v) must be at least 2.
//
// The running form keeps constant rows exact: the mean never drifts from the
// repeated value and every update adds exactly 0 to the squared deviations.
func meanVariance(v []float64) (mean, variance float64) {
	var m2 float64
	for k, x := range v {
		delta := x - mean
		mean += delta / float64(k+1)
		m2 += delta * (x - mean)
	}

	return mean, m2 / float64(len(v)-1)
}
