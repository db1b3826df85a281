package fit

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/chifit/chisq"
	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/model"
	"github.com/arloliu/chifit/sample"
)

// maxGridCells bounds the number of cells a single Grid call may score.
const maxGridCells = 1 << 24

// gridChunkCells is the largest run of cells one goroutine scores at a time.
const gridChunkCells = 4096

// Axis is one evenly spaced parameter axis: Steps values from Min to Max
// inclusive. A single step yields Min alone.
type Axis struct {
	Min, Max float64
	Steps    int
}

// Values returns the axis sample points.
func (a Axis) Values() ([]float64, error) {
	if a.Steps < 1 {
		return nil, fmt.Errorf("%w: axis needs at least one step, got %d", errs.ErrInvalidOption, a.Steps)
	}
	if math.IsNaN(a.Min) || math.IsInf(a.Min, 0) || math.IsNaN(a.Max) || math.IsInf(a.Max, 0) {
		return nil, fmt.Errorf("%w: axis bounds [%g, %g]", errs.ErrNonFinite, a.Min, a.Max)
	}
	if a.Steps == 1 {
		return []float64{a.Min}, nil
	}

	return floats.Span(make([]float64, a.Steps), a.Min, a.Max), nil
}

// GridResult holds the reduced chi-squared of every cell of a parameter grid.
type GridResult struct {
	// Axes holds the sample points of each parameter axis.
	Axes [][]float64
	// Scores is row-major with the last axis varying fastest. Cells whose
	// parameters could not be scored hold +Inf.
	Scores []float64
	// Best is the parameter vector of the lowest-scoring cell.
	Best []float64
	// BestScore is the score at Best.
	BestScore float64
}

// Shape returns the number of points on each axis.
func (g *GridResult) Shape() []int {
	shape := make([]int, len(g.Axes))
	for i, a := range g.Axes {
		shape[i] = len(a)
	}

	return shape
}

// At returns the score of the cell with the given per-axis indices.
func (g *GridResult) At(idx ...int) (float64, error) {
	if len(idx) != len(g.Axes) {
		return 0, fmt.Errorf("%w: %d indices for %d axes", errs.ErrInvalidParameters, len(idx), len(g.Axes))
	}

	offset := 0
	for d, i := range idx {
		n := len(g.Axes[d])
		if i < 0 || i >= n {
			return 0, fmt.Errorf("%w: index %d out of range on axis %d (len %d)", errs.ErrInvalidParameters, i, d, n)
		}
		offset = offset*n + i
	}

	return g.Scores[offset], nil
}

// Grid scores m against s at every point of the Cartesian product of axes,
// one axis per model parameter. The cells are split into contiguous chunks
// and WithConcurrency bounds how many chunks are scored at once; the scores
// do not depend on the concurrency level.
//
// Returns errs.ErrNonFinite when no cell can be scored.
func Grid(s sample.Set, m model.Model, axes []Axis, opts ...Option) (*GridResult, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	obj, err := chisq.NewObjective(s, m)
	if err != nil {
		return nil, err
	}
	if len(axes) != m.NumParams() {
		return nil, fmt.Errorf("%w: %s model has %d parameters, got %d axes",
			errs.ErrInvalidParameters, m.Kind(), m.NumParams(), len(axes))
	}

	values := make([][]float64, len(axes))
	total := 1
	for i, a := range axes {
		v, err := a.Values()
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		values[i] = v
		total *= len(v)
		if total > maxGridCells {
			return nil, fmt.Errorf("%w: grid exceeds %d cells", errs.ErrInvalidOption, maxGridCells)
		}
	}

	scores := make([]float64, total)
	f := obj.Func()

	workers := min(cfg.Concurrency, total)
	chunk := min(gridChunkCells, (total+workers-1)/workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < total; lo += chunk {
		hi := min(lo+chunk, total)
		g.Go(func() error {
			args := make([]float64, len(values))
			for c := lo; c < hi; c++ {
				cellArgs(args, values, c)
				scores[c] = f(args)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := floats.MinIdx(scores)
	if math.IsInf(scores[best], 1) {
		return nil, fmt.Errorf("%w: no grid cell could be scored", errs.ErrNonFinite)
	}

	bestArgs := make([]float64, len(values))
	cellArgs(bestArgs, values, best)

	return &GridResult{
		Axes:      values,
		Scores:    scores,
		Best:      bestArgs,
		BestScore: scores[best],
	}, nil
}

// cellArgs writes the parameter vector of flat cell index c into dst.
func cellArgs(dst []float64, values [][]float64, c int) {
	for d := len(values) - 1; d >= 0; d-- {
		n := len(values[d])
		dst[d] = values[d][c%n]
		c /= n
	}
}
