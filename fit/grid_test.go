package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/chifit/chisq"
	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/model"
)

func lineData() (x, y, dy []float64) {
	x = []float64{0, 1, 2, 3, 4, 5}
	y = make([]float64, len(x))
	for i, xi := range x {
		y[i] = 1 + 2*xi
	}
	dy = []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}

	return x, y, dy
}

func TestGridFindsExactLine(t *testing.T) {
	x, y, dy := lineData()
	s := mustSet(t, x, y, dy)

	g, err := Grid(s, model.Linear{}, []Axis{
		{Min: -1, Max: 3, Steps: 41},
		{Min: 0, Max: 4, Steps: 41},
	})
	require.NoError(t, err)
	require.Equal(t, []int{41, 41}, g.Shape())
	require.Len(t, g.Scores, 41*41)
	require.InDeltaSlice(t, []float64{1, 2}, g.Best, 1e-12)
	require.InDelta(t, 0, g.BestScore, 1e-20)
}

func TestGridScoresMatchScorer(t *testing.T) {
	s := powerLawSet(t)
	g, err := Grid(s, model.Linear{}, []Axis{
		{Min: -40, Max: -30, Steps: 5},
		{Min: 20, Max: 22, Steps: 3},
	})
	require.NoError(t, err)

	for i, a := range g.Axes[0] {
		for j, b := range g.Axes[1] {
			want, err := chisq.ScoreSet(s, model.Linear{}, []float64{a, b})
			require.NoError(t, err)
			got, err := g.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want, got, "cell (%d, %d)", i, j)
		}
	}

	for _, v := range g.Scores {
		require.GreaterOrEqual(t, v, g.BestScore)
	}
}

func TestGridConcurrencyDoesNotChangeScores(t *testing.T) {
	s := powerLawSet(t)
	axes := []Axis{
		{Min: 0.5, Max: 4, Steps: 37},
		{Min: 1, Max: 2.5, Steps: 29},
	}

	serial, err := Grid(s, model.PowerLaw{}, axes)
	require.NoError(t, err)

	for _, n := range []int{2, 3, 8, 0} {
		parallel, err := Grid(s, model.PowerLaw{}, axes, WithConcurrency(n))
		require.NoError(t, err)
		require.Equal(t, serial.Scores, parallel.Scores, "concurrency %d", n)
		require.Equal(t, serial.Best, parallel.Best)
	}
}

func TestGridMoreChunksThanWorkers(t *testing.T) {
	s := powerLawSet(t)
	axes := []Axis{
		{Min: 0.5, Max: 4, Steps: 101},
		{Min: 1, Max: 2.5, Steps: 101},
	}

	serial, err := Grid(s, model.PowerLaw{}, axes)
	require.NoError(t, err)
	require.Greater(t, len(serial.Scores), 2*gridChunkCells)

	parallel, err := Grid(s, model.PowerLaw{}, axes, WithConcurrency(2))
	require.NoError(t, err)
	require.Equal(t, serial.Scores, parallel.Scores)
	require.Equal(t, serial.Best, parallel.Best)
	require.Equal(t, serial.BestScore, parallel.BestScore)
}

func TestGridSingleStepAxis(t *testing.T) {
	x, y, dy := lineData()
	s := mustSet(t, x, y, dy)

	g, err := Grid(s, model.Linear{}, []Axis{
		{Min: 1, Max: 99, Steps: 1},
		{Min: 0, Max: 4, Steps: 5},
	})
	require.NoError(t, err)
	require.Equal(t, []float64{1}, g.Axes[0])
	require.Equal(t, []float64{1, 2}, g.Best)
}

func TestGridUnscorableCells(t *testing.T) {
	s := mustSet(t, []float64{-1, -2, -3}, []float64{1, 2, 3}, []float64{1, 1, 1})

	_, err := Grid(s, model.PowerLaw{}, []Axis{
		{Min: 1, Max: 1, Steps: 1},
		{Min: 0.5, Max: 0.5, Steps: 1},
	})
	require.ErrorIs(t, err, errs.ErrNonFinite)

	g, err := Grid(s, model.PowerLaw{}, []Axis{
		{Min: 1, Max: 1, Steps: 1},
		{Min: 0.5, Max: 1, Steps: 2},
	})
	require.NoError(t, err)
	require.True(t, math.IsInf(g.Scores[0], 1))
	require.Equal(t, []float64{1, 1}, g.Best)
}

func TestGridErrors(t *testing.T) {
	s := powerLawSet(t)

	_, err := Grid(s, model.Linear{}, []Axis{{Min: 0, Max: 1, Steps: 2}})
	require.ErrorIs(t, err, errs.ErrInvalidParameters)

	_, err = Grid(s, model.Linear{}, []Axis{{Min: 0, Max: 1, Steps: 0}, {Min: 0, Max: 1, Steps: 2}})
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	_, err = Grid(s, model.Linear{}, []Axis{{Min: math.NaN(), Max: 1, Steps: 2}, {Min: 0, Max: 1, Steps: 2}})
	require.ErrorIs(t, err, errs.ErrNonFinite)

	_, err = Grid(s, model.Linear{}, []Axis{{Min: 0, Max: 1, Steps: 1 << 13}, {Min: 0, Max: 1, Steps: 1 << 13}})
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	_, err = Grid(s, model.Linear{}, []Axis{{Min: 0, Max: 1, Steps: 2}, {Min: 0, Max: 1, Steps: 2}}, WithConcurrency(-2))
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	g, err := Grid(s, model.Linear{}, []Axis{{Min: 0, Max: 1, Steps: 2}, {Min: 0, Max: 1, Steps: 2}})
	require.NoError(t, err)
	_, err = g.At(0)
	require.ErrorIs(t, err, errs.ErrInvalidParameters)
	_, err = g.At(0, 2)
	require.ErrorIs(t, err, errs.ErrInvalidParameters)
}

func BenchmarkGrid(b *testing.B) {
	s := powerLawSet(b)
	axes := []Axis{{Min: -50, Max: 0, Steps: 100}, {Min: 15, Max: 25, Steps: 100}}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Grid(s, model.Linear{}, axes, WithConcurrency(4))
	}
}
