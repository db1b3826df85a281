package trial

import (
	"fmt"
	"math"

	"github.com/arloliu/chifit/errs"
)

// Table is an immutable M×T grid of repeated measurements:
// row i holds the T trials taken at the i-th independent-variable setting.
type Table struct {
	rows   [][]float64
	trials int
}

// NewTable validates and copies rows into a Table.
// All rows must have the same length and hold finite values.
func NewTable(rows [][]float64) (Table, error) {
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("%w: trial table has no rows", errs.ErrEmptyInput)
	}

	trials := len(rows[0])
	cp := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != trials {
			return Table{}, fmt.Errorf("%w: row %d has %d trials, row 0 has %d", errs.ErrLengthMismatch, i, len(row), trials)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Table{}, fmt.Errorf("%w: row %d trial %d = %g", errs.ErrNonFinite, i, j, v)
			}
		}
		cp[i] = append([]float64(nil), row...)
	}

	return Table{rows: cp, trials: trials}, nil
}

// FromColumns builds a Table from trial-major data, where cols[j][i] is the
// j-th trial at the i-th setting.
func FromColumns(cols [][]float64) (Table, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return Table{}, fmt.Errorf("%w: trial table has no rows", errs.ErrEmptyInput)
	}

	settings := len(cols[0])
	rows := make([][]float64, settings)
	for i := range rows {
		rows[i] = make([]float64, len(cols))
	}
	for j, col := range cols {
		if len(col) != settings {
			return Table{}, fmt.Errorf("%w: trial %d has %d settings, trial 0 has %d", errs.ErrLengthMismatch, j, len(col), settings)
		}
		for i, v := range col {
			rows[i][j] = v
		}
	}

	return NewTable(rows)
}

// Rows returns the number of independent-variable settings M.
func (t Table) Rows() int { return len(t.rows) }

// Trials returns the number of repeated trials T per setting.
func (t Table) Trials() int { return t.trials }

// Row returns a copy of the trials at setting i.
func (t Table) Row(i int) []float64 {
	return append([]float64(nil), t.rows[i]...)
}
