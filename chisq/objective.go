package chisq

import (
	"fmt"
	"math"

	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/internal/pool"
	"github.com/arloliu/chifit/model"
	"github.com/arloliu/chifit/sample"
)

// Objective scores parameter vectors of one model against one sample set.
//
// It is immutable after construction and safe for concurrent use; every call
// to Score borrows its own scratch buffer from a pool.
type Objective struct {
	set sample.Set
	m   model.Model
	dof int
}

// NewObjective validates the pairing of s and m once, so that Score only has
// to check the parameter vector.
func NewObjective(s sample.Set, m model.Model) (*Objective, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", errs.ErrInvalidParameters)
	}
	if s.Len() == 0 {
		return nil, fmt.Errorf("%w: empty sample set", errs.ErrEmptyInput)
	}

	dof, err := DOF(s.Len(), m.NumParams())
	if err != nil {
		return nil, err
	}

	return &Objective{set: s, m: m, dof: dof}, nil
}

// Score returns the reduced chi-squared at args. It produces exactly the same
// value as ScoreSet for the same inputs.
func (o *Objective) Score(args []float64) (float64, error) {
	fx, cleanup := pool.GetFloat64Slice(o.set.Len())
	defer cleanup()

	if err := o.m.EvaluateTo(fx, o.set.X(), args); err != nil {
		return 0, err
	}

	return weightedSum(fx, o.set.Y(), o.set.DY(), o.dof)
}

// Func adapts the objective to the plain func([]float64) float64 signature that
// minimizers expect. Evaluation failures map to +Inf, which any minimizer
// treats as a rejected point; use Score to see the error itself.
func (o *Objective) Func() func(args []float64) float64 {
	return func(args []float64) float64 {
		v, err := o.Score(args)
		if err != nil {
			return math.Inf(1)
		}

		return v
	}
}

// Model returns the scored model.
func (o *Objective) Model() model.Model { return o.m }

// Set returns the scored sample set.
func (o *Objective) Set() sample.Set { return o.set }

// DOF returns the degrees of freedom N - k.
func (o *Objective) DOF() int { return o.dof }
