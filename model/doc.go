// Package model provides the parametric functions that chifit scores data against.
//
// A Model is a pure mapping from a vector of independent-variable values and a
// parameter vector to a vector of predictions. Models are stateless values,
// safe for concurrent use, and always produce bit-identical output for
// identical input, so an optimizer may call them many times per iteration.
//
// # Variants
//
//   - Linear:      y = args[0] + args[1]*x
//   - Polynomial:  y = Σ args[j]*x^j, j = 0..Degree (Degree 0 is a constant)
//   - Exponential: y = args[0] * e^(args[1]*x)
//   - PowerLaw:    y = args[0] * x^args[1]
//
// The number of parameters is fixed when the model is constructed; passing a
// parameter vector of any other length fails with errs.ErrInvalidParameters.
//
// # Usage
//
//	m, err := model.NewPolynomial(2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, err := model.Evaluate(m, []float64{0, 1, 2}, []float64{1, 0, 3})
//	// y == [1, 4, 13]
//
// For hot loops use EvaluateTo with a caller-owned destination slice to avoid
// allocating on every call.
package model
