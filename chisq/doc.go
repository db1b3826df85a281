// Package chisq computes the degrees-of-freedom-normalized weighted sum of
// squared residuals ("reduced chi-squared") of a model against measured data.
//
// For N observations (x_i, y_i, dy_i), a model f and k parameters:
//
//	χ² = 1/(N-k) * Σ ((f(x_i) - y_i) / dy_i)²
//
// # Reading the score
//
// The package never branches on the value; these thresholds are guidance for
// callers and presentation layers:
//
//   - χ² ≈ 1: the fit is consistent with the stated uncertainties
//   - χ² ≪ 1: the uncertainties are probably overestimated
//   - χ² > ~9: (roughly three sigma) the model fits the data poorly
//
// # Failure modes
//
// Score fails instead of returning NaN or ±Inf, so the value is safe to use as
// the stopping criterion of an outer optimizer:
//
//   - errs.ErrDegreesOfFreedom when N <= k
//   - errs.ErrDivisionByZero when any dy_i == 0
//   - errs.ErrInvalidParameters when args does not fit the model
//   - errs.ErrLengthMismatch when x, y and dy differ in length
//   - errs.ErrNonFinite when the sum overflows or the inputs hold NaN
//
// # Hot loops
//
// An optimizer evaluating thousands of parameter vectors against one data set
// should build an Objective once and call Objective.Score; it validates the
// data up front and evaluates the model into pooled scratch buffers.
package chisq
