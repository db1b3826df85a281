// Package errs defines the sentinel errors returned by chifit packages.
//
// Every error returned by the core wraps exactly one of these sentinels, so
// callers match them with errors.Is regardless of the context added on top.
package errs

import "errors"

var (
	// ErrInvalidParameters is returned when a model receives a parameter vector
	// incompatible with its variant (empty, or the wrong number of coefficients).
	ErrInvalidParameters = errors.New("invalid model parameters")

	// ErrDegreesOfFreedom is returned when a score is requested with at least as
	// many free parameters as data points (dof = N - k <= 0).
	ErrDegreesOfFreedom = errors.New("degrees of freedom must be positive")

	// ErrDivisionByZero is returned when a zero uncertainty would be used as a divisor.
	ErrDivisionByZero = errors.New("division by zero uncertainty")

	// ErrInsufficientTrials is returned when a trial table has fewer than two trial columns.
	ErrInsufficientTrials = errors.New("at least two trials are required")

	// ErrNonPositiveValue is returned when a logarithm would be taken of a value <= 0.
	ErrNonPositiveValue = errors.New("non-positive value in log domain")

	// ErrLengthMismatch is returned when paired sequences have different lengths.
	ErrLengthMismatch = errors.New("sequence length mismatch")

	// ErrEmptyInput is returned when an operation receives no data.
	ErrEmptyInput = errors.New("empty input")

	// ErrNonFinite is returned when an input or computed value is NaN or ±Inf.
	ErrNonFinite = errors.New("non-finite value")

	// ErrInvalidUncertainty is returned when a sample set is built with a negative
	// or zero uncertainty.
	ErrInvalidUncertainty = errors.New("uncertainty must be positive")

	// ErrUnknownModel is returned by model factories for an unrecognized model name.
	ErrUnknownModel = errors.New("unknown model type")

	// ErrSingularFit is returned when a least-squares system has no unique solution.
	ErrSingularFit = errors.New("singular fit system")

	// ErrOptimizeFailed is returned when the chi-squared minimizer cannot produce a result.
	ErrOptimizeFailed = errors.New("optimization failed")

	// ErrInvalidOption is returned when a functional option receives an invalid value.
	ErrInvalidOption = errors.New("invalid option")
)
