package fit

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"gonum.org/v1/gonum/optimize"

	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/internal/options"
)

// Method selects the optimizer used by Minimize.
type Method int

const (
	// MethodNelderMead is the derivative-free downhill simplex method.
	MethodNelderMead Method = iota
	// MethodBFGS is the quasi-Newton BFGS method with finite-difference gradients.
	MethodBFGS
	// MethodLBFGS is limited-memory BFGS with finite-difference gradients.
	MethodLBFGS
	// MethodGradientDescent is steepest descent with finite-difference gradients.
	MethodGradientDescent

	numMethods
)

var methodNames = map[Method]string{
	MethodNelderMead:      "neldermead",
	MethodBFGS:            "bfgs",
	MethodLBFGS:           "lbfgs",
	MethodGradientDescent: "gradientdescent",
}

// String returns the string representation of the method.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}

	return "unknown"
}

// MethodFromString returns the Method for a case-insensitive name.
// Returns Method(-1) for unknown names.
func MethodFromString(name string) Method {
	name = strings.ToLower(name)
	for m, n := range methodNames {
		if n == name {
			return m
		}
	}

	return Method(-1)
}

func (m Method) gonum() optimize.Method {
	switch m {
	case MethodBFGS:
		return &optimize.BFGS{}
	case MethodLBFGS:
		return &optimize.LBFGS{}
	case MethodGradientDescent:
		return &optimize.GradientDescent{}
	default:
		return &optimize.NelderMead{}
	}
}

func (m Method) needsGradient() bool {
	return m != MethodNelderMead
}

// Config holds the search settings shared by Minimize and Grid.
type Config struct {
	// Method is the optimizer used by Minimize.
	Method Method
	// MaxIterations caps the optimizer's major iterations; 0 means no cap.
	MaxIterations int
	// MaxEvaluations caps objective evaluations; 0 means no cap.
	MaxEvaluations int
	// Tolerance is the improvement in chi-squared below which the search
	// is considered converged.
	Tolerance float64
	// Concurrency is the number of goroutines Grid scores cells with.
	Concurrency int
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

func defaultConfig() Config {
	return Config{
		Method:      MethodNelderMead,
		Tolerance:   1e-10,
		Concurrency: 1,
	}
}

func newConfig(opts ...Option) (Config, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WithMethod sets the optimizer used by Minimize.
func WithMethod(m Method) Option {
	return options.New(func(cfg *Config) error {
		if m < 0 || m >= numMethods {
			return fmt.Errorf("%w: unknown method %d", errs.ErrInvalidOption, m)
		}
		cfg.Method = m

		return nil
	})
}

// WithMaxIterations caps the optimizer's major iterations.
func WithMaxIterations(n int) Option {
	return options.New(func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max iterations must be positive, got %d", errs.ErrInvalidOption, n)
		}
		cfg.MaxIterations = n

		return nil
	})
}

// WithMaxEvaluations caps the number of objective evaluations.
func WithMaxEvaluations(n int) Option {
	return options.New(func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max evaluations must be positive, got %d", errs.ErrInvalidOption, n)
		}
		cfg.MaxEvaluations = n

		return nil
	})
}

// WithTolerance sets the convergence tolerance on chi-squared.
func WithTolerance(tol float64) Option {
	return options.New(func(cfg *Config) error {
		if !(tol > 0) || math.IsInf(tol, 0) {
			return fmt.Errorf("%w: tolerance must be positive and finite, got %g", errs.ErrInvalidOption, tol)
		}
		cfg.Tolerance = tol

		return nil
	})
}

// WithConcurrency sets how many goroutines Grid uses. Zero selects
// runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: concurrency must not be negative, got %d", errs.ErrInvalidOption, n)
		}
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		cfg.Concurrency = n

		return nil
	})
}
