package model

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/arloliu/chifit/errs"
)

// Model is the evaluation contract shared by every parametric function.
type Model interface {
	// Kind returns the model variant.
	Kind() Kind
	// NumParams returns the exact length of the parameter vector the model accepts.
	NumParams() int
	// EvaluateTo writes the model value at every x[i] into dst[i].
	// len(dst) must equal len(x) and len(args) must equal NumParams().
	// dst may not alias x unless the caller accepts x being overwritten.
	EvaluateTo(dst, x, args []float64) error
}

// Evaluate returns a newly allocated slice with the model evaluated at every x.
func Evaluate(m Model, x, args []float64) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", errs.ErrInvalidParameters)
	}

	dst := make([]float64, len(x))
	if err := m.EvaluateTo(dst, x, args); err != nil {
		return nil, err
	}

	return dst, nil
}

// Poly evaluates the polynomial whose degree is inferred from the parameter
// vector: degree len(args)-1, args[j] the coefficient of x^j.
func Poly(x, args []float64) ([]float64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: polynomial needs at least one coefficient", errs.ErrInvalidParameters)
	}

	return Evaluate(Polynomial{Degree: len(args) - 1}, x, args)
}

func checkArgs(m Model, dst, x, args []float64) error {
	if len(args) != m.NumParams() || len(args) == 0 {
		return fmt.Errorf("%w: %s model expects %d parameters, got %d",
			errs.ErrInvalidParameters, m.Kind(), m.NumParams(), len(args))
	}
	if len(dst) != len(x) {
		return fmt.Errorf("%w: dst has %d elements, x has %d", errs.ErrLengthMismatch, len(dst), len(x))
	}

	return nil
}

// Linear implements y = args[0] + args[1]*x.
type Linear struct{}

// NewLinear returns the linear model.
func NewLinear() Linear { return Linear{} }

// Kind returns KindLinear.
func (Linear) Kind() Kind { return KindLinear }

// NumParams returns 2 (intercept, slope).
func (Linear) NumParams() int { return 2 }

// EvaluateTo writes args[0] + args[1]*x[i] into dst[i].
func (l Linear) EvaluateTo(dst, x, args []float64) error {
	if err := checkArgs(l, dst, x, args); err != nil {
		return err
	}

	a, b := args[0], args[1]
	for i, xi := range x {
		dst[i] = a + b*xi
	}

	return nil
}

// Polynomial implements y = Σ args[j] * x^j for j = 0..Degree.
type Polynomial struct {
	Degree int
}

// NewPolynomial returns a polynomial model of the given degree.
// Degree 0 is a constant function; negative degrees are rejected.
func NewPolynomial(degree int) (Polynomial, error) {
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("%w: polynomial degree %d", errs.ErrInvalidParameters, degree)
	}

	return Polynomial{Degree: degree}, nil
}

// Kind returns KindPolynomial.
func (Polynomial) Kind() Kind { return KindPolynomial }

// NumParams returns Degree+1.
func (p Polynomial) NumParams() int { return p.Degree + 1 }

// EvaluateTo evaluates the polynomial at every x using Horner's scheme.
func (p Polynomial) EvaluateTo(dst, x, args []float64) error {
	if err := checkArgs(p, dst, x, args); err != nil {
		return err
	}

	last := len(args) - 1
	for i, xi := range x {
		acc := args[last]
		for j := last - 1; j >= 0; j-- {
			acc = acc*xi + args[j]
		}
		dst[i] = acc
	}

	return nil
}

// Exponential implements y = args[0] * e^(args[1]*x).
type Exponential struct{}

// Kind returns KindExponential.
func (Exponential) Kind() Kind { return KindExponential }

// NumParams returns 2 (A, B).
func (Exponential) NumParams() int { return 2 }

// EvaluateTo writes A*e^(B*x[i]) into dst[i].
func (e Exponential) EvaluateTo(dst, x, args []float64) error {
	if err := checkArgs(e, dst, x, args); err != nil {
		return err
	}

	a, b := args[0], args[1]
	for i, xi := range x {
		dst[i] = a * math.Exp(b*xi)
	}

	return nil
}

// PowerLaw implements y = args[0] * x^args[1].
type PowerLaw struct{}

// Kind returns KindPowerLaw.
func (PowerLaw) Kind() Kind { return KindPowerLaw }

// NumParams returns 2 (A, B).
func (PowerLaw) NumParams() int { return 2 }

// EvaluateTo writes A*x[i]^B into dst[i]. A negative x with a non-integer
// exponent has no real value and fails with errs.ErrNonFinite.
func (p PowerLaw) EvaluateTo(dst, x, args []float64) error {
	if err := checkArgs(p, dst, x, args); err != nil {
		return err
	}

	a, b := args[0], args[1]
	for i, xi := range x {
		v := a * math.Pow(xi, b)
		if math.IsNaN(v) {
			return fmt.Errorf("%w: %g^%g at index %d", errs.ErrNonFinite, xi, b, i)
		}
		dst[i] = v
	}

	return nil
}

// New creates a model by name. degree is only consulted for polynomials.
//
// Supported names (case-insensitive): "linear", "polynomial" ("poly"),
// "exponential" ("exp"), "powerlaw" ("power").
func New(name string, degree int) (Model, error) {
	switch KindFromString(name) {
	case KindLinear:
		return Linear{}, nil
	case KindPolynomial:
		return NewPolynomial(degree)
	case KindExponential:
		return Exponential{}, nil
	case KindPowerLaw:
		return PowerLaw{}, nil
	default:
		supported := make([]string, 0, len(kindNames))
		for _, n := range kindNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("%w: %q. Supported types: %s", errs.ErrUnknownModel, name, strings.Join(supported, ", "))
	}
}

// Formula returns a human-readable representation of m at args.
func Formula(m Model, args []float64) string {
	if m == nil || len(args) != m.NumParams() {
		return "invalid"
	}

	switch m.Kind() {
	case KindLinear:
		return fmt.Sprintf("y = %.4g + %.4g*x", args[0], args[1])
	case KindExponential:
		return fmt.Sprintf("y = %.4g * e^(%.4g*x)", args[0], args[1])
	case KindPowerLaw:
		return fmt.Sprintf("y = %.4g * x^%.4g", args[0], args[1])
	case KindPolynomial:
		var sb strings.Builder
		sb.WriteString("y = ")
		for j, c := range args {
			if j > 0 {
				sb.WriteString(" + ")
			}
			switch j {
			case 0:
				fmt.Fprintf(&sb, "%.4g", c)
			case 1:
				fmt.Fprintf(&sb, "%.4g*x", c)
			default:
				fmt.Fprintf(&sb, "%.4g*x^%d", c, j)
			}
		}

		return sb.String()
	default:
		return "unknown"
	}
}
