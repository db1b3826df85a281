package model

import "strings"

// Kind identifies a model variant.
type Kind int

const (
	// KindLinear represents y = a + b*x.
	KindLinear Kind = iota
	// KindPolynomial represents y = Σ c_j * x^j.
	KindPolynomial
	// KindExponential represents y = A * e^(B*x).
	KindExponential
	// KindPowerLaw represents y = A * x^B.
	KindPowerLaw
)

var kindNames = map[Kind]string{
	KindLinear:      "linear",
	KindPolynomial:  "polynomial",
	KindExponential: "exponential",
	KindPowerLaw:    "powerlaw",
}

var kindFromString = map[string]Kind{
	"linear":      KindLinear,
	"polynomial":  KindPolynomial,
	"poly":        KindPolynomial,
	"exponential": KindExponential,
	"exp":         KindExponential,
	"powerlaw":    KindPowerLaw,
	"power":       KindPowerLaw,
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// KindFromString returns the Kind for a case-insensitive name.
// Returns Kind(-1) for unknown names.
func KindFromString(name string) Kind {
	if k, ok := kindFromString[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}

	return Kind(-1)
}
