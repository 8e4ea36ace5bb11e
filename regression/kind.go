package regression

import (
	"fmt"
	"strings"
)

// Kind selects the regression model.
type Kind int

const (
	// KindLinear is the linear model: y = a + b*x
	KindLinear Kind = iota
	// KindPower is the power model: y = a * x^b
	KindPower
	// KindExponential is the exponential model: y = a * b^x (equivalently a * e^(ln(b)*x))
	KindExponential
)

// kindNames maps Kind to the labels written to reports.
var kindNames = map[Kind]string{
	KindLinear:      "Linear",
	KindPower:       "Power",
	KindExponential: "Exponential",
}

// String returns the report label of the kind ("Linear", "Power", "Exponential").
func (k Kind) String() string {
	if name, exists := kindNames[k]; exists {
		return name
	}

	return "Unknown"
}

// kindFromString maps every accepted selector spelling to a Kind.
// The dashed single letters match the -l, -p and -e flags of curvefit fit.
var kindFromString = map[string]Kind{
	"linear":      KindLinear,
	"lin":         KindLinear,
	"l":           KindLinear,
	"-l":          KindLinear,
	"power":       KindPower,
	"pow":         KindPower,
	"p":           KindPower,
	"-p":          KindPower,
	"exponential": KindExponential,
	"exp":         KindExponential,
	"e":           KindExponential,
	"-e":          KindExponential,
}

// ParseKind parses a regression type selector, case-insensitively.
//
// Accepted spellings are the full names (linear, power, exponential), the short
// names (lin, pow, exp), and the single letters with or without a dash (l, -l, p, -p, e, -e).
func ParseKind(name string) (Kind, error) {
	if kind, exists := kindFromString[strings.ToLower(strings.TrimSpace(name))]; exists {
		return kind, nil
	}

	return 0, fmt.Errorf("%w %q: valid types are linear (-l), power (-p), exponential (-e)", ErrUnknownKind, name)
}

// Kinds returns every supported kind in canonical order.
func Kinds() []Kind {
	return []Kind{KindLinear, KindPower, KindExponential}
}
