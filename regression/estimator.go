package regression

import (
	"fmt"
	"math"
)

// Estimator evaluates a fitted model.
//
// Estimators are immutable; they are safe for concurrent use.
type Estimator interface {
	// Estimate returns the model's prediction for x.
	Estimate(x float64) float64
	// Kind returns the model kind.
	Kind() Kind
	// Params returns the model parameters in the original domain.
	Params() Params
}

// LinearEstimator implements the linear model: y = a + b*x
type LinearEstimator struct {
	a, b float64
}

// NewLinearEstimator creates a linear estimator with intercept a and slope b.
func NewLinearEstimator(a, b float64) LinearEstimator {
	return LinearEstimator{a: a, b: b}
}

// Estimate calculates y = a + b*x.
func (l LinearEstimator) Estimate(x float64) float64 {
	return l.a + l.b*x
}

// Kind returns KindLinear.
func (l LinearEstimator) Kind() Kind {
	return KindLinear
}

// Params returns {a, b}.
func (l LinearEstimator) Params() Params {
	return Params{Intercept: l.a, Slope: l.b}
}

// PowerEstimator implements the power model: y = a * x^b
type PowerEstimator struct {
	a, b float64
}

// NewPowerEstimator creates a power estimator with coefficient a and exponent b.
func NewPowerEstimator(a, b float64) PowerEstimator {
	return PowerEstimator{a: a, b: b}
}

// Estimate calculates y = a * x^b. Negative x with a non-integer b yields NaN.
func (p PowerEstimator) Estimate(x float64) float64 {
	return p.a * math.Pow(x, p.b)
}

// Kind returns KindPower.
func (p PowerEstimator) Kind() Kind {
	return KindPower
}

// Params returns {a, b}.
func (p PowerEstimator) Params() Params {
	return Params{Intercept: p.a, Slope: p.b}
}

// ExponentialEstimator implements the exponential model: y = a * b^x
//
// b is the growth base; the continuous rate is ln(b).
type ExponentialEstimator struct {
	a, b float64
}

// NewExponentialEstimator creates an exponential estimator with coefficient a and base b.
func NewExponentialEstimator(a, b float64) ExponentialEstimator {
	return ExponentialEstimator{a: a, b: b}
}

// Estimate calculates y = a * b^x.
func (e ExponentialEstimator) Estimate(x float64) float64 {
	return e.a * math.Pow(e.b, x)
}

// Kind returns KindExponential.
func (e ExponentialEstimator) Kind() Kind {
	return KindExponential
}

// Params returns {a, b}.
func (e ExponentialEstimator) Params() Params {
	return Params{Intercept: e.a, Slope: e.b}
}

// EstimatorFor returns the estimator of the given kind with params, or nil for an unknown kind.
func EstimatorFor(kind Kind, params Params) Estimator {
	switch kind {
	case KindLinear:
		return NewLinearEstimator(params.Intercept, params.Slope)
	case KindPower:
		return NewPowerEstimator(params.Intercept, params.Slope)
	case KindExponential:
		return NewExponentialEstimator(params.Intercept, params.Slope)
	default:
		return nil
	}
}

// NewEstimator creates an estimator by type name and coefficients.
//
// Parameters:
//   - name: Any selector accepted by ParseKind ("linear", "power", "exponential", "-p", ...)
//   - coeffs: Exactly two coefficients, [a, b], as reported by a fit
//
// Returns:
//   - Estimator: The created estimator instance
//   - error: ErrUnknownKind for an invalid name, or a coefficient count error
//
// Example:
//
//	estimator, err := NewEstimator("power", []float64{2.0, 1.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := estimator.Estimate(4.0) // 2 * 4^1.5 = 16
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}

	if len(coeffs) != 2 {
		return nil, fmt.Errorf("%s model expects exactly 2 coefficients, got %d", kind, len(coeffs))
	}

	return EstimatorFor(kind, Params{Intercept: coeffs[0], Slope: coeffs[1]}), nil
}
