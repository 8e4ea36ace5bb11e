package regression

import (
	"fmt"
	"math"
	"strings"
)

// Params holds the parameters of a fitted model in the original, untransformed domain.
//
// The meaning of the pair depends on the kind:
//   - Linear: y = Intercept + Slope*x
//   - Power: y = Intercept * x^Slope
//   - Exponential: y = Intercept * Slope^x
type Params struct {
	Intercept float64
	Slope     float64
}

// Model is the outcome of a single fit.
type Model struct {
	// Kind is the fitted model kind.
	Kind Kind
	// Params are the fitted parameters in the original domain.
	Params Params
	// RSquared is the explained-over-total variance ratio of the predictions.
	// It is reported as computed and can fall outside [0, 1] for poor non-linear fits.
	RSquared float64
	// RMSE is the root mean square error of the predictions, or NaN when disabled.
	RMSE float64
	// N is the number of samples the model was fitted on.
	N int
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator evaluates the fitted model.
	Estimator Estimator
}

// Coefficients returns the parameters as [a, b], the order accepted by NewEstimator.
func (m *Model) Coefficients() []float64 {
	return []float64{m.Params.Intercept, m.Params.Slope}
}

// Rate returns the continuous growth rate r of an exponential model y = a*e^(r*x),
// that is ln(b). It returns NaN for other kinds.
func (m *Model) Rate() float64 {
	if m.Kind != KindExponential {
		return math.NaN()
	}

	return math.Log(m.Params.Slope)
}

// Predict returns the model's prediction for x.
func (m *Model) Predict(x float64) float64 {
	return m.Estimator.Estimate(x)
}

// String returns a one-line summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Kind: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Kind, m.RSquared, m.RMSE, m.Formula)
}

// Ranking is the result of FitBest.
type Ranking struct {
	// Best is the top-ranked model.
	Best *Model
	// All contains every successful model, best first.
	All []*Model
	// Skipped holds the error of each kind that could not be fitted on the data.
	Skipped map[Kind]error
}

// String returns a one-line summary of the ranking.
func (r *Ranking) String() string {
	if r.Best == nil {
		return "Ranking{Best: nil}"
	}

	var sb strings.Builder
	for i, m := range r.All {
		if i > 0 {
			sb.WriteString(" > ")
		}
		sb.WriteString(m.Kind.String())
	}

	return fmt.Sprintf("Ranking{Best: %s, Order: %s, Skipped: %d}", r.Best, sb.String(), len(r.Skipped))
}
