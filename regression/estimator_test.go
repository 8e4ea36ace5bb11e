package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimators(t *testing.T) {
	tests := []struct {
		name string
		est  Estimator
		kind Kind
		x    float64
		want float64
	}{
		{"linear", NewLinearEstimator(1, 2), KindLinear, 3, 7},
		{"power", NewPowerEstimator(2, 1.5), KindPower, 4, 16},
		{"exponential", NewExponentialEstimator(3, 2), KindExponential, 3, 24},
		{"exponential decay", NewExponentialEstimator(8, 0.5), KindExponential, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.est.Kind())
			require.InDelta(t, tt.want, tt.est.Estimate(tt.x), 1e-12)
		})
	}

	require.True(t, math.IsNaN(NewPowerEstimator(1, 0.5).Estimate(-4)))
}

func TestNewEstimator(t *testing.T) {
	est, err := NewEstimator("power", []float64{2, 1.5})
	require.NoError(t, err)
	require.Equal(t, KindPower, est.Kind())
	require.Equal(t, Params{Intercept: 2, Slope: 1.5}, est.Params())
	require.InDelta(t, 16.0, est.Estimate(4), 1e-12)

	est, err = NewEstimator("-e", []float64{1, math.E})
	require.NoError(t, err)
	require.Equal(t, KindExponential, est.Kind())

	_, err = NewEstimator("hyperbolic", []float64{1, 2})
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = NewEstimator("linear", []float64{1})
	require.EqualError(t, err, "Linear model expects exactly 2 coefficients, got 1")
}

func TestNewEstimator_FromModelCoefficients(t *testing.T) {
	x := []float64{1, 2, 4, 8}
	y := []float64{3, 12, 48, 192}

	for _, kind := range []Kind{KindLinear, KindPower, KindExponential} {
		t.Run(kind.String(), func(t *testing.T) {
			model, err := Fit(kind, x, y)
			require.NoError(t, err)
			require.Equal(t, []float64{model.Params.Intercept, model.Params.Slope}, model.Coefficients())

			est, err := NewEstimator(model.Kind.String(), model.Coefficients())
			require.NoError(t, err)
			require.Equal(t, model.Estimator.Params(), est.Params())
			for _, xi := range x {
				require.Equal(t, model.Predict(xi), est.Estimate(xi))
			}
		})
	}
}

func TestEstimatorFor(t *testing.T) {
	for _, kind := range Kinds() {
		est := EstimatorFor(kind, Params{Intercept: 1, Slope: 2})
		require.NotNil(t, est)
		require.Equal(t, kind, est.Kind())
	}
	require.Nil(t, EstimatorFor(Kind(-1), Params{}))
}
