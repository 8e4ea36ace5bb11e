package regression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRSquared(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 3, 2, 5}

	// Least-squares line of the data is y = 0 + 1.1x.
	r2, err := RSquared(x, y, NewLinearEstimator(0, 1.1))
	require.NoError(t, err)
	require.InDelta(t, 6.05/8.75, r2, 1e-12)

	r2, err = RSquared(x, []float64{3, 5, 7, 9}, NewLinearEstimator(1, 2))
	require.NoError(t, err)
	require.InDelta(t, 1.0, r2, 1e-12)
}

func TestRSquared_ExplainedVarianceCanExceedOne(t *testing.T) {
	// Predictions 2 and 4 around a mean of 1.5: explained 6.5, total 0.5.
	r2, err := RSquared([]float64{1, 2}, []float64{1, 2}, NewLinearEstimator(0, 2))
	require.NoError(t, err)
	require.InDelta(t, 13.0, r2, 1e-12)
}

func TestRSquared_Errors(t *testing.T) {
	est := NewLinearEstimator(0, 1)

	_, err := RSquared(nil, nil, est)
	require.ErrorIs(t, err, ErrEmptyDataset)

	_, err = RSquared([]float64{1, 2}, []float64{1}, est)
	require.ErrorIs(t, err, ErrDataLengthMismatch)

	_, err = RSquared([]float64{1, 2, 3}, []float64{4, 4, 4}, est)
	require.ErrorIs(t, err, ErrZeroVariance)
	require.EqualError(t, err, "zero variance in y: all 3 values equal 4")
}

func TestRSquared_ZeroVarianceInexactConstants(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"three tenths", []float64{1, 2, 3}, []float64{0.1, 0.1, 0.1}},
		{"seven 3.3", []float64{1, 2, 3, 4, 5, 6, 7}, []float64{3.3, 3.3, 3.3, 3.3, 3.3, 3.3, 3.3}},
		{"ten 0.7", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, []float64{0.7, 0.7, 0.7, 0.7, 0.7, 0.7, 0.7, 0.7, 0.7, 0.7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RSquared(tt.x, tt.y, NewLinearEstimator(0, 1))
			require.ErrorIs(t, err, ErrZeroVariance)

			var zv *ZeroVarianceError
			require.ErrorAs(t, err, &zv)
			require.Equal(t, tt.y[0], zv.Value)
			require.Equal(t, len(tt.y), zv.N)
		})
	}
}

func TestRMSE(t *testing.T) {
	// Residuals 1, -1, 1, -1.
	rmse, err := RMSE([]float64{1, 2, 3, 4}, []float64{2, 1, 4, 3}, NewLinearEstimator(0, 1))
	require.NoError(t, err)
	require.InDelta(t, 1.0, rmse, 1e-12)

	_, err = RMSE(nil, nil, NewLinearEstimator(0, 1))
	require.ErrorIs(t, err, ErrEmptyDataset)
}
