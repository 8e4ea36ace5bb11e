package regression

import "math"

// RSquared returns the goodness of fit of est on the original data:
//
//	R² = mean((ŷ - ȳ)²) / mean((y - ȳ)²),  ŷᵢ = est.Estimate(xᵢ)
//
// This is the ratio of explained to total variance. For an ordinary least-squares
// line it equals 1 - SS_res/SS_tot; for the log-linearized kinds it does not, and
// values above 1 are possible. The value is returned as computed.
//
// Returns ErrEmptyDataset or *DataLengthMismatchError for malformed input and
// *ZeroVarianceError when every y is identical.
func RSquared(x, y []float64, est Estimator) (float64, error) {
	if err := validatePairs(x, y); err != nil {
		return 0, err
	}

	// Rounding leaves a tiny non-zero total for constants like 0.1, hence the explicit scan.
	if !hasDistinct(y) {
		return 0, &ZeroVarianceError{Value: y[0], N: len(y)}
	}

	meanY := mean(y)

	var explained, total float64
	for i := range y {
		dy := y[i] - meanY
		total += dy * dy

		de := est.Estimate(x[i]) - meanY
		explained += de * de
	}

	if total == 0 {
		return 0, &ZeroVarianceError{Value: y[0], N: len(y)}
	}

	n := float64(len(y))

	return (explained / n) / (total / n), nil
}

// RMSE returns the root mean square error of est on the data: √(Σ(y - ŷ)² / n).
func RMSE(x, y []float64, est Estimator) (float64, error) {
	if err := validatePairs(x, y); err != nil {
		return 0, err
	}

	var sumSq float64
	for i := range y {
		diff := y[i] - est.Estimate(x[i])
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(y))), nil
}

func hasDistinct(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return true
		}
	}

	return false
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
