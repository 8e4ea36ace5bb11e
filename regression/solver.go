package regression

import "math"

// SolveLinear returns the least-squares line y ≈ intercept + slope*x.
//
// The solution is closed form, accumulated in one pass over four sums:
//
//	slope     = (n*Σxy - Σx*Σy) / (n*Σx² - (Σx)²)
//	intercept = (Σy - slope*Σx) / n
//
// Parameters:
//   - x: Independent values
//   - y: Dependent values, same length as x
//
// Returns:
//   - Params: Fitted intercept and slope
//   - error: ErrEmptyDataset, *DataLengthMismatchError, or *DegenerateInputError
//     when every x is identical (including a single point) or the solution overflows
func SolveLinear(x, y []float64) (Params, error) {
	if err := validatePairs(x, y); err != nil {
		return Params{}, err
	}

	n := float64(len(x))
	x0 := x[0]
	distinct := false

	var sumX, sumY, sumXX, sumXY float64
	for i := range x {
		xi, yi := x[i], y[i]
		sumX += xi
		sumY += yi
		sumXX += xi * xi
		sumXY += xi * yi
		if xi != x0 {
			distinct = true
		}
	}

	// Rounding can leave a tiny non-zero denominator for identical x, hence the explicit scan.
	if !distinct {
		return Params{}, &DegenerateInputError{Reason: "all x values are identical"}
	}
	denominator := n*sumXX - sumX*sumX
	if denominator <= 0 {
		return Params{}, &DegenerateInputError{Reason: "variance of x vanishes in floating point"}
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	if !isFinite(slope) || !isFinite(intercept) {
		return Params{}, &DegenerateInputError{Reason: "least-squares solution is not finite"}
	}

	return Params{Intercept: intercept, Slope: slope}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
