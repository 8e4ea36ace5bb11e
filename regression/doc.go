// Package regression fits linear, power, and exponential curves to two-dimensional
// data by closed-form least squares.
//
// The non-linear kinds are log-linearized before solving:
//
//   - Linear: y = a + b*x, solved directly
//   - Power: y = a * x^b, solved on (ln x, ln y); a = e^intercept, b = slope
//   - Exponential: y = a * b^x, solved on (x, ln y); a = e^intercept, b = e^slope
//
// Transforms are written into pooled scratch slices; the caller's data is never
// modified, and goodness of fit is always evaluated on the original values.
//
// # Usage
//
//	model, err := regression.FitPower(x, y)
//	if err != nil {
//	    var domainErr *regression.LogDomainError
//	    if errors.As(err, &domainErr) {
//	        log.Fatalf("bad sample %d: %v", domainErr.Index, domainErr.Value)
//	    }
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Formula, model.RSquared)
//	y := model.Predict(4.0)
//
// To try every kind and keep the best one:
//
//	ranking, err := regression.FitBest(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range ranking.All {
//	    fmt.Printf("%s: R²=%.4f %s\n", m.Kind, m.RSquared, m.Formula)
//	}
//
// # Goodness of fit
//
// RSquared reports mean((ŷ - ȳ)²) / mean((y - ȳ)²), the explained over the total
// variance of y. For the linear kind this coincides with 1 - SS_res/SS_tot. For the
// power and exponential kinds the predictions are not least-squares optimal in the
// original domain and the ratio can exceed 1; it is returned as computed and
// FitBest ranks by distance from 1.
//
// # Errors
//
// All errors match one of the package sentinels with errors.Is: ErrEmptyDataset,
// ErrDataLengthMismatch, ErrDegenerateInput, ErrLogDomain, ErrZeroVariance and
// ErrUnknownKind. The structured details are available through errors.As on
// *DataLengthMismatchError, *DegenerateInputError, *LogDomainError and
// *ZeroVarianceError.
//
// The package is stateless and safe for concurrent use.
package regression
