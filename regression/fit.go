package regression

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/arloliu/curvefit/internal/pool"
)

// FitLinear fits y = a + b*x by ordinary least squares.
//
// The caller's slices are never modified.
func FitLinear(x, y []float64, opts ...FitOption) (*Model, error) {
	return fit(KindLinear, x, y, opts)
}

// FitPower fits y = a * x^b by least squares on (ln x, ln y).
//
// Every x and y must be strictly positive; the first offending value (x checked
// before y, lowest index first) is reported as a *LogDomainError.
// R² and RMSE are computed on the original data.
func FitPower(x, y []float64, opts ...FitOption) (*Model, error) {
	return fit(KindPower, x, y, opts)
}

// FitExponential fits y = a * b^x by least squares on (x, ln y).
//
// The reported slope is the growth base b = e^r of the equivalent model
// y = a * e^(r*x); Model.Rate returns r. Every y must be strictly positive.
func FitExponential(x, y []float64, opts ...FitOption) (*Model, error) {
	return fit(KindExponential, x, y, opts)
}

// Fit dispatches to the strategy of the given kind.
func Fit(kind Kind, x, y []float64, opts ...FitOption) (*Model, error) {
	switch kind {
	case KindLinear, KindPower, KindExponential:
		return fit(kind, x, y, opts)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// FitBest fits every kind and ranks the successful models.
//
// Because R² can exceed 1 for the log-linearized kinds, models are ranked by the
// distance of R² from 1 (closest first), then by RMSE, then in the order of Kinds.
// Kinds that cannot be fitted on the data are recorded in Ranking.Skipped.
// If no kind succeeds, the error of the first kind is returned.
func FitBest(x, y []float64, opts ...FitOption) (*Ranking, error) {
	cfg, err := newFitConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := validatePairs(x, y); err != nil {
		return nil, err
	}

	ranking := &Ranking{Skipped: make(map[Kind]error)}
	var firstErr error

	for _, kind := range Kinds() {
		model, err := fitWithConfig(kind, x, y, cfg)
		if err != nil {
			ranking.Skipped[kind] = err
			if firstErr == nil {
				firstErr = err
			}

			continue
		}
		ranking.All = append(ranking.All, model)
	}

	if len(ranking.All) == 0 {
		return nil, firstErr
	}

	sort.SliceStable(ranking.All, func(i, j int) bool {
		di := math.Abs(1 - ranking.All[i].RSquared)
		dj := math.Abs(1 - ranking.All[j].RSquared)
		if di != dj {
			return di < dj
		}

		return ranking.All[i].RMSE < ranking.All[j].RMSE
	})
	ranking.Best = ranking.All[0]

	return ranking, nil
}

func fit(kind Kind, x, y []float64, opts []FitOption) (*Model, error) {
	cfg, err := newFitConfig(opts)
	if err != nil {
		return nil, err
	}

	return fitWithConfig(kind, x, y, cfg)
}

func fitWithConfig(kind Kind, x, y []float64, cfg FitConfig) (*Model, error) {
	params, err := solve(kind, x, y)
	if err != nil {
		return nil, fmt.Errorf("%s fit: %w", strings.ToLower(kind.String()), err)
	}

	model, err := newModel(kind, params, x, y, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s fit: %w", strings.ToLower(kind.String()), err)
	}

	return model, nil
}

func solve(kind Kind, x, y []float64) (Params, error) {
	if err := validatePairs(x, y); err != nil {
		return Params{}, err
	}

	switch kind {
	case KindLinear:
		return SolveLinear(x, y)
	case KindPower:
		return solvePower(x, y)
	case KindExponential:
		return solveExponential(x, y)
	default:
		return Params{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

func solvePower(x, y []float64) (Params, error) {
	logX, releaseX := pool.GetFloat64Slice(len(x))
	defer releaseX()
	logY, releaseY := pool.GetFloat64Slice(len(y))
	defer releaseY()

	if err := logInto(logX, x, KindPower, "x"); err != nil {
		return Params{}, err
	}
	if err := logInto(logY, y, KindPower, "y"); err != nil {
		return Params{}, err
	}

	p, err := SolveLinear(logX, logY)
	if err != nil {
		return Params{}, err
	}

	return backTransform(math.Exp(p.Intercept), p.Slope)
}

func solveExponential(x, y []float64) (Params, error) {
	logY, release := pool.GetFloat64Slice(len(y))
	defer release()

	if err := logInto(logY, y, KindExponential, "y"); err != nil {
		return Params{}, err
	}

	p, err := SolveLinear(x, logY)
	if err != nil {
		return Params{}, err
	}

	return backTransform(math.Exp(p.Intercept), math.Exp(p.Slope))
}

func backTransform(a, b float64) (Params, error) {
	if !isFinite(a) || !isFinite(b) || a == 0 {
		return Params{}, &DegenerateInputError{Reason: "back-transformed parameters overflow"}
	}

	return Params{Intercept: a, Slope: b}, nil
}

// logInto writes ln(src[i]) to dst and rejects the first value outside the log domain.
func logInto(dst, src []float64, kind Kind, axis string) error {
	for i, v := range src {
		if !(v > 0) {
			return &LogDomainError{Kind: kind, Axis: axis, Index: i, Value: v}
		}
		dst[i] = math.Log(v)
	}

	return nil
}

func newModel(kind Kind, params Params, x, y []float64, cfg FitConfig) (*Model, error) {
	est := EstimatorFor(kind, params)
	if est == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	r2, err := RSquared(x, y, est)
	if err != nil {
		return nil, err
	}

	rmse := math.NaN()
	if cfg.ComputeRMSE {
		if rmse, err = RMSE(x, y, est); err != nil {
			return nil, err
		}
	}

	return &Model{
		Kind:      kind,
		Params:    params,
		RSquared:  r2,
		RMSE:      rmse,
		N:         len(x),
		Formula:   formatFormula(kind, params, cfg.FormulaPrecision),
		Estimator: est,
	}, nil
}

func formatFormula(kind Kind, p Params, prec int) string {
	num := func(v float64) string {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}

	switch kind {
	case KindLinear:
		if math.Signbit(p.Slope) {
			return "y = " + num(p.Intercept) + " - " + num(-p.Slope) + "*x"
		}

		return "y = " + num(p.Intercept) + " + " + num(p.Slope) + "*x"
	case KindPower:
		return "y = " + num(p.Intercept) + " * x^" + num(p.Slope)
	case KindExponential:
		return "y = " + num(p.Intercept) + " * " + num(p.Slope) + "^x"
	default:
		return ""
	}
}

// IsDataError reports whether err stems from the data rather than from the caller's
// configuration: empty or mismatched input, degenerate x, log domain, or zero variance.
func IsDataError(err error) bool {
	return errors.Is(err, ErrEmptyDataset) ||
		errors.Is(err, ErrDataLengthMismatch) ||
		errors.Is(err, ErrDegenerateInput) ||
		errors.Is(err, ErrLogDomain) ||
		errors.Is(err, ErrZeroVariance)
}
