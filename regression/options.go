package regression

import (
	"fmt"

	"github.com/arloliu/curvefit/internal/options"
)

const (
	// DefaultFormulaPrecision is the number of decimals used in Model.Formula.
	DefaultFormulaPrecision = 4
	// MaxFormulaPrecision is the largest precision accepted by WithFormulaPrecision.
	MaxFormulaPrecision = 15
)

// FitConfig holds the settings of a fit.
type FitConfig struct {
	// FormulaPrecision is the number of decimals used in Model.Formula.
	FormulaPrecision int
	// ComputeRMSE enables the RMSE computation; when false Model.RMSE is NaN.
	ComputeRMSE bool
}

func defaultFitConfig() FitConfig {
	return FitConfig{
		FormulaPrecision: DefaultFormulaPrecision,
		ComputeRMSE:      true,
	}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithFormulaPrecision sets the number of decimals used in Model.Formula (0..15).
func WithFormulaPrecision(decimals int) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if decimals < 0 || decimals > MaxFormulaPrecision {
			return fmt.Errorf("formula precision %d out of range [0, %d]", decimals, MaxFormulaPrecision)
		}
		cfg.FormulaPrecision = decimals

		return nil
	})
}

// WithRMSE enables or disables the RMSE computation.
func WithRMSE(enabled bool) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		cfg.ComputeRMSE = enabled
	})
}

func newFitConfig(opts []FitOption) (FitConfig, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return FitConfig{}, err
	}

	return cfg, nil
}
