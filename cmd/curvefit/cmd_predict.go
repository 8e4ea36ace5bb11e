package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arloliu/curvefit/regression"
	"github.com/arloliu/curvefit/report"
)

func (c *cli) newPredictCmd() *cobra.Command {
	var fromReport string

	cmd := &cobra.Command{
		Use:   "predict (<type> <a> <b> | --report <file>) <x>...",
		Short: "Evaluate a fitted model at the given x values",
		Long: `Evaluate a model at one or more x values and print "x y" pairs.

The model is given either by its type and the two parameters reported by a
fit, or by a report file written by fit or best. Use "--" before negative
numbers so they are not read as flags.`,
		Example: `  curvefit predict power 3 2 10 20
  curvefit predict --report output/Power_params.txt 10 20
  curvefit predict linear -- -1.5 2 -3`,
		RunE: func(_ *cobra.Command, args []string) error {
			return c.runPredict(args, fromReport)
		},
	}

	cmd.Flags().StringVar(&fromReport, "report", "", "read the model from a report file")

	return cmd
}

func (c *cli) runPredict(args []string, fromReport string) error {
	var (
		est regression.Estimator
		err error
	)

	if fromReport != "" {
		if len(args) < 1 {
			return usageErrorf("predict --report needs at least one x value")
		}

		rec, err := report.ReadFile(fromReport)
		if err != nil {
			return err
		}
		if est, err = rec.Estimator(); err != nil {
			return fmt.Errorf("%s: %w", fromReport, err)
		}
	} else {
		if len(args) < 4 {
			return usageErrorf("predict needs a type, two parameters and at least one x value, got %d arguments", len(args))
		}

		coeffs, err := parseNumbers(args[1:3])
		if err != nil {
			return err
		}
		if est, err = regression.NewEstimator(args[0], coeffs); err != nil {
			return usageError(err)
		}
		args = args[3:]
	}

	xs, err := parseNumbers(args)
	if err != nil {
		return err
	}

	for _, x := range xs {
		fmt.Fprintf(c.stdout, "%s %s\n",
			strconv.FormatFloat(x, 'g', -1, 64), strconv.FormatFloat(est.Estimate(x), 'g', -1, 64))
	}

	return nil
}

func parseNumbers(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, usageErrorf("invalid number %q", arg)
		}
		values[i] = v
	}

	return values, nil
}
