package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/curvefit/regression"
	"github.com/arloliu/curvefit/report"
)

type fitFlags struct {
	data   dataFlags
	out    outputFlags
	plot   string
	title  string
	linear bool
	power  bool
	expo   bool
}

func (c *cli) newFitCmd() *cobra.Command {
	f := &fitFlags{}

	cmd := &cobra.Command{
		Use:   "fit <input> [linear|power|exponential]",
		Short: "Fit one regression type to a data file",
		Long: `Fit one regression type to a data file and write the report.

The type is given either as the second argument or as one of the flags
-l (linear), -p (power) or -e (exponential). The default report path is
<output-dir>/<Type>_params.txt.`,
		Example: `  curvefit fit data.txt -p
  curvefit fit data.txt.zst exponential -o - --format json
  curvefit fit data.txt linear --plot linear.png`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFit(cmd, args, f)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&f.linear, "linear", "l", false, "fit y = a + b*x")
	flags.BoolVarP(&f.power, "power", "p", false, "fit y = a * x^b")
	flags.BoolVarP(&f.expo, "exponential", "e", false, "fit y = a * b^x")
	flags.StringVar(&f.plot, "plot", "", "also render the data and fitted curve to this image (.png, .svg, .pdf)")
	flags.StringVar(&f.title, "title", "", "chart title")
	f.data.register(flags)
	f.out.register(flags)

	return cmd
}

// selectKind resolves the regression type from the optional positional
// selector and the -l/-p/-e flags. Exactly one must be given.
func selectKind(positional []string, f *fitFlags) (regression.Kind, error) {
	var kinds []regression.Kind

	for _, name := range positional {
		kind, err := regression.ParseKind(name)
		if err != nil {
			return 0, usageError(err)
		}
		kinds = append(kinds, kind)
	}
	if f.linear {
		kinds = append(kinds, regression.KindLinear)
	}
	if f.power {
		kinds = append(kinds, regression.KindPower)
	}
	if f.expo {
		kinds = append(kinds, regression.KindExponential)
	}

	switch len(kinds) {
	case 0:
		return 0, usageErrorf("missing regression type: give linear, power or exponential (or -l, -p, -e)")
	case 1:
		return kinds[0], nil
	default:
		return 0, usageErrorf("exactly one regression type is allowed, got %d", len(kinds))
	}
}

func (c *cli) runFit(cmd *cobra.Command, args []string, f *fitFlags) error {
	kind, err := selectKind(args[1:], f)
	if err != nil {
		return err
	}
	rf, err := c.reportFormat(&f.out)
	if err != nil {
		return err
	}
	opts, err := c.datasetOptions(cmd, &f.data)
	if err != nil {
		return err
	}

	input := args[0]
	samples, err := c.load(input, opts)
	if err != nil {
		return err
	}

	model, err := regression.Fit(kind, samples.X, samples.Y, c.fitOptions()...)
	if err != nil {
		var domainErr *regression.LogDomainError
		if errors.As(err, &domainErr) {
			c.logger.Error("value outside the logarithm domain",
				"path", input, "axis", domainErr.Axis, "index", domainErr.Index, "value", domainErr.Value)
		}

		return fmt.Errorf("%s: %w", input, err)
	}

	c.logger.Info("fit complete",
		"type", model.Kind.String(), "samples", model.N, "r_squared", model.RSquared, "formula", model.Formula)

	path := f.out.output
	if path == "" {
		path = reportPath(c.outputDir(&f.out), kind, rf)
	}
	if err := c.emit(report.FromModel(model, samples.Fingerprint(), input), path, rf); err != nil {
		return err
	}

	if f.plot != "" {
		return c.render(f.plot, samples, model.Estimator, f.title)
	}

	return nil
}
