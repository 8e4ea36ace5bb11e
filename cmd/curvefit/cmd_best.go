package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/curvefit/regression"
	"github.com/arloliu/curvefit/report"
)

type bestFlags struct {
	data  dataFlags
	out   outputFlags
	plot  string
	title string
}

func (c *cli) newBestCmd() *cobra.Command {
	f := &bestFlags{}

	cmd := &cobra.Command{
		Use:   "best <input>",
		Short: "Fit every regression type and keep the best one",
		Long: `Fit every regression type, rank the results by how close R² is to 1,
print the ranking and write the report of the best model.

Types that cannot be fitted on the data (for example power with a
non-positive value) are listed as skipped.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBest(cmd, args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.plot, "plot", "", "also render the data and best curve to this image")
	flags.StringVar(&f.title, "title", "", "chart title")
	f.data.register(flags)
	f.out.register(flags)

	return cmd
}

func (c *cli) runBest(cmd *cobra.Command, input string, f *bestFlags) error {
	rf, err := c.reportFormat(&f.out)
	if err != nil {
		return err
	}
	opts, err := c.datasetOptions(cmd, &f.data)
	if err != nil {
		return err
	}

	samples, err := c.load(input, opts)
	if err != nil {
		return err
	}

	ranking, err := regression.FitBest(samples.X, samples.Y, c.fitOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	for kind, skipErr := range ranking.Skipped {
		c.logger.Warn("regression type skipped", "type", kind.String(), "error", skipErr)
	}

	best := ranking.Best
	c.logger.Info("best fit", "type", best.Kind.String(), "r_squared", best.RSquared, "formula", best.Formula)

	path := f.out.output
	if path == "" {
		path = reportPath(c.outputDir(&f.out), best.Kind, rf)
	}
	if path != "-" {
		if err := printRanking(c.stdout, ranking); err != nil {
			return err
		}
	}
	if err := c.emit(report.FromModel(best, samples.Fingerprint(), input), path, rf); err != nil {
		return err
	}

	if f.plot != "" {
		return c.render(f.plot, samples, best.Estimator, f.title)
	}

	return nil
}

func printRanking(w io.Writer, ranking *regression.Ranking) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tTYPE\tR²\tRMSE\tFORMULA")
	for i, m := range ranking.All {
		fmt.Fprintf(tw, "%d\t%s\t%.6g\t%.6g\t%s\n", i+1, m.Kind, m.RSquared, m.RMSE, m.Formula)
	}
	for _, kind := range regression.Kinds() {
		if err, skipped := ranking.Skipped[kind]; skipped {
			fmt.Fprintf(tw, "-\t%s\t-\t-\tskipped: %v\n", kind, err)
		}
	}

	return tw.Flush()
}
