package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/curvefit/report"
)

type plotFlags struct {
	data  dataFlags
	title string
}

func (c *cli) newPlotCmd() *cobra.Command {
	f := &plotFlags{}

	cmd := &cobra.Command{
		Use:   "plot <report> <input> <image>",
		Short: "Draw a data file and the curve of a saved report",
		Long: `Draw the points of a data file together with the curve described by a
report written by fit or best. The image type follows the extension of
<image>: .png, .svg, .pdf, .eps, .jpg or .tif.`,
		Example: `  curvefit plot output/Power_params.txt data.txt power.png`,
		Args:    usageArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlot(cmd, args[0], args[1], args[2], f)
		},
	}

	cmd.Flags().StringVar(&f.title, "title", "", "chart title")
	f.data.register(cmd.Flags())

	return cmd
}

func (c *cli) runPlot(cmd *cobra.Command, params, input, image string, f *plotFlags) error {
	rec, err := report.ReadFile(params)
	if err != nil {
		return err
	}
	est, err := rec.Estimator()
	if err != nil {
		return fmt.Errorf("%s: %w", params, err)
	}

	opts, err := c.datasetOptions(cmd, &f.data)
	if err != nil {
		return err
	}
	samples, err := c.load(input, opts)
	if err != nil {
		return err
	}

	return c.render(image, samples, est, f.title)
}
