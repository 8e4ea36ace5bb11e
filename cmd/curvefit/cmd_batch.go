package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/curvefit/format"
	"github.com/arloliu/curvefit/internal/collision"
	"github.com/arloliu/curvefit/regression"
	"github.com/arloliu/curvefit/report"
)

type batchFlags struct {
	data dataFlags
	out  outputFlags
	jobs int
}

// batchResult is the outcome of one dataset in a batch.
type batchResult struct {
	input string
	model *regression.Model
	path  string
}

func (c *cli) newBatchCmd() *cobra.Command {
	f := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch <linear|power|exponential|best> <input>...",
		Short: "Fit several data files concurrently",
		Long: `Fit several data files concurrently. Each report is written to
<output-dir>/<input name>/<Type>_params.txt. The first failure cancels the
remaining fits.`,
		Example: `  curvefit batch power runs/*.txt --jobs 8
  curvefit batch best runs/*.txt.zst --format yaml`,
		Args: usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd, args[0], args[1:], f)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.jobs, "jobs", 0, "number of files fitted concurrently (default from config: 4)")
	f.data.register(flags)
	f.out.register(flags)
	flags.Lookup("output").Hidden = true

	return cmd
}

func (c *cli) runBatch(cmd *cobra.Command, selector string, inputs []string, f *batchFlags) error {
	best := strings.EqualFold(selector, "best")

	var kind regression.Kind
	if !best {
		k, err := regression.ParseKind(selector)
		if err != nil {
			return usageError(err)
		}
		kind = k
	}

	if f.out.output != "" {
		return usageErrorf("--output is not supported by batch; use --output-dir")
	}
	rf, err := c.reportFormat(&f.out)
	if err != nil {
		return err
	}
	opts, err := c.datasetOptions(cmd, &f.data)
	if err != nil {
		return err
	}

	jobs := c.cfg.Jobs
	if f.jobs != 0 {
		jobs = f.jobs
	}
	if jobs < 1 {
		return usageErrorf("--jobs must be at least 1, got %d", jobs)
	}

	tracker := collision.NewTracker()
	for _, input := range inputs {
		if err := tracker.TrackName(datasetName(input), input); err != nil {
			return usageError(err)
		}
	}
	if tracker.HasCollision() {
		c.logger.Warn("report name hash collision; names were compared in full")
	}

	dir := c.outputDir(&f.out)
	results := make([]batchResult, len(inputs))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)

	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			samples, err := c.load(input, opts)
			if err != nil {
				return err
			}
			if first, dup := tracker.TrackFingerprint(samples.Fingerprint(), input); dup {
				c.logger.Warn("identical dataset content", "input", input, "same_as", first)
			}

			var model *regression.Model
			if best {
				ranking, err := regression.FitBest(samples.X, samples.Y, c.fitOptions()...)
				if err != nil {
					return fmt.Errorf("%s: %w", input, err)
				}
				model = ranking.Best
			} else {
				if model, err = regression.Fit(kind, samples.X, samples.Y, c.fitOptions()...); err != nil {
					return fmt.Errorf("%s: %w", input, err)
				}
			}

			path := reportPath(filepath.Join(dir, datasetName(input)), model.Kind, rf)
			if err := c.emit(report.FromModel(model, samples.Fingerprint(), input), path, rf); err != nil {
				return err
			}
			results[i] = batchResult{input: input, model: model, path: path}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctxErr := context.Cause(cmd.Context()); ctxErr != nil {
			c.logger.Warn("batch interrupted", "error", ctxErr)
		}

		return err
	}

	c.logger.Info("batch complete", "inputs", tracker.Count(), "jobs", jobs)

	return printBatch(c.stdout, results)
}

// datasetName is the input's base name without compression and data extensions.
func datasetName(path string) string {
	name := filepath.Base(path)
	if format.CompressionFromExtension(name) != format.CompressionNone {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	return strings.TrimSuffix(name, filepath.Ext(name))
}

func printBatch(w io.Writer, results []batchResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tTYPE\tR²\tREPORT")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%.6g\t%s\n", r.input, r.model.Kind, r.model.RSquared, r.path)
	}

	return tw.Flush()
}
