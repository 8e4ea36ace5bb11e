package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arloliu/curvefit/chart"
	"github.com/arloliu/curvefit/dataset"
	"github.com/arloliu/curvefit/format"
	"github.com/arloliu/curvefit/internal/config"
	"github.com/arloliu/curvefit/regression"
	"github.com/arloliu/curvefit/report"
)

const rootLong = `curvefit fits a curve to two-column (x, y) data using closed-form least
squares and reports the parameters and R².

Supported regression types:
  linear       y = a + b*x       (-l)
  power        y = a * x^b       (-p)
  exponential  y = a * b^x       (-e)

Data files hold whitespace-separated numbers, one "x y" pair per line. Files
ending in .zst, .s2 or .lz4 are decompressed transparently.

Exit codes:
  0  success
  1  fit or data error (e.g. non-positive values for a power fit)
  2  usage error
  3  I/O error`

// cli holds state shared by every subcommand.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{
		stdout: stdout,
		stderr: stderr,
		cfg:    config.Default(),
		logger: slog.New(slog.DiscardHandler),
	}

	root := &cobra.Command{
		Use:               "curvefit",
		Short:             "Fit linear, power and exponential curves to (x, y) data",
		Long:              rootLong,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "path to a YAML configuration file")
	pf.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error (default info)")
	pf.StringVar(&c.logFormat, "log-format", "", "log format: text or json (default text)")

	root.AddCommand(
		c.newFitCmd(),
		c.newBestCmd(),
		c.newBatchCmd(),
		c.newPredictCmd(),
		c.newPlotCmd(),
	)

	return root
}

// setup loads the configuration and builds the logger before any subcommand runs.
func (c *cli) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return &exitError{code: exitIO, err: err}
		}

		return usageError(err)
	}

	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.logFormat != "" {
		cfg.Log.Format = c.logFormat
	}

	logger, err := newLogger(c.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return usageError(err)
	}

	c.cfg = cfg
	c.logger = logger
	c.logger.Debug("configuration loaded", "path", c.configPath, "output_dir", cfg.OutputDir, "format", cfg.Format)

	return nil
}

// dataFlags are the dataset flags shared by fit, best, batch and plot.
type dataFlags struct {
	strict      bool
	compression string
	maxSamples  int
}

func (f *dataFlags) register(flags *pflag.FlagSet) {
	flags.BoolVar(&f.strict, "strict", false, "reject malformed lines instead of stopping at the first non-numeric token")
	flags.StringVar(&f.compression, "compression", "", "force the input codec: none, zstd, s2 or lz4 (default: detect)")
	flags.IntVar(&f.maxSamples, "max-samples", 0, "maximum number of samples to read (0 = unlimited)")
}

func (c *cli) datasetOptions(cmd *cobra.Command, f *dataFlags) ([]dataset.Option, error) {
	strict := c.cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict = f.strict
	}
	maxSamples := c.cfg.MaxSamples
	if cmd.Flags().Changed("max-samples") {
		maxSamples = f.maxSamples
	}
	if maxSamples < 0 {
		return nil, usageErrorf("--max-samples must not be negative, got %d", maxSamples)
	}

	opts := []dataset.Option{dataset.WithMaxSamples(maxSamples)}
	if strict {
		opts = append(opts, dataset.WithStrict())
	}
	if f.compression != "" {
		ct, ok := format.ParseCompression(f.compression)
		if !ok {
			return nil, usageErrorf("unknown compression %q: valid values are none, zstd, s2, lz4", f.compression)
		}
		opts = append(opts, dataset.WithCompression(ct))
	}

	return opts, nil
}

// load reads and validates one dataset.
func (c *cli) load(path string, opts []dataset.Option) (dataset.Samples, error) {
	c.logger.Info("reading data", "path", path)

	samples, stats, err := dataset.Load(path, opts...)
	if err != nil {
		return dataset.Samples{}, fmt.Errorf("%s: %w", path, err)
	}

	if stats.Truncated {
		c.logger.Warn("input stopped at a non-numeric token",
			"path", path, "line", stats.StopLine, "token", stats.StopToken, "records", stats.Records)
	}
	if stats.Dangling {
		c.logger.Warn("dropped trailing x value without y", "path", path)
	}
	if err := samples.Validate(); err != nil {
		return dataset.Samples{}, fmt.Errorf("%s: %w", path, err)
	}
	c.logger.Debug("data loaded", "path", path, "samples", samples.Len(), "fingerprint", fmt.Sprintf("%016x", samples.Fingerprint()))

	return samples, nil
}

func (c *cli) fitOptions() []regression.FitOption {
	return []regression.FitOption{regression.WithFormulaPrecision(c.cfg.Precision)}
}

// outputFlags are the report flags shared by fit and best.
type outputFlags struct {
	output    string
	outputDir string
	format    string
}

func (f *outputFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.output, "output", "o", "", `report path, "-" for stdout (default <output-dir>/<Type>_params.txt)`)
	flags.StringVar(&f.outputDir, "output-dir", "", "directory for default report paths (default from config: output)")
	flags.StringVar(&f.format, "format", "", "report format: text, json or yaml (default text)")
}

func (c *cli) reportFormat(f *outputFlags) (format.ReportFormat, error) {
	name := c.cfg.Format
	if f.format != "" {
		name = f.format
	}

	rf, ok := format.ParseReportFormat(name)
	if !ok {
		return 0, usageErrorf("unknown report format %q: valid formats are text, json, yaml", name)
	}

	return rf, nil
}

func (c *cli) outputDir(f *outputFlags) string {
	if f.outputDir != "" {
		return f.outputDir
	}

	return c.cfg.OutputDir
}

// reportPath returns the report destination for kind under dir, with the
// extension of rf.
func reportPath(dir string, kind regression.Kind, rf format.ReportFormat) string {
	path := report.DefaultPath(dir, kind)
	if rf != format.ReportText {
		path = strings.TrimSuffix(path, filepath.Ext(path)) + report.Extension(rf)
	}

	return path
}

// emit writes rec to path, or to stdout when path is "-".
func (c *cli) emit(rec report.Record, path string, rf format.ReportFormat) error {
	if path == "-" {
		return report.Write(c.stdout, rec, rf)
	}

	c.logger.Info("writing report", "path", path, "format", rf.String())

	return report.WriteFile(path, rec, rf)
}

func (c *cli) chartOptions(title string) []chart.Option {
	opts := []chart.Option{
		chart.WithSize(c.cfg.Plot.Width, c.cfg.Plot.Height),
		chart.WithLabels(c.cfg.Plot.XLabel, c.cfg.Plot.YLabel),
	}
	if title == "" {
		title = c.cfg.Plot.Title
	}
	if title != "" {
		opts = append(opts, chart.WithTitle(title))
	}

	return opts
}

func (c *cli) render(path string, samples dataset.Samples, est regression.Estimator, title string) error {
	c.logger.Info("rendering chart", "path", path, "type", est.Kind().String())

	if err := chart.Render(path, samples, est, c.chartOptions(title)...); err != nil {
		if errors.Is(err, chart.ErrUnsupportedFormat) {
			return usageError(err)
		}

		return err
	}

	return nil
}
