package chart

import (
	"fmt"

	"github.com/arloliu/curvefit/internal/options"
)

const (
	// DefaultWidth and DefaultHeight are the figure size in inches.
	DefaultWidth  = 10.0
	DefaultHeight = 5.0
	// DefaultCurvePoints is the number of evenly spaced points the fitted curve is sampled at.
	DefaultCurvePoints = 100
)

type config struct {
	width, height  float64
	title          string
	xLabel, yLabel string
	curvePoints    int
}

func defaultConfig() *config {
	return &config{
		width:       DefaultWidth,
		height:      DefaultHeight,
		xLabel:      "x",
		yLabel:      "y",
		curvePoints: DefaultCurvePoints,
	}
}

// Option configures Render.
type Option = options.Option[*config]

// WithSize sets the figure size in inches.
func WithSize(width, height float64) Option {
	return options.New(func(c *config) error {
		if !(width > 0) || !(height > 0) {
			return fmt.Errorf("chart size must be positive, got %gx%g", width, height)
		}
		c.width, c.height = width, height

		return nil
	})
}

// WithTitle overrides the chart title.
func WithTitle(title string) Option {
	return options.NoError(func(c *config) {
		c.title = title
	})
}

// WithLabels sets the axis labels.
func WithLabels(x, y string) Option {
	return options.NoError(func(c *config) {
		c.xLabel, c.yLabel = x, y
	})
}

// WithCurvePoints sets how many points the fitted curve is sampled at (at least 2).
func WithCurvePoints(n int) Option {
	return options.New(func(c *config) error {
		if n < 2 {
			return fmt.Errorf("curve needs at least 2 points, got %d", n)
		}
		c.curvePoints = n

		return nil
	})
}
