// Package chart draws a data set together with its fitted curve.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/arloliu/curvefit/dataset"
	"github.com/arloliu/curvefit/internal/options"
	"github.com/arloliu/curvefit/regression"
)

// ErrUnsupportedFormat indicates an output file type the renderer cannot produce.
var ErrUnsupportedFormat = errors.New("unsupported chart format")

var supportedFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "svg": true,
	"pdf": true, "eps": true, "tif": true, "tiff": true,
}

var (
	dataColor  = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	curveColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

// Render draws samples as a scatter and est as a curve between min(x) and max(x),
// and saves the figure to path. The file type follows the extension of path.
func Render(path string, samples dataset.Samples, est regression.Estimator, opts ...Option) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !supportedFormats[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := RenderTo(f, ext, samples, est, opts...); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// RenderTo writes the figure to w in the given format ("png", "svg", "pdf", ...).
func RenderTo(w io.Writer, format string, samples dataset.Samples, est regression.Estimator, opts ...Option) error {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}
	if err := samples.Validate(); err != nil {
		return err
	}
	if !supportedFormats[strings.ToLower(format)] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	p, err := build(samples, est, cfg)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(vg.Length(cfg.width)*vg.Inch, vg.Length(cfg.height)*vg.Inch, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}

	return nil
}

func build(samples dataset.Samples, est regression.Estimator, cfg *config) (*plot.Plot, error) {
	kind := est.Kind().String()

	p := plot.New()
	p.Title.Text = cfg.title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("%s vs. %s (%s Regression)", cfg.yLabel, cfg.xLabel, kind)
	}
	p.X.Label.Text = cfg.xLabel
	p.Y.Label.Text = cfg.yLabel
	p.Add(plotter.NewGrid())

	points := make(plotter.XYs, samples.Len())
	for i := range points {
		points[i].X = samples.X[i]
		points[i].Y = samples.Y[i]
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, fmt.Errorf("chart data: %w", err)
	}
	scatter.GlyphStyle.Color = dataColor
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)

	curve, err := plotter.NewLine(curvePoints(samples, est, cfg.curvePoints))
	if err != nil {
		return nil, fmt.Errorf("chart curve: %w", err)
	}
	curve.LineStyle.Color = curveColor
	curve.LineStyle.Width = vg.Points(2)

	p.Add(scatter, curve)
	p.Legend.Add("Data", scatter)
	p.Legend.Add(kind+" Regression Line", curve)
	p.Legend.Top = true

	return p, nil
}

// curvePoints samples est at n evenly spaced x between the data's min and max.
// Points where the model is not finite are left out.
func curvePoints(samples dataset.Samples, est regression.Estimator, n int) plotter.XYs {
	lo, hi := samples.RangeX()
	step := (hi - lo) / float64(n-1)

	xys := make(plotter.XYs, 0, n)
	for i := range n {
		x := lo + float64(i)*step
		if i == n-1 {
			x = hi
		}
		y := est.Estimate(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}

	return xys
}
