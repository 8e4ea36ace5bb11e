package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/curvefit/dataset"
	"github.com/arloliu/curvefit/regression"
)

func testSamples() dataset.Samples {
	return dataset.Samples{
		X: []float64{1, 2, 4, 8},
		Y: []float64{3.1, 11.8, 48.5, 191.2},
	}
}

func TestRender(t *testing.T) {
	samples := testSamples()
	model, err := regression.FitPower(samples.X, samples.Y)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"power.png", "power.svg", "power.pdf"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Render(path, samples, model.Estimator, WithTitle("test"), WithSize(4, 3)))

			info, err := os.Stat(path)
			require.NoError(t, err)
			require.Positive(t, info.Size())
		})
	}

	raw, err := os.ReadFile(filepath.Join(dir, "power.png"))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}

func TestRenderTo(t *testing.T) {
	var buf bytes.Buffer
	err := RenderTo(&buf, "svg", testSamples(), regression.NewLinearEstimator(-20, 25), WithLabels("size", "count"))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "<svg")
}

func TestRender_Errors(t *testing.T) {
	est := regression.NewLinearEstimator(0, 1)

	err := Render(filepath.Join(t.TempDir(), "chart.gif"), testSamples(), est)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	err = RenderTo(&bytes.Buffer{}, "png", dataset.Samples{}, est)
	require.ErrorIs(t, err, regression.ErrEmptyDataset)

	err = RenderTo(&bytes.Buffer{}, "png", testSamples(), est, WithSize(0, 3))
	require.Error(t, err)

	err = RenderTo(&bytes.Buffer{}, "png", testSamples(), est, WithCurvePoints(1))
	require.Error(t, err)
}

func TestCurvePoints(t *testing.T) {
	samples := dataset.Samples{X: []float64{5, 1, 3}, Y: []float64{0, 0, 0}}

	xys := curvePoints(samples, regression.NewLinearEstimator(1, 2), DefaultCurvePoints)
	require.Len(t, xys, DefaultCurvePoints)
	require.Equal(t, 1.0, xys[0].X)
	require.Equal(t, 5.0, xys[len(xys)-1].X)
	require.InDelta(t, 11.0, xys[len(xys)-1].Y, 1e-12)

	// Power curves are undefined for negative x and those points are dropped.
	samples = dataset.Samples{X: []float64{-1, 1}, Y: []float64{0, 0}}
	xys = curvePoints(samples, regression.NewPowerEstimator(1, 0.5), 3)
	require.Len(t, xys, 2)
}
