package report

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/arloliu/curvefit/format"
	"github.com/arloliu/curvefit/regression"
)

// Record is the serializable form of a fitted model.
type Record struct {
	Type        string   `json:"type" yaml:"type"`
	Intercept   float64  `json:"intercept" yaml:"intercept"`
	Slope       float64  `json:"slope" yaml:"slope"`
	RSquared    float64  `json:"r_squared" yaml:"r_squared"`
	RMSE        *float64 `json:"rmse,omitempty" yaml:"rmse,omitempty"`
	Formula     string   `json:"formula,omitempty" yaml:"formula,omitempty"`
	Samples     int      `json:"samples,omitempty" yaml:"samples,omitempty"`
	Fingerprint string   `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Source      string   `json:"source,omitempty" yaml:"source,omitempty"`
}

// FromModel builds a record from a model. fingerprint is the dataset fingerprint,
// or 0 when unknown; source names the dataset.
func FromModel(m *regression.Model, fingerprint uint64, source string) Record {
	rec := Record{
		Type:      m.Kind.String(),
		Intercept: m.Params.Intercept,
		Slope:     m.Params.Slope,
		RSquared:  m.RSquared,
		Formula:   m.Formula,
		Samples:   m.N,
		Source:    source,
	}
	if !math.IsNaN(m.RMSE) {
		rmse := m.RMSE
		rec.RMSE = &rmse
	}
	if fingerprint != 0 {
		rec.Fingerprint = fmt.Sprintf("%016x", fingerprint)
	}

	return rec
}

// Kind returns the regression kind named by the record type.
func (r Record) Kind() (regression.Kind, error) {
	return regression.ParseKind(r.Type)
}

// Estimator returns an estimator for the recorded model.
func (r Record) Estimator() (regression.Estimator, error) {
	return regression.NewEstimator(r.Type, []float64{r.Intercept, r.Slope})
}

// DefaultPath returns <dir>/<Type>_params.txt.
func DefaultPath(dir string, kind regression.Kind) string {
	return filepath.Join(dir, kind.String()+"_params.txt")
}

// Extension returns the file extension of a report format.
func Extension(f format.ReportFormat) string {
	switch f {
	case format.ReportJSON:
		return ".json"
	case format.ReportYAML:
		return ".yaml"
	default:
		return ".txt"
	}
}

// FormatFromPath infers the report format from a file name, ignoring a trailing
// compression extension. Unrecognized names map to ReportText.
func FormatFromPath(path string) format.ReportFormat {
	if format.CompressionFromExtension(path) != format.CompressionNone {
		path = path[:len(path)-len(filepath.Ext(path))]
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return format.ReportJSON
	case ".yaml", ".yml":
		return format.ReportYAML
	default:
		return format.ReportText
	}
}
