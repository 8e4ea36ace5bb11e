// Package curvefit fits linear, power, and exponential curves to two-dimensional
// data with closed-form least squares and reports the goodness of fit.
//
// The top-level functions wire the building blocks together for the common
// cases. For fine-grained control use the packages directly:
//
//   - regression: the fitting engine (solver, log-linearized strategies, R², ranking)
//   - dataset: sample sets, text parsers and the file loader
//   - report: result records and their text, JSON and YAML forms
//   - chart: data and fitted-curve rendering
//   - compress: codecs for compressed datasets and reports
//
// # Basic Usage
//
//	samples, _, err := dataset.Load("data.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	model, err := curvefit.Fit(samples, regression.KindPower)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Formula, model.RSquared)
//
// Reproducing the classic file-to-file flow, which writes output/Power_params.txt:
//
//	path, err := curvefit.FitAndSave("data.txt", regression.KindPower, "output")
package curvefit

import (
	"fmt"

	"github.com/arloliu/curvefit/dataset"
	"github.com/arloliu/curvefit/format"
	"github.com/arloliu/curvefit/regression"
	"github.com/arloliu/curvefit/report"
)

// Fit fits one kind of model to samples.
func Fit(samples dataset.Samples, kind regression.Kind, opts ...regression.FitOption) (*regression.Model, error) {
	return regression.Fit(kind, samples.X, samples.Y, opts...)
}

// FitBest fits every kind to samples and ranks the results.
func FitBest(samples dataset.Samples, opts ...regression.FitOption) (*regression.Ranking, error) {
	return regression.FitBest(samples.X, samples.Y, opts...)
}

// FitFile loads the dataset at path, fits kind and returns the report record.
func FitFile(path string, kind regression.Kind, opts ...dataset.Option) (report.Record, error) {
	samples, _, err := dataset.Load(path, opts...)
	if err != nil {
		return report.Record{}, err
	}

	model, err := Fit(samples, kind)
	if err != nil {
		return report.Record{}, fmt.Errorf("%s: %w", path, err)
	}

	return report.FromModel(model, samples.Fingerprint(), path), nil
}

// FitAndSave fits kind to the dataset at input and writes the text report to
// <outputDir>/<Type>_params.txt. It returns the report path.
func FitAndSave(input string, kind regression.Kind, outputDir string, opts ...dataset.Option) (string, error) {
	rec, err := FitFile(input, kind, opts...)
	if err != nil {
		return "", err
	}

	path := report.DefaultPath(outputDir, kind)
	if err := report.WriteFile(path, rec, format.ReportText); err != nil {
		return "", err
	}

	return path, nil
}
