package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/curvefit/compress"
	"github.com/arloliu/curvefit/format"
	"github.com/arloliu/curvefit/internal/pool"
)

// ErrIO indicates that a report could not be written or read.
var ErrIO = errors.New("report I/O error")

// Write encodes rec to w in format f.
func Write(w io.Writer, rec Record, f format.ReportFormat) error {
	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	if err := encode(buf, rec, f); err != nil {
		return err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

// WriteFile writes rec to path in format f, creating parent directories as needed.
// The payload is compressed when path ends in a compression extension.
func WriteFile(path string, rec Record, f format.ReportFormat) error {
	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	if err := encode(buf, rec, f); err != nil {
		return err
	}

	codec, ct := compress.ForPath(path)
	data, err := codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIO, ct, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

func encode(w io.Writer, rec Record, f format.ReportFormat) error {
	switch f {
	case format.ReportText:
		return encodeText(w, rec)
	case format.ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}

		return nil
	case format.ReportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format: %s", f)
	}
}

func encodeText(w io.Writer, rec Record) error {
	_, err := fmt.Fprintf(w, "%s\n%s %s\nR-Squared: %s\n",
		rec.Type, formatNumber(rec.Intercept), formatNumber(rec.Slope), formatNumber(rec.RSquared))

	return err
}

// formatNumber renders v with six significant digits, switching to exponent
// notation for very large or small magnitudes ("0.5", "1e+06", "2.5e-05").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
