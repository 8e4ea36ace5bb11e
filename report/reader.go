package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/curvefit/compress"
	"github.com/arloliu/curvefit/format"
	"github.com/arloliu/curvefit/internal/pool"
)

// Read decodes a record in format f from r.
func Read(r io.Reader, f format.ReportFormat) (Record, error) {
	var rec Record

	switch f {
	case format.ReportText:
		return decodeText(r)
	case format.ReportJSON:
		if err := json.NewDecoder(r).Decode(&rec); err != nil {
			return Record{}, fmt.Errorf("decode json report: %w", err)
		}
	case format.ReportYAML:
		if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
			return Record{}, fmt.Errorf("decode yaml report: %w", err)
		}
	default:
		return Record{}, fmt.Errorf("unsupported report format: %s", f)
	}

	return rec, nil
}

// ReadFile reads a record from path. The format is inferred with FormatFromPath and
// compressed files are decompressed first.
func ReadFile(path string) (Record, error) {
	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	if _, err := buf.ReadFrom(f); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrIO, err)
	}

	data, _, err := compress.Decode(path, buf.Bytes())
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return Read(bytes.NewReader(data), FormatFromPath(path))
}

func decodeText(r io.Reader) (Record, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for len(lines) < 3 && scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if len(lines) < 3 {
		return Record{}, fmt.Errorf("text report: expected 3 lines, got %d", len(lines))
	}

	rec := Record{Type: lines[0]}

	params := strings.Fields(lines[1])
	if len(params) != 2 {
		return Record{}, fmt.Errorf("text report: expected 2 parameters, got %q", lines[1])
	}

	var err error
	if rec.Intercept, err = strconv.ParseFloat(params[0], 64); err != nil {
		return Record{}, fmt.Errorf("text report intercept: %w", err)
	}
	if rec.Slope, err = strconv.ParseFloat(params[1], 64); err != nil {
		return Record{}, fmt.Errorf("text report slope: %w", err)
	}

	value, ok := strings.CutPrefix(lines[2], "R-Squared:")
	if !ok {
		return Record{}, fmt.Errorf("text report: missing R-Squared line, got %q", lines[2])
	}
	if rec.RSquared, err = strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return Record{}, fmt.Errorf("text report r-squared: %w", err)
	}

	return rec, nil
}
