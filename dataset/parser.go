package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const maxLineSize = 16 * 1024 * 1024

// Stats describes how a parse ended.
type Stats struct {
	// Records is the number of (x, y) pairs read.
	Records int
	// Lines is the number of lines consumed.
	Lines int
	// Skipped counts blank and comment lines skipped by the strict parser.
	Skipped int
	// Truncated reports that the permissive parser stopped before the end of input.
	Truncated bool
	// StopLine is the 1-based line of the token that stopped the permissive parser.
	StopLine int
	// StopToken is the token that stopped the permissive parser.
	StopToken string
	// Dangling reports that an x value without its y was dropped.
	Dangling bool
}

// Parse reads samples from r.
//
// Without options the parser is permissive: see the package documentation.
// The returned samples may be empty; use Samples.Validate before fitting.
func Parse(r io.Reader, opts ...Option) (Samples, Stats, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return Samples{}, Stats{}, err
	}

	return parse(r, cfg)
}

func parse(r io.Reader, cfg *config) (Samples, Stats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if cfg.strict {
		return parseStrict(scanner, cfg.maxSamples)
	}

	return parsePermissive(scanner, cfg.maxSamples)
}

func parsePermissive(scanner *bufio.Scanner, maxSamples int) (Samples, Stats, error) {
	var (
		samples Samples
		stats   Stats
		pending float64
		hasX    bool
	)

	for scanner.Scan() {
		stats.Lines++
		for _, token := range strings.Fields(scanner.Text()) {
			v, ok := parseFinite(token)
			if !ok {
				stats.Truncated = true
				stats.StopLine = stats.Lines
				stats.StopToken = token
				stats.Dangling = hasX

				return samples, stats, nil
			}

			if !hasX {
				pending, hasX = v, true
				continue
			}

			if maxSamples > 0 && stats.Records == maxSamples {
				return Samples{}, stats, fmt.Errorf("%w: limit is %d", ErrTooManySamples, maxSamples)
			}
			samples.append(pending, v)
			stats.Records++
			hasX = false
		}
	}
	if err := scanner.Err(); err != nil {
		return Samples{}, stats, fmt.Errorf("%w: %w", ErrIO, err)
	}

	stats.Dangling = hasX

	return samples, stats, nil
}

func parseStrict(scanner *bufio.Scanner, maxSamples int) (Samples, Stats, error) {
	var (
		samples Samples
		stats   Stats
	)

	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			stats.Skipped++
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return Samples{}, stats, &ParseError{
				Line:   stats.Lines,
				Token:  line,
				Reason: fmt.Sprintf("expected 2 fields, got %d", len(fields)),
			}
		}

		var pair [2]float64
		for i, field := range fields {
			v, ok := parseFinite(field)
			if !ok {
				return Samples{}, stats, &ParseError{Line: stats.Lines, Token: field, Reason: "not a finite number"}
			}
			pair[i] = v
		}

		if maxSamples > 0 && stats.Records == maxSamples {
			return Samples{}, stats, fmt.Errorf("%w: limit is %d", ErrTooManySamples, maxSamples)
		}
		samples.append(pair[0], pair[1])
		stats.Records++
	}
	if err := scanner.Err(); err != nil {
		return Samples{}, stats, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return samples, stats, nil
}

func parseFinite(token string) (float64, bool) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}
