package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Permissive(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantX     []float64
		wantY     []float64
		truncated bool
		dangling  bool
	}{
		{
			name:  "one pair per line",
			input: "1 2\n3 4\n5 6\n",
			wantX: []float64{1, 3, 5},
			wantY: []float64{2, 4, 6},
		},
		{
			name:  "pairs span lines",
			input: "1\n2 3\n4\n",
			wantX: []float64{1, 3},
			wantY: []float64{2, 4},
		},
		{
			name:     "dangling x dropped",
			input:    "1 2 3",
			wantX:    []float64{1},
			wantY:    []float64{2},
			dangling: true,
		},
		{
			name:      "stops at first bad token",
			input:     "1 2\n3 oops\n5 6\n",
			wantX:     []float64{1},
			wantY:     []float64{2},
			truncated: true,
			dangling:  true,
		},
		{
			name:      "non-finite stops",
			input:     "1 2\nNaN 4\n",
			wantX:     []float64{1},
			wantY:     []float64{2},
			truncated: true,
		},
		{
			name:  "scientific notation and tabs",
			input: "1e-3\t2.5E2\n-4 +5\n",
			wantX: []float64{0.001, -4},
			wantY: []float64{250, 5},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, stats, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.wantX, samples.X)
			require.Equal(t, tt.wantY, samples.Y)
			require.Equal(t, len(tt.wantX), stats.Records)
			require.Equal(t, tt.truncated, stats.Truncated)
			require.Equal(t, tt.dangling, stats.Dangling)
		})
	}
}

func TestParse_PermissiveStopLocation(t *testing.T) {
	_, stats, err := Parse(strings.NewReader("1 2\n3 4\n# note\n5 6\n"))
	require.NoError(t, err)
	require.Equal(t, 2, stats.Records)
	require.True(t, stats.Truncated)
	require.Equal(t, 3, stats.StopLine)
	require.Equal(t, "#", stats.StopToken)
}

func TestParse_PermissiveGluedToken(t *testing.T) {
	samples, stats, err := Parse(strings.NewReader("1 2abc 3 4\n"))
	require.NoError(t, err)
	require.Equal(t, 0, samples.Len())
	require.True(t, stats.Truncated)
	require.Equal(t, 1, stats.StopLine)
	require.Equal(t, "2abc", stats.StopToken)
	require.True(t, stats.Dangling)
}

func TestParse_Strict(t *testing.T) {
	input := "# x y\n1 2\n\n  3 4  \n# trailing comment\n"

	samples, stats, err := Parse(strings.NewReader(input), WithStrict())
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3}, samples.X)
	require.Equal(t, []float64{2, 4}, samples.Y)
	require.Equal(t, 2, stats.Records)
	require.Equal(t, 3, stats.Skipped)
	require.Equal(t, 5, stats.Lines)
}

func TestParse_StrictErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		token string
	}{
		{"bad number", "1 2\n3 x\n", 2, "x"},
		{"three fields", "1 2 3\n", 1, "1 2 3"},
		{"one field", "1 2\n\n7\n", 3, "7"},
		{"infinite", "1 Inf\n", 1, "Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(strings.NewReader(tt.input), WithStrict())
			require.ErrorIs(t, err, ErrMalformedRecord)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tt.line, parseErr.Line)
			require.Equal(t, tt.token, parseErr.Token)
		})
	}
}

func TestParse_MaxSamples(t *testing.T) {
	input := "1 2\n3 4\n5 6\n"

	samples, _, err := Parse(strings.NewReader(input), WithMaxSamples(3))
	require.NoError(t, err)
	require.Equal(t, 3, samples.Len())

	_, _, err = Parse(strings.NewReader(input), WithMaxSamples(2))
	require.ErrorIs(t, err, ErrTooManySamples)

	_, _, err = Parse(strings.NewReader(input), WithStrict(), WithMaxSamples(1))
	require.ErrorIs(t, err, ErrTooManySamples)

	_, _, err = Parse(strings.NewReader(input), WithMaxSamples(-1))
	require.Error(t, err)
}
