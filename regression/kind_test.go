package regression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"linear", KindLinear},
		{"Linear", KindLinear},
		{"-l", KindLinear},
		{"l", KindLinear},
		{"POWER", KindPower},
		{"-p", KindPower},
		{"pow", KindPower},
		{" exponential ", KindExponential},
		{"-e", KindExponential},
		{"exp", KindExponential},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, kind)
		})
	}

	_, err := ParseKind("-x")
	require.ErrorIs(t, err, ErrUnknownKind)
	require.Contains(t, err.Error(), "linear (-l), power (-p), exponential (-e)")
}

func TestKindString(t *testing.T) {
	require.Equal(t, "Linear", KindLinear.String())
	require.Equal(t, "Power", KindPower.String())
	require.Equal(t, "Exponential", KindExponential.String())
	require.Equal(t, "Unknown", Kind(7).String())
	require.Equal(t, []Kind{KindLinear, KindPower, KindExponential}, Kinds())
}
