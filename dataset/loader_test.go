package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/curvefit/compress"
	"github.com/arloliu/curvefit/format"
)

const sampleText = "1 2.5\n2 4.1\n4 9.8\n8 17.2\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func compressed(t *testing.T, ct format.CompressionType, data []byte) []byte {
	t.Helper()

	codec, err := compress.GetCodec(ct)
	require.NoError(t, err)
	out, err := codec.Compress(data)
	require.NoError(t, err)

	return out
}

func TestLoad_Plain(t *testing.T) {
	path := writeFile(t, "data.txt", []byte(sampleText))

	samples, stats, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 4, 8}, samples.X)
	require.Equal(t, []float64{2.5, 4.1, 9.8, 17.2}, samples.Y)
	require.Equal(t, 4, stats.Records)
}

func TestLoad_Compressed(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String()+"/extension", func(t *testing.T) {
			path := writeFile(t, "data.txt"+ct.Extension(), compressed(t, ct, []byte(sampleText)))

			samples, _, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, 4, samples.Len())
			require.Equal(t, 17.2, samples.Y[3])
		})

		t.Run(ct.String()+"/magic", func(t *testing.T) {
			path := writeFile(t, "data.bin", compressed(t, ct, []byte(sampleText)))

			samples, _, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, 4, samples.Len())
		})

		t.Run(ct.String()+"/forced", func(t *testing.T) {
			path := writeFile(t, "data.txt", compressed(t, ct, []byte(sampleText)))

			samples, _, err := Load(path, WithCompression(ct))
			require.NoError(t, err)
			require.Equal(t, 4, samples.Len())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "broken.zst", []byte("definitely not zstd"))
	_, _, err = Load(path)
	require.ErrorIs(t, err, ErrIO)

	path = writeFile(t, "data.txt", []byte("1 2\n3 x\n"))
	_, _, err = Load(path, WithStrict())
	require.ErrorIs(t, err, ErrMalformedRecord)

	_, _, err = Load(path, WithCompression(format.CompressionType(99)))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrIO)
}
