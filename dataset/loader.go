package dataset

import (
	"bytes"
	"fmt"
	"os"

	"github.com/arloliu/curvefit/compress"
	"github.com/arloliu/curvefit/format"
	"github.com/arloliu/curvefit/internal/pool"
)

// Load reads and parses the dataset file at path.
//
// The codec comes from WithCompression when given, otherwise from the file
// extension, otherwise from the payload's magic bytes. Open, read, and
// decompression failures match ErrIO.
func Load(path string, opts ...Option) (Samples, Stats, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return Samples{}, Stats{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Samples{}, Stats{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	if _, err := buf.ReadFrom(f); err != nil {
		return Samples{}, Stats{}, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}

	data, err := decode(path, buf.Bytes(), cfg.compression)
	if err != nil {
		return Samples{}, Stats{}, err
	}

	return parse(bytes.NewReader(data), cfg)
}

// decode decompresses a dataset payload according to ct, or detects the codec
// from path and the payload when ct is zero.
func decode(path string, payload []byte, ct format.CompressionType) ([]byte, error) {
	if ct == 0 {
		data, _, err := compress.Decode(path, payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}

		return data, nil
	}
	if ct == format.CompressionNone {
		return payload, nil
	}

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	data, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: decompress %s (%s): %w", ErrIO, path, ct, err)
	}

	return data, nil
}
