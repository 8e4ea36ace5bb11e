package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/curvefit/format"
)

// ErrUnsupported indicates a compression type without a codec.
var ErrUnsupported = errors.New("unsupported compression type")

// Codec compresses and decompresses whole payloads.
//
// Compress returns a new slice owned by the caller and never modifies its input.
// Decompress fails on corrupted data or data written by another algorithm.
// Both return nil for an empty payload.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared codec of a compression type.
// Unknown types return an error matching ErrUnsupported.
func GetCodec(ct format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[ct]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupported, ct)
}

// ForPath returns the codec implied by the extension of path, CompressionNone
// (a pass-through codec) for anything unrecognized.
func ForPath(path string) (Codec, format.CompressionType) {
	ct := format.CompressionFromExtension(path)

	return builtinCodecs[ct], ct
}

// Decode decompresses the contents of a file when Detect recognizes a compressed
// format, and otherwise returns payload unchanged.
func Decode(path string, payload []byte) ([]byte, format.CompressionType, error) {
	ct := Detect(path, payload)
	if ct == format.CompressionNone {
		return payload, ct, nil
	}

	data, err := builtinCodecs[ct].Decompress(payload)
	if err != nil {
		return nil, ct, fmt.Errorf("decompress %s (%s): %w", path, ct, err)
	}

	return data, ct, nil
}
