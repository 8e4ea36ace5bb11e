package compress

import (
	"bytes"

	"github.com/arloliu/curvefit/format"
)

var (
	zstdMagic     = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4FrameMagic = []byte{0x04, 0x22, 0x4d, 0x18}
	// Stream identifier chunks of the S2 and Snappy framing formats.
	s2StreamMagic     = []byte("\xff\x06\x00\x00S2sTwO")
	snappyStreamMagic = []byte("\xff\x06\x00\x00sNaPpY")
)

// Detect returns the compression type of a file.
//
// A recognized extension (.zst, .s2, .lz4) wins; otherwise the leading bytes in head
// are matched against the frame magic numbers. Anything else is CompressionNone.
func Detect(path string, head []byte) format.CompressionType {
	if ct := format.CompressionFromExtension(path); ct != format.CompressionNone {
		return ct
	}

	return DetectMagic(head)
}

// DetectMagic identifies a compressed payload by its leading magic bytes.
func DetectMagic(head []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(head, lz4FrameMagic):
		return format.CompressionLZ4
	case bytes.HasPrefix(head, s2StreamMagic), bytes.HasPrefix(head, snappyStreamMagic):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}
