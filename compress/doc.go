// Package compress provides the codecs used to read compressed datasets and to
// write compressed reports.
//
// Four algorithms are supported, selected by format.CompressionType:
//
//   - None: data passes through unchanged
//   - Zstd: Zstandard frames (klauspost/compress, or valyala/gozstd with the gozstd build tag)
//   - S2: S2/Snappy framed stream (klauspost/compress/s2)
//   - LZ4: LZ4 frame format (pierrec/lz4/v4)
//
// All compressed formats are the stream/frame formats produced by the matching
// command-line tools (zstd, s2c, lz4), so a dataset compressed with
// "zstd points.txt" can be loaded directly.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, _ := codec.Compress(data)
//	original, err := codec.Decompress(compressed)
//
// Detect picks the compression type of a file from its extension and, failing
// that, from the leading magic bytes:
//
//	ct := compress.Detect("points.txt.zst", head)
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and decoders and
// are safe for concurrent use.
package compress
