package compress

// ZstdCompressor reads and writes Zstandard frames.
//
// The implementation is chosen at build time: the pure-Go klauspost/compress
// encoder by default, or valyala/gozstd when built with cgo and the gozstd tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
