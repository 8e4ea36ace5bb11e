package format

import (
	"path/filepath"
	"strings"
)

type (
	CompressionType uint8
	ReportFormat    uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	ReportText ReportFormat = 0x1 // ReportText is the line-oriented "<type>\n<a> <b>\nR-Squared: <r2>\n" form.
	ReportJSON ReportFormat = 0x2 // ReportJSON is a single JSON object.
	ReportYAML ReportFormat = 0x3 // ReportYAML is a single YAML document.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the conventional file extension (with dot) for the compression type,
// or an empty string for CompressionNone and unknown values.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// CompressionFromExtension maps a file path to a compression type by its extension.
// Paths without a recognized extension map to CompressionNone.
func CompressionFromExtension(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2", ".sz":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// ParseCompression parses a compression name ("none", "zstd", "s2", "lz4").
// The second return value is false for unknown names.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, true
	case "zstd", "zst":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (f ReportFormat) String() string {
	switch f {
	case ReportText:
		return "text"
	case ReportJSON:
		return "json"
	case ReportYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseReportFormat parses a report format name ("text", "json", "yaml").
func ParseReportFormat(name string) (ReportFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return ReportText, true
	case "json":
		return ReportJSON, true
	case "yaml", "yml":
		return ReportYAML, true
	default:
		return 0, false
	}
}
