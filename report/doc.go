// Package report renders fit results.
//
// The text form is the three-line layout read by existing tooling:
//
//	Power
//	2.99871 2.00034
//	R-Squared: 0.999812
//
// Numbers use six significant digits. JSON and YAML carry every Record field.
// Files whose name ends in a compression extension (.zst, .s2, .lz4) are
// compressed on write and decompressed on read.
package report
