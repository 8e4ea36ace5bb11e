// Package dataset reads two-column (x, y) sample sets.
//
// The default parser is permissive: the input is read as a stream of
// whitespace-separated numbers taken in pairs, and reading stops quietly at the
// first token that is not a finite number. A trailing x without its y is dropped.
// Stats tells the caller whether and where the input was cut short.
//
// WithStrict switches to a line-oriented parser that skips blank lines and
// '#' comments and rejects every other line that does not hold exactly two finite
// numbers with a *ParseError.
//
// Load reads a file and decompresses it first when its extension (.zst, .s2,
// .lz4) or leading magic bytes identify a compressed payload.
package dataset
