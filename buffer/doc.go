// Package buffer implements a byte-oriented gap buffer for text editing.
//
// Offsets are 0-based byte offsets into the live content; the gap is never
// visible through the API. Ranges are half-open: [Start, End).
//
// The buffer does not know about lines, runes or grapheme clusters. Callers
// that edit text are responsible for not splitting multi-byte sequences.
//
// A Buffer is not safe for concurrent use.
package buffer
