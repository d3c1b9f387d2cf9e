package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports an offset beyond the live content.
	ErrOutOfRange = errors.New("offset out of range")

	// ErrInvalidRange reports a range with start > end, a bound outside the
	// content, or overlapping edits in a batch.
	ErrInvalidRange = errors.New("invalid range")

	// ErrAtStart reports a backward deletion with the point at offset 0.
	ErrAtStart = errors.New("nothing before point")

	// ErrAtEnd reports a forward deletion with the point at the end.
	ErrAtEnd = errors.New("nothing after point")

	// ErrDecode reports content that is not valid under the buffer encoding.
	ErrDecode = errors.New("invalid encoded text")
)

// DecodeError is returned by Render when the live content cannot be decoded.
type DecodeError struct {
	Encoding string
	// Offset is the byte offset of the first undecodable input, or -1 when
	// the decoder does not report one.
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("decode %s at offset %d: %v", e.Encoding, e.Offset, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }

func outOfRange(off, n int) error {
	return fmt.Errorf("offset %d not in [0, %d]: %w", off, n, ErrOutOfRange)
}

func invalidRange(start, end, n int) error {
	return fmt.Errorf("range [%d, %d) not within [0, %d]: %w", start, end, n, ErrInvalidRange)
}
