package buffer

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Render returns the live content decoded as text. Content that is not valid
// under the buffer encoding yields a *DecodeError; nothing is substituted.
func (b *Buffer) Render() (string, error) {
	content := b.Bytes()
	if b.isUTF8() {
		if _, n, err := transform.Bytes(encoding.UTF8Validator, content); err != nil {
			return "", &DecodeError{Encoding: b.encodingName(), Offset: n, Err: err}
		}
		return string(content), nil
	}

	out, err := b.opt.Encoding.NewDecoder().Bytes(content)
	if err != nil {
		return "", &DecodeError{Encoding: b.encodingName(), Offset: -1, Err: err}
	}
	// x/text decoders substitute U+FFFD for bytes they cannot map.
	if i := bytes.IndexRune(out, utf8.RuneError); i >= 0 {
		return "", &DecodeError{
			Encoding: b.encodingName(),
			Offset:   -1,
			Err:      fmt.Errorf("unmappable input at decoded offset %d", i),
		}
	}
	return string(out), nil
}

// String renders the content, replacing undecodable input with U+FFFD.
func (b *Buffer) String() string {
	content := b.Bytes()
	if !b.isUTF8() {
		if out, err := b.opt.Encoding.NewDecoder().Bytes(content); err == nil {
			return string(out)
		}
	}
	out, _, err := transform.Bytes(runes.ReplaceIllFormed(), content)
	if err != nil {
		return string(content)
	}
	return string(out)
}

// Bytes returns a copy of the live content.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, 0, b.Len())
	out = append(out, b.buf[:b.gapStart]...)
	return append(out, b.buf[b.gapEnd:]...)
}

// Slice returns a copy of the content in [start, end).
func (b *Buffer) Slice(start, end int) ([]byte, error) {
	r := Range{Start: start, End: end}
	if !r.valid(b.Len()) {
		return nil, invalidRange(start, end, b.Len())
	}
	before, after := b.segments(r)
	out := make([]byte, 0, r.Len())
	out = append(out, before...)
	return append(out, after...), nil
}

// ByteAt returns the byte at offset off.
func (b *Buffer) ByteAt(off int) (byte, error) {
	if off < 0 || off >= b.Len() {
		return 0, outOfRange(off, b.Len())
	}
	return b.buf[b.toPhysical(off)], nil
}

// WriteTo writes the live content to w without copying it.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf[:b.gapStart])
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(b.buf[b.gapEnd:])
	return int64(n + m), err
}

func (b *Buffer) isUTF8() bool {
	return b.opt.Encoding == nil || b.opt.Encoding == unicode.UTF8
}

func (b *Buffer) encodingName() string {
	if b.opt.Encoding == nil {
		return "utf-8"
	}
	return EncodingName(b.opt.Encoding)
}

// EncodingName returns the WHATWG name of enc, or its Go representation when
// enc has none.
func EncodingName(enc encoding.Encoding) string {
	if name, err := htmlindex.Name(enc); err == nil {
		return name
	}
	return fmt.Sprint(enc)
}
