package buffer

import (
	"log/slog"

	"golang.org/x/text/encoding"
)

const (
	// DefaultCapacity is the storage size of a buffer created by New.
	DefaultCapacity = 10

	// DefaultGapSize is the free space left after content copied by NewFrom,
	// and the minimum reserve kept after every growth.
	DefaultGapSize = 16
)

type Options struct {
	Capacity int // default: DefaultCapacity
	GapSize  int // default: DefaultGapSize

	// Encoding is the text encoding Render decodes with. nil means UTF-8.
	Encoding encoding.Encoding

	// Logger receives debug events (storage growth). nil discards them.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Capacity <= 0 {
		o.Capacity = DefaultCapacity
	}
	if o.GapSize <= 0 {
		o.GapSize = DefaultGapSize
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Buffer is a gap buffer over bytes.
//
// buf holds the content with an unused region [gapStart, gapEnd) in the
// middle. len(buf) == cap(buf) at all times.
type Buffer struct {
	buf      []byte
	gapStart int
	gapEnd   int

	point   int
	version uint64

	lastChange    Change
	hasLastChange bool

	opt Options
}

// New returns an empty buffer whose gap spans the whole initial allocation.
func New(opt Options) *Buffer {
	opt = opt.withDefaults()
	return &Buffer{
		buf:    make([]byte, opt.Capacity),
		gapEnd: opt.Capacity,
		opt:    opt,
	}
}

// NewFrom returns a buffer holding a copy of content, with the gap placed at
// the tail and the point at offset 0.
func NewFrom(content []byte, opt Options) *Buffer {
	opt = opt.withDefaults()
	n := len(content)
	size := max(n+opt.GapSize, opt.Capacity)
	buf := make([]byte, size)
	copy(buf, content)
	return &Buffer{
		buf:      buf,
		gapStart: n,
		gapEnd:   size,
		opt:      opt,
	}
}

func NewFromString(content string, opt Options) *Buffer {
	return NewFrom([]byte(content), opt)
}

// Len returns the length of the live content in bytes.
func (b *Buffer) Len() int { return len(b.buf) - b.gapLen() }

// Cap returns the allocated storage size, gap included.
func (b *Buffer) Cap() int { return cap(b.buf) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Point() int { return b.point }

// SetPoint moves the point to off. off == Len() is the end-of-buffer
// position. The gap is not touched.
func (b *Buffer) SetPoint(off int) error {
	if off < 0 || off > b.Len() {
		return outOfRange(off, b.Len())
	}
	b.setPoint(off)
	return nil
}

func (b *Buffer) setPoint(off int) {
	if off == b.point {
		return
	}
	b.point = off
	b.version++
}

func (b *Buffer) gapLen() int { return b.gapEnd - b.gapStart }
