package buffer

import "log/slog"

// moveGap slides the gap so that it starts at user offset off, moving only
// the bytes between the current gap and off. Calling it twice is a no-op the
// second time.
func (b *Buffer) moveGap(off int) {
	target := b.toPhysical(off)
	switch {
	case target > b.gapEnd:
		// [ab___cd|ef] -> [abcd___|ef]
		n := target - b.gapEnd
		copy(b.buf[b.gapStart:], b.buf[b.gapEnd:target])
		b.gapStart += n
		b.gapEnd += n
	case target < b.gapStart:
		// [ab|cd___ef] -> [ab___cd|ef]
		n := b.gapStart - target
		copy(b.buf[b.gapEnd-n:], b.buf[target:b.gapStart])
		b.gapStart -= n
		b.gapEnd -= n
	}
}

// ensureGap grows storage until the gap holds at least n bytes. The gap keeps
// its position; its size after growth is at least n + GapSize.
func (b *Buffer) ensureGap(n int) {
	if b.gapLen() >= n {
		return
	}

	length := b.Len()
	size := max(2*cap(b.buf), length+n+b.opt.GapSize)
	next := make([]byte, size)
	tail := len(b.buf) - b.gapEnd
	copy(next, b.buf[:b.gapStart])
	copy(next[size-tail:], b.buf[b.gapEnd:])

	b.opt.Logger.Debug("gap buffer grown",
		slog.Int("old_cap", cap(b.buf)),
		slog.Int("new_cap", size),
		slog.Int("len", length),
		slog.Int("need", n),
	)

	b.buf = next
	b.gapEnd = size - tail
}

// prepareInsert relocates the gap to off and makes room for n bytes.
func (b *Buffer) prepareInsert(off, n int) {
	b.moveGap(off)
	b.ensureGap(n)
}
