package buffer

// toPhysical maps a user offset in [0, Len()] to a storage index.
// Offsets before the gap are unchanged; the rest shift right by the gap.
func (b *Buffer) toPhysical(off int) int {
	if off < b.gapStart {
		return off
	}
	return off + b.gapLen()
}

// toUser maps a storage index to a user offset. Indexes inside the gap
// collapse to the gap boundary.
func (b *Buffer) toUser(phys int) int {
	switch {
	case phys < b.gapStart:
		return phys
	case phys >= b.gapEnd:
		return phys - b.gapLen()
	default:
		return b.gapStart
	}
}

// segments returns the live content as the bytes before and after the gap,
// restricted to the user range r. Both slices alias storage.
func (b *Buffer) segments(r Range) (before, after []byte) {
	start, end := b.toPhysical(r.Start), b.toPhysical(r.End)
	if r.End == b.gapStart && r.Start < r.End {
		// A non-empty range ending at the gap stays left of it.
		end = b.gapStart
	}
	switch {
	case end <= b.gapStart:
		return b.buf[start:end], nil
	case start >= b.gapEnd:
		return nil, b.buf[start:end]
	default:
		return b.buf[start:b.gapStart], b.buf[b.gapEnd:end]
	}
}
