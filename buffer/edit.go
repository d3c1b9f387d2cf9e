package buffer

// Insert operations never move the point: after InsertByte or InsertBytes the
// point still addresses the first inserted byte. Use InsertAndAdvance to
// leave the point after the inserted text.

// InsertByte inserts c at the point.
func (b *Buffer) InsertByte(c byte) {
	cb := b.beginChange()
	b.prepareInsert(b.point, 1)
	b.buf[b.gapStart] = c
	b.gapStart++
	cb.add(AppliedEdit{
		Range:    Range{Start: b.point, End: b.point},
		Inserted: []byte{c},
	})
	b.commit(cb)
}

// InsertBytes inserts p at the point with at most one reallocation.
func (b *Buffer) InsertBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	cb := b.beginChange()
	cb.add(b.insertAt(b.point, p))
	b.commit(cb)
}

func (b *Buffer) InsertString(s string) {
	b.InsertBytes([]byte(s))
}

// InsertAndAdvance inserts p at the point and moves the point past it.
func (b *Buffer) InsertAndAdvance(p []byte) {
	if len(p) == 0 {
		return
	}
	cb := b.beginChange()
	cb.add(b.insertAt(b.point, p))
	b.point += len(p)
	b.commit(cb)
}

// DeleteBackward removes the byte before the point and moves the point back
// by one. It returns ErrAtStart when the point is at offset 0.
func (b *Buffer) DeleteBackward() (byte, error) {
	if b.point == 0 {
		return 0, ErrAtStart
	}
	cb := b.beginChange()
	b.moveGap(b.point)
	c := b.buf[b.gapStart-1]
	b.gapStart--
	b.point--
	cb.add(AppliedEdit{
		Range:   Range{Start: b.point, End: b.point + 1},
		Deleted: []byte{c},
	})
	b.commit(cb)
	return c, nil
}

// DeleteForward removes the byte at the point. The point does not move.
// It returns ErrAtEnd when the point is at the end of the buffer.
func (b *Buffer) DeleteForward() (byte, error) {
	if b.point == b.Len() {
		return 0, ErrAtEnd
	}
	cb := b.beginChange()
	b.moveGap(b.point)
	c := b.buf[b.gapEnd]
	b.gapEnd++
	cb.add(AppliedEdit{
		Range:   Range{Start: b.point, End: b.point + 1},
		Deleted: []byte{c},
	})
	b.commit(cb)
	return c, nil
}

// RemoveRange removes [start, end) and returns the removed bytes.
//
// The point keeps its offset when it is at or before start, moves to start
// when it was inside the range, and shifts left by the range length when it
// was at or after end.
func (b *Buffer) RemoveRange(start, end int) ([]byte, error) {
	r := Range{Start: start, End: end}
	if !r.valid(b.Len()) {
		return nil, invalidRange(start, end, b.Len())
	}
	if r.IsEmpty() {
		return []byte{}, nil
	}

	cb := b.beginChange()
	removed := b.removeAt(r)
	b.point = shiftPoint(b.point, r, 0)
	cb.add(AppliedEdit{Range: r, Deleted: removed})
	b.commit(cb)
	return append([]byte(nil), removed...), nil
}

// Replace replaces [start, end) with p. The point follows the RemoveRange
// rules and then shifts right by len(p) if it was at or after end.
func (b *Buffer) Replace(start, end int, p []byte) error {
	r := Range{Start: start, End: end}
	if !r.valid(b.Len()) {
		return invalidRange(start, end, b.Len())
	}
	if r.IsEmpty() && len(p) == 0 {
		return nil
	}

	cb := b.beginChange()
	cb.add(b.replaceRange(r, p))
	b.commit(cb)
	return nil
}

// replaceRange applies one validated edit, adjusting the point.
func (b *Buffer) replaceRange(r Range, p []byte) AppliedEdit {
	applied := AppliedEdit{Range: r}
	if !r.IsEmpty() {
		applied.Deleted = b.removeAt(r)
	}
	if len(p) > 0 {
		applied.Inserted = b.insertAt(r.Start, p).Inserted
	}
	b.point = shiftPoint(b.point, r, len(p))
	return applied
}

// insertAt copies p into the gap at user offset off. The point is not
// adjusted.
func (b *Buffer) insertAt(off int, p []byte) AppliedEdit {
	b.prepareInsert(off, len(p))
	n := copy(b.buf[b.gapStart:], p)
	b.gapStart += n
	return AppliedEdit{
		Range:    Range{Start: off, End: off},
		Inserted: append([]byte(nil), p...),
	}
}

// removeAt swallows r into the gap and returns a copy of the removed bytes.
// The point is not adjusted.
func (b *Buffer) removeAt(r Range) []byte {
	b.moveGap(r.Start)
	n := r.Len()
	removed := append([]byte(nil), b.buf[b.gapEnd:b.gapEnd+n]...)
	b.gapEnd += n
	return removed
}

func shiftPoint(pt int, r Range, inserted int) int {
	switch {
	case pt <= r.Start:
		return pt
	case r.Contains(pt):
		return r.Start
	default:
		return pt - r.Len() + inserted
	}
}
