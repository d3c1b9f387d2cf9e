package buffer

// Move shifts the point by delta bytes, clamped into [0, Len()], and returns
// the distance actually moved. The gap is not touched.
func (b *Buffer) Move(delta int) int {
	prev := b.point
	b.setPoint(clampInt(prev+delta, 0, b.Len()))
	return b.point - prev
}

func (b *Buffer) MoveToStart() { b.setPoint(0) }

func (b *Buffer) MoveToEnd() { b.setPoint(b.Len()) }
