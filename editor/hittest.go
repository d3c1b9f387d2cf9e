package editor

import (
	graphemeutil "github.com/iw2rmb/gapbuf/internal/grapheme"
)

// screenToOffset maps viewport-local mouse coordinates to a byte offset.
//
// Coordinates are in terminal cells; (0,0) is the top-left of the visible
// content. Rows past the last line clamp to it and columns past the line end
// clamp to the line end. A click on the right half of a wide cluster still
// lands before it.
func (m *Model) screenToOffset(x, y int) int {
	if m.buf == nil {
		return 0
	}
	content := m.buf.Bytes()

	row := m.viewport.YOffset + y
	if row < 0 {
		row = 0
	}
	start := 0
	for ; row > 0; row-- {
		end := lineEnd(content, start)
		if end == len(content) {
			break
		}
		start = end + 1
	}
	end := lineEnd(content, start)

	if x <= 0 {
		return start
	}
	utf8 := m.cfg.isUTF8()
	col := 0
	for off := start; off < end; {
		next := off + 1
		w := 1
		switch {
		case content[off] == '\t':
			w = m.cfg.TabWidth
		case utf8:
			next = graphemeutil.Next(content, off)
			w = graphemeutil.Width(string(content[off:next]))
		}
		if col+w > x {
			return off
		}
		col += w
		off = next
	}
	return end
}
