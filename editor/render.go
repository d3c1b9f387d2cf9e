package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/iw2rmb/gapbuf/buffer"
	graphemeutil "github.com/iw2rmb/gapbuf/internal/grapheme"
)

// lineEnds keeps carriage returns out of the view; a raw \r would move the
// terminal cursor back to column 0.
var lineEnds = strings.NewReplacer("\r\n", "\n", "\r", " ")

// renderContent draws the buffer as styled lines and records the row that
// holds the point.
func (m *Model) renderContent() string {
	if m.buf == nil {
		m.cursorRow = 0
		return ""
	}

	content := m.buf.Bytes()
	pt := m.buf.Point()
	before := lineEnds.Replace(m.decode(content[:pt]))
	after := lineEnds.Replace(m.decode(content[pt:]))

	tab := strings.Repeat(" ", m.cfg.TabWidth)
	head := strings.Split(strings.ReplaceAll(before, "\t", tab), "\n")
	m.cursorRow = len(head) - 1

	var cell string
	if m.focused {
		cell, after = cursorCell(after, m.cfg.TabWidth)
	}
	tail := strings.Split(strings.ReplaceAll(after, "\t", tab), "\n")

	textStyle := m.cfg.Style.Text
	out := make([]string, 0, len(head)+len(tail)-1)
	for _, line := range head[:len(head)-1] {
		out = append(out, textStyle.Render(line))
	}

	var sb strings.Builder
	if s := head[len(head)-1]; s != "" {
		sb.WriteString(textStyle.Render(s))
	}
	if m.focused {
		sb.WriteString(m.cfg.Style.Cursor.Render(cell))
	}
	if s := tail[0]; s != "" {
		sb.WriteString(textStyle.Render(s))
	}
	out = append(out, sb.String())

	for _, line := range tail[1:] {
		out = append(out, textStyle.Render(line))
	}
	return strings.Join(out, "\n")
}

// cursorCell splits the cluster under the cursor off rest. Line ends, tabs
// and the end of the buffer show as a blank cell.
func cursorCell(rest string, tabWidth int) (cell, remaining string) {
	if rest == "" {
		return " ", ""
	}
	n := graphemeutil.Next([]byte(rest), 0)
	cluster := rest[:n]
	switch cluster {
	case "\n":
		return " ", rest
	case "\t":
		return " ", strings.Repeat(" ", tabWidth-1) + rest[n:]
	}
	return cluster, rest[n:]
}

// decode turns raw buffer bytes into displayable text. Bytes that do not
// decode show as U+FFFD.
func (m *Model) decode(p []byte) string {
	if !m.cfg.isUTF8() {
		if out, err := m.cfg.Encoding.NewDecoder().Bytes(p); err == nil {
			return string(out)
		}
	}
	out, _, err := transform.Bytes(runes.ReplaceIllFormed(), p)
	if err != nil {
		return string(p)
	}
	return string(out)
}

func (m *Model) renderStatus() string {
	if m.buf == nil {
		return ""
	}
	s := fmt.Sprintf("len %d  cap %d  point %d  v%d",
		m.buf.Len(), m.buf.Cap(), m.buf.Point(), m.buf.Version())
	if !m.cfg.isUTF8() {
		s += "  " + buffer.EncodingName(m.cfg.Encoding)
	}
	if m.cfg.ReadOnly {
		s += "  [ro]"
	}

	st := m.cfg.Style.Status
	if m.width > 0 {
		s = runewidth.Truncate(s, m.width, "")
		st = st.Width(m.width)
	}
	return st.Render(s)
}
