package editor

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gapbuf/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertText(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.movePoint(m.prev(m.buf.Bytes(), m.buf.Point()))
	case key.Matches(msg, km.Right):
		m.movePoint(m.next(m.buf.Bytes(), m.buf.Point()))
	case key.Matches(msg, km.WordLeft):
		m.movePoint(m.wordLeft(m.buf.Bytes(), m.buf.Point()))
	case key.Matches(msg, km.WordRight):
		m.movePoint(m.wordRight(m.buf.Bytes(), m.buf.Point()))
	case key.Matches(msg, km.Home):
		m.movePoint(lineStart(m.buf.Bytes(), m.buf.Point()))
	case key.Matches(msg, km.End):
		m.movePoint(lineEnd(m.buf.Bytes(), m.buf.Point()))
	case key.Matches(msg, km.DocStart):
		m.buf.MoveToStart()
	case key.Matches(msg, km.DocEnd):
		m.buf.MoveToEnd()

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			pt := m.buf.Point()
			_, _ = m.buf.RemoveRange(m.prev(m.buf.Bytes(), pt), pt)
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			pt := m.buf.Point()
			_, _ = m.buf.RemoveRange(pt, m.next(m.buf.Bytes(), pt))
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.insertText("\n")
		}

	case key.Matches(msg, km.Kill):
		if !m.cfg.ReadOnly {
			m.killLine()
		}
	case key.Matches(msg, km.Yank):
		if !m.cfg.ReadOnly {
			m.yank()
		}

	default:
		if msg.Type == tea.KeyTab {
			if !m.cfg.ReadOnly {
				m.insertText("\t")
			}
			return m, nil
		}
		if msg.Type == tea.KeySpace {
			if !m.cfg.ReadOnly {
				m.insertText(" ")
			}
			return m, nil
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.insertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

// insertText encodes s into the buffer encoding, inserts it at the point and
// advances the point past it.
func (m Model) insertText(s string) {
	p := []byte(s)
	if enc := m.cfg.Encoding; enc != nil {
		encoded, err := enc.NewEncoder().Bytes(p)
		if err != nil {
			// Not representable in the buffer encoding.
			return
		}
		p = encoded
	}
	m.buf.InsertAndAdvance(p)
}

func (m Model) movePoint(off int) {
	// Offsets come from the current content, so they are always in range.
	_ = m.buf.SetPoint(off)
}

// killLine removes from the point to the end of the line, or the newline
// itself when the point is already there, and hands it to the clipboard.
func (m Model) killLine() {
	content := m.buf.Bytes()
	pt := m.buf.Point()
	end := lineEnd(content, pt)
	if end == pt && end < len(content) {
		end++
	}
	removed, err := m.buf.RemoveRange(pt, end)
	if err != nil || len(removed) == 0 {
		return
	}
	if m.cfg.Clipboard != nil {
		_ = m.cfg.Clipboard.WriteText(string(removed))
	}
}

func (m Model) yank() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	m.insertText(s)
}

func lineStart(content []byte, off int) int {
	return bytes.LastIndexByte(content[:off], '\n') + 1
}

func lineEnd(content []byte, off int) int {
	if i := bytes.IndexByte(content[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(content)
}

// next and prev step over one grapheme cluster in UTF-8 content and over one
// byte in any other encoding.
func (m Model) next(content []byte, off int) int {
	if m.cfg.isUTF8() {
		return grapheme.Next(content, off)
	}
	return min(off+1, len(content))
}

func (m Model) prev(content []byte, off int) int {
	if m.cfg.isUTF8() {
		return grapheme.Prev(content, off)
	}
	return max(off-1, 0)
}

func (m Model) wordRight(content []byte, off int) int {
	for off < len(content) {
		next := m.next(content, off)
		if !grapheme.IsSpace(string(content[off:next])) {
			break
		}
		off = next
	}
	for off < len(content) {
		next := m.next(content, off)
		if grapheme.IsSpace(string(content[off:next])) {
			break
		}
		off = next
	}
	return off
}

func (m Model) wordLeft(content []byte, off int) int {
	for off > 0 {
		prev := m.prev(content, off)
		if !grapheme.IsSpace(string(content[prev:off])) {
			break
		}
		off = prev
	}
	for off > 0 {
		prev := m.prev(content, off)
		if grapheme.IsSpace(string(content[prev:off])) {
			break
		}
		off = prev
	}
	return off
}
