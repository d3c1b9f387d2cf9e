package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gapbuf/buffer"
)

// Model is a Bubble Tea component that renders and edits a gap buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	width    int

	lastBufVersion uint64
	cursorRow      int
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg: cfg,
		buf: buffer.NewFromString(cfg.Text, buffer.Options{
			Capacity: cfg.Capacity,
			GapSize:  cfg.GapSize,
			Encoding: cfg.Encoding,
			Logger:   cfg.Logger,
		}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if m.cfg.ShowStatus && height > 0 {
		height--
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		// Don't force-follow the cursor; allow manual scrolling via mouse wheel.
		m.syncFromBuffer()
		return m, cmd
	}

	// Rebuild content in case the host mutated the buffer outside of the editor.
	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, cmd
}

func (m Model) View() string {
	if !m.cfg.ShowStatus {
		return m.viewport.View()
	}
	return m.viewport.View() + "\n" + m.renderStatus()
}

// syncFromBuffer re-renders after a buffer version change and notifies the
// host. It reports whether anything changed.
func (m *Model) syncFromBuffer() bool {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return false
	}
	m.lastBufVersion = ver
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if m.cursorRow < y {
		m.viewport.SetYOffset(m.cursorRow)
		return
	}
	if m.cursorRow >= y+h {
		m.viewport.SetYOffset(m.cursorRow - h + 1)
	}
}
