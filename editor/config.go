package editor

import (
	"log/slog"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer, already in Encoding.
	Text string

	// Forwarded to buffer.Options.
	Capacity int
	GapSize  int
	Logger   *slog.Logger

	// Encoding of the buffer content. Typed text is encoded with it and the
	// view decodes with it. nil means UTF-8. Only UTF-8 and single-byte
	// encodings step the cursor correctly.
	Encoding encoding.Encoding

	ReadOnly   bool
	ShowStatus bool
	TabWidth   int // default: 4

	Style     Style
	KeyMap    KeyMap // zero value: DefaultKeyMap()
	Clipboard Clipboard

	// OnChange is called after any update that changed the buffer version.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}

func (c Config) isUTF8() bool {
	return c.Encoding == nil || c.Encoding == unicode.UTF8
}
