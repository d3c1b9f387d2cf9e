package editor

// Clipboard provides editor-level clipboard integration for kill and yank.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
