package editor

import "github.com/iw2rmb/gapbuf/buffer"

type ChangeEvent struct {
	Version uint64
	Point   int
	Len     int

	// Edits holds the content edits behind this event; empty when only the
	// point moved.
	Edits []buffer.AppliedEdit

	// Text is the rendered content with undecodable bytes replaced.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Point:   b.Point(),
		Len:     b.Len(),
		Text:    b.String(),
	}
	if ch, ok := b.LastChange(); ok && ch.VersionAfter == ev.Version {
		ev.Edits = ch.Edits
	}
	return ev
}
