// Package editor provides a Bubble Tea text editor component backed by a
// gap buffer from the buffer package.
//
// The component owns one buffer and drives it from key input: typed text is
// inserted at the point and the point advanced past it, cursor movement steps
// over whole grapheme clusters, and rendering splits the content at the point
// to draw the cursor. Hosts may mutate the buffer directly between updates;
// the next Update picks the change up through the buffer version.
package editor
