// Package grapheme locates grapheme cluster boundaries in byte slices.
//
// The gap buffer itself is byte-oriented; the editor uses these helpers to
// step the point over whole clusters so multi-byte text is never split.
package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Next returns the byte offset of the boundary after the cluster starting at
// off. Offsets at or past the end return len(text).
func Next(text []byte, off int) int {
	if off < 0 {
		off = 0
	}
	if off >= len(text) {
		return len(text)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(text[off:], -1)
	return off + len(cluster)
}

// Prev returns the byte offset of the boundary before off. Offsets at or
// before 0 return 0.
func Prev(text []byte, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(text) {
		off = len(text)
	}
	prev, pos := 0, 0
	state := -1
	rest := text
	for pos < off && len(rest) > 0 {
		var cluster []byte
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
		prev = pos
		pos += len(cluster)
	}
	return prev
}

// Width returns the terminal cell width of a cluster. Control characters and
// zero-width clusters report 1 so a cursor drawn over them stays visible.
func Width(cluster string) int {
	if w := runewidth.StringWidth(cluster); w > 0 {
		return w
	}
	return 1
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
