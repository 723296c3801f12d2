// Package display renders game text for a terminal.
package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is used when a non-positive width is requested.
const DefaultWidth = 80

// Wrap word-wraps text to width, preserving existing line breaks.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

// Center pads s with spaces so it sits in the middle of a field of the given width.
// Strings at least as wide as the field are returned unchanged.
func Center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
