package buffer

import (
	"strings"
	"unicode/utf8"
)

// TextBuffer accumulates markup and tracks its length in characters.
//
// Discord limits messages by character count, so the buffer counts runes
// rather than bytes.
type TextBuffer struct {
	parts []string
	runes int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.runes += utf8.RuneCountInString(text)
}

// RuneCount returns the number of characters written so far.
func (tb *TextBuffer) RuneCount() int {
	return tb.runes
}

// ByteOffset returns the current byte offset (total string length).
func (tb *TextBuffer) ByteOffset() int {
	total := 0
	for _, p := range tb.parts {
		total += len(p)
	}
	return total
}

// Mark returns a position that can later be passed to Cut.
func (tb *TextBuffer) Mark() int {
	return len(tb.parts)
}

// Cut removes everything written since mark and returns it.
// Used to wrap finished inline content in its delimiters.
func (tb *TextBuffer) Cut(mark int) string {
	if mark < 0 || mark >= len(tb.parts) {
		return ""
	}
	tail := strings.Join(tb.parts[mark:], "")
	tb.parts = tb.parts[:mark]
	tb.runes -= utf8.RuneCountInString(tail)
	return tail
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	count := 0
	for i := len(tb.parts) - 1; i >= 0; i-- {
		part := tb.parts[i]
		for j := len(part) - 1; j >= 0; j-- {
			if part[j] == '\n' {
				count++
			} else {
				return count
			}
		}
	}
	return count
}

// PopLast removes and returns the last written part.
// Used for replacing just-written bullet prefixes in task lists.
func (tb *TextBuffer) PopLast() string {
	if len(tb.parts) == 0 {
		return ""
	}
	last := tb.parts[len(tb.parts)-1]
	tb.parts = tb.parts[:len(tb.parts)-1]
	tb.runes -= utf8.RuneCountInString(last)
	return last
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return strings.Join(tb.parts, "")
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
	tb.runes = 0
}
