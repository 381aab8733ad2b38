package discordstyle

import (
	"github.com/riverfjs/discordstyle-go/internal/escape"
)

// ZeroWidthSpace is inserted after a mention sigil to break the mention.
const ZeroWidthSpace = escape.ZeroWidthSpace

// EscapeMarkdown escapes markdown-like formatting so Discord shows it
// literally.
//
// Inline markers (_ * ~ | `) get a backslash unless they are already
// escaped, quote markers at the start of a line are escaped, and, when
// escTimestamps is set, smart timestamps such as <t:123:f> are escaped too.
func EscapeMarkdown(text string, escTimestamps bool) string {
	return escape.Markdown(text, escTimestamps)
}

// EscapeMentions escapes user, role, @everyone/@here and, when escChannels
// is set, channel mentions by inserting ZeroWidthSpace after the sigil.
func EscapeMentions(text string, escChannels bool) string {
	return escape.Mentions(text, escChannels)
}

// EscapeEverything is EscapeMarkdown followed by EscapeMentions.
func EscapeEverything(text string, escTimestamps, escChannels bool) string {
	return escape.Everything(text, escTimestamps, escChannels)
}
