// Package escape neutralizes Discord markup and mention syntax in user text.
//
// Every function here is pure and total: any string is valid input and the
// result is always a string. Rules run as separate passes in a fixed order,
// each pass scanning the output of the previous one.
package escape

import (
	"regexp"
	"strings"
)

// ZeroWidthSpace 插入在提及符号之后，使客户端不再识别为有效提及
const ZeroWidthSpace = "\u200b"

var (
	// <t:123> or <t:123:f>
	timestampRe = regexp.MustCompile(`<t:[0-9]+(?::[a-zA-Z])?>`)

	// <@id>, <@!id>, <@&id>, <#id>
	userRoleChannelRe = regexp.MustCompile(`<(@[!&]?|#)([0-9]+)>`)
	userRoleRe        = regexp.MustCompile(`<(@[!&]?)([0-9]+)>`)
	mentionSub        = "<${1}" + ZeroWidthSpace + "${2}>"

	everyoneHereRe  = regexp.MustCompile(`(?i)@(everyone|here)`)
	everyoneHereSub = "@" + ZeroWidthSpace + "${1}"
)

// Markdown escapes inline markers and block quote markers, and timestamps
// when timestamps is true.
func Markdown(text string, timestamps bool) string {
	text = InlineMarkers(text)
	text = BlockQuotes(text)
	if timestamps {
		text = Timestamps(text)
	}
	return text
}

// Mentions escapes @everyone/@here and user/role mentions, and channel
// mentions when channels is true.
func Mentions(text string, channels bool) string {
	text = everyoneHereRe.ReplaceAllString(text, everyoneHereSub)
	if channels {
		return userRoleChannelRe.ReplaceAllString(text, mentionSub)
	}
	return userRoleRe.ReplaceAllString(text, mentionSub)
}

// Everything is Markdown followed by Mentions.
func Everything(text string, timestamps, channels bool) string {
	return Mentions(Markdown(text, timestamps), channels)
}

// isInlineMarker 判断字节是否为内联样式标记
func isInlineMarker(c byte) bool {
	switch c {
	case '_', '*', '~', '|', '`':
		return true
	}
	return false
}

// InlineMarkers puts a backslash in front of every unescaped _ * ~ | and backtick.
//
// A marker is already escaped when the run of backslashes directly to its
// left has odd length; an even run is made of escaped backslashes and leaves
// the marker live. All markers and the backslash are ASCII, so scanning bytes
// never splits a multi-byte rune.
func InlineMarkers(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + len(text)/8)

	backslashes := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isInlineMarker(c) && backslashes%2 == 0 {
			sb.WriteByte('\\')
		}
		if c == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// BlockQuotes escapes a leading "> " or ">>> " on every line. A line starting
// with ">>" that is not followed by "> " is not quote syntax and is kept.
func BlockQuotes(text string) string {
	if !strings.Contains(text, ">") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "> ") || strings.HasPrefix(line, ">>> ") {
			lines[i] = `\` + line
		}
	}
	return strings.Join(lines, "\n")
}

// Timestamps escapes well-formed smart timestamps as a whole.
func Timestamps(text string) string {
	return timestampRe.ReplaceAllString(text, `\${0}`)
}
