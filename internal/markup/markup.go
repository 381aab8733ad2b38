// Package markup holds the literal forms of Discord's markup dialect.
//
// Both the public style types and the Markdown converter build their output
// from these helpers so the two can never disagree on a delimiter.
package markup

import (
	"strings"
)

// Style 标识一种内联样式
type Style int

const (
	Plain Style = iota
	Italic
	Bold
	Underline
	Strikethrough
	InlineCode
	Spoiler
	BlockQuote
)

// delimiters 每种样式在拼接后的内容两侧添加的固定前后缀
var delimiters = map[Style]string{
	Plain:         "",
	Italic:        "*",
	Bold:          "**",
	Underline:     "__",
	Strikethrough: "~~",
	InlineCode:    "`",
	Spoiler:       "||",
}

// String returns the name of the style.
func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Italic:
		return "italic"
	case Bold:
		return "bold"
	case Underline:
		return "underline"
	case Strikethrough:
		return "strikethrough"
	case InlineCode:
		return "inline_code"
	case Spoiler:
		return "spoiler"
	case BlockQuote:
		return "blockquote"
	default:
		return "unknown"
	}
}

// Delimiter returns the fixed delimiter of an inline style. BlockQuote and
// unknown styles have none.
func Delimiter(s Style) string {
	return delimiters[s]
}

// Wrap applies style s to already joined content.
func Wrap(s Style, content string) string {
	if s == BlockQuote {
		return Quote(content)
	}
	d := delimiters[s]
	return d + content + d
}

// Quote prefixes every line of content with "> ".
//
// The trailing newline keeps text that is concatenated right after the
// quote from being absorbed into it.
func Quote(content string) string {
	return "> " + strings.ReplaceAll(content, "\n", "\n> ") + "\n"
}

// Fence wraps code in a triple-backtick block. The code is not escaped.
func Fence(code, lang string) string {
	return "```" + lang + "\n" + code + "\n```"
}

// TitledLink renders a masked link.
func TitledLink(title, url string) string {
	return "[" + title + "](" + url + ")"
}

// BareLink renders a link that the client will not embed.
func BareLink(url string) string {
	return "<" + url + ">"
}

// AllowedSchemes Discord 只渲染这些协议的链接
var AllowedSchemes = []string{"http://", "https://", "steam://"}

// ValidURL reports whether url starts with one of AllowedSchemes, ignoring case.
func ValidURL(url string) bool {
	for _, scheme := range AllowedSchemes {
		if len(url) >= len(scheme) && strings.EqualFold(url[:len(scheme)], scheme) {
			return true
		}
	}
	return false
}
