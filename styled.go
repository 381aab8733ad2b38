package discordstyle

import (
	"fmt"
	"strings"

	"github.com/riverfjs/discordstyle-go/internal/markup"
)

// Node is anything that renders to Discord markup.
type Node interface {
	Render() string
}

// Style selects the delimiters a StyledText wraps its content in.
type Style = markup.Style

const (
	StylePlain         = markup.Plain
	StyleItalic        = markup.Italic
	StyleBold          = markup.Bold
	StyleUnderline     = markup.Underline
	StyleStrikethrough = markup.Strikethrough
	StyleInlineCode    = markup.InlineCode
	StyleSpoiler       = markup.Spoiler
	StyleBlockQuote    = markup.BlockQuote
)

// DefaultSep is the separator placed between children unless WithSep is used.
const DefaultSep = " "

// StyledText joins its children with a separator and wraps the result in
// the delimiters of its style.
//
// Children may be other Nodes, fmt.Stringers, strings, or any value fmt can
// print. A StyledText is never modified after construction, so it can be
// rendered any number of times from any goroutine.
type StyledText struct {
	style Style
	objs  []any
	sep   string
}

// NewStyledText creates a StyledText with an explicit style and separator.
func NewStyledText(style Style, sep string, objs ...any) *StyledText {
	return &StyledText{
		style: style,
		objs:  append([]any(nil), objs...),
		sep:   sep,
	}
}

// Plain 无样式的容器，仅拼接子元素
func Plain(objs ...any) *StyledText {
	return NewStyledText(StylePlain, DefaultSep, objs...)
}

// Italic renders *content*.
func Italic(objs ...any) *StyledText {
	return NewStyledText(StyleItalic, DefaultSep, objs...)
}

// Bold renders **content**.
func Bold(objs ...any) *StyledText {
	return NewStyledText(StyleBold, DefaultSep, objs...)
}

// Underline renders __content__.
func Underline(objs ...any) *StyledText {
	return NewStyledText(StyleUnderline, DefaultSep, objs...)
}

// Strikethrough renders ~~content~~.
func Strikethrough(objs ...any) *StyledText {
	return NewStyledText(StyleStrikethrough, DefaultSep, objs...)
}

// InlineCode renders `content`.
func InlineCode(objs ...any) *StyledText {
	return NewStyledText(StyleInlineCode, DefaultSep, objs...)
}

// Spoiler renders ||content||.
func Spoiler(objs ...any) *StyledText {
	return NewStyledText(StyleSpoiler, DefaultSep, objs...)
}

// BlockQuote prefixes every line of the content with "> " and ends it with
// a newline, so text appended directly afterwards is not quoted as well.
func BlockQuote(objs ...any) *StyledText {
	return NewStyledText(StyleBlockQuote, DefaultSep, objs...)
}

// WithSep returns a copy of t that joins its children with sep.
func (t *StyledText) WithSep(sep string) *StyledText {
	return NewStyledText(t.style, sep, t.objs...)
}

// Style returns the style of t.
func (t *StyledText) Style() Style {
	return t.style
}

// Len returns the number of children.
func (t *StyledText) Len() int {
	return len(t.objs)
}

// Render joins the rendered children and applies the style.
func (t *StyledText) Render() string {
	return markup.Wrap(t.style, t.join())
}

// String implements fmt.Stringer.
func (t *StyledText) String() string {
	return t.Render()
}

func (t *StyledText) join() string {
	parts := make([]string, len(t.objs))
	for i, obj := range t.objs {
		parts[i] = renderObject(obj)
	}
	return strings.Join(parts, t.sep)
}

// renderObject 将任意子元素转换为字符串
func renderObject(obj any) string {
	switch v := obj.(type) {
	case Node:
		return v.Render()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
