package discordstyle

import (
	"github.com/riverfjs/discordstyle-go/internal/markup"
)

// CodeBlock is a fenced block of code, optionally tagged with a language
// for syntax highlighting. The code is emitted verbatim, never escaped.
type CodeBlock struct {
	code string
	lang string
}

// NewCodeBlock creates a code block. An empty lang leaves the fence untagged.
func NewCodeBlock(code, lang string) *CodeBlock {
	return &CodeBlock{code: code, lang: lang}
}

// Code returns the raw code.
func (c *CodeBlock) Code() string {
	return c.code
}

// Lang returns the language tag, "" when untagged.
func (c *CodeBlock) Lang() string {
	return c.lang
}

// Render implements Node.
func (c *CodeBlock) Render() string {
	return markup.Fence(c.code, c.lang)
}

// String implements fmt.Stringer.
func (c *CodeBlock) String() string {
	return c.Render()
}
