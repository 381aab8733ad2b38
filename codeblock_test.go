package discordstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeBlock(t *testing.T) {
	tests := []struct {
		name string
		code string
		lang string
		want string
	}{
		{"empty no lang", "", "", "```\n\n```"},
		{"empty with lang", "", "py", "```py\n\n```"},
		{"str empty lang", "yolo", "", "```\nyolo\n```"},
		{"print", "print(1)", "py", "```py\nprint(1)\n```"},
		{
			"no lang",
			">>> Bold(\"hello\", \"world\")\n'**hello world**'",
			"",
			"```\n>>> Bold(\"hello\", \"world\")\n'**hello world**'\n```",
		},
		{
			"with lang",
			">>> Bold(\"hello\", \"world\")\n'**hello world**'",
			"py",
			"```py\n>>> Bold(\"hello\", \"world\")\n'**hello world**'\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := NewCodeBlock(tt.code, tt.lang)
			assert.Equal(t, tt.want, block.Render())
			assert.Equal(t, tt.code, block.Code())
			assert.Equal(t, tt.lang, block.Lang())
		})
	}
}

func TestCodeBlock_AsChild(t *testing.T) {
	msg := Plain(Bold("output:"), NewCodeBlock("ok", "")).WithSep("\n")
	assert.Equal(t, "**output:**\n```\nok\n```", msg.Render())
}
