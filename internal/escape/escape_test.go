package escape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInlineMarkers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "inline md text",
			text: "*some italic* **bold** \\*pre-escaped\\* ~~ __ || ``",
			want: "\\*some italic\\* \\*\\*bold\\*\\* \\*pre-escaped\\* \\~\\~ \\_\\_ \\|\\| \\`\\`",
		},
		{name: "empty", text: "", want: ""},
		{name: "no markers", text: "plain text", want: "plain text"},
		{name: "already escaped", text: `\*x\*`, want: `\*x\*`},
		{name: "escaped backslash then marker", text: `\\*`, want: `\\\*`},
		{name: "three backslashes", text: `\\\*`, want: `\\\*`},
		{name: "four backslashes", text: `\\\\_`, want: `\\\\\_`},
		{name: "backslash not before marker", text: `a\b*`, want: `a\b\*`},
		{name: "trailing backslash", text: `x\`, want: `x\`},
		{name: "multibyte", text: "你好*世界*", want: "你好\\*世界\\*"},
		{name: "snake_case", text: "snake_case_name", want: "snake\\_case\\_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InlineMarkers(tt.text))
		})
	}
}

// TestInlineMarkers_Idempotent 转义后的文本再次转义应保持不变
func TestInlineMarkers_Idempotent(t *testing.T) {
	for _, text := range []string{"*x*", "__a__ ~~b~~", "||s|| `c`", `\\*`} {
		once := InlineMarkers(text)
		assert.Equal(t, once, InlineMarkers(once), "text %q", text)
	}
}

func TestBlockQuotes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "blockquote",
			text: "> this is some text\n>>> here's some text too\n>> this shouldn't be escaped",
			want: "\\> this is some text\n\\>>> here's some text too\n>> this shouldn't be escaped",
		},
		{name: "no space", text: ">quote", want: ">quote"},
		{name: "mid line", text: "a > b", want: "a > b"},
		{name: "second line", text: "line\n> quoted", want: "line\n\\> quoted"},
		{name: "four markers", text: ">>>> x", want: ">>>> x"},
		{name: "lone marker", text: ">", want: ">"},
		{name: "empty lines", text: "\n\n> x\n", want: "\n\n\\> x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BlockQuotes(tt.text))
		})
	}
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		timestamps bool
		want       string
	}{
		{name: "timestamp", text: "<t:12345>", timestamps: false, want: "<t:12345>"},
		{name: "timestamp with format", text: "<t:12345:f>", timestamps: false, want: "<t:12345:f>"},
		{name: "esc timestamp", text: "<t:12345>", timestamps: true, want: "\\<t:12345>"},
		{name: "esc timestamp with format", text: "<t:12345:f>", timestamps: true, want: "\\<t:12345:f>"},
		{name: "two letter style", text: "<t:12345:ff>", timestamps: true, want: "<t:12345:ff>"},
		{name: "not digits", text: "<t:abc>", timestamps: true, want: "<t:abc>"},
		{name: "quote and marker", text: "> *hi*", timestamps: true, want: "\\> \\*hi\\*"},
		{
			name:       "timestamp in sentence",
			text:       "see <t:1:R> and <t:2>",
			timestamps: true,
			want:       "see \\<t:1:R> and \\<t:2>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Markdown(tt.text, tt.timestamps))
		})
	}
}

func TestMentions(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		channels bool
		want     string
	}{
		{name: "username", text: "<@123456>", want: "<@\u200b123456>"},
		{name: "nickname", text: "<@!12345>", want: "<@!\u200b12345>"},
		{name: "role", text: "<@&12345>", want: "<@&\u200b12345>"},
		{name: "channel", text: "<#123456>", want: "<#123456>"},
		{name: "everyone here", text: "@everyone @here", want: "@\u200beveryone @\u200bhere"},
		{name: "case insensitive", text: "@EveryOne @HERE", want: "@\u200bEveryOne @\u200bHERE"},
		{name: "esc chan username", text: "<@123456>", channels: true, want: "<@\u200b123456>"},
		{name: "esc chan nickname", text: "<@!12345>", channels: true, want: "<@!\u200b12345>"},
		{name: "esc chan role", text: "<@&12345>", channels: true, want: "<@&\u200b12345>"},
		{name: "esc chan channel", text: "<#123456>", channels: true, want: "<#\u200b123456>"},
		{name: "not a mention", text: "<@abc> <#>", channels: true, want: "<@abc> <#>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mentions(tt.text, tt.channels))
		})
	}
}

const (
	etText    = "1 * 1 = 2, but 1 ** 2 = 4. <@!1234567890> @everyone "
	etChan    = "<#123456789> "
	etTS      = "<t:123456:f>"
	etEscText = "1 \\* 1 = 2, but 1 \\*\\* 2 = 4. <@!\u200b1234567890> @\u200beveryone "
	etEscChan = "<#\u200b123456789> "
	etEscTS   = "\\<t:123456:f>"
)

func TestEverything(t *testing.T) {
	text := etText + etChan + etTS
	tests := []struct {
		name       string
		timestamps bool
		channels   bool
		want       string
	}{
		{"no channel ts", false, false, etEscText + etChan + etTS},
		{"no channel", true, false, etEscText + etChan + etEscTS},
		{"no ts", false, true, etEscText + etEscChan + etTS},
		{"everything", true, true, etEscText + etEscChan + etEscTS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Everything(text, tt.timestamps, tt.channels))
		})
	}
}
