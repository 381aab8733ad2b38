package discordstyle

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessMarkdown_Text(t *testing.T) {
	contents, err := ProcessMarkdown(context.Background(), "**hi** <@1>")
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(*Text)
	require.True(t, ok)
	assert.Equal(t, "**hi** <@\u200b1>", text.Text)
	assert.Equal(t, ContentTypeText, text.GetContentType())
	assert.Equal(t, "text", text.GetContentTrace().SourceType)
}

func TestProcessMarkdown_CodeFile(t *testing.T) {
	md := "intro\n\n```python\na = 1\nb = 2\nc = 3\nd = 4\n```\n\noutro\n\n```python\nshort()\n```"
	contents, err := Process(context.Background(), md, WithCodeFileLines(3))
	require.NoError(t, err)
	require.Len(t, contents, 3)

	assert.Equal(t, "intro", contents[0].(*Text).Text)

	file, ok := contents[1].(*File)
	require.True(t, ok)
	assert.Equal(t, ContentTypeFile, file.GetContentType())
	assert.Equal(t, "snippet.py", file.FileName)
	assert.Equal(t, "a = 1\nb = 2\nc = 3\nd = 4", string(file.FileData))
	assert.Equal(t, "python", file.GetContentTrace().Extra["language"])

	assert.Equal(t, "outro\n\n```python\nshort()\n```", contents[2].(*Text).Text)
}

func TestProcessMarkdown_Splits(t *testing.T) {
	md := strings.Repeat("word ", 30) + "\n\n" + strings.Repeat("more ", 30)
	contents, err := ProcessMarkdown(context.Background(), md, WithMaxLength(100))
	require.NoError(t, err)
	assert.Greater(t, len(contents), 2)
	for _, c := range contents {
		assert.LessOrEqual(t, len([]rune(c.(*Text).Text)), 100)
	}
}

func TestProcessMarkdown_Empty(t *testing.T) {
	contents, err := ProcessMarkdown(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestProcessMarkdown_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	contents, err := ProcessMarkdown(ctx, "```go\nx\n```")
	assert.Nil(t, contents)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok)
	assert.Equal(t, "PIPELINE_CANCELLED", oopsErr.Code())
	assert.False(t, IsValidationError(err))
}
