package discordstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitledURL(t *testing.T) {
	tests := []struct {
		name  string
		title any
		url   string
		want  string
	}{
		{"http no title", "", "http://miaow.io", "[](http://miaow.io)"},
		{"https no title", "", "https://miaow.io", "[](https://miaow.io)"},
		{"steam no title", "", "steam://friends/", "[](steam://friends/)"},
		{"http with title", "check this out", "http://miaow.io", "[check this out](http://miaow.io)"},
		{"https with title", "check this out", "https://miaow.io", "[check this out](https://miaow.io)"},
		{"steam with title", "check this out", "steam://friends/", "[check this out](steam://friends/)"},
		{"site", "site", "https://x.io", "[site](https://x.io)"},
		{"styled title", Bold("docs"), "https://x.io", "[**docs**](https://x.io)"},
		{"upper case scheme", "x", "HTTPS://X.IO", "[x](HTTPS://X.IO)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewTitledURL(tt.title, tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.Render())
			assert.Equal(t, tt.url, u.URL())
		})
	}
}

func TestNonEmbeddingURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"http", "http://miaow.io", "<http://miaow.io>"},
		{"https", "https://miaow.io", "<https://miaow.io>"},
		{"steam", "steam://friends/", "<steam://friends/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewNonEmbeddingURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestURL_Invalid(t *testing.T) {
	for _, url := range []string{"", "notaurl.com", "ftps://example.com", "ftp://x.io", "javascript:alert(1)"} {
		t.Run("titled "+url, func(t *testing.T) {
			u, err := NewTitledURL("title", url)
			assert.Nil(t, u)
			assertValidationCode(t, err, CodeInvalidURL)
		})
		t.Run("nonembedding "+url, func(t *testing.T) {
			u, err := NewNonEmbeddingURL(url)
			assert.Nil(t, u)
			assertValidationCode(t, err, CodeInvalidURL)
		})
	}
}

func TestAllowedURLSchemes_Copy(t *testing.T) {
	schemes := AllowedURLSchemes()
	assert.Equal(t, []string{"http://", "https://", "steam://"}, schemes)

	schemes[0] = "ftp://"
	assert.False(t, ValidURL("ftp://x.io"))
}
