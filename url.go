package discordstyle

import (
	"strings"

	"github.com/riverfjs/discordstyle-go/internal/markup"
)

// AllowedURLSchemes lists the prefixes Discord renders as links.
// Matching is case-insensitive.
func AllowedURLSchemes() []string {
	return append([]string(nil), markup.AllowedSchemes...)
}

// ValidURL reports whether url starts with an allowed scheme.
func ValidURL(url string) bool {
	return markup.ValidURL(url)
}

func checkURL(url string) error {
	if !markup.ValidURL(url) {
		return validationError(CodeInvalidURL).
			With("url", url).
			Errorf("the URL must start with one of: %s", strings.Join(markup.AllowedSchemes, ", "))
	}
	return nil
}

// TitledURL is a masked link, [title](url).
type TitledURL struct {
	title any
	url   string
}

// NewTitledURL creates a masked link. title is usually a string or a Node
// such as Bold("docs"); it is rendered like a StyledText child.
func NewTitledURL(title any, url string) (*TitledURL, error) {
	if err := checkURL(url); err != nil {
		return nil, err
	}
	return &TitledURL{title: title, url: url}, nil
}

// URL returns the link target.
func (u *TitledURL) URL() string {
	return u.url
}

// Render implements Node.
func (u *TitledURL) Render() string {
	title := ""
	if u.title != nil {
		title = renderObject(u.title)
	}
	return markup.TitledLink(title, u.url)
}

// String implements fmt.Stringer.
func (u *TitledURL) String() string {
	return u.Render()
}

// NonEmbeddingURL is a link the client shows without an embed preview, <url>.
type NonEmbeddingURL struct {
	url string
}

// NewNonEmbeddingURL creates a link that suppresses its embed.
func NewNonEmbeddingURL(url string) (*NonEmbeddingURL, error) {
	if err := checkURL(url); err != nil {
		return nil, err
	}
	return &NonEmbeddingURL{url: url}, nil
}

// URL returns the link target.
func (u *NonEmbeddingURL) URL() string {
	return u.url
}

// Render implements Node.
func (u *NonEmbeddingURL) Render() string {
	return markup.BareLink(u.url)
}

// String implements fmt.Stringer.
func (u *NonEmbeddingURL) String() string {
	return u.Render()
}
