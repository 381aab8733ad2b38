package parser

import (
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/discordstyle-go/internal/converter"
	"github.com/riverfjs/discordstyle-go/internal/types"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // GitHub Flavored Markdown (tables, strikethrough, tasklists, linkify)
	),
}

// Parse 解析 Markdown 并遍历 AST 生成 (markup, segments)
func Parse(markdown string, config *converter.RenderConfig, logger *log.Logger) (string, []converter.Segment) {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	source := []byte(markdown)
	node := parse(source)

	walker := converter.NewEventWalker(source, config, logger)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})

	return walker.Result()
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(markdown string) ast.Node {
	return parse([]byte(markdown))
}

func parse(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}
