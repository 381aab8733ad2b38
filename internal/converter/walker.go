package converter

import (
	"fmt"
	"io"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/discordstyle-go/internal/buffer"
	"github.com/riverfjs/discordstyle-go/internal/escape"
	"github.com/riverfjs/discordstyle-go/internal/markup"
)

const (
	scopeEmphasis   = "emphasis"
	scopeStrike     = "strikethrough"
	scopeSpoiler    = "spoiler"
	scopeLink       = "link"
	scopeImage      = "image"
	scopeHeading    = "heading"
	scopeBlockquote = "blockquote"
)

// EventWalker 遍历 goldmark AST 并生成 Discord 标记文本和代码块片段
type EventWalker struct {
	buf      *buffer.TextBuffer
	source   []byte
	config   *RenderConfig
	logger   *log.Logger
	pending  strings.Builder // 尚未转义的连续文本
	scopes   []scope
	segments []Segment

	// Block-level state
	blockCount int           // 用于段落间距
	listStack  []interface{} // nil=unordered, *int=ordered(next_number)
	itemIndent string        // 当前 item 的缩进，用于 task list marker 替换

	// Table state
	tableRows   [][]string
	currentRow  []string
	cellParts   []string
	inTableCell bool
}

// NewEventWalker 创建新的 EventWalker
func NewEventWalker(source []byte, config *RenderConfig, logger *log.Logger) *EventWalker {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &EventWalker{
		buf:       buffer.New(),
		source:    source,
		config:    config,
		logger:    logger,
		scopes:    make([]scope, 0),
		segments:  make([]Segment, 0),
		listStack: make([]interface{}, 0),
	}
}

// Walk 遍历 AST 节点
func (w *EventWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.onText(n)
		}

	case *ast.String:
		if entering {
			w.onTextString(n.Value)
		}

	case *ast.CodeSpan:
		if entering {
			w.onInlineCode(n)
			// Skip children to avoid processing the text content twice
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		if entering {
			w.pushScope(scopeEmphasis, "")
		} else {
			style := markup.Italic
			if n.Level == 2 {
				style = markup.Bold
			}
			w.popScope(scopeEmphasis, func(inner string) string {
				return markup.Wrap(style, inner)
			})
		}

	case *east.Strikethrough:
		if entering {
			w.pushScope(scopeStrike, "")
		} else {
			w.popScope(scopeStrike, func(inner string) string {
				return markup.Wrap(markup.Strikethrough, inner)
			})
		}

	// --- Links & Images ---
	case *ast.Link:
		if entering {
			w.pushScope(scopeLink, string(n.Destination))
		} else {
			w.onEndLink()
		}

	case *ast.Image:
		if entering {
			w.pushScope(scopeImage, string(n.Destination))
		} else {
			w.onEndImage()
		}

	case *ast.AutoLink:
		if entering {
			w.onAutoLink(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML:
		if entering {
			w.onInlineHTML(n)
		}

	// --- Block elements ---
	case *ast.Paragraph:
		if entering {
			w.onStartParagraph()
		} else {
			w.onEndParagraph()
		}

	case *ast.Heading:
		if entering {
			w.onStartHeading(n)
		} else {
			w.onEndHeading(n)
		}

	case *ast.Blockquote:
		if entering {
			w.onStartBlockquote()
		} else {
			w.onEndBlockquote()
		}

	case *ast.List:
		if entering {
			w.onStartList(n)
		} else {
			w.onEndList()
		}

	case *ast.ListItem:
		if entering {
			w.onStartItem()
		} else {
			w.onEndItem()
		}

	case *east.TaskCheckBox:
		if entering {
			w.onTaskCheckBox(n.IsChecked)
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			w.onRule()
		}

	case *ast.HTMLBlock:
		if entering {
			w.logger.Printf("dropping raw HTML block at line %d", lineOf(n, w.source))
		}
		return ast.WalkSkipChildren, nil

	// --- Table ---
	case *east.Table:
		if entering {
			w.onStartTable()
		} else {
			w.onEndTable()
		}

	case *east.TableHeader, *east.TableRow:
		if entering {
			w.currentRow = make([]string, 0)
		} else {
			w.onEndTableRow()
		}

	case *east.TableCell:
		if entering {
			w.cellParts = make([]string, 0)
			w.inTableCell = true
		} else {
			w.onEndTableCell()
		}
	}

	return ast.WalkContinue, nil
}

// Result 返回转换结果
func (w *EventWalker) Result() (string, []Segment) {
	w.flush()
	return strings.TrimRight(w.buf.String(), "\n"), w.segments
}

// --- Text handling ---

func (w *EventWalker) onText(n *ast.Text) {
	textContent := string(util.UnescapePunctuations(n.Segment.Value(w.source)))
	if n.SoftLineBreak() || n.HardLineBreak() {
		if w.inTableCell {
			// Table cells: soft breaks become spaces
			textContent += " "
		} else {
			textContent += "\n"
		}
	}
	w.text(textContent)
}

func (w *EventWalker) onTextString(value []byte) {
	w.text(string(value))
}

func (w *EventWalker) text(s string) {
	if w.inTableCell {
		w.cellParts = append(w.cellParts, s)
		return
	}
	w.pending.WriteString(s)
}

// flush 转义并写入累积的文本。
// 连续文本一起转义，这样被 goldmark 拆开的 <@123> 之类的序列仍能整体匹配。
func (w *EventWalker) flush() {
	if w.pending.Len() == 0 {
		return
	}
	s := w.pending.String()
	w.pending.Reset()
	w.buf.Write(w.escapeText(s))
}

// write 写入不需要转义的标记
func (w *EventWalker) write(s string) {
	w.flush()
	w.buf.Write(s)
}

// escapeText 转义文本叶子。goldmark 已去掉 Markdown 转义，剩下的反斜杠都是字面量，
// 加倍后才不会转义紧随其后的分隔符。
func (w *EventWalker) escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = escape.InlineMarkers(s)
	if w.atLineStart() {
		s = escape.BlockQuotes(s)
	} else if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i+1] + escape.BlockQuotes(s[i+1:])
	}
	if w.config.EscapeTimestamps {
		s = escape.Timestamps(s)
	}
	if w.config.EscapeMentions {
		s = escape.Mentions(s, w.config.EscapeChannels)
	}
	return s
}

func (w *EventWalker) atLineStart() bool {
	return w.buf.RuneCount() == 0 || w.buf.TrailingNewlineCount() > 0
}

func (w *EventWalker) onInlineCode(n *ast.CodeSpan) {
	code := extractCodeSpanText(n, w.source)
	if w.inTableCell {
		w.cellParts = append(w.cellParts, code)
		return
	}
	if code == "" {
		return
	}
	if strings.Contains(code, "`") {
		w.write("`` " + code + " ``")
		return
	}
	w.write(markup.Wrap(markup.InlineCode, code))
}

func (w *EventWalker) onInlineHTML(n *ast.RawHTML) {
	html := string(n.Segments.Value(w.source))
	tag := strings.TrimSpace(strings.ToLower(html))

	switch tag {
	case spoilerOpenTag:
		w.pushScope(scopeSpoiler, "")
	case spoilerCloseTag:
		w.popScope(scopeSpoiler, func(inner string) string {
			return markup.Wrap(markup.Spoiler, inner)
		})
	}
	// Other inline HTML is ignored
}

func (w *EventWalker) onRule() {
	w.ensureBlockSpacing()
	w.write(w.config.MarkdownSymbol.Rule)
	w.blockCount++
}

// --- Paragraph ---

func (w *EventWalker) onStartParagraph() {
	if len(w.listStack) == 0 {
		w.ensureBlockSpacing()
	}
}

func (w *EventWalker) onEndParagraph() {
	w.flush()
	if len(w.listStack) == 0 {
		w.blockCount++
	} else if w.buf.TrailingNewlineCount() == 0 {
		// loose list 中段落结束时写入换行，避免多段落粘连
		w.buf.Write("\n")
	}
}

// --- Heading ---

func (w *EventWalker) onStartHeading(n *ast.Heading) {
	w.ensureBlockSpacing()

	if symbol := w.config.MarkdownSymbol.Heading(n.Level); symbol != "" {
		w.write(symbol + " ")
	}
	w.pushScope(scopeHeading, "")
}

func (w *EventWalker) onEndHeading(n *ast.Heading) {
	w.popScope(scopeHeading, func(inner string) string {
		styled := markup.Wrap(markup.Bold, inner)
		if n.Level <= 2 {
			styled = markup.Wrap(markup.Underline, styled)
		}
		return styled
	})
	w.blockCount++
}

// --- Code block ---

func (w *EventWalker) onCodeBlock(n ast.Node) {
	var lang string
	if fenced, ok := n.(*ast.FencedCodeBlock); ok {
		lang = string(fenced.Language(w.source))
	}

	var parts []string
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		parts = append(parts, string(line.Value(w.source)))
	}
	rawCode := strings.TrimSuffix(strings.Join(parts, ""), "\n")

	if len(w.listStack) == 0 {
		w.ensureBlockSpacing()
	} else if w.buf.TrailingNewlineCount() == 0 {
		w.write("\n")
	}
	w.flush()

	start := w.buf.ByteOffset()
	w.buf.Write(markup.Fence(rawCode, lang))

	// 引用块内的代码块会被重新排版，偏移量失效，不记录片段
	if len(w.scopes) == 0 {
		w.segments = append(w.segments, Segment{
			Kind:      SegmentKindCodeBlock,
			TextStart: start,
			TextEnd:   w.buf.ByteOffset(),
			Language:  lang,
			RawCode:   rawCode,
		})
	}

	if len(w.listStack) == 0 {
		w.blockCount++
	}
}

// --- Blockquote ---

func (w *EventWalker) onStartBlockquote() {
	w.ensureBlockSpacing()
	w.pushScope(scopeBlockquote, "")
}

func (w *EventWalker) onEndBlockquote() {
	w.popScope(scopeBlockquote, func(inner string) string {
		return markup.Quote(strings.Trim(inner, "\n"))
	})
	w.blockCount++
}

// --- Links & Images ---

func (w *EventWalker) onEndLink() {
	w.popScope(scopeLink, func(inner string) string {
		url := w.scopes[len(w.scopes)-1].url
		if !markup.ValidURL(url) {
			// Empty or unsupported URLs are rendered as plain text
			w.logger.Printf("dropping link with unsupported scheme: %q", url)
			return inner
		}
		return markup.TitledLink(inner, url)
	})
}

func (w *EventWalker) onEndImage() {
	w.popScope(scopeImage, func(inner string) string {
		url := w.scopes[len(w.scopes)-1].url
		prefix := w.config.MarkdownSymbol.Image
		if prefix != "" {
			prefix += " "
		}
		if !markup.ValidURL(url) {
			w.logger.Printf("dropping image with unsupported scheme: %q", url)
			return prefix + inner
		}
		return prefix + markup.TitledLink(inner, url)
	})
}

func (w *EventWalker) onAutoLink(n *ast.AutoLink) {
	url := string(n.URL(w.source))
	if w.inTableCell {
		w.cellParts = append(w.cellParts, url)
		return
	}
	if n.AutoLinkType != ast.AutoLinkURL || !markup.ValidURL(url) {
		w.text(string(n.Label(w.source)))
		return
	}
	if w.config.SuppressEmbeds {
		w.write(markup.BareLink(url))
		return
	}
	w.write(url)
}

// --- Lists ---

func (w *EventWalker) onStartList(n *ast.List) {
	if len(w.listStack) == 0 {
		w.ensureBlockSpacing()
	}

	if n.IsOrdered() {
		start := n.Start
		w.listStack = append(w.listStack, &start)
	} else {
		w.listStack = append(w.listStack, nil)
	}
}

func (w *EventWalker) onStartItem() {
	w.flush()
	depth := len(w.listStack)
	indent := strings.Repeat("  ", depth-1)

	// 嵌套列表：父项文本后没有换行时，插入换行确保子项独占一行
	if w.buf.ByteOffset() > 0 && w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}

	w.itemIndent = indent

	if len(w.listStack) > 0 {
		currentList := w.listStack[len(w.listStack)-1]
		if currentList != nil {
			// Ordered list
			num := *(currentList.(*int))
			w.buf.Write(fmt.Sprintf("%s%d. ", indent, num))
			*(currentList.(*int)) = num + 1
		} else {
			// Unordered list - 先写 bullet，如果后面遇到 TaskCheckBox 会被替换
			w.buf.Write(fmt.Sprintf("%s%s ", indent, w.config.MarkdownSymbol.Bullet))
		}
	}
}

func (w *EventWalker) onEndItem() {
	w.flush()
	if w.buf.TrailingNewlineCount() == 0 {
		w.buf.Write("\n")
	}
}

// onTaskCheckBox 处理任务列表复选框
func (w *EventWalker) onTaskCheckBox(checked bool) {
	w.flush()
	// 移除 onStartItem 刚写入的 bullet 前缀
	w.buf.PopLast()

	symbol := w.config.MarkdownSymbol.TaskUncompleted
	if checked {
		symbol = w.config.MarkdownSymbol.TaskCompleted
	}
	w.buf.Write(fmt.Sprintf("%s%s ", w.itemIndent, symbol))
}

func (w *EventWalker) onEndList() {
	if len(w.listStack) > 0 {
		w.listStack = w.listStack[:len(w.listStack)-1]
	}
	if len(w.listStack) == 0 {
		w.blockCount++
	}
}

// --- Tables ---

func (w *EventWalker) onStartTable() {
	w.ensureBlockSpacing()
	w.tableRows = make([][]string, 0)
}

func (w *EventWalker) onEndTableCell() {
	cellText := strings.TrimSpace(strings.Join(w.cellParts, ""))
	w.currentRow = append(w.currentRow, cellText)
	w.cellParts = nil
	w.inTableCell = false
}

func (w *EventWalker) onEndTableRow() {
	w.tableRows = append(w.tableRows, w.currentRow)
	w.currentRow = nil
}

func (w *EventWalker) onEndTable() {
	// 表格放进无语言标签的代码块，保持等宽对齐
	w.write(markup.Fence(formatTable(w.tableRows), ""))
	w.tableRows = nil
	w.blockCount++
}

func formatTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	// Compute column widths
	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	colWidths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); i < numCols && n > colWidths[i] {
				colWidths[i] = n
			}
		}
	}

	var lines []string
	for rowIdx, row := range rows {
		cells := make([]string, numCols)
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// Left-justify
			cells[i] = cell + strings.Repeat(" ", colWidths[i]-utf8.RuneCountInString(cell))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " | "), " "))

		// Add separator after header
		if rowIdx == 0 && len(rows) > 1 {
			sepCells := make([]string, numCols)
			for i := 0; i < numCols; i++ {
				sepCells[i] = strings.Repeat("-", colWidths[i])
			}
			lines = append(lines, strings.Join(sepCells, "-+-"))
		}
	}

	return strings.Join(lines, "\n")
}

// --- Scope helpers ---

func (w *EventWalker) pushScope(kind string, url string) {
	if w.inTableCell {
		return
	}
	w.flush()
	w.scopes = append(w.scopes, scope{
		kind: kind,
		mark: w.buf.Mark(),
		url:  url,
	})
}

// popScope 取出自 scope 开始以来写入的内容，用 wrap 包裹后重新写入。
// wrap 执行时 scope 仍在栈顶，可以读取其 url。
func (w *EventWalker) popScope(kind string, wrap func(inner string) string) {
	if w.inTableCell {
		return
	}
	w.flush()
	// Find the matching scope (search from top)
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if w.scopes[i].kind != kind {
			continue
		}
		// 未闭合的内层 scope 直接丢弃，其内容已在缓冲区中
		w.scopes = w.scopes[:i+1]
		inner := w.buf.Cut(w.scopes[i].mark)
		wrapped := wrap(inner)
		w.scopes = w.scopes[:i]
		w.buf.Write(wrapped)
		return
	}
}

func (w *EventWalker) ensureBlockSpacing() {
	w.flush()
	// Ensure a blank line (\n\n) between blocks, avoiding excess newlines
	if w.blockCount > 0 {
		trailing := w.buf.TrailingNewlineCount()
		needed := 2 - trailing
		if needed > 0 {
			w.buf.Write(strings.Repeat("\n", needed))
		}
	}
}

// --- Utilities ---

func extractCodeSpanText(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			_, _ = buf.Write(t.Segment.Value(source))
		case *ast.String:
			_, _ = buf.Write(t.Value)
		}
	}
	return buf.String()
}

func lineOf(n ast.Node, source []byte) int {
	lines := n.Lines()
	if lines.Len() == 0 {
		return 0
	}
	return strings.Count(string(source[:lines.At(0).Start]), "\n") + 1
}
