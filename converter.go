package discordstyle

import (
	"github.com/riverfjs/discordstyle-go/internal/converter"
	"github.com/riverfjs/discordstyle-go/internal/parser"
)

// Segment 记录代码块在转换结果中的位置（类型别名）
type Segment = converter.Segment

// SegmentKindCodeBlock 代码块片段
const SegmentKindCodeBlock = converter.SegmentKindCodeBlock

// Convert 将 Markdown 转换为 Discord 标记文本
//
// 输入可以是 LLM 输出、GitHub README 等 CommonMark/GFM 文本。
// 文本内容按 RenderConfig 中的选项转义，样式使用 Discord 的分隔符重新生成。
func Convert(markdown string, opts ...Option) string {
	text, _ := ConvertWithSegments(markdown, opts...)
	return text
}

// ConvertWithSegments 类似 Convert()，但还返回代码块片段信息供管道使用
func ConvertWithSegments(markdown string, opts ...Option) (string, []Segment) {
	options := applyOptions(opts...)

	preprocessed := converter.PreprocessSpoilers(markdown)
	return parser.Parse(preprocessed, options.Config, Logger)
}
