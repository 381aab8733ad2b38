package converter

import (
	"github.com/riverfjs/discordstyle-go/internal/types"
)

// RenderConfig 渲染配置（类型别名）
type RenderConfig = types.RenderConfig

// SegmentKindCodeBlock 代码块片段
const SegmentKindCodeBlock = "code_block"

// Segment 记录代码块在输出文本中的位置
type Segment struct {
	Kind      string // 目前只有 "code_block"
	TextStart int    // 围栏起始字节位置
	TextEnd   int    // 围栏结束字节位置
	Language  string // 语言标签，可能为空
	RawCode   string // 原始代码内容
}

// scope 跟踪一个尚未闭合的内联样式或块
type scope struct {
	kind string
	mark int
	url  string
}
