// Package discordstyle 生成和转义 Discord 消息标记
//
// 这个包提供两类互不依赖的功能：
//   - 样式组合：用 Bold、Italic、BlockQuote 等节点嵌套构造标记，
//     以及代码块、链接、提及和智能时间戳
//   - 转义：让用户输入中的标记、提及和时间戳按字面显示
//
// 在此之上还提供 Markdown 转换（CommonMark/GFM → Discord 标记）、
// 按 2000 字符限制拆分消息，以及把长代码块提取为附件的管道。
//
// 示例：
//
//	// 组合样式
//	msg := discordstyle.Bold("hello", discordstyle.Italic("world")).Render()
//	// "**hello *world***"
//
//	// 转义用户输入
//	safe := discordstyle.EscapeEverything(userInput, true, true)
//
//	// 转换 Markdown 并拆分
//	contents, err := discordstyle.Process(ctx, markdown)
//	for _, content := range contents {
//	    switch c := content.(type) {
//	    case *discordstyle.Text:
//	        // 发送文本消息
//	    case *discordstyle.File:
//	        // 发送附件
//	    }
//	}
//
// All rendering and escaping functions are pure; values are immutable after
// construction and safe to share between goroutines.
package discordstyle

import (
	"context"
)

// Process 将 Markdown 转换为可直接发送的 Discord 内容片段
//
// 这是 ProcessMarkdown 的简写。对于只需要标记文本的场景，使用 Convert()。
//
// 返回：
//   - []Content: Text 或 File 对象的有序列表
//   - error: ctx 被取消时返回
func Process(ctx context.Context, markdown string, opts ...Option) ([]Content, error) {
	return ProcessMarkdown(ctx, markdown, opts...)
}
