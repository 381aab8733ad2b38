package discordstyle

import (
	"context"
	"strings"

	"github.com/samber/oops"

	"github.com/riverfjs/discordstyle-go/internal/util"
)

// ProcessMarkdown 完整管道：markdown → 可发送的内容列表
//
// 步骤：
//  1. 通过 ConvertWithSegments 转换为 Discord 标记和代码块片段
//  2. 超过 CodeFileLines 行的代码块提取为 File
//  3. 其余文本按 MaxLength 拆分为 Text
//
// ctx 在处理每个片段之前检查，取消时返回错误。
func ProcessMarkdown(ctx context.Context, content string, opts ...Option) ([]Content, error) {
	options := applyOptions(opts...)
	fullText, segments := ConvertWithSegments(content, opts...)

	result := make([]Content, 0)
	cursor := 0

	for _, seg := range segments {
		if err := ctx.Err(); err != nil {
			return nil, oops.Code("PIPELINE_CANCELLED").Wrap(err)
		}
		if seg.Kind != SegmentKindCodeBlock || lineCount(seg.RawCode) <= options.CodeFileLines {
			continue
		}

		// Emit text before this segment
		if seg.TextStart > cursor {
			appendTextChunks(&result, fullText[cursor:seg.TextStart], options.MaxLength)
		}
		handleCodeBlockAsFile(&result, seg)
		cursor = seg.TextEnd
	}

	if err := ctx.Err(); err != nil {
		return nil, oops.Code("PIPELINE_CANCELLED").Wrap(err)
	}

	// Emit remaining text after last extracted segment
	if cursor < len(fullText) {
		appendTextChunks(&result, fullText[cursor:], options.MaxLength)
	}

	return result, nil
}

func lineCount(code string) int {
	return strings.Count(code, "\n") + 1
}

// appendTextChunks 按 maxLength 拆分文本并追加 Text 对象
func appendTextChunks(result *[]Content, text string, maxLength int) {
	text = strings.Trim(text, "\n")
	if strings.TrimSpace(text) == "" {
		return
	}
	for _, chunk := range SplitMessage(text, maxLength) {
		*result = append(*result, &Text{
			Text: chunk,
			ContentTrace: ContentTrace{
				SourceType: "text",
			},
		})
	}
}

// handleCodeBlockAsFile 将大代码块提取为 File
func handleCodeBlockAsFile(result *[]Content, seg Segment) {
	lang := seg.Language
	if lang == "" {
		lang = "txt"
	}
	fileName := util.GetFilename(seg.RawCode, lang)
	Logger.Printf("sending %d-line code block as %s", lineCount(seg.RawCode), fileName)

	*result = append(*result, &File{
		FileName: fileName,
		FileData: []byte(seg.RawCode),
		ContentTrace: ContentTrace{
			SourceType: "file",
			Extra: map[string]interface{}{
				"language": lang,
			},
		},
	})
}
