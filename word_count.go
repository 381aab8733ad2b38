package discordstyle

import (
	"unicode/utf8"
)

// CountText 计算文本在 Discord 中的长度（字符数）
//
// Discord 按字符而不是字节限制消息长度，标记符号本身也计入长度。
func CountText(text string) int {
	return utf8.RuneCountInString(text)
}
