package converter

import (
	"regexp"
	"strings"
)

const (
	spoilerOpenTag  = "<ds-spoiler>"
	spoilerCloseTag = "</ds-spoiler>"
)

// codeRegionRe 匹配代码块和行内代码
var codeRegionRe = regexp.MustCompile("(```[\\s\\S]*?```|`[^`\\n]+`)")

// PreprocessSpoilers 将 ||spoiler|| 替换为 <ds-spoiler>spoiler</ds-spoiler>
//
// goldmark 不认识 Discord 的剧透语法，先改写成行内 HTML，再由 walker 还原。
// 跳过代码块和行内代码中的内容。
func PreprocessSpoilers(text string) string {
	if !strings.Contains(text, "||") {
		return text
	}
	parts := codeRegionRe.Split(text, -1)
	matches := codeRegionRe.FindAllString(text, -1)

	var result strings.Builder
	for i, part := range parts {
		result.WriteString(replaceSpoilerTags(part))
		if i < len(matches) {
			result.WriteString(matches[i])
		}
	}

	return result.String()
}

// replaceSpoilerTags 将成对的 || 替换为剧透标签，未闭合的 || 保持原样
func replaceSpoilerTags(text string) string {
	var result strings.Builder
	i := 0
	open := -1

	for i < len(text) {
		// 转义的 \|| 不是剧透
		if i > 0 && text[i-1] == '\\' && text[i] == '|' {
			result.WriteByte(text[i])
			i++
			continue
		}

		if i+1 < len(text) && text[i] == '|' && text[i+1] == '|' {
			if open >= 0 {
				result.WriteString(spoilerCloseTag)
				open = -1
			} else {
				open = result.Len()
				result.WriteString(spoilerOpenTag)
			}
			i += 2
			continue
		}
		result.WriteByte(text[i])
		i++
	}

	out := result.String()
	if open >= 0 {
		out = out[:open] + "||" + out[open+len(spoilerOpenTag):]
	}
	return out
}
