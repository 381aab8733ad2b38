package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

// languageExt 代码块语言标签到文件扩展名。
// Discord 的高亮标签常用缩写（py、js、sh），缩写本身即可作为扩展名。
var languageExt = map[string]string{
	"python":     "py",
	"py":         "py",
	"javascript": "js",
	"js":         "js",
	"typescript": "ts",
	"ts":         "ts",
	"java":       "java",
	"c++":        "cpp",
	"cpp":        "cpp",
	"c":          "c",
	"csharp":     "cs",
	"cs":         "cs",
	"html":       "html",
	"css":        "css",
	"bash":       "sh",
	"shell":      "sh",
	"sh":         "sh",
	"php":        "php",
	"markdown":   "md",
	"md":         "md",
	"json":       "json",
	"yaml":       "yaml",
	"yml":        "yaml",
	"xml":        "xml",
	"toml":       "toml",
	"ini":        "ini",
	"diff":       "diff",
	"go":         "go",
	"golang":     "go",
	"ruby":       "rb",
	"rust":       "rs",
	"rs":         "rs",
	"lua":        "lua",
	"kotlin":     "kt",
	"swift":      "swift",
	"sql":        "sql",
	"dockerfile": "dockerfile",
	"ansi":       "txt",
	"plaintext":  "txt",
}

var filenamePattern = regexp.MustCompile(`([a-zA-Z0-9_\-\.]+\.[a-zA-Z0-9]+)`)

// ExtractValidFilename extracts a filename (with extension) from a line of text.
func ExtractValidFilename(line string) string {
	for _, match := range filenamePattern.FindAllString(line, -1) {
		if filepath.Ext(match) != "" {
			return match
		}
	}
	return ""
}

// GetExt returns the file extension for a code block language tag.
func GetExt(language string) string {
	ext, ok := languageExt[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		return "txt"
	}
	return ext
}

// GetFilename names an attachment for a code block.
//
// A filename mentioned in the first two lines wins (e.g. "# main.go");
// otherwise the name is "snippet.<ext>".
func GetFilename(code string, language string) string {
	lines := strings.SplitN(strings.TrimSpace(code), "\n", 3)
	sample := ""
	if len(lines) > 0 {
		sample = lines[0]
		if len(lines) > 1 {
			sample += " " + lines[1]
		}
	}
	sample = strings.ReplaceAll(sample, "\\", "")

	ext := GetExt(language)
	if name := ExtractValidFilename(sample); name != "" {
		if strings.HasSuffix(name, "."+ext) && len(name) <= 32 {
			return name
		}
		return name + "." + ext
	}

	return "snippet." + ext
}
