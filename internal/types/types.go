package types

// Symbol 定义 Markdown 元素在 Discord 中的显示符号
type Symbol struct {
	HeadingLevel1   string `yaml:"heading_level_1"`
	HeadingLevel2   string `yaml:"heading_level_2"`
	HeadingLevel3   string `yaml:"heading_level_3"`
	HeadingLevel4   string `yaml:"heading_level_4"`
	HeadingLevel5   string `yaml:"heading_level_5"`
	HeadingLevel6   string `yaml:"heading_level_6"`
	Bullet          string `yaml:"bullet"`
	Image           string `yaml:"image"`
	Rule            string `yaml:"rule"`
	TaskCompleted   string `yaml:"task_completed"`
	TaskUncompleted string `yaml:"task_uncompleted"`
}

// DefaultSymbol 返回默认符号配置
func DefaultSymbol() *Symbol {
	return &Symbol{
		HeadingLevel1:   "📌",
		HeadingLevel2:   "📝",
		HeadingLevel3:   "📋",
		HeadingLevel4:   "📄",
		HeadingLevel5:   "📃",
		HeadingLevel6:   "🔖",
		Bullet:          "-",
		Image:           "🖼",
		Rule:            "————————",
		TaskCompleted:   "✅",
		TaskUncompleted: "☑️",
	}
}

// Heading returns the marker for a heading level, or "" when out of range.
func (s *Symbol) Heading(level int) string {
	switch level {
	case 1:
		return s.HeadingLevel1
	case 2:
		return s.HeadingLevel2
	case 3:
		return s.HeadingLevel3
	case 4:
		return s.HeadingLevel4
	case 5:
		return s.HeadingLevel5
	case 6:
		return s.HeadingLevel6
	}
	return ""
}

// RenderConfig 渲染配置
type RenderConfig struct {
	MarkdownSymbol *Symbol `yaml:"symbols"`

	// SuppressEmbeds renders autolinks as <url> so the client shows no embed.
	SuppressEmbeds bool `yaml:"suppress_embeds"`

	// Escape options applied to every text leaf of converted Markdown.
	EscapeTimestamps bool `yaml:"escape_timestamps"`
	EscapeMentions   bool `yaml:"escape_mentions"`
	EscapeChannels   bool `yaml:"escape_channels"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		MarkdownSymbol:   DefaultSymbol(),
		SuppressEmbeds:   false,
		EscapeTimestamps: true,
		EscapeMentions:   true,
		EscapeChannels:   true,
	}
}
