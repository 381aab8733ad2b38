package discordstyle

const (
	// MaxMessageLength is Discord's limit for a regular message, in characters.
	MaxMessageLength = 2000

	// DefaultCodeFileLines 超过该行数的代码块在管道中提取为附件
	DefaultCodeFileLines = 50
)

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	Config        *RenderConfig
	MaxLength     int
	CodeFileLines int
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithMaxLength sets the per-message character limit used when splitting.
func WithMaxLength(n int) Option {
	return func(opts *ConvertOptions) {
		opts.MaxLength = n
	}
}

// WithCodeFileLines sets how many lines a code block may have before the
// pipeline sends it as a file instead.
func WithCodeFileLines(n int) Option {
	return func(opts *ConvertOptions) {
		opts.CodeFileLines = n
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config:        DefaultConfig(),
		MaxLength:     MaxMessageLength,
		CodeFileLines: DefaultCodeFileLines,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	if options.MaxLength <= 0 {
		options.MaxLength = MaxMessageLength
	}
	return options
}
