package discordstyle

import (
	"sync"

	"github.com/riverfjs/discordstyle-go/internal/types"
)

// 导出类型别名
type Symbol = types.Symbol
type RenderConfig = types.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
// Callers that want to change settings should use DefaultRenderConfig.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// DefaultRenderConfig returns a fresh copy of the default configuration.
func DefaultRenderConfig() *RenderConfig {
	return types.DefaultRenderConfig()
}
