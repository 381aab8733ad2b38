package main

import (
	"os"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/riverfjs/discordstyle-go"
)

// loadRenderConfig decodes the YAML file at path over the default render
// config. An empty path returns the defaults.
//
// Example file:
//
//	suppress_embeds: true
//	escape_channels: false
//	symbols:
//	  bullet: "•"
func loadRenderConfig(path string) (*discordstyle.RenderConfig, error) {
	config := discordstyle.DefaultRenderConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.In("config").With("path", path).Wrapf(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, oops.In("config").With("path", path).Wrapf(err, "failed to parse config")
	}
	if config.MarkdownSymbol == nil {
		config.MarkdownSymbol = discordstyle.DefaultRenderConfig().MarkdownSymbol
	}
	return config, nil
}
