package config

import (
	"time"

	"git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/render"
)

// Default values applied by Load and Default.
const (
	DefaultInput           = "api.yaml"
	DefaultOutputDirectory = "./docs/api"
	DefaultIndex           = "index.md"
	DefaultDebounce        = 500 * time.Millisecond
)

func applyDefaults(cfg *Config) {
	if cfg.Input == "" {
		cfg.Input = DefaultInput
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDirectory
	}
	if cfg.Output.Index == "" {
		cfg.Output.Index = DefaultIndex
	}
	if cfg.Render.SourceURL == "" {
		cfg.Render.SourceURL = render.DefaultSourceURL
	}
	if cfg.Render.PrintWidth == 0 {
		cfg.Render.PrintWidth = markdown.DefaultFormatOptions().PrintWidth
	}
	if cfg.Render.ProseWrap == "" {
		cfg.Render.ProseWrap = markdown.ProseWrapPreserve
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}
}

// FormatOptions returns the formatter configuration derived from the render
// settings.
func (c *Config) FormatOptions() markdown.FormatOptions {
	opts := markdown.DefaultFormatOptions()
	opts.PrintWidth = c.Render.PrintWidth
	if c.Render.ProseWrap != "" {
		opts.ProseWrap = c.Render.ProseWrap
	}
	return opts
}
