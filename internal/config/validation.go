package config

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/render"
)

// Validate checks the configuration after defaults have been applied.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return errors.ConfigError("input model path is required").Build()
	}
	if !strings.Contains(c.Render.SourceURL, render.ModulePlaceholder) {
		return errors.ConfigError("render.source_url must contain " + render.ModulePlaceholder).
			WithContext("source_url", c.Render.SourceURL).
			Build()
	}
	if c.Render.PrintWidth <= 0 {
		return errors.ConfigError("render.print_width must be positive").
			WithContext("print_width", c.Render.PrintWidth).
			Build()
	}
	switch c.Render.ProseWrap {
	case markdown.ProseWrapPreserve, markdown.ProseWrapAlways, markdown.ProseWrapNever:
	default:
		return errors.ConfigError("render.prose_wrap must be preserve, always or never").
			WithContext("prose_wrap", c.Render.ProseWrap).
			Build()
	}
	if c.Watch.Debounce < 0 {
		return errors.ConfigError("watch.debounce must not be negative").
			WithContext("debounce", c.Watch.Debounce.String()).
			Build()
	}
	index := c.Output.Index
	if filepath.Base(index) != index || filepath.Ext(index) != ".md" {
		return errors.ConfigError("output.index must be a plain .md file name").
			WithContext("index", index).
			Build()
	}
	return nil
}
