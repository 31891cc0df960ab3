package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apidocs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "input: model.yaml\n"))
	require.NoError(t, err)

	assert.Equal(t, "model.yaml", cfg.Input)
	assert.Equal(t, DefaultOutputDirectory, cfg.Output.Directory)
	assert.Equal(t, DefaultIndex, cfg.Output.Index)
	assert.False(t, cfg.Output.Clean)
	assert.Equal(t, render.DefaultSourceURL, cfg.Render.SourceURL)
	assert.Equal(t, 120, cfg.Render.PrintWidth)
	assert.Equal(t, markdown.ProseWrapPreserve, cfg.Render.ProseWrap)
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoadFullFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
input: api/model.yaml
output:
  directory: out
  index: README.md
  clean: true
render:
  source_url: https://example.com/src/{module}.go
  print_width: 80
  prose_wrap: always
metrics:
  textfile: metrics.prom
watch:
  debounce: 2s
`))
	require.NoError(t, err)

	assert.Equal(t, "api/model.yaml", cfg.Input)
	assert.Equal(t, "out", cfg.Output.Directory)
	assert.Equal(t, "README.md", cfg.Output.Index)
	assert.True(t, cfg.Output.Clean)
	assert.Equal(t, "https://example.com/src/{module}.go", cfg.Render.SourceURL)
	assert.Equal(t, 80, cfg.Render.PrintWidth)
	assert.Equal(t, "metrics.prom", cfg.Metrics.Textfile)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	assert.Equal(t, 80, cfg.FormatOptions().PrintWidth)
	assert.Equal(t, markdown.ProseWrapAlways, cfg.FormatOptions().ProseWrap)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("APIDOCS_TEST_OUTPUT", "/tmp/generated")
	cfg, err := Load(writeConfig(t, "output:\n  directory: ${APIDOCS_TEST_OUTPUT}\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/generated", cfg.Output.Directory)
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeConfig(t, "inputs: typo.yaml\n"))
	require.Error(t, err)

	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, errors.CategoryConfig, classified.Category())
	path, _ := classified.Context().GetString("path")
	assert.NotEmpty(t, path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "source url without placeholder",
			mutate:  func(c *Config) { c.Render.SourceURL = "https://example.com/src" },
			wantErr: "source_url",
		},
		{
			name:    "zero print width",
			mutate:  func(c *Config) { c.Render.PrintWidth = 0 },
			wantErr: "print_width",
		},
		{
			name:    "negative print width",
			mutate:  func(c *Config) { c.Render.PrintWidth = -4 },
			wantErr: "print_width",
		},
		{
			name:    "unknown prose wrap",
			mutate:  func(c *Config) { c.Render.ProseWrap = "sometimes" },
			wantErr: "prose_wrap",
		},
		{
			name:    "blank input",
			mutate:  func(c *Config) { c.Input = "  " },
			wantErr: "input",
		},
		{
			name:    "negative debounce",
			mutate:  func(c *Config) { c.Watch.Debounce = -time.Second },
			wantErr: "debounce",
		},
		{
			name:    "index in subdirectory",
			mutate:  func(c *Config) { c.Output.Index = "nested/index.md" },
			wantErr: "output.index",
		},
		{
			name:    "index without md extension",
			mutate:  func(c *Config) { c.Output.Index = "index.html" },
			wantErr: "output.index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
		})
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = Init(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, Init(path, true))
}
