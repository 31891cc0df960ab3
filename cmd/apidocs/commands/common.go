package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/apidocs/internal/config"
	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
	"git.home.luguber.info/inful/apidocs/internal/render"
)

// Global is shared state passed to every subcommand.
type Global struct {
	Stdout io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"apidocs.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Render API reference pages from a model document"`
	Check    CheckCmd    `cmd:"" help:"Verify generated pages are up to date (for CI)"`
	Index    IndexCmd    `cmd:"" help:"Print the formatted index page for the given module names"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig loads the configuration file. A missing file at the default
// location is not an error; defaults are used instead.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == config.DefaultPath && errors.HasCategory(err, errors.CategoryNotFound) {
		slog.Debug("No configuration file, using defaults", logfields.Path(path))
		return config.Default(), nil
	}
	return nil, err
}

// ApplyOverrides applies command line values on top of the configuration and
// validates the result.
func ApplyOverrides(cfg *config.Config, input, output string) error {
	if input != "" {
		cfg.Input = input
	}
	if output != "" {
		cfg.Output.Directory = output
	}
	return cfg.Validate()
}

// NewRenderer builds a renderer from the render settings.
func NewRenderer(cfg *config.Config, rec metrics.Recorder) *render.Renderer {
	return render.New(
		render.WithFormatOptions(cfg.FormatOptions()),
		render.WithSourceURL(cfg.Render.SourceURL),
		render.WithRecorder(rec),
		render.WithLogger(slog.Default()),
	)
}

// NewRecorder returns the metrics recorder for a run and a flush function
// that exports collected metrics. Without a textfile path metrics are
// discarded.
func NewRecorder(textfile string) (metrics.Recorder, func()) {
	if textfile == "" {
		return metrics.NoopRecorder{}, func() {}
	}
	reg := prom.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)
	return rec, func() {
		if err := metrics.WriteTextfile(textfile, reg); err != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Path(textfile), logfields.Error(err))
			return
		}
		slog.Debug("Metrics written", logfields.Path(textfile))
	}
}
