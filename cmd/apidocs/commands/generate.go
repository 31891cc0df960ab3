package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	"git.home.luguber.info/inful/apidocs/internal/generate"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/watch"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Input       string `short:"i" help:"Model document (overrides config input)"`
	Output      string `short:"o" help:"Output directory (overrides config output.directory)"`
	Clean       bool   `help:"Remove stale pages from the output directory"`
	Watch       bool   `short:"w" help:"Regenerate whenever the model document changes"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics to this textfile after each run"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := LoadConfig(root.Config)
	if err != nil {
		return err
	}
	if g.Clean {
		cfg.Output.Clean = true
	}
	if err := ApplyOverrides(cfg, g.Input, g.Output); err != nil {
		return err
	}

	textfile := g.MetricsFile
	if textfile == "" {
		textfile = cfg.Metrics.Textfile
	}
	rec, flush := NewRecorder(textfile)
	gen := generate.New(cfg, NewRenderer(cfg, rec), generate.WithRecorder(rec))

	runOnce := func(ctx context.Context) error {
		defer flush()
		doc, err := apimodel.LoadFile(cfg.Input)
		if err != nil {
			return err
		}
		report, err := gen.Run(ctx, doc)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(global.out(), "Generated %s in %s\n", report.Summary(), gen.OutputDir())
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runOnce(ctx); err != nil {
		if !g.Watch {
			return err
		}
		slog.Error("Initial generation failed", logfields.Error(err))
	}
	if !g.Watch {
		return nil
	}

	return watch.New(cfg.Input, cfg.Watch.Debounce, runOnce).Run(ctx)
}
