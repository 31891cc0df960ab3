package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	"git.home.luguber.info/inful/apidocs/internal/generate"
)

// CheckCmd implements the 'check' command. It exits non-zero when the output
// directory does not match what generate would write.
type CheckCmd struct {
	Input  string `short:"i" help:"Model document (overrides config input)"`
	Output string `short:"o" help:"Output directory (overrides config output.directory)"`
}

func (c *CheckCmd) Run(global *Global, root *CLI) error {
	cfg, err := LoadConfig(root.Config)
	if err != nil {
		return err
	}
	if err := ApplyOverrides(cfg, c.Input, c.Output); err != nil {
		return err
	}

	doc, err := apimodel.LoadFile(cfg.Input)
	if err != nil {
		return err
	}

	rec, flush := NewRecorder(cfg.Metrics.Textfile)
	defer flush()
	gen := generate.New(cfg, NewRenderer(cfg, rec), generate.WithRecorder(rec))

	report, err := gen.Check(context.Background(), doc)
	if report != nil {
		for _, path := range report.StalePaths() {
			_, _ = fmt.Fprintf(global.out(), "stale: %s\n", path)
		}
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(global.out(), "All %d pages up to date\n", len(report.Pages))
	return nil
}
