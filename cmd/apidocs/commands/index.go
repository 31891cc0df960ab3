package commands

import (
	"fmt"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
)

// IndexCmd implements the 'index' command. Without names, the module names
// of the configured model document are used.
type IndexCmd struct {
	Names []string `arg:"" optional:"" help:"Module names in index order"`
}

func (i *IndexCmd) Run(global *Global, root *CLI) error {
	cfg, err := LoadConfig(root.Config)
	if err != nil {
		return err
	}

	names := i.Names
	if len(names) == 0 {
		doc, err := apimodel.LoadFile(cfg.Input)
		if err != nil {
			return err
		}
		names = doc.ModuleNames()
	}

	out, err := NewRenderer(cfg, metrics.NoopRecorder{}).PrintIndex(names)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(global.out(), out)
	return err
}
