package generate

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	"git.home.luguber.info/inful/apidocs/internal/config"
	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
	"git.home.luguber.info/inful/apidocs/internal/render"
)

// Generator renders model documents into an output directory.
type Generator struct {
	outputDir string
	indexName string
	clean     bool
	renderer  *render.Renderer
	recorder  metrics.Recorder
	logger    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder.
func WithRecorder(rec metrics.Recorder) Option {
	return func(g *Generator) {
		if rec != nil {
			g.recorder = rec
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator for the output settings in cfg.
func New(cfg *config.Config, r *render.Renderer, opts ...Option) *Generator {
	g := &Generator{
		outputDir: cfg.Output.Directory,
		indexName: cfg.Output.Index,
		clean:     cfg.Output.Clean,
		renderer:  r,
		recorder:  metrics.NoopRecorder{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OutputDir returns the directory pages are written to.
func (g *Generator) OutputDir() string { return g.outputDir }

// page is a rendered, not yet written output file.
type page struct {
	module  string
	kind    string
	name    string
	content string
}

// Run renders doc and publishes the pages. Unchanged pages are left alone.
// When clean is configured, other *.md files in the output directory are
// removed.
func (g *Generator) Run(ctx context.Context, doc *apimodel.Document) (report *Report, err error) {
	start := time.Now()
	report = &Report{Modules: len(doc.Modules)}
	defer func() { g.finish(ctx, report, start, err) }()

	pages, err := g.renderAll(ctx, doc)
	if err != nil {
		return report, err
	}

	if mkErr := os.MkdirAll(g.outputDir, 0o750); mkErr != nil {
		return report, errors.WrapError(mkErr, errors.CategoryFileSystem, "create output directory").
			WithContext("path", g.outputDir).
			Build()
	}

	if g.clean {
		if err = g.removeExtraneous(report, pages); err != nil {
			return report, err
		}
	}

	for _, p := range pages {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}
		result, writeErr := g.write(p)
		if writeErr != nil {
			return report, writeErr
		}
		g.recorder.IncPageWrite(result.Outcome)
		report.add(result)
	}

	if err = g.verifyIndex(pages[len(pages)-1].content); err != nil {
		return report, err
	}
	return report, nil
}

// Check renders doc and compares the result with the output directory
// without writing anything. It fails with a validation error naming every
// missing or outdated page.
func (g *Generator) Check(ctx context.Context, doc *apimodel.Document) (report *Report, err error) {
	start := time.Now()
	report = &Report{Modules: len(doc.Modules)}
	defer func() { g.finish(ctx, report, start, err) }()

	pages, err := g.renderAll(ctx, doc)
	if err != nil {
		return report, err
	}

	for _, p := range pages {
		target := filepath.Join(g.outputDir, p.name)
		want := fingerprint(p.content)
		have, readErr := existingFingerprint(target)
		if readErr != nil {
			return report, errors.WrapError(readErr, errors.CategoryFileSystem, "read existing page").
				WithContext("path", target).
				Build()
		}
		outcome := metrics.WriteUnchanged
		if have != want {
			outcome = metrics.WriteStale
		}
		report.add(PageResult{Module: p.module, Path: target, Kind: p.kind, Outcome: outcome, Fingerprint: want})
	}

	if g.clean {
		extra, listErr := g.extraneous(pages)
		if listErr != nil {
			return report, listErr
		}
		for _, name := range extra {
			report.add(PageResult{Path: filepath.Join(g.outputDir, name), Outcome: metrics.WriteStale})
		}
	}

	if stale := report.StalePaths(); len(stale) > 0 {
		return report, errors.ValidationError("generated pages are out of date").
			WithContext("stale", strings.Join(stale, ", ")).
			WithContext("count", len(stale)).
			Build()
	}
	return report, nil
}

// renderAll renders every module page followed by the index page.
func (g *Generator) renderAll(ctx context.Context, doc *apimodel.Document) ([]page, error) {
	indexStem := strings.TrimSuffix(g.indexName, filepath.Ext(g.indexName))
	pages := make([]page, 0, len(doc.Modules)+1)

	for _, m := range doc.Modules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name, err := pageFileName(m.Name)
		if err != nil {
			return nil, err
		}
		if m.Name == indexStem {
			return nil, errors.ValidationError("module page collides with the index page").
				WithContext("module", m.Name).
				WithContext("index", g.indexName).
				Build()
		}

		content, err := g.renderer.PrintModule(m)
		if err != nil {
			if classified, ok := errors.AsClassified(err); ok {
				return nil, classified.WithContext("module", m.Name)
			}
			return nil, errors.WrapError(err, errors.CategoryRender, "render module page").
				WithContext("module", m.Name).
				Build()
		}
		pages = append(pages, page{module: m.Name, kind: metrics.KindModule, name: name, content: content})
	}

	index, err := g.renderer.PrintIndex(doc.ModuleNames())
	if err != nil {
		return nil, err
	}
	pages = append(pages, page{kind: metrics.KindIndex, name: g.indexName, content: index})
	return pages, nil
}

func (g *Generator) write(p page) (PageResult, error) {
	target := filepath.Join(g.outputDir, p.name)
	result := PageResult{Module: p.module, Path: target, Kind: p.kind, Fingerprint: fingerprint(p.content)}

	have, err := existingFingerprint(target)
	if err != nil {
		return result, errors.WrapError(err, errors.CategoryFileSystem, "read existing page").
			WithContext("path", target).
			Build()
	}
	if have == result.Fingerprint {
		result.Outcome = metrics.WriteUnchanged
		g.logger.Debug("Page unchanged", logfields.Page(target))
		return result, nil
	}

	if err := writeAtomic(target, []byte(p.content)); err != nil {
		return result, errors.WrapError(err, errors.CategoryFileSystem, "write page").
			WithContext("path", target).
			Build()
	}
	result.Outcome = metrics.WriteWritten
	g.logger.Debug("Page written", logfields.Page(target), logfields.Kind(p.kind))
	return result, nil
}

// extraneous returns the *.md files in the output directory that the run
// would not produce.
func (g *Generator) extraneous(pages []page) ([]string, error) {
	existing, err := markdownFiles(g.outputDir)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "list output directory").
			WithContext("path", g.outputDir).
			Build()
	}
	keep := make(map[string]struct{}, len(pages))
	for _, p := range pages {
		keep[p.name] = struct{}{}
	}
	var extra []string
	for _, name := range existing {
		if _, ok := keep[name]; !ok {
			extra = append(extra, name)
		}
	}
	return extra, nil
}

func (g *Generator) removeExtraneous(report *Report, pages []page) error {
	extra, err := g.extraneous(pages)
	if err != nil {
		return err
	}
	for _, name := range extra {
		target := filepath.Join(g.outputDir, name)
		if err := os.Remove(target); err != nil && !stderrors.Is(err, os.ErrNotExist) {
			return errors.WrapError(err, errors.CategoryFileSystem, "remove stale page").
				WithContext("path", target).
				Build()
		}
		g.recorder.IncPageWrite(metrics.WriteRemoved)
		report.add(PageResult{Path: target, Outcome: metrics.WriteRemoved})
		g.logger.Info("Removed stale page", logfields.Page(target))
	}
	return nil
}

// verifyIndex checks that every relative page link of the index resolves to
// a file in the output directory.
func (g *Generator) verifyIndex(index string) error {
	links, err := markdown.ExtractLinks([]byte(index))
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "parse index page").Build()
	}

	var missing []string
	for _, l := range links {
		target, ok := localPage(l.Destination)
		if !ok {
			continue
		}
		if _, statErr := os.Stat(filepath.Join(g.outputDir, target)); statErr != nil {
			missing = append(missing, l.Destination)
		}
	}
	if len(missing) > 0 {
		return errors.ValidationError("index links to missing pages").
			WithContext("missing", strings.Join(missing, ", ")).
			Build()
	}
	return nil
}

// localPage reports whether dest is a relative link to a Markdown page and
// returns its cleaned path.
func localPage(dest string) (string, bool) {
	if dest == "" || strings.Contains(dest, "://") || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "#") {
		return "", false
	}
	if i := strings.IndexAny(dest, "#?"); i >= 0 {
		dest = dest[:i]
	}
	if !strings.EqualFold(path.Ext(dest), pageExt) {
		return "", false
	}
	return filepath.FromSlash(path.Clean(dest)), true
}

func (g *Generator) finish(ctx context.Context, report *Report, start time.Time, err error) {
	report.Duration = time.Since(start)
	g.recorder.ObserveRunDuration(report.Duration)

	outcome := metrics.RunSuccess
	switch {
	case err == nil:
	case ctx.Err() != nil:
		outcome = metrics.RunCanceled
	case report.Stale > 0:
		outcome = metrics.RunStale
	default:
		outcome = metrics.RunFailed
	}
	g.recorder.IncRunOutcome(outcome)

	attrs := []any{
		logfields.Count(report.Modules),
		logfields.Outcome(string(outcome)),
		logfields.Elapsed(report.Duration),
	}
	if err != nil {
		g.logger.Warn("Documentation run did not succeed", append(attrs, logfields.Error(err))...)
		return
	}
	g.logger.Info("Documentation run complete", append(attrs,
		slog.Int("written", report.Written),
		slog.Int("unchanged", report.Unchanged),
		slog.Int("removed", report.Removed))...)
}
