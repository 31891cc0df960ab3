package render

import (
	"log/slog"
	"strings"
	"time"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	md "git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
)

// ModulePlaceholder is replaced by the module name in source URL templates.
const ModulePlaceholder = "{module}"

// DefaultSourceURL is the link target of every module heading unless overridden.
const DefaultSourceURL = "https://github.com/gcanti/fp-ts/blob/master/src/" + ModulePlaceholder + ".ts"

// IndexTitle is the heading of the index page.
const IndexTitle = "API"

// Renderer produces module and index pages. It holds configuration only, so a
// single Renderer may be used from several goroutines.
type Renderer struct {
	formatter     md.Formatter
	formatOptions md.FormatOptions
	sourceURL     string
	recorder      metrics.Recorder
	logger        *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFormatter replaces the Markdown formatter.
func WithFormatter(f md.Formatter) Option {
	return func(r *Renderer) {
		if f != nil {
			r.formatter = f
		}
	}
}

// WithFormatOptions replaces the formatter configuration.
func WithFormatOptions(opts md.FormatOptions) Option {
	return func(r *Renderer) { r.formatOptions = opts }
}

// WithSourceURL sets the link template of module headings. Every occurrence of
// ModulePlaceholder is replaced by the module name.
func WithSourceURL(template string) Option {
	return func(r *Renderer) {
		if template != "" {
			r.sourceURL = template
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec metrics.Recorder) Option {
	return func(r *Renderer) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Renderer using GoldmarkFormatter, DefaultFormatOptions and
// DefaultSourceURL unless overridden.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		formatter:     md.GoldmarkFormatter{},
		formatOptions: md.DefaultFormatOptions(),
		sourceURL:     DefaultSourceURL,
		recorder:      metrics.NoopRecorder{},
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FormatOptions returns the formatter configuration in use.
func (r *Renderer) FormatOptions() md.FormatOptions {
	return r.formatOptions
}

// SourceURL returns the link target for a module heading.
func (r *Renderer) SourceURL(module string) string {
	return strings.ReplaceAll(r.sourceURL, ModulePlaceholder, module)
}

// RenderModule returns the unformatted Markdown of a module page. It fails
// when an export is not one of the known variants.
func (r *Renderer) RenderModule(m apimodel.Module) (string, error) {
	groups, err := apimodel.Partition(m.Exports)
	if err != nil {
		if classified, ok := errors.AsClassified(err); ok {
			return "", classified.WithContext("module", m.Name)
		}
		return "", err
	}

	var b strings.Builder
	b.WriteString("MODULE " + md.Link(m.Name, r.SourceURL(m.Name)))
	b.WriteString(joinFragments(groups.Typeclasses, printTypeclass))
	b.WriteString(joinFragments(groups.Datas, printData))
	b.WriteString(joinFragments(apimodel.SortByName(groups.Instances), printInstance))
	b.WriteString(joinFragments(apimodel.SortByName(groups.Funcs), printFunc))
	return b.String(), nil
}

// PrintModule renders a module page and formats it. Formatter errors are
// returned unchanged and no partial output is produced.
func (r *Renderer) PrintModule(m apimodel.Module) (string, error) {
	start := time.Now()
	out, err := r.print(metrics.KindModule, func() (string, error) { return r.RenderModule(m) })
	if err != nil {
		r.logger.Debug("Module render failed", logfields.Module(m.Name), logfields.Error(err))
		return "", err
	}
	r.logger.Debug("Rendered module page",
		logfields.Module(m.Name),
		logfields.Count(len(m.Exports)),
		logfields.Elapsed(time.Since(start)))
	return out, nil
}

// RenderIndex returns the unformatted index page. Names keep their input order.
func (r *Renderer) RenderIndex(modules []string) string {
	bullets := make([]string, 0, len(modules))
	for _, name := range modules {
		bullets = append(bullets, "- "+md.Link(name, "./"+name+".md"))
	}
	return md.H1(IndexTitle) + md.CRLF + md.CRLF + strings.Join(bullets, md.CRLF)
}

// PrintIndex renders and formats the index page.
func (r *Renderer) PrintIndex(modules []string) (string, error) {
	out, err := r.print(metrics.KindIndex, func() (string, error) { return r.RenderIndex(modules), nil })
	if err != nil {
		return "", err
	}
	r.logger.Debug("Rendered index page", logfields.Count(len(modules)))
	return out, nil
}

func (r *Renderer) print(kind string, build func() (string, error)) (string, error) {
	start := time.Now()
	defer func() {
		r.recorder.ObserveRenderDuration(kind, time.Since(start))
	}()

	raw, err := build()
	if err != nil {
		r.recorder.IncRenderResult(kind, metrics.ResultFailed)
		return "", err
	}
	out, err := r.formatter.Format(raw, r.formatOptions)
	if err != nil {
		r.recorder.IncRenderResult(kind, metrics.ResultFailed)
		return "", err
	}
	r.recorder.IncRenderResult(kind, metrics.ResultSuccess)
	return out, nil
}
