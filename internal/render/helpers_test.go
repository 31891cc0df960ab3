package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	"git.home.luguber.info/inful/apidocs/internal/foundation"
	md "git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
)

// identity returns its input unchanged so tests can assert on the exact
// pre-format text.
var identity = md.FormatterFunc(func(src string, _ md.FormatOptions) (string, error) {
	return src, nil
})

type countingRecorder struct {
	metrics.NoopRecorder
	results map[string]map[metrics.ResultLabel]int
	timings map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		results: map[string]map[metrics.ResultLabel]int{},
		timings: map[string]int{},
	}
}

func (c *countingRecorder) ObserveRenderDuration(kind string, _ time.Duration) {
	c.timings[kind]++
}

func (c *countingRecorder) IncRenderResult(kind string, result metrics.ResultLabel) {
	m, ok := c.results[kind]
	if !ok {
		m = map[metrics.ResultLabel]int{}
		c.results[kind] = m
	}
	m[result]++
}

func optionModule() apimodel.Module {
	return apimodel.Module{
		Name: "Option",
		Exports: []apimodel.Export{
			apimodel.Func{Name: "some", Since: "1.0.0", Signature: "export const some = <A>(a: A): Option<A> => new Some(a)"},
			apimodel.Data{
				Name:        "Option",
				Since:       "1.0.0",
				Signature:   "export type Option<A> = None<A> | Some<A>",
				Description: foundation.Some("Represents optional values."),
				Constructors: []apimodel.Constructor{
					{Methods: []apimodel.Method{
						{Name: "map", Since: "1.0.0", Signature: "map<B>(f: (a: A) => B): Option<B>"},
						{
							Name:        "fold",
							Since:       "1.0.0",
							Signature:   "fold<B>(b: B, some: (a: A) => B): B",
							Description: foundation.Some("Applies a function to the value, or returns the default."),
						},
					}},
					{Methods: []apimodel.Method{
						{Name: "hidden", Since: "1.0.0", Signature: "hidden(): void"},
					}},
				},
			},
			apimodel.Instance{Name: "option", Since: "1.0.0", Signature: "export const option: Monad1<URI> = { URI, map }"},
			apimodel.Func{Name: "none", Since: "1.0.0", Signature: "export const none: Option<never> = None.value", IsAlias: true},
			apimodel.Typeclass{Name: "Foldable", Signature: "export interface Foldable<F> {}", Description: foundation.Some("Folding containers.")},
			apimodel.Instance{Name: "getShow", Since: "1.5.0", Signature: "export const getShow = <A>(S: Show<A>): Show<Option<A>> => ..."},
			apimodel.Data{Name: "None", Since: "1.0.0", Signature: "export class None<A> {}"},
			apimodel.Typeclass{Name: "Alt", Signature: "export interface Alt<F> extends Functor<F> {}"},
		},
	}
}

func readGolden(t *testing.T, name string) string {
	t.Helper()
	// #nosec G304 -- test fixture path.
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read golden %s: %v", name, err)
	}
	return string(data)
}

// writeGolden refreshes a golden file when UPDATE_GOLDENS is set.
func writeGolden(t *testing.T, name, content string) {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	if err := os.WriteFile(filepath.Join("testdata", name), []byte(content), 0o600); err != nil {
		t.Fatalf("write golden %s: %v", name, err)
	}
}
