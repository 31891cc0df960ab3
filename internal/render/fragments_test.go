package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	"git.home.luguber.info/inful/apidocs/internal/foundation"
)

func TestPrintMethod(t *testing.T) {
	got := printMethod(apimodel.Method{Name: "map", Since: "1.0.0", Signature: "map(): void"})
	want := "\n### map\n*method*\n\n*since 1.0.0*\n```ts\nmap(): void\n```"
	assert.Equal(t, want, got)
}

func TestPrintDescription(t *testing.T) {
	assert.Equal(t, "", printDescription(foundation.None[string]()))
	assert.Equal(t, "\nSome prose.", printDescription(foundation.Some("Some prose.")))
}

func TestPrintFunc_Alias(t *testing.T) {
	alias := printFunc(apimodel.Func{Name: "chain", Since: "2.0.0", Signature: "chain", IsAlias: true})
	assert.Equal(t, "\n# chain\n*function*\n\n*since 2.0.0*\nAlias of\n```ts\nchain\n```", alias)
	assert.Contains(t, alias, "\nAlias of\n```ts")

	plain := printFunc(apimodel.Func{Name: "flatMap", Since: "2.0.0", Signature: "flatMap"})
	assert.NotContains(t, plain, "Alias of")
}

func TestPrintTypeclass_HasNoSinceLine(t *testing.T) {
	got := printTypeclass(apimodel.Typeclass{Name: "Functor", Signature: "interface Functor<F> {}", Description: foundation.Some("Mappable.")})
	assert.Equal(t, "\n# Functor\n*type class*\n```ts\ninterface Functor<F> {}\n```\nMappable.", got)
	assert.NotContains(t, got, "since")
}

func TestPrintInstance(t *testing.T) {
	got := printInstance(apimodel.Instance{Name: "option", Since: "1.0.0", Signature: "const option"})
	assert.Equal(t, "\n# option\n*instance*\n\n*since 1.0.0*\n```ts\nconst option\n```", got)
}

func TestFragmentsCarrySinceLine(t *testing.T) {
	fragments := map[string]string{
		"data":     printData(apimodel.Data{Name: "D", Since: "3.1.0"}),
		"func":     printFunc(apimodel.Func{Name: "f", Since: "3.1.0"}),
		"instance": printInstance(apimodel.Instance{Name: "i", Since: "3.1.0"}),
		"method":   printMethod(apimodel.Method{Name: "m", Since: "3.1.0"}),
	}
	for kind, fragment := range fragments {
		assert.Contains(t, fragment, "\n\n*since 3.1.0*\n", kind)
		assert.True(t, strings.HasPrefix(fragment, "\n"), kind)
	}
}

func TestPrintData_MethodsSection(t *testing.T) {
	t.Run("no constructors", func(t *testing.T) {
		got := printData(apimodel.Data{Name: "Unit", Since: "1.0.0", Signature: "type Unit = void"})
		assert.NotContains(t, got, "## Methods")
	})

	t.Run("first constructor without methods", func(t *testing.T) {
		got := printData(apimodel.Data{
			Name: "Pair",
			Constructors: []apimodel.Constructor{
				{},
				{Methods: []apimodel.Method{{Name: "swap"}}},
			},
		})
		assert.NotContains(t, got, "## Methods")
		assert.NotContains(t, got, "swap")
	})

	t.Run("methods sorted by name", func(t *testing.T) {
		got := printData(apimodel.Data{
			Name: "List",
			Constructors: []apimodel.Constructor{{Methods: []apimodel.Method{
				{Name: "reduce"}, {Name: "Concat"}, {Name: "map"}, {Name: "chain"},
			}}},
		})
		assertOrder(t, got, "### Concat", "### chain", "### map", "### reduce")
		assert.Contains(t, got, "\n## Methods\n\n### Concat")
	})

	t.Run("only the first constructor is documented", func(t *testing.T) {
		got := printData(apimodel.Data{
			Name: "Either",
			Constructors: []apimodel.Constructor{
				{Methods: []apimodel.Method{{Name: "map"}}},
				{Methods: []apimodel.Method{{Name: "mapLeft"}, {Name: "bimap"}}},
			},
		})
		assert.Contains(t, got, "### map")
		assert.NotContains(t, got, "mapLeft")
		assert.NotContains(t, got, "bimap")
	})
}

// assertOrder checks that every needle occurs in s, in the given order.
func assertOrder(t *testing.T, s string, needles ...string) {
	t.Helper()
	last := -1
	for _, n := range needles {
		idx := strings.Index(s, n)
		if !assert.GreaterOrEqual(t, idx, 0, "missing %q", n) {
			return
		}
		assert.Greater(t, idx, last, "%q out of order", n)
		last = idx
	}
}
