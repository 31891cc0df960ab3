package render

import (
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/apimodel"
	"git.home.luguber.info/inful/apidocs/internal/foundation"
	md "git.home.luguber.info/inful/apidocs/internal/markdown"
)

// Kind labels printed in italics under each heading.
const (
	labelData      = "data"
	labelFunction  = "function"
	labelTypeclass = "type class"
	labelInstance  = "instance"
	labelMethod    = "method"
)

// aliasLine precedes the signature block of aliased functions.
const aliasLine = "Alias of"

func printDescription(description foundation.Option[string]) string {
	return foundation.Fold(description, "", func(d string) string { return md.CRLF + d })
}

func since(version string) string {
	return md.CRLF + md.CRLF + md.Italic("since "+version)
}

func printMethod(m apimodel.Method) string {
	var b strings.Builder
	b.WriteString(md.CRLF + md.H3(m.Name))
	b.WriteString(md.CRLF + md.Italic(labelMethod))
	b.WriteString(since(m.Since))
	b.WriteString(md.CRLF + md.TS(m.Signature))
	b.WriteString(printDescription(m.Description))
	return b.String()
}

func printData(d apimodel.Data) string {
	var b strings.Builder
	b.WriteString(md.CRLF + md.H1(d.Name))
	b.WriteString(md.CRLF + md.Italic(labelData))
	b.WriteString(since(d.Since))
	b.WriteString(md.CRLF + md.TS(d.Signature))
	b.WriteString(printDescription(d.Description))
	if methods := d.Methods(); len(methods) > 0 {
		b.WriteString(md.CRLF + md.H2("Methods"))
		b.WriteString(md.CRLF)
		for _, m := range apimodel.SortByName(methods) {
			b.WriteString(printMethod(m))
		}
	}
	return b.String()
}

func printInstance(i apimodel.Instance) string {
	var b strings.Builder
	b.WriteString(md.CRLF + md.H1(i.Name))
	b.WriteString(md.CRLF + md.Italic(labelInstance))
	b.WriteString(since(i.Since))
	b.WriteString(md.CRLF + md.TS(i.Signature))
	b.WriteString(printDescription(i.Description))
	return b.String()
}

func printFunc(f apimodel.Func) string {
	var b strings.Builder
	b.WriteString(md.CRLF + md.H1(f.Name))
	b.WriteString(md.CRLF + md.Italic(labelFunction))
	b.WriteString(since(f.Since))
	if f.IsAlias {
		b.WriteString(md.CRLF + aliasLine)
	}
	b.WriteString(md.CRLF + md.TS(f.Signature))
	b.WriteString(printDescription(f.Description))
	return b.String()
}

func printTypeclass(tc apimodel.Typeclass) string {
	var b strings.Builder
	b.WriteString(md.CRLF + md.H1(tc.Name))
	b.WriteString(md.CRLF + md.Italic(labelTypeclass))
	b.WriteString(md.CRLF + md.TS(tc.Signature))
	b.WriteString(printDescription(tc.Description))
	return b.String()
}

// joinFragments renders each element and joins the fragments with a newline.
func joinFragments[T any](xs []T, render func(T) string) string {
	parts := make([]string, 0, len(xs))
	for _, x := range xs {
		parts = append(parts, render(x))
	}
	return strings.Join(parts, md.CRLF)
}
