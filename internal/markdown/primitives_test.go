package markdown

import "testing"

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"h1", H1("Option"), "# Option"},
		{"h2", H2("Methods"), "## Methods"},
		{"h3", H3("map"), "### map"},
		{"heading clamps low", Heading(0, "x"), "# x"},
		{"heading clamps high", Heading(6, "x"), "### x"},
		{"fence", Fence("go", "x := 1"), "```go\nx := 1\n```"},
		{"ts fence keeps code verbatim", TS("a  <b>\n  c"), "```ts\na  <b>\n  c\n```"},
		{"code", Code("map"), "`map`"},
		{"link", Link("Option", "./Option.md"), "[Option](./Option.md)"},
		{"italic", Italic("since 1.0.0"), "*since 1.0.0*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if CRLF != "\n" {
		t.Errorf("CRLF must be a single newline, got %q", CRLF)
	}
}
