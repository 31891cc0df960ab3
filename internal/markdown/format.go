package markdown

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

// ParserMarkdown is the only input dialect the formatter accepts.
const ParserMarkdown = "markdown"

// Prose wrapping modes, named after the prettier option of the same name.
const (
	ProseWrapPreserve = "preserve" // keep line breaks as written
	ProseWrapAlways   = "always"   // wrap paragraphs at PrintWidth
	ProseWrapNever    = "never"    // join every paragraph onto one line
)

// FormatOptions is the fixed style configuration passed to a Formatter.
//
// Semi and SingleQuote only matter to formatters that rewrite code inside
// fences. GoldmarkFormatter leaves fence contents untouched.
type FormatOptions struct {
	Parser      string
	Semi        bool
	SingleQuote bool
	PrintWidth  int
	ProseWrap   string
}

// DefaultFormatOptions returns the configuration every page is formatted with.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Parser:      ParserMarkdown,
		Semi:        false,
		SingleQuote: true,
		PrintWidth:  120,
		ProseWrap:   ProseWrapPreserve,
	}
}

// Formatter reflows Markdown text. Implementations must be deterministic and
// idempotent.
type Formatter interface {
	Format(src string, opts FormatOptions) (string, error)
}

// GoldmarkFormatter normalizes Markdown layout without changing the document
// it describes:
//
//   - trailing whitespace is removed, except for hard line breaks
//   - runs of blank lines collapse to one
//   - ATX headings and top-level code fences are surrounded by blank lines
//   - ATX headings lose extra spaces and closing hashes
//   - the result ends in exactly one newline
//
// Code block, fence and HTML block contents are kept verbatim. List markers
// and emphasis are never rewritten, so tight lists stay tight. Paragraphs are
// rewrapped only when ProseWrap asks for it.
type GoldmarkFormatter struct{}

var _ Formatter = GoldmarkFormatter{}

// Format implements Formatter.
func (GoldmarkFormatter) Format(src string, opts FormatOptions) (out string, err error) {
	if opts.Parser != ParserMarkdown {
		return "", errors.RenderError("unsupported formatter parser").
			WithContext("parser", opts.Parser).
			Build()
	}
	if opts.PrintWidth <= 0 {
		return "", errors.RenderError("print width must be positive").
			WithContext("print_width", opts.PrintWidth).
			Build()
	}
	switch opts.ProseWrap {
	case "", ProseWrapPreserve, ProseWrapAlways, ProseWrapNever:
	default:
		return "", errors.RenderError("unsupported prose wrap mode").
			WithContext("prose_wrap", opts.ProseWrap).
			Build()
	}

	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = errors.RenderError("markdown formatter failed").
				WithContext("panic", fmt.Sprint(r)).
				Build()
		}
	}()

	source := strings.ReplaceAll(src, "\r\n", CRLF)
	lines := strings.Split(source, CRLF)
	info := analyze([]byte(source), lines)

	var w lineWriter
	fence := fenceState{}
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if fence.open {
			w.line(line)
			if fence.closes(line) {
				fence = fenceState{}
				if atColumnZero(line) {
					w.wantBlank()
				}
			}
			continue
		}
		if f, ok := openFence(line); ok {
			if atColumnZero(line) {
				w.blank()
			}
			fence = f
			w.line(strings.TrimRight(line, " \t"))
			continue
		}
		if info.verbatim[i] {
			w.line(line)
			continue
		}

		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" {
			w.blank()
			continue
		}
		if heading, ok := normalizeATX(trimmed); ok {
			w.blank()
			w.line(heading)
			w.wantBlank()
			continue
		}
		if p, ok := info.wrappable[i]; ok && opts.ProseWrap != "" && opts.ProseWrap != ProseWrapPreserve {
			width := opts.PrintWidth
			if opts.ProseWrap == ProseWrapNever {
				width = 0
			}
			for _, l := range wrapParagraph(lines[p.first:p.last+1], width) {
				w.line(l)
			}
			i = p.last
			continue
		}
		if info.hardBreak[i] && strings.HasSuffix(line, "  ") {
			trimmed += "  "
		}
		w.line(trimmed)
	}

	return strings.Trim(w.String(), CRLF) + CRLF, nil
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(src string, opts FormatOptions) (string, error)

// Format implements Formatter.
func (f FormatterFunc) Format(src string, opts FormatOptions) (string, error) {
	return f(src, opts)
}

type paragraphSpan struct{ first, last int }

// layout records what goldmark found on each source line.
type layout struct {
	verbatim  map[int]bool          // indented code and HTML block lines
	hardBreak map[int]bool          // paragraph lines followed by another line of the same paragraph
	wrappable map[int]paragraphSpan // first line of top-level paragraphs safe to rewrap
}

func analyze(source []byte, lines []string) layout {
	starts := make([]int, len(lines))
	offset := 0
	for i, l := range lines {
		starts[i] = offset
		offset += len(l) + 1
	}
	lineOf := func(pos int) int {
		return sort.Search(len(starts), func(i int) bool { return starts[i] > pos }) - 1
	}

	l := layout{verbatim: map[int]bool{}, hardBreak: map[int]bool{}, wrappable: map[int]paragraphSpan{}}
	root := goldmark.New().Parser().Parse(text.NewReader(source))
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if n.Type() == gmast.TypeInline {
			return gmast.WalkSkipChildren, nil
		}
		segs := n.Lines()
		switch n.(type) {
		case *gmast.CodeBlock, *gmast.HTMLBlock:
			for i := 0; i < segs.Len(); i++ {
				l.verbatim[lineOf(segs.At(i).Start)] = true
			}
			return gmast.WalkSkipChildren, nil
		case *gmast.Paragraph, *gmast.TextBlock:
			if segs.Len() == 0 {
				return gmast.WalkContinue, nil
			}
			first, last := lineOf(segs.At(0).Start), lineOf(segs.At(segs.Len()-1).Start)
			for i := first; i < last; i++ {
				l.hardBreak[i] = true
			}
			if _, para := n.(*gmast.Paragraph); para && n.Parent() != nil && n.Parent().Kind() == gmast.KindDocument &&
				canRewrap(lines[first:last+1]) {
				l.wrappable[first] = paragraphSpan{first: first, last: last}
			}
		}
		return gmast.WalkContinue, nil
	})
	return l
}

// canRewrap rejects paragraphs whose meaning depends on their line layout:
// hard breaks, indented lines and code spans with significant spacing.
func canRewrap(lines []string) bool {
	for i, line := range lines {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			return false
		}
		if i < len(lines)-1 && (strings.HasSuffix(line, "  ") || strings.HasSuffix(line, `\`)) {
			return false
		}
		if strings.Contains(line, "`") && strings.Contains(strings.TrimSpace(line), "  ") {
			return false
		}
	}
	return true
}

// blockStart matches words that would start a new block if they began a line.
var blockStart = regexp.MustCompile(`^(?:[-+*]|#{1,6}|\d{1,9}[.)]|=+|-+|[*_-]{3,}|[<>].*|` + "```.*|~~~.*" + `)$`)

// wrapParagraph greedily fills lines up to width columns. A width of zero
// joins everything onto one line.
func wrapParagraph(lines []string, width int) []string {
	words := strings.Fields(strings.Join(lines, " "))
	var out []string
	var cur strings.Builder
	columns := 0
	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if cur.Len() == 0 {
			cur.WriteString(word)
			columns = n
			continue
		}
		if width > 0 && columns+1+n > width && !blockStart.MatchString(word) {
			out = append(out, cur.String())
			cur.Reset()
			cur.WriteString(word)
			columns = n
			continue
		}
		cur.WriteString(" " + word)
		columns += 1 + n
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

var atxHeading = regexp.MustCompile(`^(#{1,6})(?:[ \t]+(.*))?$`)

// normalizeATX rewrites an ATX heading line to "#... text".
func normalizeATX(line string) (string, bool) {
	m := atxHeading.FindStringSubmatch(line)
	if m == nil {
		return line, false
	}
	title := strings.TrimSpace(m[2])
	if t := strings.TrimRight(title, "#"); t != title && (t == "" || strings.HasSuffix(t, " ") || strings.HasSuffix(t, "\t")) {
		title = strings.TrimSpace(t)
	}
	if title == "" {
		return m[1], true
	}
	return m[1] + " " + title, true
}

type fenceState struct {
	open   bool
	char   byte
	length int
}

var fenceOpen = regexp.MustCompile("^( {0,3})(`{3,}|~{3,})(.*)$")

func openFence(line string) (fenceState, bool) {
	m := fenceOpen.FindStringSubmatch(line)
	if m == nil {
		return fenceState{}, false
	}
	if m[2][0] == '`' && strings.Contains(m[3], "`") {
		return fenceState{}, false
	}
	return fenceState{open: true, char: m[2][0], length: len(m[2])}, true
}

func (f fenceState) closes(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return false
	}
	trimmed = strings.TrimRight(trimmed, " \t")
	return len(trimmed) >= f.length && strings.Trim(trimmed, string(f.char)) == ""
}

func atColumnZero(line string) bool {
	return line != "" && line[0] != ' '
}

// lineWriter accumulates output lines, collapsing blank runs.
type lineWriter struct {
	b          strings.Builder
	lastBlank  bool
	started    bool
	blankAhead bool
}

func (w *lineWriter) line(s string) {
	if w.blankAhead && w.started && !w.lastBlank {
		w.b.WriteString(CRLF)
	}
	w.blankAhead = false
	w.b.WriteString(s + CRLF)
	w.lastBlank = false
	w.started = true
}

// blank emits one blank line unless the previous line was blank.
func (w *lineWriter) blank() {
	w.blankAhead = false
	if !w.started || w.lastBlank {
		return
	}
	w.b.WriteString(CRLF)
	w.lastBlank = true
}

// wantBlank requests a blank line before the next non-blank line.
func (w *lineWriter) wantBlank() { w.blankAhead = true }

func (w *lineWriter) String() string { return w.b.String() }
