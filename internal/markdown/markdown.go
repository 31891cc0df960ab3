// Package markdown holds the Markdown building blocks used by the renderer:
// string primitives for headings, fences and links, the document formatter,
// and goldmark-based link extraction for verifying generated pages.
package markdown

import (
	"sort"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ExtractLinks parses a Markdown body and extracts link-like constructs in
// document order, followed by reference definitions sorted by label.
// Links inside code spans and code blocks are not reported.
func ExtractLinks(body []byte) ([]ExtractedLink, error) {
	md := goldmark.New()
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]ExtractedLink, 0)
	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, ExtractedLink{Kind: LinkKindAuto, Text: string(node.Label(body)), Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, ExtractedLink{Kind: LinkKindImage, Text: plainText(node, body), Destination: string(node.Destination)})
		case *gmast.Link:
			// Goldmark resolves reference-style links to a Link node with a Destination.
			links = append(links, ExtractedLink{Kind: LinkKindInline, Text: plainText(node, body), Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	// Reference definitions are stored in the parse context (not represented as AST nodes).
	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		links = append(links, ExtractedLink{Kind: LinkKindReferenceDefinition, Text: string(ref.Label()), Destination: string(ref.Destination())})
	}

	return links, nil
}

func plainText(n gmast.Node, source []byte) string {
	var out []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			out = append(out, t.Segment.Value(source)...)
			continue
		}
		out = append(out, plainText(c, source)...)
	}
	return string(out)
}
