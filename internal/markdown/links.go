package markdown

// LinkKind classifies an extracted link.
type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

// ExtractedLink is a link-like construct found by ExtractLinks.
type ExtractedLink struct {
	Kind        LinkKind
	Text        string
	Destination string
}
