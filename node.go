package wikrawler

// Node is a node of a parsed markup document.
// Methods returning a single Node return nil when there is no such node.
type Node interface {
	// Select returns the descendants matching a CSS selector, in document order.
	Select(selector string) []Node

	// Children returns the direct element children matching a CSS selector.
	Children(selector string) []Node

	// ChildNodes returns every direct child, including text nodes.
	ChildNodes() []Node

	// FirstChild and LastChild may be text nodes.
	FirstChild() Node
	LastChild() Node

	// PrevElement returns the previous sibling element, skipping text nodes.
	PrevElement() Node

	Attr(name string) (string, bool)
	HasAttributes() bool

	// Text returns the concatenated text of the node and its descendants.
	Text() string
}

// Parser parses markup into a document tree.
type Parser interface {
	Parse(html string) (Node, error)
}
