package mock

import "github.com/SirDavvie/wikrawler"

var (
	_ wikrawler.Node   = (*Node)(nil)
	_ wikrawler.Parser = (*Parser)(nil)
)

// Node is a mock implementation of wikrawler.Node.
type Node struct {
	SelectFn        func(selector string) []wikrawler.Node
	ChildrenFn      func(selector string) []wikrawler.Node
	ChildNodesFn    func() []wikrawler.Node
	FirstChildFn    func() wikrawler.Node
	LastChildFn     func() wikrawler.Node
	PrevElementFn   func() wikrawler.Node
	AttrFn          func(name string) (string, bool)
	HasAttributesFn func() bool
	TextFn          func() string
}

func (n *Node) Select(selector string) []wikrawler.Node {
	return n.SelectFn(selector)
}

func (n *Node) Children(selector string) []wikrawler.Node {
	return n.ChildrenFn(selector)
}

func (n *Node) ChildNodes() []wikrawler.Node {
	return n.ChildNodesFn()
}

func (n *Node) FirstChild() wikrawler.Node {
	return n.FirstChildFn()
}

func (n *Node) LastChild() wikrawler.Node {
	return n.LastChildFn()
}

func (n *Node) PrevElement() wikrawler.Node {
	return n.PrevElementFn()
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) HasAttributes() bool {
	return n.HasAttributesFn()
}

func (n *Node) Text() string {
	return n.TextFn()
}

// Parser is a mock implementation of wikrawler.Parser.
type Parser struct {
	ParseFn func(html string) (wikrawler.Node, error)
}

func (p *Parser) Parse(html string) (wikrawler.Node, error) {
	return p.ParseFn(html)
}
