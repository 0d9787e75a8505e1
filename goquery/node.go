// Package goquery implements wikrawler.Node and wikrawler.Parser on top of
// goquery and golang.org/x/net/html, and a wikrawler.DocumentSource that
// parses what a wikrawler.Fetcher returns.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/SirDavvie/wikrawler"
	"golang.org/x/net/html"
)

var (
	_ wikrawler.Node   = (*Node)(nil)
	_ wikrawler.Parser = (*Parser)(nil)
)

// Node wraps a raw html.Node. Selection goes through goquery; sibling and
// attribute access use the raw node so text nodes are visible.
type Node struct {
	n *html.Node
}

// NewNode wraps n. Returns nil for a nil node.
func NewNode(n *html.Node) wikrawler.Node {
	if n == nil {
		return nil
	}
	return &Node{n: n}
}

func (n *Node) selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(n.n).Selection
}

// Select returns the descendants matching selector, in document order.
// An invalid selector matches nothing.
func (n *Node) Select(selector string) []wikrawler.Node {
	return wrapSelection(n.selection().Find(selector))
}

// Children returns the direct element children matching selector.
// An empty selector returns every element child.
func (n *Node) Children(selector string) []wikrawler.Node {
	if selector == "" {
		return wrapSelection(n.selection().Children())
	}
	return wrapSelection(n.selection().ChildrenFiltered(selector))
}

func (n *Node) ChildNodes() []wikrawler.Node {
	var nodes []wikrawler.Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, &Node{n: c})
	}
	return nodes
}

func (n *Node) FirstChild() wikrawler.Node {
	return NewNode(n.n.FirstChild)
}

func (n *Node) LastChild() wikrawler.Node {
	return NewNode(n.n.LastChild)
}

func (n *Node) PrevElement() wikrawler.Node {
	for s := n.n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return &Node{n: s}
		}
	}
	return nil
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) HasAttributes() bool {
	return len(n.n.Attr) > 0
}

func (n *Node) Text() string {
	return n.selection().Text()
}

func wrapSelection(sel *goquery.Selection) []wikrawler.Node {
	if sel.Length() == 0 {
		return nil
	}
	nodes := make([]wikrawler.Node, 0, sel.Length())
	for _, n := range sel.Nodes {
		nodes = append(nodes, &Node{n: n})
	}
	return nodes
}

// Parser parses HTML with goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the document node of the parsed HTML.
func (p *Parser) Parse(s string) (wikrawler.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, wikrawler.Errorf(wikrawler.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewNode(doc.Nodes[0]), nil
}
