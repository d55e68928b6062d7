package htmladapter

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/npillmayer/styleres/dom/w3cdom"
)

// Node wraps an *html.Node and implements w3cdom.Node.
type Node struct {
	h *html.Node
}

// Wrap creates a w3cdom.Node for h. It returns nil for nil.
func Wrap(h *html.Node) w3cdom.Node {
	if h == nil {
		return nil
	}
	return &Node{h: h}
}

// HTMLNode returns the underlying node of the parse tree.
func (n *Node) HTMLNode() *html.Node {
	return n.h
}

// NodeType returns the type of the underlying HTML node.
func (n *Node) NodeType() html.NodeType {
	return n.h.Type
}

// NodeName returns the lower-case tag name for elements, "#text" for text
// nodes, "#document" for the document and "#comment" for comments.
func (n *Node) NodeName() string {
	switch n.h.Type {
	case html.ElementNode:
		return strings.ToLower(n.h.Data)
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return n.h.Data
	}
	return ""
}

// NodeValue returns the text of text and comment nodes, "" otherwise.
func (n *Node) NodeValue() string {
	if n.h.Type == html.TextNode || n.h.Type == html.CommentNode {
		return n.h.Data
	}
	return ""
}

// HasAttributes is true for elements with at least one attribute.
func (n *Node) HasAttributes() bool {
	return len(n.h.Attr) > 0
}

// ParentNode returns the parent or nil.
func (n *Node) ParentNode() w3cdom.Node {
	return Wrap(n.h.Parent)
}

// HasChildNodes is true if n has at least one child node.
func (n *Node) HasChildNodes() bool {
	return n.h.FirstChild != nil
}

// ChildNodes returns all children in document order.
func (n *Node) ChildNodes() w3cdom.NodeList {
	var l nodeList
	for c := n.h.FirstChild; c != nil; c = c.NextSibling {
		l = append(l, c)
	}
	return l
}

// Children returns the element children in document order.
func (n *Node) Children() w3cdom.NodeList {
	var l nodeList
	for c := n.h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			l = append(l, c)
		}
	}
	return l
}

// FirstChild returns the first child node or nil.
func (n *Node) FirstChild() w3cdom.Node {
	return Wrap(n.h.FirstChild)
}

// NextSibling returns the next sibling or nil.
func (n *Node) NextSibling() w3cdom.Node {
	return Wrap(n.h.NextSibling)
}

// Attributes returns the attributes of an element.
func (n *Node) Attributes() w3cdom.NamedNodeMap {
	return attrMap(n.h.Attr)
}

// TextContent returns the text of n and all its descendents.
func (n *Node) TextContent() (string, error) {
	var b bytes.Buffer
	var collect func(*html.Node)
	collect = func(h *html.Node) {
		if h.Type == html.TextNode {
			b.WriteString(h.Data)
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n.h)
	return b.String(), nil
}

func (n *Node) String() string {
	return n.NodeName()
}

var _ w3cdom.Node = &Node{}

// --- Node lists and attributes ---------------------------------------------

type nodeList []*html.Node

func (l nodeList) Length() int {
	return len(l)
}

func (l nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return Wrap(l[i])
}

func (l nodeList) String() string {
	names := make([]string, len(l))
	for i, h := range l {
		names[i] = Wrap(h).NodeName()
	}
	return "[" + strings.Join(names, " ") + "]"
}

type attrMap []html.Attribute

func (m attrMap) Length() int {
	return len(m)
}

func (m attrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return attr{m[i]}
}

// GetNamedItem looks up an attribute by key, ignoring case.
func (m attrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m {
		if strings.EqualFold(a.Key, key) {
			return attr{a}
		}
	}
	return nil
}

type attr struct {
	a html.Attribute
}

func (a attr) Namespace() string { return a.a.Namespace }
func (a attr) Key() string       { return a.a.Key }
func (a attr) Value() string     { return a.a.Val }
