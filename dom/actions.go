package dom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/npillmayer/styleres/dom/w3cdom"
)

// Predicate is a test on DOM nodes.
type Predicate func(w3cdom.Node) bool

// NodeIsText is a predicate to match text-nodes of a DOM.
var NodeIsText Predicate = func(n w3cdom.Node) bool {
	return n != nil && n.NodeType() == html.TextNode
}

// NodeIsElement is a predicate to match element-nodes of a DOM.
var NodeIsElement Predicate = func(n w3cdom.Node) bool {
	return n != nil && n.NodeType() == html.ElementNode
}

// IsElement returns a predicate matching elements with the given tag name.
// Tag names are compared case-insensitively.
func IsElement(name string) Predicate {
	name = strings.ToLower(name)
	return func(n w3cdom.Node) bool {
		return NodeIsElement(n) && n.NodeName() == name
	}
}

// FirstChild returns the first child of n matching pred, or nil.
func FirstChild(n w3cdom.Node, pred Predicate) w3cdom.Node {
	if n == nil {
		return nil
	}
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if pred(ch) {
			return ch
		}
	}
	return nil
}

// Children returns all children of n matching pred, in document order.
func Children(n w3cdom.Node, pred Predicate) []w3cdom.Node {
	if n == nil {
		return nil
	}
	var r []w3cdom.Node
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if pred(ch) {
			r = append(r, ch)
		}
	}
	tracer().Debugf("%d children of <%s> match", len(r), n.NodeName())
	return r
}

// DirectText concatenates the values of the text-node children of n.
// Text of nested elements is not included.
func DirectText(n w3cdom.Node) string {
	var b strings.Builder
	for _, t := range Children(n, NodeIsText) {
		b.WriteString(t.NodeValue())
	}
	return b.String()
}
