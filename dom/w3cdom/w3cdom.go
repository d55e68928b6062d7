/*
Package w3cdom defines an interface type for W3C Document Object Models.

See also https://www.w3schools.com/XML/dom_intro.asp

The styling engine does not depend on a concrete DOM implementation. It
needs element names, attribute lookup, ordered children, direct text children
and, from the document, the stylesheet sources a host knows about (e.g., from
xml-stylesheet processing instructions or HTTP headers). Package htmladapter
implements these interfaces on top of golang.org/x/net/html.

Status

Early draft, API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"github.com/npillmayer/styleres/dom/style/cssom"
	"golang.org/x/net/html"
)

// Node represents W3C-type Node
type Node interface {
	NodeType() html.NodeType      // type of the underlying HTML node (ElementNode, TextNode, etc.)
	NodeName() string             // node name output depends on the node's type
	NodeValue() string            // node value output depends on the node's type
	HasAttributes() bool          // check for existence of attributes
	ParentNode() Node             // get the parent node, if any
	HasChildNodes() bool          // check for existende of sub-nodes
	ChildNodes() NodeList         // get a list of all children-nodes
	Children() NodeList           // get a list of element child-nodes
	FirstChild() Node             // get the first children-node
	NextSibling() Node            // get the Node's next sibling or nil if last
	Attributes() NamedNodeMap     // get all attributes of a node
	TextContent() (string, error) // get text from node and all descendents
}

// Document represents the root of a W3C-type document tree.
type Document interface {
	Node
	DocumentElement() Node                      // the root element, usually <html>
	Head() Node                                 // the first <head> element in document order, or nil
	StylesheetSources() []*cssom.StylesheetInfo // stylesheets known to the host, in order
}

// NodeList represents W3C-type NodeList
type NodeList interface {
	Length() int
	Item(int) Node
	String() string
}

// Attr represents W3C-type Attr
type Attr interface {
	Namespace() string
	Key() string
	Value() string
}

// NamedNodeMap represents w3C-type NamedNodeMap
type NamedNodeMap interface {
	Length() int
	Item(int) Attr
	GetNamedItem(string) Attr
}

// AttributeValue returns the value of attribute key of node n as written,
// and false if the attribute is absent.
func AttributeValue(n Node, key string) (string, bool) {
	if n == nil || !n.HasAttributes() {
		return "", false
	}
	attr := n.Attributes().GetNamedItem(key)
	if attr == nil {
		return "", false
	}
	return attr.Value(), true
}
