package htmladapter

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/npillmayer/styleres/dom/style/cssom"
	"github.com/npillmayer/styleres/dom/w3cdom"
)

var headSelector = cascadia.MustCompile("head")

// Document wraps the document node of an HTML parse tree and implements
// w3cdom.Document.
type Document struct {
	Node
	hosted []*cssom.StylesheetInfo
}

// Option configures a Document.
type Option func(*Document)

// WithStylesheets adds stylesheet sources known to the host. They are
// reported by StylesheetSources after the document's own processing
// instructions.
func WithStylesheets(infos ...*cssom.StylesheetInfo) Option {
	return func(doc *Document) {
		doc.hosted = append(doc.hosted, infos...)
	}
}

// Parse reads an HTML document from r.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return FromHTML(root, opts...), nil
}

// FromHTML wraps an existing parse tree. root should be the document node.
func FromHTML(root *html.Node, opts ...Option) *Document {
	doc := &Document{Node: Node{h: root}}
	for _, opt := range opts {
		opt(doc)
	}
	return doc
}

// DocumentElement returns the root element.
func (doc *Document) DocumentElement() w3cdom.Node {
	for c := doc.h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return Wrap(c)
		}
	}
	return nil
}

// Head returns the first <head> element in document order, or nil.
func (doc *Document) Head() w3cdom.Node {
	return Wrap(headSelector.MatchFirst(doc.h))
}

// Select returns all elements matching a CSS selector, in document order.
func (doc *Document) Select(selector string) ([]w3cdom.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	matches := sel.MatchAll(doc.h)
	nodes := make([]w3cdom.Node, len(matches))
	for i, h := range matches {
		nodes[i] = Wrap(h)
	}
	return nodes, nil
}

// StylesheetSources returns the stylesheets referenced by xml-stylesheet
// processing instructions, followed by sources added with WithStylesheets.
func (doc *Document) StylesheetSources() []*cssom.StylesheetInfo {
	var infos []*cssom.StylesheetInfo
	for c := doc.h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.CommentNode {
			continue
		}
		if info := xmlStylesheet(c.Data); info != nil {
			infos = append(infos, info)
		}
	}
	return append(infos, doc.hosted...)
}

var _ w3cdom.Document = &Document{}

// xmlStylesheet interprets the text of a processing instruction, which the
// HTML parser delivers as a comment "?xml-stylesheet …?". Alternate
// stylesheets and types other than text/css are skipped.
func xmlStylesheet(pi string) *cssom.StylesheetInfo {
	const target = "?xml-stylesheet"
	if !strings.HasPrefix(pi, target) {
		return nil
	}
	body := strings.TrimSuffix(strings.TrimPrefix(pi, target), "?")
	pseudo := pseudoAttributes(body)
	href := strings.TrimSpace(pseudo["href"])
	if href == "" || strings.EqualFold(pseudo["alternate"], "yes") {
		return nil
	}
	typ := strings.TrimSpace(pseudo["type"])
	if typ == "" {
		typ = cssom.DefaultType
	} else if typ != cssom.DefaultType {
		tracer().Debugf("skipping xml-stylesheet %q of type %q", href, typ)
		return nil
	}
	return cssom.NewLinked(cssom.Author, href,
		cssom.Type(typ), cssom.Media(pseudo["media"]), cssom.Title(pseudo["title"]))
}

// pseudoAttributes tokenizes the pseudo-attributes of a processing
// instruction as if they were the attributes of a tag.
func pseudoAttributes(body string) map[string]string {
	attrs := make(map[string]string)
	z := html.NewTokenizer(strings.NewReader("<pi " + body + ">"))
	if z.Next() != html.StartTagToken {
		return attrs
	}
	for {
		key, val, more := z.TagAttr()
		if len(key) > 0 {
			attrs[string(key)] = string(val)
		}
		if !more {
			return attrs
		}
	}
}
