package collect

import (
	"strings"
	"sync"

	"github.com/npillmayer/styleres/dom"
	"github.com/npillmayer/styleres/dom/style/cssom"
	"github.com/npillmayer/styleres/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/styleres/dom/w3cdom"
	"github.com/npillmayer/styleres/maybe"
)

// Collector finds the style sources of a single document. A Collector is
// safe for concurrent use, provided the document is not modified.
type Collector struct {
	doc      w3cdom.Document
	parser   cssom.Parser
	defaults *DefaultSheetCache
	metaOnce sync.Once
	meta     map[string]string
}

// Option configures a Collector.
type Option func(*Collector)

// WithParser sets the CSS parser. The default is douceuradapter.Parser.
func WithParser(p cssom.Parser) Option {
	return func(c *Collector) {
		c.parser = p
	}
}

// WithDefaultSheets sets the cache for the user-agent default stylesheet.
// The default is the process-wide DefaultSheets.
func WithDefaultSheets(cache *DefaultSheetCache) Option {
	return func(c *Collector) {
		c.defaults = cache
	}
}

// New creates a collector for doc.
func New(doc w3cdom.Document, opts ...Option) *Collector {
	c := &Collector{
		doc:      doc,
		parser:   douceuradapter.Parser{},
		defaults: DefaultSheets,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Document returns the document of the collector.
func (c *Collector) Document() w3cdom.Document {
	return c.doc
}

// Parser returns the CSS parser of the collector.
func (c *Collector) Parser() cssom.Parser {
	return c.parser
}

// DefaultStylesheet returns the user-agent default stylesheet, or Nothing if
// it could not be loaded.
func (c *Collector) DefaultStylesheet() maybe.Maybe[*cssom.StylesheetInfo] {
	return c.defaults.Get(c.parser)
}

// Stylesheets returns the author style sources of the document in cascade
// order: first the sources known to the host, then <link> and <style>
// children of the first head element, in document order.
func (c *Collector) Stylesheets() []*cssom.StylesheetInfo {
	var infos []*cssom.StylesheetInfo
	if c.doc == nil {
		return infos
	}
	infos = append(infos, c.doc.StylesheetSources()...)
	head := c.doc.Head()
	if head == nil {
		tracer().Debugf("document has no head, no stylesheets to link")
		return infos
	}
	for _, ch := range dom.Children(head, dom.NodeIsElement) {
		var info *cssom.StylesheetInfo
		switch ch.NodeName() {
		case "link":
			info = readLinkElement(ch)
		case "style":
			info = readStyleElement(ch)
		}
		if info != nil {
			tracer().Debugf("found stylesheet %s", info)
			infos = append(infos, info)
		}
	}
	return infos
}

// readLinkElement creates a descriptor for a <link> to a stylesheet, or nil
// for other links, alternate stylesheets and types other than text/css.
func readLinkElement(link w3cdom.Node) *cssom.StylesheetInfo {
	rel := strings.ToLower(rawAttribute(link, "rel"))
	if strings.Contains(rel, "alternate") || !strings.Contains(rel, "stylesheet") {
		return nil
	}
	typ := rawAttribute(link, "type")
	if typ == "" {
		typ = cssom.DefaultType
	} else if typ != cssom.DefaultType {
		return nil
	}
	return cssom.NewLinked(cssom.Author, rawAttribute(link, "href"),
		cssom.Type(typ),
		cssom.Media(rawAttribute(link, "media")),
		cssom.Title(rawAttribute(link, "title")))
}

// readStyleElement creates a descriptor for an embedded stylesheet, or nil
// if the element has no CSS text. Only direct text children are considered.
func readStyleElement(style w3cdom.Node) *cssom.StylesheetInfo {
	css := strings.TrimSpace(dom.DirectText(style))
	if css == "" {
		return nil
	}
	return cssom.NewEmbedded(cssom.Author, css,
		cssom.Type(rawAttribute(style, "type")),
		cssom.Media(rawAttribute(style, "media")),
		cssom.Title(rawAttribute(style, "title")))
}

// --- Helpers ---------------------------------------------------------------

// rawAttribute returns an attribute value as written, "" if absent.
func rawAttribute(n w3cdom.Node, key string) string {
	v, _ := w3cdom.AttributeValue(n, key)
	return v
}

// attribute returns a trimmed attribute value. Empty values count as absent.
func attribute(n w3cdom.Node, key string) (string, bool) {
	v, ok := w3cdom.AttributeValue(n, key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
