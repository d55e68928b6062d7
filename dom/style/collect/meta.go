package collect

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/npillmayer/styleres/dom"
	"github.com/npillmayer/styleres/dom/w3cdom"
)

// Metadata returns the http-equiv metadata of the document, i.e. the
// http-equiv and content attributes of <meta> children of the first head
// element. Keys are lower-cased; for names differing only in case the last
// entry in document order wins. Entries with an empty name or content are
// skipped. The map is built once per collector; clients must not modify it.
func (c *Collector) Metadata() map[string]string {
	c.metaOnce.Do(func() {
		c.meta = make(map[string]string)
		if c.doc == nil {
			return
		}
		head := c.doc.Head()
		if head == nil {
			return
		}
		for _, ch := range dom.Children(head, dom.IsElement("meta")) {
			name, ok1 := attribute(ch, "http-equiv")
			content, ok2 := attribute(ch, "content")
			if ok1 && ok2 {
				c.meta[strings.ToLower(name)] = content
			}
		}
		tracer().Debugf("document has %d http-equiv meta entries", len(c.meta))
	})
	return c.meta
}

// MetaValue looks up an http-equiv entry, ignoring case.
func (c *Collector) MetaValue(name string) (string, bool) {
	v, ok := c.Metadata()[strings.ToLower(name)]
	return v, ok
}

// Title returns the document title, i.e. the text of the first <title>
// child of the first head element, with whitespace collapsed. Title is ""
// if there is no title.
func (c *Collector) Title() string {
	if c.doc == nil {
		return ""
	}
	title := dom.FirstChild(c.doc.Head(), dom.IsElement("title"))
	if title == nil {
		return ""
	}
	return strings.Join(strings.FieldsFunc(dom.DirectText(title), isHTMLSpace), " ")
}

// isHTMLSpace reports ASCII whitespace as defined by HTML. U+00A0 is not
// whitespace and survives in titles.
func isHTMLSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\f' || r == '\r'
}

// Lang returns the language of element e: its lang attribute, or the
// Content-Language of the document, or "".
func (c *Collector) Lang(e w3cdom.Node) string {
	if lang, ok := attribute(e, "lang"); ok {
		return lang
	}
	lang, _ := c.MetaValue("Content-Language")
	return lang
}

// LanguageTag returns the language of element e as a BCP 47 tag.
// language.Und is returned if e has no language.
func (c *Collector) LanguageTag(e w3cdom.Node) (language.Tag, error) {
	lang := c.Lang(e)
	if lang == "" {
		return language.Und, nil
	}
	if i := strings.IndexByte(lang, ','); i >= 0 { // Content-Language may be a list
		lang = strings.TrimSpace(lang[:i])
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", lang, err)
	}
	return tag, nil
}
