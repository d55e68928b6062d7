package collect

import (
	"strings"

	"github.com/npillmayer/styleres/dom"
	"github.com/npillmayer/styleres/dom/style"
	"github.com/npillmayer/styleres/dom/style/cssom"
	"github.com/npillmayer/styleres/dom/w3cdom"
)

// Property names for table cell spans, as understood by the table layout.
const (
	ColspanProperty = "-fs-table-cell-colspan"
	RowspanProperty = "-fs-table-cell-rowspan"
)

// presentational maps element names to the attributes converted to CSS.
// Attributes with lengthish set are coerced from plain integers to px.
var presentational = map[string][]struct {
	attr, property string
	lengthish      bool
}{
	"td":       {{"colspan", ColspanProperty, false}, {"rowspan", RowspanProperty, false}},
	"th":       {{"colspan", ColspanProperty, false}, {"rowspan", RowspanProperty, false}},
	"img":      {{"width", "width", true}, {"height", "height", true}},
	"canvas":   {{"width", "width", true}, {"height", "height", true}},
	"colgroup": {{"span", ColspanProperty, false}, {"width", "width", true}},
	"col":      {{"span", ColspanProperty, false}, {"width", "width", true}},
}

// ElementStyling returns the CSS declarations for element e: declarations
// synthesized from presentational attributes, followed by the element's
// style attribute as written. The result is rebuilt on every call.
//
// Example:
//
//     <td colspan="2" style="color: red">   ⇒   "-fs-table-cell-colspan: 2;color: red"
//
func (c *Collector) ElementStyling(e w3cdom.Node) string {
	if !dom.NodeIsElement(e) {
		return ""
	}
	var b strings.Builder
	for _, p := range presentational[e.NodeName()] {
		v, ok := attribute(e, p.attr)
		if !ok {
			continue
		}
		if p.lengthish {
			v = convertToLength(v)
		}
		b.WriteString(p.property)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString(";")
	}
	b.WriteString(rawAttribute(e, "style"))
	return b.String()
}

// convertToLength appends a unit of px to plain integers.
func convertToLength(v string) string {
	for _, r := range v {
		if r < '0' || r > '9' {
			return v
		}
	}
	return v + "px"
}

// ElementProperties parses the declarations of ElementStyling into a
// property map. Declarations of the style attribute override presentational
// ones.
func (c *Collector) ElementProperties(e w3cdom.Node) (*style.PropertyMap, error) {
	text := c.ElementStyling(e)
	if strings.TrimSpace(text) == "" {
		return style.NewPropertyMap(), nil
	}
	decls, err := c.parser.ParseDeclarations(text)
	if err != nil {
		tracer().P("element", e.NodeName()).Debugf("cannot parse element styling %q: %v", text, err)
		return nil, err
	}
	return cssom.ApplyDeclarations(nil, decls), nil
}

// ElementClass returns the class attribute of e, "" if absent.
func (c *Collector) ElementClass(e w3cdom.Node) string {
	return rawAttribute(e, "class")
}

// ElementID returns the trimmed id attribute of e. An empty id counts as
// absent.
func (c *Collector) ElementID(e w3cdom.Node) (string, bool) {
	return attribute(e, "id")
}

// LinkURI returns the href attribute of an <a> element.
func (c *Collector) LinkURI(e w3cdom.Node) (string, bool) {
	return anchorAttribute(e, "href")
}

// AnchorName returns the name attribute of an <a> element.
func (c *Collector) AnchorName(e w3cdom.Node) (string, bool) {
	return anchorAttribute(e, "name")
}

func anchorAttribute(e w3cdom.Node, key string) (string, bool) {
	if !dom.IsElement("a")(e) {
		return "", false
	}
	return w3cdom.AttributeValue(e, key)
}
