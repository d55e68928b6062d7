package style

import (
	"strings"
)

// Values "default" have the following semantics:
// Treat this as an inherent UA default, which should not be instantiated in memory,
// but rather will be treated implicitely by rendering code.
// See issue https://github.com/npillmayer/tyse/issues/8
//
var nonInherited = map[string]string{
	"position":            "static",
	"background-color":    "default",
	"border-top-color":    "default",
	"border-left-color":   "default",
	"border-right-color":  "default",
	"border-bottom-color": "default",
	"flow-from":           "none",
	"flow-into":           "none",
}

var isDimension = map[string]string{
	"width":                      "auto",
	"height":                     "auto",
	"min-width":                  "none",
	"min-height":                 "none",
	"max-width":                  "none",
	"max-height":                 "none",
	"top":                        "0",
	"right":                      "0",
	"bottom":                     "0",
	"left":                       "0",
	"margin-top":                 "0",
	"margin-left":                "0",
	"margin-right":               "0",
	"margin-bottom":              "0",
	"padding-top":                "0",
	"padding-left":               "0",
	"padding-right":              "0",
	"padding-bottom":             "0",
	"border-top-width":           "medium",
	"border-left-width":          "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-top-left-radius":     "0",
	"border-top-right-radius":    "0",
	"border-bottom-left-radius":  "0",
	"border-bottom-right-radius": "0",
}

// UserAgentDefault returns the user-agent default property for a given key
// and an element name, e.g. "td". Keys without a default yield NullStyle.
func UserAgentDefault(element string, key string) Property {
	if key == "display" {
		return DisplayPropertyFor(element)
	}
	if dim, ok := isDimension[key]; ok {
		return Property(dim)
	}
	if p, ok := nonInherited[key]; ok {
		return Property(p)
	}
	if g := uaDefaults.Group(GroupNameFromPropertyKey(key)); g != nil {
		if p, ok := g.Get(key); ok {
			return p
		}
	}
	return NullStyle
}

var uaDefaults = InitializeDefaultPropertyValues(nil)

// DisplayPropertyFor returns the default `display` CSS property for an
// HTML element name. The document itself is "#document".
func DisplayPropertyFor(element string) Property {
	switch strings.ToLower(element) {
	case "":
		return "none"
	case "#document":
		return "block"
	case "head", "title", "meta", "link", "style", "script":
		return "none"
	case "html", "address", "article", "aside", "blockquote", "body", "div",
		"dl", "dd", "dt", "figure", "footer", "form", "h1", "h2", "h3", "h4",
		"h5", "h6", "header", "hr", "nav", "ol", "p", "pre", "section", "ul":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "caption":
		return "table-caption"
	case "thead":
		return "table-header-group"
	case "tbody":
		return "table-row-group"
	case "tfoot":
		return "table-footer-group"
	case "tr":
		return "table-row"
	case "td", "th":
		return "table-cell"
	case "colgroup":
		return "table-column-group"
	case "col":
		return "table-column"
	case "a", "abbr", "b", "br", "cite", "code", "em", "i", "img", "q",
		"small", "span", "strong", "sub", "sup", "u":
		return "inline"
	}
	if strings.HasPrefix(element, "#") {
		tracer().Debugf("cannot get display-property for non-element %s", element)
		return "none"
	}
	tracer().Infof("unknown HTML element %s will be set to display: block", element)
	return "block"
}

// InitializeDefaultPropertyValues creates a property map holding the
// default values for CSS properties, i.e. the values a user agent applies to
// undeclared properties. additionalProps may add or override entries.
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	pmap := NewPropertyMap()
	for _, dir := range fourDirs {
		pmap.Add("margin-"+dir, "0")
		pmap.Add("padding-"+dir, "0")
		pmap.Add("border-"+dir+"-color", "black")
		pmap.Add("border-"+dir+"-width", "medium")
		pmap.Add("border-"+dir+"-style", "none")
	}
	for _, corner := range fourCorners {
		pmap.Add("border-"+corner+"-radius", "0")
	}
	for _, kv := range initialValues {
		pmap.Add(kv.Key, kv.Value)
	}
	for _, kv := range additionalProps {
		pmap.Add(kv.Key, kv.Value)
	}
	return pmap
}

var initialValues = []KeyValue{
	{"width", "auto"}, {"height", "auto"},
	{"min-width", "none"}, {"min-height", "none"},
	{"max-width", "none"}, {"max-height", "none"},
	{"display", "block"}, {"float", "none"},
	{"visibility", "visible"}, {"position", "static"},
	{"-fs-table-cell-colspan", "1"}, {"-fs-table-cell-rowspan", "1"},
	{"border-collapse", "separate"}, {"border-spacing", "0"},
	{"caption-side", "top"}, {"empty-cells", "show"}, {"table-layout", "auto"},
	{"color", "default"}, {"background-color", "default"},
	{"direction", "ltr"}, {"white-space", "normal"},
	{"word-spacing", "normal"}, {"letter-spacing", "normal"},
	{"word-break", "normal"}, {"overflow-wrap", "normal"}, {"hyphens", "manual"},
}
