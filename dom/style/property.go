package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'styleres.dom'
func tracer() tracing.Trace {
	return tracing.Select("styleres.dom")
}

// Property is the raw text of a declared CSS property value, e.g. "black"
// for
//
//     color: black
//
// Typed access is provided by package css/value; Property carries the
// declared text between the stylesheet parser and the cascade.
type Property string

// NullStyle is an empty property value. It denotes "not declared".
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial is true for the CSS-wide keyword "initial", which resets a
// property to its user-agent default.
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit is true for the CSS-wide keyword "inherit", which takes the
// value from the parent element, even for non-inherited properties.
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty is true for NullStyle.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property groups --------------------------------------------------

// PropertyGroup holds the properties of one topic, e.g. all margins.
// See GroupNameFromPropertyKey for the assignment of properties to groups.
type PropertyGroup struct {
	name  string
	props map[string]Property
}

// NewPropertyGroup creates an empty property group.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// String lists the properties of a group, sorted by key.
func (pg *PropertyGroup) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] =\n", pg.name)
	for _, kv := range pg.Properties() {
		fmt.Fprintf(&b, "  %s = %s\n", kv.Key, kv.Value)
	}
	return b.String()
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.props))
	for k, v := range pg.props {
		r = append(r, KeyValue{Key: k, Value: v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	p, ok := pg.props[key]
	return p, ok
}

// Set a property's value, replacing an existing one.
// Values are lower-cased, except for quoted strings and URIs.
func (pg *PropertyGroup) Set(key string, p Property) {
	if pg.props == nil {
		pg.props = make(map[string]Property)
	}
	pg.props[key] = lowerValue(p)
}

func lowerValue(p Property) Property {
	s := strings.TrimSpace(string(p))
	if strings.ContainsAny(s, `"'`) || strings.Contains(strings.ToLower(s), "url(") {
		return Property(s)
	}
	return Property(strings.ToLower(s))
}

// GroupNameFromPropertyKey returns the property group name for a property:
//
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown keys belong to group "X".
func GroupNameFromPropertyKey(key string) string {
	if g, ok := groupNameFromPropertyKey[key]; ok {
		return g
	}
	return PGX
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGRegion    = "Region"
	PGColor     = "Color"
	PGText      = "Text"
	PGTable     = "Table"
	PGX         = "X"
)

var groupNameFromPropertyKey = func() map[string]string {
	m := make(map[string]string, 64)
	for _, dir := range fourDirs {
		m["margin-"+dir] = PGMargins
		m["padding-"+dir] = PGPadding
		m["border-"+dir+"-color"] = PGBorder
		m["border-"+dir+"-width"] = PGBorder
		m["border-"+dir+"-style"] = PGBorder
	}
	for _, corner := range fourCorners {
		m["border-"+corner+"-radius"] = PGBorder
	}
	for _, k := range []string{"width", "height", "min-width", "min-height", "max-width", "max-height"} {
		m[k] = PGDimension
	}
	for _, k := range []string{"display", "float", "visibility", "position"} {
		m[k] = PGDisplay
	}
	m["flow-into"], m["flow-from"] = PGRegion, PGRegion
	m["color"], m["background-color"] = PGColor, PGColor
	for _, k := range []string{"direction", "white-space", "word-spacing", "letter-spacing",
		"word-break", "word-wrap"} {
		m[k] = PGText
	}
	for _, k := range []string{"-fs-table-cell-colspan", "-fs-table-cell-rowspan",
		"border-collapse", "border-spacing", "caption-side", "empty-cells", "table-layout"} {
		m[k] = PGTable
	}
	return m
}()

// IsCascading returns wether a property is inherited by default, i.e.
// whether a lookup of an undeclared value continues at the parent element.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "position", "flow-into", "flow-from":
		return true
	case "letter-spacing", "line-height", "quotes", "visibility", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap":
		return true
	case "border-collapse", "border-spacing", "caption-side", "empty-cells":
		return true
	}
	return false
}

// SplitCompoundProperty splits a box shorthand into its longhands:
//
//    SplitCompoundProperty("padding", "3px 1px")
//
// yields padding-top 3px, padding-right 1px, padding-bottom 3px and
// padding-left 1px.
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin", "padding":
		return expandBox(key, "", fourDirs, fields)
	case "border-color", "border-width", "border-style":
		return expandBox("border", strings.TrimPrefix(key, "border-"), fourDirs, fields)
	case "border-radius":
		return expandBox("border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// boxIndex[n-1][i] is the value index for side i of a shorthand with n values.
var boxIndex = [4][4]int{
	{0, 0, 0, 0},
	{0, 1, 0, 1},
	{0, 1, 2, 1},
	{0, 1, 2, 3},
}

func expandBox(prefix, suffix string, sides [4]string, fields []string) ([]KeyValue, error) {
	n := len(fields)
	if n == 0 || n > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", longhand(prefix, suffix, ""))
	}
	r := make([]KeyValue, 4)
	for i, side := range sides {
		r[i] = KeyValue{Key: longhand(prefix, suffix, side), Value: Property(fields[boxIndex[n-1][i]])}
	}
	return r, nil
}

// Sides in shorthand order.
var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func longhand(prefix, suffix, side string) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{prefix, side, suffix} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "-")
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds the CSS properties styling a DOM node, segmented into
// property groups. nil is a legal (empty) property map.
type PropertyMap struct {
	m map[string]*PropertyGroup
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("Property Map = {\n")
	if pmap != nil {
		names := make([]string, 0, len(pmap.m))
		for name := range pmap.m {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(pmap.m[name].String())
		}
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a property value, together with an indicator
// wether it is present in the map. No cascading is performed.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Add sets a property, replacing an existing value:
//
//    pm.Add("funny-margin", "big")
//
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	pmap.group(GroupNameFromPropertyKey(key)).Set(key, value)
}

func (pmap *PropertyMap) group(groupname string) *PropertyGroup {
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	g, ok := pmap.m[groupname]
	if !ok {
		g = NewPropertyGroup(groupname)
		pmap.m[groupname] = g
	}
	return g
}
