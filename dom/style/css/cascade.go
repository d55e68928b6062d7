package css

import (
	"errors"
	"fmt"

	"github.com/npillmayer/styleres/dom/style"
	"github.com/npillmayer/styleres/dom/w3cdom"
)

// StyleFunc returns the properties declared for a DOM node, e.g.
// collect.Collector.ElementProperties.
type StyleFunc func(w3cdom.Node) (*style.PropertyMap, error)

// ErrNoNode is returned when asking for a property of a nil node.
var ErrNoNode = errors.New("no DOM node to get a property from")

// GetCascadedProperty gets the value of a property. The search cascades to
// the property maps of ancestor nodes, skipping values declared as "inherit".
// A value declared as "initial" resolves to the user-agent default of the
// element declaring it. If no ancestor declares the property, the
// user-agent default for node is returned.
//
// Clients will usually call GetProperty(…) instead as this will respect
// CSS semantics for inherited properties.
func GetCascadedProperty(node w3cdom.Node, key string, styles StyleFunc) (style.Property, error) {
	if node == nil {
		return style.NullStyle, ErrNoNode
	}
	for n := node; n != nil; n = n.ParentNode() {
		pmap, err := styles(n)
		if err != nil {
			return style.NullStyle, fmt.Errorf("cannot cascade %s from <%s>: %w", key, n.NodeName(), err)
		}
		switch p := GetLocalProperty(pmap, key); {
		case p.IsEmpty() || p.IsInherit():
			continue
		case p.IsInitial():
			return style.UserAgentDefault(n.NodeName(), key), nil
		default:
			return p, nil
		}
	}
	return style.UserAgentDefault(node.NodeName(), key), nil
}

// GetProperty gets the value of a property. If the property is not set
// locally on the node and the property is inheritable, the search
// cascades to the ancestors of node. A non-inheritable property declared
// as "inherit" takes the value of the parent node.
//
// Properties which are neither set nor inherited, or which are declared as
// "initial", get their user-agent default value.
func GetProperty(node w3cdom.Node, key string, styles StyleFunc) (style.Property, error) {
	if style.IsCascading(key) {
		return GetCascadedProperty(node, key, styles)
	}
	if node == nil {
		return style.NullStyle, ErrNoNode
	}
	pmap, err := styles(node)
	if err != nil {
		return style.NullStyle, err
	}
	p := GetLocalProperty(pmap, key)
	if p.IsInherit() {
		if parent := node.ParentNode(); parent != nil {
			return GetProperty(parent, key, styles)
		}
	}
	if p.IsEmpty() || p.IsInherit() || p.IsInitial() {
		p = style.UserAgentDefault(node.NodeName(), key)
	}
	tracer().Debugf("css get property: %s = %q", key, p)
	return p, nil
}

// GetLocalProperty returns a style property value, if it is set locally
// in a property map. No cascading is performed.
func GetLocalProperty(pmap *style.PropertyMap, key string) style.Property {
	group := pmap.Group(style.GroupNameFromPropertyKey(key))
	if group == nil {
		return style.NullStyle
	}
	p, _ := group.Get(key)
	return p
}
