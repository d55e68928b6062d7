package cssom

import (
	"io"

	"github.com/npillmayer/styleres/dom/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// collection of style sources, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// ReadOnly wraps a stylesheet which is shared between documents. The view
// ignores AppendRules and hands out copies of the rule list.
func ReadOnly(sheet StyleSheet) StyleSheet {
	if sheet == nil {
		return nil
	}
	if ro, ok := sheet.(readOnlySheet); ok {
		return ro
	}
	return readOnlySheet{sheet: sheet}
}

type readOnlySheet struct {
	sheet StyleSheet
}

func (ro readOnlySheet) AppendRules(StyleSheet) {
	tracer().Errorf("attempt to append rules to a shared stylesheet, ignored")
}

func (ro readOnlySheet) Empty() bool { return ro.sheet.Empty() }

func (ro readOnlySheet) Rules() []Rule {
	rules := ro.sheet.Rules()
	return append(make([]Rule, 0, len(rules)), rules...)
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Declaration is a single CSS declaration, as found in a rule body or in a
// style attribute.
type Declaration struct {
	Key       string
	Value     style.Property
	Important bool
}

// Parser is the CSS-text parsing capability the styling engine relies on.
type Parser interface {
	// ParseStylesheet parses a complete stylesheet from r.
	ParseStylesheet(r io.Reader) (StyleSheet, error)
	// ParseDeclarations parses the body of a rule or a style attribute,
	// e.g. "color: red; width: 10px".
	ParseDeclarations(text string) ([]Declaration, error)
}

// ApplyDeclarations adds declarations to a property map in order, i.e. later
// declarations override earlier ones, except that a declaration marked as
// important is overridden by important declarations only. Shorthand
// properties are split into their components. If pmap is nil, a new property
// map is created.
func ApplyDeclarations(pmap *style.PropertyMap, decls []Declaration) *style.PropertyMap {
	if pmap == nil {
		pmap = style.NewPropertyMap()
	}
	important := make(map[string]bool)
	set := func(key string, p style.Property, imp bool) {
		if important[key] && !imp {
			tracer().Debugf("keeping important value for %s, ignoring %q", key, p)
			return
		}
		important[key] = imp
		pmap.Add(key, p)
	}
	for _, d := range decls {
		if kvs, err := style.SplitCompoundProperty(d.Key, d.Value); err == nil {
			for _, kv := range kvs {
				set(kv.Key, kv.Value, d.Important)
			}
			continue
		}
		set(d.Key, d.Value, d.Important)
	}
	return pmap
}
