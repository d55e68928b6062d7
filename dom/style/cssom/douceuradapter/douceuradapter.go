/*
Package douceuradapter is a concrete implementation of interfaces
cssom.StyleSheet and cssom.Parser, based on github.com/aymerick/douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"io"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/styleres/dom/style"
	"github.com/npillmayer/styleres/dom/style/cssom"
)

// tracer traces with key 'styleres.dom'.
func tracer() tracing.Trace {
	return tracing.Select("styleres.dom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Stylesheets of other
// implementations are ignored.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules of stylesheet type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule(*r)
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	v := style.NullStyle
	for _, d := range r.Declarations {
		if d.Property == key {
			v = style.Property(d.Value)
		}
	}
	return v
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key && d.Important {
			return true
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// Parser implements cssom.Parser.
type Parser struct{}

// ParseStylesheet reads CSS text from r and parses it into a stylesheet.
func (Parser) ParseStylesheet(r io.Reader) (cssom.StyleSheet, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stylesheet: %w", err)
	}
	sheet, err := parser.Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	return Wrap(sheet), nil
}

// ParseDeclarations parses a declaration block without braces, as found in
// style attributes. The last declaration needs no terminating semicolon.
func (Parser) ParseDeclarations(text string) ([]cssom.Declaration, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if !strings.HasSuffix(text, ";") {
		text += ";" // douceur drops the value of an unterminated declaration
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("parsing declarations: %w", err)
	}
	r := make([]cssom.Declaration, len(decls))
	for i, d := range decls {
		r[i] = cssom.Declaration{Key: d.Property, Value: style.Property(d.Value), Important: d.Important}
	}
	return r, nil
}

var _ cssom.Parser = Parser{}
