package value

import (
	"image/color"
	"strings"

	"github.com/npillmayer/styleres/css/ident"
)

// Match returns a matcher for v, to be used in a switch statement:
//
//     var px float64
//     switch m := v.Match(); m {
//     case m.Length(UnitPX, &px):
//         …
//     case m.Ident(ident.Auto):
//         …
//     }
//
// Each case method returns the matcher if v is of the requested form, nil
// otherwise. Out-parameters may be nil.
func (v Value) Match() *Matcher {
	return &Matcher{v: v}
}

// Matcher matches values by kind.
type Matcher struct {
	v Value
}

// Kind matches values of kind k.
func (m *Matcher) Kind(k Kind) *Matcher {
	if m.v.kind == k {
		return m
	}
	return nil
}

// Length matches lengths with unit u. Unit UnitNone matches every length.
func (m *Matcher) Length(u Unit, f *float64) *Matcher {
	if m.v.kind != KindLength || (u != UnitNone && m.v.unit != u) {
		return nil
	}
	if f != nil {
		*f = m.v.num
	}
	return m
}

// Percentage matches percentages.
func (m *Matcher) Percentage(f *float64) *Matcher {
	return m.numeric(KindPercentage, f)
}

// Number matches unit-less numbers.
func (m *Matcher) Number(f *float64) *Matcher {
	return m.numeric(KindNumber, f)
}

func (m *Matcher) numeric(k Kind, f *float64) *Matcher {
	if m.v.kind != k {
		return nil
	}
	if f != nil {
		*f = m.v.num
	}
	return m
}

// Ident matches an ident value whose keyword is the keyword of token id.
func (m *Matcher) Ident(id *ident.Ident) *Matcher {
	if m.v.kind != KindIdent || id == nil {
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(m.v.text), id.String()) {
		return m
	}
	return nil
}

// AnyIdent matches all ident values, returning the keyword text in s.
func (m *Matcher) AnyIdent(s *string) *Matcher {
	return m.text(KindIdent, s)
}

// String matches string values.
func (m *Matcher) String(s *string) *Matcher {
	return m.text(KindString, s)
}

// URI matches URI values.
func (m *Matcher) URI(s *string) *Matcher {
	return m.text(KindURI, s)
}

func (m *Matcher) text(k Kind, s *string) *Matcher {
	if m.v.kind != k {
		return nil
	}
	if s != nil {
		*s = m.v.text
	}
	return m
}

// Color matches color values.
func (m *Matcher) Color(c *color.NRGBA) *Matcher {
	if m.v.kind != KindColor {
		return nil
	}
	if c != nil {
		*c = m.v.rgba
	}
	return m
}
