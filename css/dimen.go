package css

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"

	"github.com/npillmayer/styleres/css/ident"
	"github.com/npillmayer/styleres/css/value"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
//
//     type DimenT
//         = Auto
//         | Inherit
//         | Initial
//         | JustDimen dimen
//         | Percentage Percent
//         | FontRelative value unit
//         | ViewRelative value unit
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	rel     float64
	flags   uint32
}

// Auto is the dimension 'auto'.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit is the dimension 'inherit'.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial is the dimension 'initial'.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

var relFlags = map[value.Unit]uint32{
	value.UnitEM:  dimenEM,
	value.UnitEX:  dimenEX,
	value.UnitCH:  dimenCH,
	value.UnitREM: dimenREM,
	value.UnitVW:  dimenVW,
	value.UnitVH:  dimenVH,
}

// Relative creates a dimension relative to font metrics or the viewport.
func Relative(x float64, u value.Unit) DimenT {
	f, ok := relFlags[u]
	if !ok {
		return DimenT{}
	}
	return DimenT{rel: x, flags: f}
}

// FromValue converts a normalized CSS value into a dimension. Lengths,
// percentages, unit-less zero and the keywords auto, inherit and initial
// are convertible.
func FromValue(v value.Value) (DimenT, error) {
	switch m := v.Match(); m {
	case m.Ident(ident.Auto):
		return Auto(), nil
	case m.Ident(ident.Inherit):
		return Inherit(), nil
	case m.Ident(ident.Initial):
		return Initial(), nil
	case m.Percentage(nil):
		f, _ := v.Float()
		return Percentage(percent.FromInt(int(f + 0.5))), nil
	case m.Length(value.UnitNone, nil), m.Number(nil):
		if d, err := v.Dimen(); err == nil {
			return JustDimen(d), nil
		}
		if f, err := v.Float(); err == nil && v.Unit() != value.UnitNone {
			if d := Relative(f, v.Unit()); !d.IsNone() {
				return d, nil
			}
		}
	}
	return DimenT{}, fmt.Errorf("%w: %q is not a dimension", value.ErrWrongKind, v.Text())
}

// IsNone is true for the zero DimenT.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

func (d DimenT) String() string {
	switch {
	case d.flags == dimenAbsolute:
		return fmt.Sprintf("%v", d.d)
	case d.flags == dimenAuto:
		return "auto"
	case d.flags == dimenInherit:
		return "inherit"
	case d.flags == dimenInitial:
		return "initial"
	case d.flags == dimenPercent:
		return fmt.Sprintf("%v", d.percent)
	case d.flags&relativeMask > 0:
		for u, f := range relFlags {
			if f == d.flags {
				return fmt.Sprintf("%g%s", d.rel, u)
			}
		}
	}
	return "<none>"
}

// ---------------------------------------------------------------------------

// Match returns a matcher for d, see DimenT.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches dimensions in switch statements.
type Matcher struct {
	dimen DimenT
}

// IsKind matches dimensions of the same kind as d. All relative dimensions
// except percentages are of the same kind.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	mk, dk := m.dimen.flags&kindMask, d.flags&kindMask
	mr, dr := m.dimen.flags&relativeMask, d.flags&relativeMask
	switch {
	case mk != 0 && mk == dk:
		return m
	case mr != 0 && dr != 0:
		if (mr == dimenPercent) != (dr == dimenPercent) {
			return nil
		}
		return m
	}
	return nil
}

// Just matches fixed dimensions.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches %-relative dimensions.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// Relative matches font- or viewport-relative dimensions in unit u.
func (m *Matcher) Relative(u value.Unit, x *float64) *Matcher {
	if f, ok := relFlags[u]; ok && m.dimen.flags == f {
		if x != nil {
			*x = m.dimen.rel
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds a result for each kind of dimension.
type DimenPatterns[T any] struct {
	Auto     T
	Inherit  T
	Initial  T
	Just     T
	Percent  T
	Relative T
	Default  T
}

// DimenPattern starts an expression match on d.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr selects one of a set of patterns.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf returns the pattern matching the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags == dimenAuto:
		return patterns.Auto
	case m.dimen.flags == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags == dimenInitial:
		return patterns.Initial
	case m.dimen.flags == dimenInherit:
		return patterns.Inherit
	case m.dimen.flags == dimenPercent:
		return patterns.Percent
	case m.dimen.flags&relativeMask > 0:
		return patterns.Relative
	}
	return patterns.Default
}

// With extracts the fixed value of the dimension.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const is a helper for use in patterns.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
