package css

import (
	"fmt"

	"github.com/npillmayer/styleres/css/ident"
	"github.com/npillmayer/styleres/css/value"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
)

// PositionT is an option type for CSS positions.
//
//     type PositionT
//         = Unset
//         | Static
//         | Relative top right bottom left
//         | Absolute top right bottom left
//         | Fixed top right bottom left
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

// PositionOffset is one of the offset properties top, right, bottom, left.
type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

var posDirNames = [...]string{"top", "right", "bottom", "left"}

func (dir PosDir) String() string {
	if dir > Left {
		return fmt.Sprintf("PosDir(%d)", dir)
	}
	return posDirNames[dir]
}

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left) into
// a 4-way slice, ordered by PosDir. Invalid PosDir-s are silently dropped.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := ZeroOffsets()
	for _, o := range offsets {
		if o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

// ZeroOffsets returns (Top, Right, Bottom, Left) with unset dimensions.
func ZeroOffsets() []PositionOffset {
	zeros := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		zeros[i].Dir = i
	}
	return zeros
}

// PositionStatic creates a CSS position of value `static`.
func PositionStatic() PositionT {
	return PositionT{kind: positionStatic}
}

// PositionRelative creates a CSS position of value `relative`, given optional
// offsets. offsets may be provided partially or none at all.
func PositionRelative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// PositionAbsolute creates a CSS position of value `absolute`, given optional
// offsets. offsets may be provided partially or none at all.
func PositionAbsolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// PositionFixed creates a CSS position of value `fixed`, given optional
// offsets. offsets may be provided partially or none at all.
func PositionFixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

var positionNames = map[position]string{
	positionUnset:    "unset",
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
}

var positionIdents = map[*ident.Ident]position{
	ident.Static:   positionStatic,
	ident.Relative: positionRelative,
	ident.Absolute: positionAbsolute,
	ident.Fixed:    positionFixed,
}

// ParsePosition returns an optional position type from the text of a
// `position` property. It will never return an error, even with illegal
// input, but instead will then return an unset position.
func ParsePosition(text string) PositionT {
	v, err := value.ParseValue(text)
	if err != nil {
		return PositionT{}
	}
	var id *ident.Ident
	switch m := v.Ident(nil).Match(); m {
	case m.Just(&id):
		if k, ok := positionIdents[id]; ok {
			if k == positionStatic {
				return PositionT{kind: k}
			}
			return PositionT{kind: k, offsets: ZeroOffsets()}
		}
	}
	tracer().Debugf("not a position: %q", text)
	return PositionT{}
}

// WithOffset returns a copy of p with the offset for dir set from the text
// of an offset property, e.g. "12pt". Static and unset positions have no
// offsets and are returned unchanged.
func (p PositionT) WithOffset(dir PosDir, text string) (PositionT, error) {
	if p.kind == positionUnset || p.kind == positionStatic || dir > Left {
		return p, nil
	}
	v, err := value.ParseValue(text)
	if err != nil {
		return p, err
	}
	d, err := FromValue(v)
	if err != nil {
		return p, err
	}
	offsets := NormalizeOffsets(p.offsets)
	offsets[dir] = PositionOffset{Dim: d, Dir: dir}
	return PositionT{kind: p.kind, offsets: offsets}, nil
}

// Offsets returns the 4 offsets of p, or nil for static and unset positions.
func (p PositionT) Offsets() []PositionOffset {
	return p.offsets
}

func (p PositionT) String() string {
	return positionNames[p.kind]
}

// ---------------------------------------------------------------------------

func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

type PMatcher struct {
	pos PositionT
}

func (m *PMatcher) IsKind(p PositionT) *PMatcher {
	if p.kind == m.pos.kind {
		return m
	}
	return nil
}

func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	return m.withOffsets(positionAbsolute, o)
}

func (m *PMatcher) Relative(o *[]PositionOffset) *PMatcher {
	return m.withOffsets(positionRelative, o)
}

func (m *PMatcher) Fixed(o *[]PositionOffset) *PMatcher {
	return m.withOffsets(positionFixed, o)
}

func (m *PMatcher) withOffsets(k position, o *[]PositionOffset) *PMatcher {
	if m.pos.kind != k {
		return nil
	}
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

// --- Expression matching ---------------------------------------------------

type PositionPatterns[T any] struct {
	Unset    T
	Static   T
	Absolute T
	Relative T
	Fixed    T
	Default  T
}

func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended to be instantiated
// using `PositionPattern()` only.
type PMatchExpr[T any] struct {
	pos PositionT
}

func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case positionUnset:
		return patterns.Unset
	case positionStatic:
		return patterns.Static
	case positionAbsolute:
		return patterns.Absolute
	case positionRelative:
		return patterns.Relative
	case positionFixed:
		return patterns.Fixed
	}
	return patterns.Default
}

func (m *PMatchExpr[T]) With(o *[]PositionOffset) *PMatchExpr[T] {
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

func (m *PMatchExpr[T]) Const(x T) T {
	return x
}

// ---------------------------------------------------------------------------

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsRelative returns true if p represents a valid relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p represents a valid absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}
