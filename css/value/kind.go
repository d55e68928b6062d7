package value

// Kind is the normalized classification of a Value.
type Kind uint8

// Kinds of values.
const (
	NoKind Kind = iota
	KindIdent
	KindLength
	KindPercentage
	KindNumber
	KindString
	KindURI
	KindColor
	KindCounter
	KindRect
)

var kindNames = [...]string{"none", "ident", "length", "percentage", "number",
	"string", "uri", "color", "counter", "rect"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// IsNumeric is true for kinds carrying a magnitude.
func (k Kind) IsNumeric() bool {
	return k == KindLength || k == KindPercentage || k == KindNumber
}

// Unit is the unit of a dimensioned value.
type Unit uint8

// Units for lengths. Percentages carry UnitPercent, numbers UnitNone.
const (
	UnitNone Unit = iota
	UnitPercent
	UnitPX
	UnitPT
	UnitPC
	UnitIN
	UnitCM
	UnitMM
	UnitEM
	UnitEX
	UnitREM
	UnitCH
	UnitVW
	UnitVH
)

var unitNames = [...]string{"", "%", "px", "pt", "pc", "in", "cm", "mm",
	"em", "ex", "rem", "ch", "vw", "vh"}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "?"
}

// IsAbsolute is true for units with a fixed physical size.
func (u Unit) IsAbsolute() bool {
	return u >= UnitPX && u <= UnitMM
}

// IsFontRelative is true for units relative to font metrics.
func (u Unit) IsFontRelative() bool {
	return u >= UnitEM && u <= UnitCH
}

// IsViewportRelative is true for units relative to the viewport.
func (u Unit) IsViewportRelative() bool {
	return u == UnitVW || u == UnitVH
}

// unitFromString maps a CSS unit suffix to a Unit.
func unitFromString(s string) (Unit, bool) {
	for i, n := range unitNames {
		if i > int(UnitPercent) && n == s {
			return Unit(i), true
		}
	}
	return UnitNone, false
}

// Type is the type tag of a raw, not yet normalized primitive value, as
// reported by a CSS parser. The codes follow the CSSOM primitive types.
type Type uint16

// Raw primitive types.
const (
	TypeUnknown Type = iota
	TypeNumber
	TypePercentage
	TypeEMS
	TypeEXS
	TypePX
	TypeCM
	TypeMM
	TypeIN
	TypePT
	TypePC
	TypeREM
	TypeCH
	TypeVW
	TypeVH
	TypeString
	TypeURI
	TypeIdent
	TypeCounter
	TypeRect
	TypeRGBColor
)

type classification struct {
	kind Kind
	unit Unit
}

var classify = map[Type]classification{
	TypeNumber:     {KindNumber, UnitNone},
	TypePercentage: {KindPercentage, UnitPercent},
	TypeEMS:        {KindLength, UnitEM},
	TypeEXS:        {KindLength, UnitEX},
	TypePX:         {KindLength, UnitPX},
	TypeCM:         {KindLength, UnitCM},
	TypeMM:         {KindLength, UnitMM},
	TypeIN:         {KindLength, UnitIN},
	TypePT:         {KindLength, UnitPT},
	TypePC:         {KindLength, UnitPC},
	TypeREM:        {KindLength, UnitREM},
	TypeCH:         {KindLength, UnitCH},
	TypeVW:         {KindLength, UnitVW},
	TypeVH:         {KindLength, UnitVH},
	TypeString:     {KindString, UnitNone},
	TypeURI:        {KindURI, UnitNone},
	TypeIdent:      {KindIdent, UnitNone},
	TypeCounter:    {KindCounter, UnitNone},
	TypeRect:       {KindRect, UnitNone},
	TypeRGBColor:   {KindColor, UnitNone},
}

// typeForUnit is the inverse of classify for lengths.
func typeForUnit(u Unit) Type {
	for t, c := range classify {
		if c.kind == KindLength && c.unit == u {
			return t
		}
	}
	return TypeUnknown
}
