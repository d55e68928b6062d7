package value

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/npillmayer/styleres/css/ident"
	"github.com/npillmayer/styleres/maybe"
)

// Errors returned by this package.
var (
	// ErrNormalization flags a raw value which cannot be classified or for
	// which no textual form can be derived.
	ErrNormalization = errors.New("cannot normalize CSS value")
	// ErrImmutable is returned for every attempt to modify a Value.
	ErrImmutable = errors.New("CSS value is immutable")
	// ErrWrongKind is returned by accessors called on a value of a different kind.
	ErrWrongKind = errors.New("CSS value is of wrong kind")
)

// Raw is a primitive value as delivered by a CSS parser.
type Raw struct {
	Type        Type
	CSSText     string       // the value as written, e.g. `12px` or `url("a.png")`
	StringValue string       // unquoted payload of strings and URIs, if known
	Float       float64      // magnitude, used if CSSText is empty
	Color       *color.NRGBA // structured color, if the parser provides one
	Counter     *Counter
	Rect        *Rect
}

// Counter is the structured payload of counter() and counters().
type Counter struct {
	Identifier string
	ListStyle  string // empty means "decimal"
	Separator  string // non-empty for counters()
}

// Rect is the structured payload of rect(…). Sides are lengths or the
// ident "auto".
type Rect struct {
	Top, Right, Bottom, Left Value
}

// Value is a normalized CSS primitive value. The zero value is not a valid
// value; Values are created by Normalize, WithText or NewIdent only.
type Value struct {
	kind    Kind
	unit    Unit
	typ     Type
	text    string
	num     float64
	rgba    color.NRGBA
	counter *Counter
	rect    *Rect
}

// Normalize converts a raw primitive value into a Value.
//
// It fails with ErrNormalization if the raw type is unknown, if a structured
// payload is missing, or if no textual form can be derived.
func Normalize(raw Raw) (Value, error) {
	c, ok := classify[raw.Type]
	if !ok {
		return Value{}, fmt.Errorf("%w: unknown primitive type %d for %q", ErrNormalization,
			raw.Type, raw.CSSText)
	}
	v := Value{kind: c.kind, unit: c.unit, typ: raw.Type}
	text := strings.TrimSpace(raw.CSSText)
	switch c.kind {
	case KindColor:
		if raw.Color != nil {
			v.rgba = *raw.Color
		} else {
			rgba, err := parseColor(text)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %v", ErrNormalization, err)
			}
			v.rgba = rgba
		}
		if text == "" {
			text = hexColor(v.rgba)
		}
	case KindIdent:
		// keep keyword text as written; ident resolution happens downstream
	case KindString:
		if raw.StringValue != "" {
			text = raw.StringValue
		} else {
			text = unquote(text)
		}
	case KindURI:
		if raw.StringValue != "" {
			text = raw.StringValue
		} else {
			text = stripURL(text)
		}
	case KindCounter:
		if raw.Counter == nil {
			return Value{}, fmt.Errorf("%w: counter without payload", ErrNormalization)
		}
		c := *raw.Counter
		v.counter = &c
	case KindRect:
		if raw.Rect == nil {
			return Value{}, fmt.Errorf("%w: rect without payload", ErrNormalization)
		}
		r := *raw.Rect
		v.rect = &r
	default: // numeric kinds
		if text == "" {
			v.num = raw.Float
			text = formatNumber(raw.Float) + c.unit.String()
		} else {
			n, err := magnitude(text, c.unit)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %v", ErrNormalization, err)
			}
			v.num = n
		}
	}
	if text == "" {
		return Value{}, fmt.Errorf("%w: no text for %s value", ErrNormalization, c.kind)
	}
	v.text = text
	return v, nil
}

// WithText normalizes raw, but replaces the textual form of the result with
// text. Kind and typed payload stay those of raw.
func WithText(raw Raw, text string) (Value, error) {
	v, err := Normalize(raw)
	if err != nil {
		return v, err
	}
	if text == "" {
		return Value{}, fmt.Errorf("%w: empty text override", ErrNormalization)
	}
	v.text = text
	return v, nil
}

// NewIdent creates an ident value for keyword.
func NewIdent(keyword string) (Value, error) {
	return Normalize(Raw{Type: TypeIdent, CSSText: keyword})
}

// NormalizeAll normalizes a list of raw values. Values which fail to
// normalize are dropped from the result; their errors are combined into the
// returned error. The other values are returned in order.
func NormalizeAll(raws []Raw) ([]Value, error) {
	var errs error
	values := make([]Value, 0, len(raws))
	for _, raw := range raws {
		v, err := Normalize(raw)
		if err != nil {
			tracer().Debugf("dropping CSS value %q: %v", raw.CSSText, err)
			errs = multierr.Append(errs, err)
			continue
		}
		values = append(values, v)
	}
	return values, errs
}

// --- Accessors -------------------------------------------------------------

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Unit returns the unit of a dimensioned value.
func (v Value) Unit() Unit { return v.unit }

// Type returns the primitive type v has been normalized from.
func (v Value) Type() Type { return v.typ }

// Text returns the textual form of v.
func (v Value) Text() string { return v.text }

func (v Value) String() string { return v.text }

// IsValid is false for the zero Value.
func (v Value) IsValid() bool { return v.kind != NoKind }

// Float returns the magnitude of a length, percentage or number.
func (v Value) Float() (float64, error) {
	if !v.kind.IsNumeric() {
		return 0, v.wrongKind("numeric")
	}
	return v.num, nil
}

// StringValue returns the text of a string, URI or ident.
func (v Value) StringValue() (string, error) {
	switch v.kind {
	case KindString, KindURI, KindIdent:
		return v.text, nil
	}
	return "", v.wrongKind("string")
}

// Color returns the color of a color value.
func (v Value) Color() (color.NRGBA, error) {
	if v.kind != KindColor {
		return color.NRGBA{}, v.wrongKind(KindColor.String())
	}
	return v.rgba, nil
}

// Counter returns a copy of the structured counter payload.
func (v Value) Counter() (Counter, error) {
	if v.kind != KindCounter {
		return Counter{}, v.wrongKind(KindCounter.String())
	}
	return *v.counter, nil
}

// Rect returns a copy of the structured rect payload.
func (v Value) Rect() (Rect, error) {
	if v.kind != KindRect {
		return Rect{}, v.wrongKind(KindRect.String())
	}
	return *v.rect, nil
}

// Ident resolves an ident value against a keyword registry. A nil registry
// denotes the standard registry. Values of other kinds and keywords unknown
// to the registry yield Nothing.
func (v Value) Ident(reg *ident.Registry) maybe.Maybe[*ident.Ident] {
	if v.kind != KindIdent {
		return maybe.Nothing[*ident.Ident]()
	}
	if reg == nil {
		reg = ident.Standard()
	}
	return reg.Find(v.text)
}

// SetFloat always fails: values are immutable.
func (v Value) SetFloat(Unit, float64) error {
	return ErrImmutable
}

// SetString always fails: values are immutable.
func (v Value) SetString(string) error {
	return ErrImmutable
}

// Equal compares kind, text and payload of two values.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind || v.unit != w.unit || v.text != w.text || v.num != w.num || v.rgba != w.rgba {
		return false
	}
	switch {
	case v.counter != nil || w.counter != nil:
		return v.counter != nil && w.counter != nil && *v.counter == *w.counter
	case v.rect != nil || w.rect != nil:
		return v.rect != nil && w.rect != nil && v.rect.equal(w.rect)
	}
	return true
}

func (r *Rect) equal(o *Rect) bool {
	return r.Top.Equal(o.Top) && r.Right.Equal(o.Right) &&
		r.Bottom.Equal(o.Bottom) && r.Left.Equal(o.Left)
}

func (v Value) wrongKind(want string) error {
	return fmt.Errorf("%w: want %s, have %s (%q)", ErrWrongKind, want, v.kind, v.text)
}

// --- Helpers ---------------------------------------------------------------

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// magnitude extracts the number from a dimension text like "12.5px".
func magnitude(text string, u Unit) (float64, error) {
	num := text
	if u != UnitNone {
		if !strings.HasSuffix(strings.ToLower(num), u.String()) {
			return 0, fmt.Errorf("expected unit %q in %q", u, text)
		}
		num = num[:len(num)-len(u.String())]
	}
	return strconv.ParseFloat(strings.TrimSpace(num), 64)
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// stripURL removes the url(…) wrapper and quotes from a URI.
func stripURL(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 4 && strings.EqualFold(s[:4], "url(") && strings.HasSuffix(s, ")") {
		s = s[4 : len(s)-1]
	}
	return unquote(s)
}
