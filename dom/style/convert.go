package style

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/styleres/css/value"
)

// Value interprets a property holding a single primitive value, e.g.
// "12px" or "url(a.png)". Multi-valued properties like "1px solid red"
// will result in an error.
func (p Property) Value() (value.Value, error) {
	return value.ParseValue(string(p))
}

// Color returns the color value of a property. "default", the empty property
// and values which are not a color return nil.
func (p Property) Color() color.Color {
	if p == "default" || p == NullStyle {
		return nil
	}
	v, err := p.Value()
	if err != nil {
		tracer().Debugf("property %q is not a color: %v", p, err)
		return nil
	}
	c, err := v.Color()
	if err != nil {
		return nil
	}
	return c
}

// ColorString returns the hex notation of c, or "default" for nil.
func ColorString(c color.Color) string {
	if c == nil {
		return "default"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
