package value

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// parseColor interprets the CSS notations for colors: hex notation
// (#rgb, #rgba, #rrggbb, #rrggbbaa), functional notation rgb()/rgba() and
// color keywords.
func parseColor(text string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch {
	case s == "":
		return color.NRGBA{}, fmt.Errorf("empty color")
	case s == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		return parseRGBFunction(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("not a color: %q", text)
}

// IsColorKeyword is true for the named colors of CSS, including "transparent".
func IsColorKeyword(keyword string) bool {
	k := strings.ToLower(strings.TrimSpace(keyword))
	if k == "transparent" {
		return true
	}
	_, ok := colornames.Map[k]
	return ok
}

func parseHexColor(hex string) (color.NRGBA, error) {
	var digits [8]uint8
	for i := 0; i < len(hex) && i < len(digits); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return color.NRGBA{}, fmt.Errorf("invalid hex color #%s", hex)
		}
		digits[i] = d
	}
	switch len(hex) {
	case 3, 4:
		c := color.NRGBA{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 0xff}
		if len(hex) == 4 {
			c.A = digits[3] * 17
		}
		return c, nil
	case 6, 8:
		c := color.NRGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 0xff,
		}
		if len(hex) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
		return c, nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid hex color #%s", hex)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// parseRGBFunction parses rgb(r, g, b) and rgba(r, g, b, a). Channels are
// either integers 0…255 or percentages, alpha is 0…1.
func parseRGBFunction(s string) (color.NRGBA, error) {
	lp, rp := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if lp < 0 || rp < lp {
		return color.NRGBA{}, fmt.Errorf("malformed color function %q", s)
	}
	args := strings.FieldsFunc(s[lp+1:rp], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, fmt.Errorf("color function %q needs 3 or 4 arguments", s)
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i, a := range args {
		var f float64
		var err error
		if strings.HasSuffix(a, "%") {
			f, err = strconv.ParseFloat(a[:len(a)-1], 64)
			f = f * 255 / 100
		} else if i == 3 {
			f, err = strconv.ParseFloat(a, 64)
			f *= 255
		} else {
			f, err = strconv.ParseFloat(a, 64)
		}
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("color function %q: %w", s, err)
		}
		ch[i] = clampChannel(f)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func clampChannel(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f + 0.5)
}

// hexColor is the canonical text form of a color.
func hexColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
