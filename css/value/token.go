package value

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type token struct {
	tt   css.TokenType
	data string
}

// FromToken creates a raw value from a single token of the CSS tokenizer.
// Tokens which do not denote a primitive value are rejected with
// ErrNormalization.
func FromToken(tt css.TokenType, data []byte) (Raw, error) {
	text := string(data)
	switch tt {
	case css.IdentToken:
		if IsColorKeyword(text) {
			return Raw{Type: TypeRGBColor, CSSText: text}, nil
		}
		return Raw{Type: TypeIdent, CSSText: text}, nil
	case css.HashToken:
		return Raw{Type: TypeRGBColor, CSSText: text}, nil
	case css.StringToken:
		return Raw{Type: TypeString, CSSText: text, StringValue: unquote(text)}, nil
	case css.URLToken:
		return Raw{Type: TypeURI, CSSText: text, StringValue: stripURL(text)}, nil
	case css.NumberToken:
		return Raw{Type: TypeNumber, CSSText: text}, nil
	case css.PercentageToken:
		return Raw{Type: TypePercentage, CSSText: text}, nil
	case css.DimensionToken:
		i := numericPrefix(text)
		u, ok := unitFromString(strings.ToLower(text[i:]))
		if !ok {
			return Raw{}, fmt.Errorf("%w: unsupported unit in %q", ErrNormalization, text)
		}
		return Raw{Type: typeForUnit(u), CSSText: text[:i] + u.String()}, nil
	}
	return Raw{}, fmt.Errorf("%w: token %s %q is not a primitive value", ErrNormalization, tt, text)
}

// numericPrefix returns the length of the number part of a dimension token.
func numericPrefix(s string) int {
	i := 0
	for i < len(s) {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '+' || c == '-' {
			i++
			continue
		}
		if (c == 'e' || c == 'E') && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
			i++
			continue
		}
		break
	}
	return i
}

// ParseRaw tokenizes text, which has to contain exactly one primitive value,
// and returns it as a raw value. Function notations rgb(), rgba(), counter(),
// counters() and rect() are recognized.
func ParseRaw(text string) (Raw, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return Raw{}, err
	}
	if len(tokens) == 0 {
		return Raw{}, fmt.Errorf("%w: empty value", ErrNormalization)
	}
	if tokens[0].tt == css.FunctionToken {
		if tokens[len(tokens)-1].tt != css.RightParenthesisToken {
			return Raw{}, fmt.Errorf("%w: unterminated function in %q", ErrNormalization, text)
		}
		return fromFunction(strings.TrimSpace(text), tokens)
	}
	if len(tokens) > 1 {
		return Raw{}, fmt.Errorf("%w: %q is not a single primitive value", ErrNormalization, text)
	}
	return FromToken(tokens[0].tt, []byte(tokens[0].data))
}

// ParseValue tokenizes and normalizes a single primitive value.
func ParseValue(text string) (Value, error) {
	raw, err := ParseRaw(text)
	if err != nil {
		return Value{}, err
	}
	return Normalize(raw)
}

// tokenize splits text into tokens, dropping whitespace and comments.
func tokenize(text string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(text))
	var tokens []token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrNormalization, err)
			}
			return tokens, nil
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.BadStringToken, css.BadURLToken:
			return nil, fmt.Errorf("%w: malformed token %q", ErrNormalization, data)
		}
		tokens = append(tokens, token{tt: tt, data: string(data)})
	}
}

// fromFunction handles a token list of the form `name( args… )`.
func fromFunction(text string, tokens []token) (Raw, error) {
	name := strings.ToLower(strings.TrimSuffix(tokens[0].data, "("))
	var args []token
	for _, t := range tokens[1 : len(tokens)-1] {
		if t.tt != css.CommaToken {
			args = append(args, t)
		}
	}
	switch name {
	case "rgb", "rgba":
		return Raw{Type: TypeRGBColor, CSSText: text}, nil
	case "counter", "counters":
		return counterFromArgs(name, text, args)
	case "rect":
		return rectFromArgs(text, args)
	}
	return Raw{}, fmt.Errorf("%w: unsupported function %s()", ErrNormalization, name)
}

func counterFromArgs(name, text string, args []token) (Raw, error) {
	c := &Counter{}
	for i, a := range args {
		switch {
		case i == 0 && a.tt == css.IdentToken:
			c.Identifier = a.data
		case i == 1 && name == "counters" && a.tt == css.StringToken:
			c.Separator = unquote(a.data)
		case (i == 1 && name == "counter" || i == 2 && name == "counters") && a.tt == css.IdentToken:
			c.ListStyle = a.data
		default:
			return Raw{}, fmt.Errorf("%w: invalid argument %q in %s", ErrNormalization, a.data, text)
		}
	}
	if c.Identifier == "" || (name == "counters" && c.Separator == "") {
		return Raw{}, fmt.Errorf("%w: incomplete %s", ErrNormalization, text)
	}
	return Raw{Type: TypeCounter, CSSText: text, Counter: c}, nil
}

func rectFromArgs(text string, args []token) (Raw, error) {
	if len(args) != 4 {
		return Raw{}, fmt.Errorf("%w: rect needs 4 sides: %s", ErrNormalization, text)
	}
	var sides [4]Value
	for i, a := range args {
		raw, err := FromToken(a.tt, []byte(a.data))
		if err != nil {
			return Raw{}, err
		}
		v, err := Normalize(raw)
		if err != nil {
			return Raw{}, err
		}
		if !isRectSide(v) {
			return Raw{}, fmt.Errorf("%w: invalid rect side %q", ErrNormalization, a.data)
		}
		sides[i] = v
	}
	r := &Rect{Top: sides[0], Right: sides[1], Bottom: sides[2], Left: sides[3]}
	return Raw{Type: TypeRect, CSSText: text, Rect: r}, nil
}

// isRectSide is true for lengths, unit-less zero and "auto".
func isRectSide(v Value) bool {
	switch v.kind {
	case KindLength:
		return true
	case KindNumber:
		return v.num == 0
	case KindIdent:
		return strings.EqualFold(v.text, "auto")
	}
	return false
}
