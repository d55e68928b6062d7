/*
Package value normalizes raw CSS primitive values into immutable, kind-tagged values.

A parsed CSS declaration value arrives as a low-level primitive: a type tag
(see Type) plus a textual and possibly a structured payload. Normalize converts
it into a Value, which carries exactly one meaningful payload per Kind:

    ident       keyword text (resolve with package ident)
    length      magnitude + Unit (px, pt, em, …)
    percentage  magnitude
    number      magnitude
    string      unquoted text
    uri         bare URI, without url(…)
    color       color.NRGBA
    counter     *Counter
    rect        *Rect

Values are shared across cascade passes and are never modified after
construction. Resolving relative units against a base value is left to the
layout engine.

Clients holding CSS text rather than parser output use ParseValue, which
tokenizes the text with github.com/tdewolff/parse/v2/css.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styleres.css'.
func tracer() tracing.Trace {
	return tracing.Select("styleres.css")
}
