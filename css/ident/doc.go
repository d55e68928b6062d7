/*
Package ident interns CSS keywords into singleton identity tokens.

CSS properties take their values from small, enumerated sets of keywords
("nowrap", "pre", "normal", …). Style and layout code compares these keywords
on hot paths, so every keyword is represented by exactly one *Ident, and
comparison is pointer comparison:

    ws := style.Ident("white-space")
    if ws == ident.Nowrap {
        …
    }

Comparing the keyword strings instead defeats the purpose of this package.

The standard registry holds all intrinsic CSS keywords. It is built during
package initialization and is read-only afterwards, so it may be shared by any
number of goroutines without locking. There is no way to add keywords to it
later. Clients needing a keyword table of their own intern into a separate
Builder and freeze it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ident

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styleres.css'.
func tracer() tracing.Trace {
	return tracing.Select("styleres.css")
}
