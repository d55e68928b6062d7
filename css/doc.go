/*
Package css provides option types for CSS property values which layout
code works with: dimensions and positions.

Option types are created from normalized values (package value) and are
inspected by pattern matching:

    switch m := d.Match(); m {
    case m.IsKind(css.Auto()):
        …
    case m.Just(&x):
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styleres.css'.
func tracer() tracing.Trace {
	return tracing.Select("styleres.css")
}
