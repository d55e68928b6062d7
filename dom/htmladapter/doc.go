/*
Package htmladapter implements the w3cdom interfaces for HTML parse trees
of golang.org/x/net/html.

Documents may carry stylesheet sources which are not part of the element
tree. Processing instructions of the form

    <?xml-stylesheet href="book.css" type="text/css"?>

at document level are reported by StylesheetSources, as are sources added
by the host with option WithStylesheets (e.g., from a Link HTTP header).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmladapter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styleres.dom'.
func tracer() tracing.Trace {
	return tracing.Select("styleres.dom")
}
