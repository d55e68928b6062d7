/*
Package dom provides utilities for walking documents as seen through
the w3cdom interfaces.

Status

Early draft, API may change frequently. Please stay patient.

Overview

Style resolution operates on a document tree, but does not care about the
library which parsed it. Packages in this module therefore accept
w3cdom.Node and w3cdom.Document, and package htmladapter wraps the
golang.org/x/net/html parse tree to implement them. Package dom
offers the node predicates and small traversals which the collector and
the debugging helpers share.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'styleres.dom'
func tracer() tracing.Trace {
	return tracing.Select("styleres.dom")
}
