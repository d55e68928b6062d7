/*
Package collect finds all style sources of a document which participate in
the cascade.

Overview

A Collector walks a document and reports, in cascade order:

    - stylesheets the host knows about (w3cdom.Document.StylesheetSources)
    - <link rel="stylesheet"> and <style> elements of the first <head>

In addition, it synthesizes CSS declaration text for single elements from
legacy presentational attributes (e.g., colspan of table cells or width of
images), followed by the element's own style attribute. The user-agent
default stylesheet is resolved lazily and at most once per process by
DefaultSheets.

Document metadata (http-equiv <meta> elements), the document title and the
language of elements are extracted from the same head element.

Configuration

The location of the user-agent default stylesheet is read from
configuration key

    css.user-agent-default-css

which is either a directory containing XhtmlNamespaceHandler.css, or the
path of a CSS file.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package collect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styleres.collect'.
func tracer() tracing.Trace {
	return tracing.Select("styleres.collect")
}
