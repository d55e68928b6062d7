/*
Package cssom provides the CSS object model types the styling engine
exchanges with its collaborators.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Before any
cascading may take place, every style source participating in the cascade
has to be identified: the user-agent default stylesheet, stylesheets linked
from a document, embedded <style> elements and declarations synthesized from
presentational attributes. Each of these is described by a StylesheetInfo,
carrying the origin of the source (user agent, user, author), the media it
applies to, its content type and either a URI or the CSS text itself.

CSS handling is de-coupled by introducing the interfaces StyleSheet, Rule and
Parser. A concrete implementation based on github.com/aymerick/douceur may
be found in sub-package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'styleres.dom'.
func tracer() tracing.Trace {
	return tracing.Select("styleres.dom")
}
