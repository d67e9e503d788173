/*
Package fontregistry manages a registry for loaded FIGfonts.

Fonts are registered under a normalized name, see NormalizeFontname.
Parsing a FIGfont is cheap, but not free, and an application will usually
render a lot of text with a few fonts. The registry caches parsed fonts
and hands out a fallback font if a font cannot be found.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'figlet.fonts'
func tracer() tracing.Trace {
	return tracing.Select("figlet.fonts")
}
