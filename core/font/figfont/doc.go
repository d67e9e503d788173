/*
Package figfont is for FIGlet fonts (FIGfonts).

A FIGfont is a plain-text file describing a set of FIGcharacters, i.e.
glyphs made up of sub-characters arranged in a grid of fixed height. The
header of a font file carries layout metadata which tells a renderer how
far adjacent glyphs may be moved together and how overlapping
sub-characters are to be merged ("smushing").

The format is described in http://www.jave.de/docs/figfont.txt.

A font is read with

	f, err := figfont.Parse(reader)

or assembled programmatically with a Builder. Fonts are immutable once
built and may be shared between goroutines.

Vertical layout bits are parsed and kept, but nothing in this module
interprets them: FIGcharacters are only composed horizontally.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package figfont

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'figlet.fonts'
func tracer() tracing.Trace {
	return tracing.Select("figlet.fonts")
}
