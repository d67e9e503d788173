/*
Package banner renders text as FIGlet banners.

A Renderer composes the FIGcharacters of a FIGfont into rows of output.
Adjacent glyphs are moved together as far as the layout mode allows, and
overlapping sub-characters are merged according to the font's smushing
rules:

	f, _ := figfont.Parse(file)
	out, err := banner.NewRenderer(f).Render("Hello")

gives

	  _   _      _ _
	 | | | | ___| | | ___
	 | |_| |/ _ \ | |/ _ \
	 |  _  |  __/ | | (_) |
	 |_| |_|\___|_|_|\___/

Line breaks in the input start a new banner below the current one.
Smush mode and print direction default to the font's settings and may be
overridden per renderer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package banner

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'figlet.render'
func tracer() tracing.Trace {
	return tracing.Select("figlet.render")
}
