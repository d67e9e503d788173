package figfont

import (
	"fmt"
	"strings"

	"github.com/npillmayer/figlet/core"
)

// Glyph is a FIGcharacter: a grid of sub-characters, stored row by row.
// The width of a glyph is derived from its data and the font's height.
type Glyph struct {
	data   []rune
	height int
}

func newGlyph(rows []string, height int) *Glyph {
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	g := &Glyph{data: make([]rune, 0, width*height), height: height}
	for _, row := range rows {
		rr := []rune(row)
		g.data = append(g.data, rr...)
		for i := len(rr); i < width; i++ {
			g.data = append(g.data, ' ')
		}
	}
	return g
}

// Width returns the number of columns of g.
func (g *Glyph) Width() int {
	if g.height == 0 {
		return 0
	}
	return len(g.data) / g.height
}

// Height returns the number of rows of g, which is the font's height.
func (g *Glyph) Height() int {
	return g.height
}

// At returns the sub-character at column col and row row.
// Coordinates outside the glyph result in an error wrapping ErrIndexOutOfRange.
func (g *Glyph) At(col, row int) (rune, error) {
	if col < 0 || col >= g.Width() || row < 0 || row >= g.height {
		return 0, core.WrapError(ErrIndexOutOfRange, core.EINTERNAL,
			"sub-character index out of range: %d, %d", col, row)
	}
	return g.at(col, row), nil
}

func (g *Glyph) at(col, row int) rune {
	return g.data[row*g.Width()+col]
}

// Row returns the sub-characters of row row.
// Rows outside the glyph result in an error wrapping ErrIndexOutOfRange.
func (g *Glyph) Row(row int) ([]rune, error) {
	if row < 0 || row >= g.height {
		return nil, core.WrapError(ErrIndexOutOfRange, core.EINTERNAL,
			"glyph row must be between 0 and %d: %d", g.height-1, row)
	}
	return append([]rune(nil), g.row(row)...), nil
}

func (g *Glyph) row(row int) []rune {
	w := g.Width()
	return g.data[row*w : row*w+w]
}

func (g *Glyph) String() string {
	var sb strings.Builder
	for row := 0; row < g.height; row++ {
		sb.WriteString(string(g.row(row)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// GoString is for debugging.
func (g *Glyph) GoString() string {
	return fmt.Sprintf("Glyph{%dx%d}", g.Width(), g.height)
}
