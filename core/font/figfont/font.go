package figfont

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Errors returned from this package wrap one of these, together
// with a core error code and a message telling where things went wrong.
var (
	ErrMalformedHeader  = errors.New("malformed FIGfont header")
	ErrMalformedCodeTag = errors.New("malformed code tag")
	ErrTruncatedInput   = errors.New("truncated FIGfont data")
	ErrIndexOutOfRange  = errors.New("sub-character index out of range")
	ErrInvalidGlyph     = errors.New("invalid glyph data")
)

// NoRune is the sentinel for "no previous character" in overlap calculations.
const NoRune rune = -1

// PrintDirection is the direction a font is printed in.
type PrintDirection int

// Print directions, as encoded in a FIGfont header.
const (
	LeftToRight PrintDirection = 0
	RightToLeft PrintDirection = 1
)

func (d PrintDirection) String() string {
	switch d {
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	}
	return fmt.Sprintf("PrintDirection(%d)", int(d))
}

// PrintDirectionFromHeader maps a header value to a print direction.
// 0 means left-to-right, 1 means right-to-left; every other value is an error.
func PrintDirectionFromHeader(v int) (PrintDirection, error) {
	switch v {
	case 0:
		return LeftToRight, nil
	case 1:
		return RightToLeft, nil
	}
	return LeftToRight, fmt.Errorf("unrecognised print direction %d", v)
}

// Deutsch lists the code points of the required non-ASCII FIGcharacters,
// in the order they appear in a font file: Ä Ö Ü ä ö ü ß.
var Deutsch = [7]rune{196, 214, 220, 228, 246, 252, 223}

// Font is a FIGfont. Fonts are created by Parse or by a Builder and are
// immutable afterwards.
type Font struct {
	hardblank      rune
	height         int
	baseline       int
	maxLength      int
	oldLayout      int
	commentLines   int
	printDirection PrintDirection
	fullLayout     Layout
	codeTagCount   int
	glyphs         map[rune]*Glyph
	codePoints     []rune // sorted
}

// Hardblank returns the sub-character which represents hardblanks in the
// glyph data. By convention this is '$'.
func (f *Font) Hardblank() rune { return f.hardblank }

// Height is the consistent height of every glyph, in sub-characters.
func (f *Font) Height() int { return f.height }

// Baseline is the number of rows from the top of the tallest glyph down to
// the baseline, i.e. the glyph height ignoring descenders.
func (f *Font) Baseline() int { return f.baseline }

// MaxLength is the maximum length of any line describing a glyph, usually
// the width of the widest glyph plus 2 for the end-marks.
func (f *Font) MaxLength() int { return f.maxLength }

// OldLayout is the legacy layout value from the header (-1…63).
func (f *Font) OldLayout() int { return f.oldLayout }

// CommentLines is the number of comment lines following the header.
func (f *Font) CommentLines() int { return f.commentLines }

// PrintDirection is the direction the font is printed in by default.
func (f *Font) PrintDirection() PrintDirection { return f.printDirection }

// FullLayout is the font's default layout.
func (f *Font) FullLayout() Layout { return f.fullLayout }

// CodeTagCount is the number of code-tagged glyphs as stated in the header.
func (f *Font) CodeTagCount() int { return f.codeTagCount }

// Glyph returns the glyph for a code point. If the font has no glyph for r,
// Glyph returns nil and false.
func (f *Font) Glyph(r rune) (*Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// CodePoints returns the code points covered by the font, in ascending order.
// Clients must not modify the returned slice.
func (f *Font) CodePoints() []rune {
	return f.codePoints
}

// GlyphCount returns the number of glyphs in the font.
func (f *Font) GlyphCount() int {
	return len(f.glyphs)
}

func (f *Font) String() string {
	return fmt.Sprintf("FIGfont[height=%d, hardblank=%q, layout=%s, direction=%s, glyphs=%d]",
		f.height, f.hardblank, f.fullLayout, f.printDirection, len(f.glyphs))
}

// Dump returns every glyph of the font, each labeled with its code point.
func (f *Font) Dump() string {
	var sb strings.Builder
	for _, r := range f.codePoints {
		fmt.Fprintf(&sb, "%#U:\n%s\n", r, f.glyphs[r])
	}
	return sb.String()
}
