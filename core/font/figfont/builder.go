package figfont

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/figlet/core"
)

// Builder collects font metadata and glyph data and produces an immutable
// Font. The zero value is not usable, create builders with NewBuilder.
//
// Setters return the builder, so calls may be chained:
//
//    f, err := figfont.NewBuilder().Hardblank('$').Height(2).
//         Glyph('A', "/\\", "||").Build()
//
type Builder struct {
	hardblank      rune
	height         int
	baseline       int
	maxLength      int
	oldLayout      int
	commentLines   int
	printDirection PrintDirection
	fullLayout     Layout
	codeTagCount   int
	glyphs         *treemap.Map // rune -> []string (rows) or string (flat data)
}

// NewBuilder creates an empty font builder. The hardblank defaults to '$'.
func NewBuilder() *Builder {
	return &Builder{
		hardblank: '$',
		glyphs:    treemap.NewWith(utils.Int32Comparator),
	}
}

// Hardblank sets the hardblank sub-character.
func (b *Builder) Hardblank(r rune) *Builder {
	b.hardblank = r
	return b
}

// Height sets the height of every glyph.
func (b *Builder) Height(h int) *Builder {
	b.height = h
	return b
}

// Baseline sets the baseline.
func (b *Builder) Baseline(n int) *Builder {
	b.baseline = n
	return b
}

// MaxLength sets the maximum line length.
func (b *Builder) MaxLength(n int) *Builder {
	b.maxLength = n
	return b
}

// OldLayout sets the legacy layout value. It does not touch the full layout.
func (b *Builder) OldLayout(n int) *Builder {
	b.oldLayout = n
	return b
}

// CommentLines sets the number of comment lines.
func (b *Builder) CommentLines(n int) *Builder {
	b.commentLines = n
	return b
}

// PrintDirection sets the default print direction.
func (b *Builder) PrintDirection(d PrintDirection) *Builder {
	b.printDirection = d
	return b
}

// FullLayout sets the default layout.
func (b *Builder) FullLayout(l Layout) *Builder {
	b.fullLayout = l
	return b
}

// CodeTagCount sets the number of code-tagged glyphs.
func (b *Builder) CodeTagCount(n int) *Builder {
	b.codeTagCount = n
	return b
}

// Glyph sets the glyph for code point r, given as one string per row.
// Rows shorter than the widest row are padded with spaces.
// A glyph set earlier for r is replaced.
func (b *Builder) Glyph(r rune, rows ...string) *Builder {
	b.glyphs.Put(r, append([]string(nil), rows...))
	return b
}

// GlyphData sets the glyph for code point r, given as the concatenation of
// all rows. The length of data has to be a multiple of the font height,
// otherwise Build will fail.
func (b *Builder) GlyphData(r rune, data string) *Builder {
	b.glyphs.Put(r, data)
	return b
}

// Build freezes the collected data into a font. The builder may be re-used
// afterwards; changes to it will not affect fonts already built.
func (b *Builder) Build() (*Font, error) {
	if b.height <= 0 {
		return nil, core.WrapError(ErrMalformedHeader, core.EINVALID,
			"font height must be positive, is %d", b.height)
	}
	f := &Font{
		hardblank:      b.hardblank,
		height:         b.height,
		baseline:       b.baseline,
		maxLength:      b.maxLength,
		oldLayout:      b.oldLayout,
		commentLines:   b.commentLines,
		printDirection: b.printDirection,
		fullLayout:     b.fullLayout,
		codeTagCount:   b.codeTagCount,
		glyphs:         make(map[rune]*Glyph, b.glyphs.Size()),
		codePoints:     make([]rune, 0, b.glyphs.Size()),
	}
	it := b.glyphs.Iterator()
	for it.Next() {
		r := it.Key().(rune)
		var g *Glyph
		switch data := it.Value().(type) {
		case []string:
			if len(data) != b.height {
				return nil, core.WrapError(ErrInvalidGlyph, core.EINVALID,
					"glyph %#U has %d rows, font height is %d", r, len(data), b.height)
			}
			g = newGlyph(data, b.height)
		case string:
			rr := []rune(data)
			if len(rr)%b.height != 0 {
				return nil, core.WrapError(ErrInvalidGlyph, core.EINVALID,
					"glyph %#U has %d sub-characters, not a multiple of height %d", r, len(rr), b.height)
			}
			g = &Glyph{data: rr, height: b.height}
		}
		f.glyphs[r] = g
		f.codePoints = append(f.codePoints, r) // iterator is ordered
	}
	tracer().Debugf("built font with %d glyphs", len(f.glyphs))
	return f, nil
}
