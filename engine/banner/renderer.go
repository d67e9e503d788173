package banner

import (
	"errors"
	"strings"
	"unicode"

	"github.com/npillmayer/figlet/core"
	"github.com/npillmayer/figlet/core/font/figfont"
	"golang.org/x/text/unicode/norm"
)

// ErrNoGlyph is wrapped by errors from Render if the font has no glyph for
// a character of the input text and no usable fallback is configured.
var ErrNoGlyph = errors.New("no glyph for code point")

// Renderer renders text with a FIGfont.
//
// A renderer holds configuration only. Render keeps its state local to the
// call, so a renderer may be used by more than one goroutine, as long as
// its configuration is not changed concurrently.
type Renderer struct {
	font      *figfont.Font
	mode      figfont.Layout
	dir       figfont.PrintDirection
	fallback  rune
	normalize bool
	trim      bool
}

// NewRenderer creates a renderer for a font, using the font's default
// layout and print direction.
func NewRenderer(font *figfont.Font) *Renderer {
	return &Renderer{
		font:     font,
		mode:     font.FullLayout(),
		dir:      font.PrintDirection(),
		fallback: figfont.NoRune,
	}
}

// Font returns the font of r.
func (r *Renderer) Font() *figfont.Font {
	return r.font
}

// SmushMode returns the layout mode used for composing glyphs.
func (r *Renderer) SmushMode() figfont.Layout {
	return r.mode
}

// SetSmushMode overrides the font's default layout.
func (r *Renderer) SetSmushMode(mode figfont.Layout) *Renderer {
	r.mode = mode
	return r
}

// PrintDirection returns the print direction used for composing glyphs.
func (r *Renderer) PrintDirection() figfont.PrintDirection {
	return r.dir
}

// SetPrintDirection overrides the font's default print direction.
func (r *Renderer) SetPrintDirection(dir figfont.PrintDirection) *Renderer {
	r.dir = dir
	return r
}

// SetFallback sets a character to render in place of characters the font
// has no glyph for. Set it to figfont.NoRune to make Render fail on a
// missing glyph, which is the default.
func (r *Renderer) SetFallback(fallback rune) *Renderer {
	r.fallback = fallback
	return r
}

// NormalizeInput switches NFC normalization of the input text on or off.
// With normalization, decomposed umlauts are rendered with the font's
// glyphs for the composed characters.
func (r *Renderer) NormalizeInput(on bool) *Renderer {
	r.normalize = on
	return r
}

// TrimTrailingBlanks switches removal of trailing blanks from output rows
// on or off.
func (r *Renderer) TrimTrailingBlanks(on bool) *Renderer {
	r.trim = on
	return r
}

// Render renders text as a banner. Rows of the banner are separated by
// newlines, there is no trailing newline.
//
// Tabs are treated as blanks, any other white space as a line break.
// Control characters are dropped. If the font has no glyph for a character
// and no fallback is set, Render returns an error wrapping ErrNoGlyph and
// no output.
func (r *Renderer) Render(text string) (string, error) {
	if r.normalize {
		text = norm.NFC.String(text)
	}
	tracer().Debugf("render %q with layout %s, %s", text, r.mode, r.dir)
	c := composer{
		Renderer: r,
		rows:     make([][]rune, r.font.Height()),
		prev:     figfont.NoRune,
	}
	for _, ch := range text {
		if isBreakingSpace(ch) {
			if ch == ' ' || ch == '\t' {
				ch = ' '
			} else {
				ch = '\n'
			}
		}
		if ch == '\n' {
			c.flush()
			c.out.WriteByte('\n')
			continue
		}
		if ch < ' ' || ch == 0x7f {
			continue
		}
		if err := c.add(ch); err != nil {
			return "", err
		}
	}
	c.flush()
	return c.out.String(), nil
}

// isBreakingSpace is true for white space except no-break spaces, which
// FIGfonts may carry glyphs for.
func isBreakingSpace(ch rune) bool {
	switch ch {
	case '\u00a0', '\u2007', '\u202f':
		return false
	}
	return unicode.IsSpace(ch)
}

// composer holds the state of a single call to Render: one accumulator per
// glyph row and the previously placed character.
type composer struct {
	*Renderer
	rows [][]rune
	prev rune
	out  strings.Builder
}

func (c *composer) glyph(ch rune) (*figfont.Glyph, rune, error) {
	if g, ok := c.font.Glyph(ch); ok {
		return g, ch, nil
	}
	if c.fallback != figfont.NoRune {
		if g, ok := c.font.Glyph(c.fallback); ok {
			tracer().Debugf("no glyph for %#U, using fallback %#U", ch, c.fallback)
			return g, c.fallback, nil
		}
	}
	return nil, ch, core.WrapError(ErrNoGlyph, core.EMISSING, "font has no glyph for %#U", ch)
}

func (c *composer) add(ch rune) error {
	g, ch, err := c.glyph(ch)
	if err != nil {
		return err
	}
	amount := c.font.Overlap(c.prev, ch, c.mode, c.dir)
	for row := range c.rows {
		grow, err := g.Row(row)
		if err != nil {
			return err
		}
		c.rows[row] = c.place(c.rows[row], grow, amount)
	}
	c.prev = ch
	return nil
}

// place puts the row of a glyph next to the accumulated row buf, letting
// the last (left-to-right) or first (right-to-left) amount columns overlap.
func (c *composer) place(buf, grow []rune, amount int) []rune {
	if len(buf) == 0 {
		return append(buf, grow...)
	}
	w := len(grow)
	amount = min(amount, len(buf), w)
	if c.dir == figfont.RightToLeft {
		for k := 0; k < amount; k++ {
			buf[k] = c.merge(grow[w-amount+k], buf[k], grow[w-amount+k])
		}
		return append(grow[:w-amount:w-amount], buf...)
	}
	for k := 0; k < amount; k++ {
		i := len(buf) - amount + k
		buf[i] = c.merge(buf[i], grow[k], grow[k])
	}
	return append(buf, grow[amount:]...)
}

// merge smushes two sub-characters. If they cannot be smushed, which may
// happen if a narrow glyph lets its successor overlap an earlier one, the
// sub-character of the new glyph is kept.
func (c *composer) merge(left, right, fresh rune) rune {
	if m, ok := c.font.Smush(left, right, c.mode, c.dir); ok {
		return m
	}
	tracer().Debugf("cannot smush %q and %q", left, right)
	return fresh
}

// flush writes the accumulated rows to the output and resets the state.
// Hardblanks are replaced by blanks.
func (c *composer) flush() {
	hb := c.font.Hardblank()
	for i, row := range c.rows {
		if i > 0 {
			c.out.WriteByte('\n')
		}
		s := strings.Map(func(ch rune) rune {
			if ch == hb {
				return ' '
			}
			return ch
		}, string(row))
		if c.trim {
			s = strings.TrimRight(s, " ")
		}
		c.out.WriteString(s)
		c.rows[i] = row[:0]
	}
	c.prev = figfont.NoRune
}
