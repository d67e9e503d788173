package figfont

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smushFont(t *testing.T) *Font {
	f, err := NewBuilder().Height(1).
		Glyph('a', "a").
		Build()
	require.NoError(t, err)
	return f
}

const smushAll = HorizontalSmushingByDefault | horizontalRules

func TestSmushSpace(t *testing.T) {
	f := smushFont(t)
	for _, c := range ` x$|_/\<>` {
		for _, mode := range []Layout{FullWidth, HorizontalFittingByDefault, smushAll} {
			for _, dir := range []PrintDirection{LeftToRight, RightToLeft} {
				r, ok := f.Smush(' ', c, mode, dir)
				assert.True(t, ok)
				assert.Equal(t, c, r, "smush(' ', %q)", c)
				r, ok = f.Smush(c, ' ', mode, dir)
				assert.True(t, ok)
				assert.Equal(t, c, r, "smush(%q, ' ')", c)
			}
		}
	}
}

func TestSmushFittingOnly(t *testing.T) {
	f := smushFont(t)
	_, ok := f.Smush('|', '|', HorizontalFittingByDefault|HorizontalEqualCharacterSmushing, LeftToRight)
	assert.False(t, ok, "fitting must never merge visible sub-characters")
}

func TestSmushUniversal(t *testing.T) {
	f := smushFont(t)
	mode := HorizontalSmushingByDefault
	cases := []struct {
		left, right rune
		dir         PrintDirection
		want        rune
	}{
		{'a', 'b', LeftToRight, 'b'},
		{'a', 'b', RightToLeft, 'a'},
		{'$', 'b', LeftToRight, 'b'},
		{'a', '$', LeftToRight, 'a'},
		{'$', 'b', RightToLeft, 'b'},
		{'$', '$', LeftToRight, '$'},
	}
	for _, c := range cases {
		r, ok := f.Smush(c.left, c.right, mode, c.dir)
		assert.True(t, ok)
		assert.Equal(t, c.want, r, "universal smush(%q, %q, %s)", c.left, c.right, c.dir)
	}
}

func TestSmushRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figlet.fonts")
	defer teardown()
	//
	f := smushFont(t)
	smush := HorizontalSmushingByDefault
	cases := []struct {
		left, right rune
		mode        Layout
		want        rune
		ok          bool
	}{
		{'$', '$', smush | HorizontalHardblankSmushing, '$', true},
		{'$', '$', smush | HorizontalEqualCharacterSmushing, 0, false},
		{'$', '|', smush | horizontalRules, 0, false},
		{'#', '#', smush | HorizontalEqualCharacterSmushing, '#', true},
		{'#', '+', smush | HorizontalEqualCharacterSmushing, 0, false},
		{'_', '/', smush | HorizontalUnderscoreSmushing, '/', true},
		{'>', '_', smush | HorizontalUnderscoreSmushing, '>', true},
		{'_', 'x', smush | HorizontalUnderscoreSmushing, 0, false},
		{'|', '/', smush | HorizontalHierarchySmushing, '/', true},
		{'}', '[', smush | HorizontalHierarchySmushing, '}', true},
		{'<', ')', smush | HorizontalHierarchySmushing, '<', true},
		{'(', ')', smush | HorizontalHierarchySmushing, 0, false},
		{'[', ']', smush | HorizontalOppositePairSmushing, '|', true},
		{')', '(', smush | HorizontalOppositePairSmushing, '|', true},
		{'{', ')', smush | HorizontalOppositePairSmushing, 0, false},
		{'/', '\\', smush | HorizontalBigXSmushing, '|', true},
		{'\\', '/', smush | HorizontalBigXSmushing, 'Y', true},
		{'>', '<', smush | HorizontalBigXSmushing, 'X', true},
		{'<', '>', smush | HorizontalBigXSmushing, 0, false},
	}
	for _, c := range cases {
		for _, dir := range []PrintDirection{LeftToRight, RightToLeft} {
			r, ok := f.Smush(c.left, c.right, c.mode, dir)
			assert.Equal(t, c.ok, ok, "smush(%q, %q, %s) ok", c.left, c.right, c.mode)
			if c.ok {
				assert.Equal(t, c.want, r, "smush(%q, %q, %s)", c.left, c.right, c.mode)
			}
		}
	}
}

func TestSmushRuleOrder(t *testing.T) {
	f := smushFont(t)
	// equal character rule comes before hierarchy
	r, ok := f.Smush('|', '|', smushAll, LeftToRight)
	assert.True(t, ok)
	assert.Equal(t, '|', r)
	// hierarchy comes before opposite pairs
	r, ok = f.Smush('[', ']', smushAll, LeftToRight)
	assert.True(t, ok)
	assert.Equal(t, '|', r)
	r, ok = f.Smush('[', ')', smushAll, LeftToRight)
	assert.True(t, ok)
	assert.Equal(t, ')', r)
}

func TestOverlapSynthetic(t *testing.T) {
	f, err := NewBuilder().Height(2).
		Glyph('a', "|  ", "|  ").
		Glyph('b', "  |", "  |").
		Glyph('c', " |", " |").
		Glyph('d', "|").
		Glyph('d', "|", "|").
		Build()
	require.NoError(t, err)
	mode := HorizontalSmushingByDefault | HorizontalEqualCharacterSmushing
	assert.Equal(t, 0, f.Overlap('a', 'c', FullWidth, LeftToRight))
	assert.Equal(t, 0, f.Overlap(NoRune, 'c', mode, LeftToRight))
	assert.Equal(t, 0, f.Overlap('a', 'x', mode, LeftToRight), "no glyph for 'x'")
	assert.Equal(t, 0, f.Overlap('a', 'd', mode, LeftToRight), "'d' is too narrow")
	// "|  " + " |": 2 blanks + 1 blank, then '|' and '|' merge
	assert.Equal(t, 2, f.Overlap('a', 'c', mode, LeftToRight), "capped at width of right glyph")
	assert.Equal(t, 3, f.Overlap('a', 'b', mode, LeftToRight))
	assert.Equal(t, 3, f.Overlap('a', 'b', HorizontalFittingByDefault, LeftToRight))
	// right-to-left swaps the glyphs: "  |" + "|  " has nothing to spare
	assert.Equal(t, 1, f.Overlap('a', 'b', mode, RightToLeft))
	assert.Equal(t, 0, f.Overlap('a', 'b', HorizontalFittingByDefault, RightToLeft))
}
