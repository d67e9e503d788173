package figfont

import "strings"

// Overlap calculates the number of columns by which the glyph for cur may
// be moved into the glyph for prev, given a layout mode and a print
// direction. For left-to-right printing cur is placed right of prev, for
// right-to-left printing it is placed left of prev.
//
// Overlap is 0 if mode neither contains horizontal fitting nor horizontal
// smushing, if one of the code points is NoRune or has no glyph, or if one
// of the glyphs is narrower than two columns.
//
// For every row the distance between the rightmost visible sub-character of
// the left glyph and the leftmost visible sub-character of the right glyph
// is measured. If these two sub-characters can be smushed, the glyphs may
// move one column further. The smallest amount over all rows wins.
func (f *Font) Overlap(prev, cur rune, mode Layout, dir PrintDirection) int {
	if !mode.IsSet(HorizontalSmushingByDefault | HorizontalFittingByDefault) {
		return 0
	}
	if prev == NoRune || cur == NoRune {
		return 0
	}
	left, lok := f.glyphs[prev]
	right, rok := f.glyphs[cur]
	if dir == RightToLeft {
		left, right = right, left
	}
	if !lok || !rok {
		return 0
	}
	lw, rw := left.Width(), right.Width()
	if lw < 2 || rw < 2 {
		return 0
	}
	amount := rw
	for row := 0; row < f.height; row++ {
		lb := lw - 1
		for lb > 0 && left.at(lb, row) == ' ' {
			lb--
		}
		rb := 0
		for rb < rw-1 && right.at(rb, row) == ' ' {
			rb++
		}
		rowAmount := min(rw, (lw-1-lb)+rb)
		lch := left.at(lb, row)
		if lch == ' ' {
			rowAmount++
		} else if _, ok := f.Smush(lch, right.at(rb, row), mode, dir); ok {
			rowAmount++
		}
		amount = min(amount, rowAmount)
	}
	return amount
}

const (
	underscoreMates = `|/\[]{}()<>`
)

// hierarchy classes for smushing rule 3, lowest first
var hierarchy = []string{"|", `/\`, "[]", "{}", "()", "<>"}

func hierarchyClass(r rune) int {
	for i, class := range hierarchy {
		if strings.ContainsRune(class, r) {
			return i
		}
	}
	return -1
}

// Smush merges two sub-characters, left and right, as they appear side by
// side on an output row. It returns the merged sub-character and true, or
// false if the two sub-characters cannot be smushed under mode.
//
// A blank always gives way to the other sub-character. Without horizontal
// smushing nothing else is merged. If no individual smushing rule is set,
// universal smushing applies: visible sub-characters beat hardblanks, and
// otherwise the sub-character of the glyph later in the text wins, i.e.
// right for left-to-right printing and left for right-to-left printing.
// Otherwise the rules set in mode are tried in the order hardblank, equal
// character, underscore, hierarchy, opposite pair, big X.
func (f *Font) Smush(left, right rune, mode Layout, dir PrintDirection) (rune, bool) {
	if left == ' ' {
		return right, true
	}
	if right == ' ' {
		return left, true
	}
	if !mode.IsSet(HorizontalSmushingByDefault) {
		return 0, false // fitting only
	}
	hb := f.hardblank
	if !mode.IsSet(horizontalRules) { // universal smushing
		switch {
		case left == hb && right == hb:
			return hb, true
		case left == hb:
			return right, true
		case right == hb:
			return left, true
		case dir == RightToLeft:
			return left, true
		}
		return right, true
	}
	if mode.IsSet(HorizontalHardblankSmushing) && left == hb && right == hb {
		return hb, true
	}
	if left == hb || right == hb {
		return 0, false
	}
	if mode.IsSet(HorizontalEqualCharacterSmushing) && left == right {
		return left, true
	}
	if mode.IsSet(HorizontalUnderscoreSmushing) {
		if left == '_' && strings.ContainsRune(underscoreMates, right) {
			return right, true
		}
		if right == '_' && strings.ContainsRune(underscoreMates, left) {
			return left, true
		}
	}
	if mode.IsSet(HorizontalHierarchySmushing) {
		lc, rc := hierarchyClass(left), hierarchyClass(right)
		if lc >= 0 && rc >= 0 && lc != rc {
			if lc > rc {
				return left, true
			}
			return right, true
		}
	}
	if mode.IsSet(HorizontalOppositePairSmushing) {
		switch string([]rune{left, right}) {
		case "[]", "][", "{}", "}{", "()", ")(":
			return '|', true
		}
	}
	if mode.IsSet(HorizontalBigXSmushing) {
		switch string([]rune{left, right}) {
		case `/\`:
			return '|', true
		case `\/`:
			return 'Y', true
		case "><":
			return 'X', true
		}
	}
	return 0, false
}
