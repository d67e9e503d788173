package figfont

import (
	"strings"
)

// Layout is a set of layout flags as found in the "full layout" field of a
// FIGfont header. Bits 0–7 control horizontal layout, bits 8–14 vertical
// layout.
type Layout int

// Horizontal smushing rules.
const (
	// Rule 1: two identical sub-characters merge into one. Does not smush hardblanks.
	HorizontalEqualCharacterSmushing Layout = 1 << iota
	// Rule 2: "_" is replaced by any of "|/\[]{}()<>".
	HorizontalUnderscoreSmushing
	// Rule 3: hierarchy of classes "|", "/\", "[]", "{}", "()", "<>"; the latter class wins.
	HorizontalHierarchySmushing
	// Rule 4: "[]", "{}", "()" and their reverses are replaced by "|".
	HorizontalOppositePairSmushing
	// Rule 5: "/\" becomes "|", "\/" becomes "Y", "><" becomes "X".
	HorizontalBigXSmushing
	// Rule 6: two hardblanks merge into one hardblank.
	HorizontalHardblankSmushing
	// Move glyphs together until they touch (kerning).
	HorizontalFittingByDefault
	// Move glyphs one step closer after they touch, merging sub-characters.
	HorizontalSmushingByDefault
	VerticalEqualCharacterSmushing
	VerticalUnderscoreSmushing
	VerticalHierarchySmushing
	// Stacked "-" and "_" become "=".
	VerticalHorizontalLineSmushing
	// Stacked "|" supersmush.
	VerticalVerticalLineSmushing
	VerticalFittingByDefault
	VerticalSmushingByDefault
)

// FullWidth is the layout without any fitting or smushing.
const FullWidth Layout = 0

// horizontalRules masks the individual horizontal smushing rules 1–6.
const horizontalRules = HorizontalEqualCharacterSmushing | HorizontalUnderscoreSmushing |
	HorizontalHierarchySmushing | HorizontalOppositePairSmushing |
	HorizontalBigXSmushing | HorizontalHardblankSmushing

// IsSet is a predicate: is any of the bits of flag set in value?
func IsSet(flag Layout, value Layout) bool {
	return value&flag != 0
}

// IsSet is a predicate: is any of the bits of flag set in l?
func (l Layout) IsSet(flag Layout) bool {
	return IsSet(flag, l)
}

// FullLayoutFromOldLayout converts a legacy layout value (-1…63) into the
// equivalent full layout value.
//
//    -1   full width
//     0   horizontal fitting
//     n   horizontal smushing with rules n (1, 2, 4, 8, 16, 32 combined)
//
// For n > 0 the value is returned unchanged. The domain is not checked.
func FullLayoutFromOldLayout(old int) Layout {
	switch old {
	case -1:
		return FullWidth
	case 0:
		return HorizontalFittingByDefault
	}
	return Layout(old)
}

var layoutNames = []string{
	"h-equal", "h-underscore", "h-hierarchy", "h-pair", "h-bigx", "h-hardblank",
	"h-fitting", "h-smushing",
	"v-equal", "v-underscore", "v-hierarchy", "v-hline", "v-vline",
	"v-fitting", "v-smushing",
}

func (l Layout) String() string {
	if l == FullWidth {
		return "full-width"
	}
	var names []string
	for i, name := range layoutNames {
		if l.IsSet(1 << i) {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}
