package fontregistry

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchConfidence is a type for expressing the confidence level of font matching.
type MatchConfidence int

const (
	NoConfidence      MatchConfidence = 0
	LowConfidence     MatchConfidence = 2
	HighConfidence    MatchConfidence = 3
	PerfectConfidence MatchConfidence = 4
)

// ClosestMatch scans a list of font names and returns the closest match
// for a given pattern. Names containing the letters of pattern in order are
// preferred; otherwise the edit distance decides.
// If nothing matches, returns `NoConfidence`.
//
func ClosestMatch(names []string, pattern string) (match string, confidence MatchConfidence) {
	pattern = NormalizeFontname(pattern)
	if pattern == "" || len(names) == 0 {
		return
	}
	ranks := fuzzy.RankFindNormalizedFold(pattern, names)
	if len(ranks) > 0 {
		sort.Stable(ranks)
		match = ranks[0].Target
		if ranks[0].Distance == 0 {
			return match, PerfectConfidence
		}
		return match, HighConfidence
	}
	// no name contains pattern as a subsequence: allow typos
	best := -1
	for _, name := range names {
		d := fuzzy.LevenshteinDistance(pattern, NormalizeFontname(name))
		if best < 0 || d < best {
			best, match = d, name
		}
	}
	if best <= len(pattern)/3+1 {
		return match, LowConfidence
	}
	return "", NoConfidence
}
