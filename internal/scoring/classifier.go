package scoring

import "fontquiz/internal/model"

// IsEditorialProfile is the fixed rule that picks the timeless editorial style
// ahead of range matching: serious, calm, crafted, timeless and organic.
func IsEditorialProfile(v model.TraitVector) bool {
	return v.Tone <= 2 &&
		v.Energy <= 2 &&
		v.Design <= 2 &&
		v.Era >= 4 &&
		v.Structure <= 2
}

// Classify maps a coarse vector to one style. The editorial rule wins
// outright; otherwise the range with the most matching axes is chosen and
// ties go to the earliest range in scan order. With no ranges at all the
// editorial style is returned.
func Classify(coarse model.TraitVector, ranges []model.StyleRange) model.Style {
	if IsEditorialProfile(coarse) || len(ranges) == 0 {
		return model.StyleTimelessEditorial
	}

	best := ranges[0].Style
	bestCount := -1
	for _, r := range ranges {
		if n := r.Matches(coarse); n > bestCount {
			best, bestCount = r.Style, n
		}
	}
	return best
}

// MatchCounts reports the per-style match count in scan order, for diagnostics
func MatchCounts(coarse model.TraitVector, ranges []model.StyleRange) []StyleMatch {
	out := make([]StyleMatch, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, StyleMatch{Style: r.Style, Matches: r.Matches(coarse)})
	}
	return out
}

// StyleMatch is one row of MatchCounts
type StyleMatch struct {
	Style   model.Style `json:"style"`
	Matches int         `json:"matches"`
}
