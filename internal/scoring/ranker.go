package scoring

import (
	"slices"
	"strings"

	"fontquiz/internal/model"
)

// RecommendationSize is the number of fonts every recommendation carries
const RecommendationSize = 3

// Ranker picks fonts from a catalog for a style and display vector
type Ranker struct {
	fonts     []model.FontRecord
	labels    map[model.Style]string
	tags      map[string]model.Style
	editorial []string
}

// NewRanker creates a ranker over a read-only font list. labels maps styles to
// display labels, tags maps internal font tags to styles and editorial is the
// override allow-list in priority order.
func NewRanker(fonts []model.FontRecord, labels map[model.Style]string, tags map[string]model.Style, editorial []string) *Ranker {
	return &Ranker{
		fonts:     fonts,
		labels:    labels,
		tags:      tags,
		editorial: editorial,
	}
}

// StyleLabel returns the display label of a style, or its name if unlabeled
func (r *Ranker) StyleLabel(s model.Style) string {
	if l, ok := r.labels[s]; ok {
		return l
	}
	return string(s)
}

// TagLabel resolves a font's internal tag to a display label. Unknown tags
// resolve to themselves.
func (r *Ranker) TagLabel(tag string) string {
	if s, ok := r.tags[tag]; ok {
		return r.StyleLabel(s)
	}
	return tag
}

// Rank returns exactly three fonts for the style, best first
func (r *Ranker) Rank(style model.Style, display model.TraitVector) model.Recommendation {
	var candidates []model.FontRecord
	if style.IsOverride() {
		candidates = r.editorialCandidates()
	} else {
		candidates = r.styleCandidates(style, display)
	}
	if len(candidates) == 0 {
		candidates = r.byDistance(slices.Clone(r.fonts), display)
	}

	picked := pad(candidates)
	return model.Recommendation{
		Style:      style,
		StyleLabel: r.StyleLabel(style),
		Primary:    picked[0],
		Secondary:  picked[1],
		Tertiary:   picked[2],
	}
}

// editorialCandidates keeps allow-list order and skips display and sans
// faces, then tops up with any other text serif from the catalog.
func (r *Ranker) editorialCandidates() []model.FontRecord {
	byName := make(map[string]model.FontRecord, len(r.fonts))
	for _, f := range r.fonts {
		byName[f.Name] = f
	}

	selected := make(map[string]bool, RecommendationSize)
	var out []model.FontRecord
	for _, name := range r.editorial {
		f, ok := byName[name]
		if !ok || selected[name] || tagHasAny(f.Tag, "display", "sans") {
			continue
		}
		selected[name] = true
		out = append(out, f)
	}

	if len(out) < RecommendationSize {
		for _, f := range r.fonts {
			if selected[f.Name] || !tagHasAny(f.Tag, "serif") || tagHasAny(f.Tag, "display") {
				continue
			}
			selected[f.Name] = true
			out = append(out, f)
		}
	}
	return out
}

// styleCandidates filters the catalog to the style's label and orders the
// result by distance. Traditional profiles drop modern, geometric and display
// tags; if that empties the list the unfiltered style fonts are used.
func (r *Ranker) styleCandidates(style model.Style, display model.TraitVector) []model.FontRecord {
	label := r.StyleLabel(style)
	traditional := display.Tone <= 2 && display.Energy <= 2

	var matched, kept []model.FontRecord
	for _, f := range r.fonts {
		if r.TagLabel(f.Tag) != label {
			continue
		}
		matched = append(matched, f)
		if traditional && tagHasAny(f.Tag, "modern", "geometric", "display") {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		kept = matched
	}
	return r.byDistance(kept, display)
}

func (r *Ranker) byDistance(fonts []model.FontRecord, display model.TraitVector) []model.FontRecord {
	slices.SortStableFunc(fonts, func(a, b model.FontRecord) int {
		return a.Traits.Distance(display) - b.Traits.Distance(display)
	})
	return fonts
}

// pad repeats the best candidate until there are three
func pad(candidates []model.FontRecord) [RecommendationSize]model.FontRecord {
	var out [RecommendationSize]model.FontRecord
	if len(candidates) == 0 {
		return out
	}
	for i := range out {
		if i < len(candidates) {
			out[i] = candidates[i]
		} else {
			out[i] = candidates[0]
		}
	}
	return out
}

func tagHasAny(tag string, parts ...string) bool {
	lower := strings.ToLower(tag)
	for _, p := range parts {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
