package scoring

import (
	"testing"

	"fontquiz/internal/model"

	"github.com/stretchr/testify/assert"
)

func bounds(pairs ...[2]int) map[model.Trait]model.Bound {
	m := make(map[model.Trait]model.Bound, len(pairs))
	for i, p := range pairs {
		m[model.AllTraits[i]] = model.Bound{Min: p[0], Max: p[1]}
	}
	return m
}

func testRanges() []model.StyleRange {
	return []model.StyleRange{
		{Style: model.StyleClassicSerif, Bounds: bounds([2]int{1, 3}, [2]int{1, 3}, [2]int{1, 3}, [2]int{3, 5}, [2]int{2, 5})},
		{Style: model.StyleHumanistSans, Bounds: bounds([2]int{2, 5}, [2]int{1, 3}, [2]int{2, 4}, [2]int{1, 3}, [2]int{1, 3})},
		{Style: model.StyleGeometricSans, Bounds: bounds([2]int{1, 4}, [2]int{2, 4}, [2]int{4, 5}, [2]int{1, 2}, [2]int{4, 5})},
		{Style: model.StyleExpressiveDisplay, Bounds: bounds([2]int{4, 5}, [2]int{4, 5}, [2]int{1, 5}, [2]int{1, 5}, [2]int{1, 3})},
	}
}

func TestClassifyOverridePrecedence(t *testing.T) {
	v := model.NewTraitVector([5]int{1, 1, 1, 5, 1})

	assert.Equal(t, model.StyleTimelessEditorial, Classify(v, testRanges()))

	// A range that matches every axis still loses to the rule.
	perfect := []model.StyleRange{{
		Style:  model.StyleSlabSerif,
		Bounds: bounds([2]int{1, 5}, [2]int{1, 5}, [2]int{1, 5}, [2]int{1, 5}, [2]int{1, 5}),
	}}
	assert.Equal(t, model.StyleTimelessEditorial, Classify(v, perfect))
}

func TestIsEditorialProfile(t *testing.T) {
	tests := []struct {
		name string
		v    [5]int
		want bool
	}{
		{"canonical", [5]int{1, 1, 1, 5, 1}, true},
		{"edges", [5]int{2, 2, 2, 4, 2}, true},
		{"tone-too-high", [5]int{3, 1, 1, 5, 1}, false},
		{"energy-too-high", [5]int{1, 3, 1, 5, 1}, false},
		{"design-too-high", [5]int{1, 1, 3, 5, 1}, false},
		{"era-too-low", [5]int{1, 1, 1, 3, 1}, false},
		{"structure-too-high", [5]int{1, 1, 1, 5, 3}, false},
		{"all-low", [5]int{1, 1, 1, 1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEditorialProfile(model.NewTraitVector(tt.v)))
		})
	}
}

func TestClassifyHighestMatchCount(t *testing.T) {
	// geometric matches every axis but energy
	v := model.NewTraitVector([5]int{1, 1, 5, 1, 5})
	assert.Equal(t, model.StyleGeometricSans, Classify(v, testRanges()))

	v = model.NewTraitVector([5]int{5, 5, 5, 5, 1})
	assert.Equal(t, model.StyleExpressiveDisplay, Classify(v, testRanges()))
}

func TestClassifyTieGoesToScanOrder(t *testing.T) {
	// classic, humanist and display all match 3 axes.
	v := model.NewTraitVector([5]int{1, 1, 1, 1, 1})
	counts := MatchCounts(v, testRanges())
	assert.Equal(t, 3, counts[0].Matches)
	assert.Equal(t, 3, counts[1].Matches)
	assert.Equal(t, 3, counts[3].Matches)

	assert.Equal(t, model.StyleClassicSerif, Classify(v, testRanges()))

	reordered := []model.StyleRange{testRanges()[1], testRanges()[0]}
	assert.Equal(t, model.StyleHumanistSans, Classify(v, reordered))
}

func TestClassifyAllZeroPicksFirst(t *testing.T) {
	narrow := []model.StyleRange{
		{Style: model.StyleSlabSerif, Bounds: bounds([2]int{3, 3}, [2]int{3, 3}, [2]int{3, 3}, [2]int{3, 3}, [2]int{3, 3})},
		{Style: model.StyleGrotesqueSans, Bounds: bounds([2]int{2, 2}, [2]int{2, 2}, [2]int{2, 2}, [2]int{2, 2}, [2]int{2, 2})},
	}
	v := model.NewTraitVector([5]int{5, 5, 5, 5, 5})
	assert.Equal(t, model.StyleSlabSerif, Classify(v, narrow))
}
