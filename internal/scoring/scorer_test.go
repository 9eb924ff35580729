package scoring

import (
	"testing"

	"fontquiz/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDisplayScoreThresholds(t *testing.T) {
	tests := []struct {
		name   string
		countB int
		total  int
		want   int
	}{
		{"none", 0, 8, 1},
		{"just-below-two", 1, 9, 1},
		{"exactly-12.5", 1, 8, 2},
		{"exactly-37.5", 3, 8, 3},
		{"half", 4, 8, 3},
		{"exactly-62.5", 5, 8, 4},
		{"75", 6, 8, 4},
		{"exactly-87.5", 7, 8, 5},
		{"all", 8, 8, 5},
		{"two-questions-none", 0, 2, 1},
		{"two-questions-split", 1, 2, 3},
		{"two-questions-both", 2, 2, 5},
		{"no-answers", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayScore(tt.countB, tt.total))
		})
	}
}

func TestCoarseScore(t *testing.T) {
	tests := []struct {
		name   string
		countA int
		countB int
		want   int
	}{
		{"all-a", 2, 0, 1},
		{"tie", 1, 1, 1},
		{"tie-even", 4, 4, 1},
		{"b-majority", 1, 3, 5},
		{"all-b", 0, 2, 5},
		{"empty", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoarseScore(tt.countA, tt.countB))
		})
	}
}

func testQuestions() []model.Question {
	traits := []model.Trait{
		model.TraitTone, model.TraitEnergy, model.TraitDesign, model.TraitEra, model.TraitStructure,
		model.TraitTone, model.TraitEnergy, model.TraitDesign, model.TraitEra, model.TraitStructure,
	}
	qs := make([]model.Question, len(traits))
	for i, tr := range traits {
		qs[i] = model.Question{ID: i + 1, Trait: tr}
	}
	return qs
}

func answersFrom(letters string) map[int]model.Choice {
	m := make(map[int]model.Choice, len(letters))
	for i, r := range letters {
		m[i+1] = model.Choice(string(r))
	}
	return m
}

func TestScoreTraits(t *testing.T) {
	tests := []struct {
		name        string
		answers     string
		wantCoarse  model.TraitVector
		wantDisplay model.TraitVector
	}{
		{
			name:        "all-a",
			answers:     "AAAAAAAAAA",
			wantCoarse:  model.NewTraitVector([5]int{1, 1, 1, 1, 1}),
			wantDisplay: model.NewTraitVector([5]int{1, 1, 1, 1, 1}),
		},
		{
			name:        "all-b",
			answers:     "BBBBBBBBBB",
			wantCoarse:  model.NewTraitVector([5]int{5, 5, 5, 5, 5}),
			wantDisplay: model.NewTraitVector([5]int{5, 5, 5, 5, 5}),
		},
		{
			name:        "split-axes-tie-to-one",
			answers:     "ABABABABAB",
			wantCoarse:  model.NewTraitVector([5]int{1, 1, 1, 1, 1}),
			wantDisplay: model.NewTraitVector([5]int{3, 3, 3, 3, 3}),
		},
		{
			name:        "era-only",
			answers:     "AAABAAAABA",
			wantCoarse:  model.NewTraitVector([5]int{1, 1, 1, 5, 1}),
			wantDisplay: model.NewTraitVector([5]int{1, 1, 1, 5, 1}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coarse, display, empty := ScoreTraits(answersFrom(tt.answers), testQuestions())
			assert.Empty(t, empty)
			if diff := cmp.Diff(tt.wantCoarse, coarse); diff != "" {
				t.Errorf("coarse mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantDisplay, display); diff != "" {
				t.Errorf("display mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScoreTraitsPartialAnswers(t *testing.T) {
	// Only questions 1 and 6 (tone) answered.
	answers := map[int]model.Choice{1: model.ChoiceB, 6: model.ChoiceB}
	coarse, display, empty := ScoreTraits(answers, testQuestions())

	assert.Equal(t, 5, coarse.Tone)
	assert.Equal(t, 5, display.Tone)
	assert.Equal(t, []model.Trait{model.TraitEnergy, model.TraitDesign, model.TraitEra, model.TraitStructure}, empty)
	for _, tr := range empty {
		assert.Equal(t, 1, display.Get(tr), tr)
		assert.Equal(t, 1, coarse.Get(tr), tr)
	}
}

func TestScoreTraitsIgnoresUnknownQuestions(t *testing.T) {
	answers := answersFrom("BBBBBBBBBB")
	answers[42] = model.ChoiceA

	coarse, _, _ := ScoreTraits(answers, testQuestions())
	assert.Equal(t, model.NewTraitVector([5]int{5, 5, 5, 5, 5}), coarse)
}
