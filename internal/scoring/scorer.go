// Package scoring turns quiz answers into trait vectors, an aesthetic style
// and a ranked set of three fonts. Everything here is pure and deterministic.
package scoring

import "fontquiz/internal/model"

// Display score thresholds on the percentage of B answers. Each bucket is
// inclusive on its lower edge.
const (
	thresholdTwo   = 12.5
	thresholdThree = 37.5
	thresholdFour  = 62.5
	thresholdFive  = 87.5
)

// CoarseScore collapses an axis to an extreme: 5 only when B strictly
// outnumbers A.
func CoarseScore(countA, countB int) int {
	if countB > countA {
		return model.MaxScore
	}
	return model.MinScore
}

// DisplayScore buckets the share of B answers into 1..5. An axis with no
// answers scores 1.
func DisplayScore(countB, total int) int {
	if total <= 0 {
		return model.MinScore
	}
	pct := float64(countB) / float64(total) * 100
	switch {
	case pct >= thresholdFive:
		return 5
	case pct >= thresholdFour:
		return 4
	case pct >= thresholdThree:
		return 3
	case pct >= thresholdTwo:
		return 2
	default:
		return 1
	}
}

// ScoreTraits derives the coarse and display vectors from the answers given
// so far. Axes with no recorded answer are returned in empty.
func ScoreTraits(answers map[int]model.Choice, questions []model.Question) (coarse, display model.TraitVector, empty []model.Trait) {
	var countA, countB [len(model.AllTraits)]int
	index := make(map[model.Trait]int, len(model.AllTraits))
	for i, t := range model.AllTraits {
		index[t] = i
	}

	for _, q := range questions {
		choice, ok := answers[q.ID]
		if !ok {
			continue
		}
		i, ok := index[q.Trait]
		if !ok {
			continue
		}
		switch choice {
		case model.ChoiceA:
			countA[i]++
		case model.ChoiceB:
			countB[i]++
		}
	}

	for i, t := range model.AllTraits {
		total := countA[i] + countB[i]
		if total == 0 {
			empty = append(empty, t)
		}
		coarse.Set(t, CoarseScore(countA[i], countB[i]))
		display.Set(t, DisplayScore(countB[i], total))
	}
	return coarse, display, empty
}
