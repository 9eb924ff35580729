package scoring

import (
	"errors"
	"fmt"
	"strings"

	"fontquiz/internal/catalog"
	"fontquiz/internal/model"

	"go.uber.org/zap"
)

var ErrInvalidAnswers = errors.New("invalid answer set")

// Engine composes the scorer, classifier and ranker over one catalog
type Engine struct {
	questions []model.Question
	ranges    []model.StyleRange
	ranker    *Ranker
	logger    *zap.Logger
}

// NewEngine creates an engine over a validated catalog
func NewEngine(cat *catalog.Catalog, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		questions: cat.Questions(),
		ranges:    cat.Ranges(),
		ranker:    NewRanker(cat.Fonts(), cat.Labels(), cat.Tags(), cat.Editorial()),
		logger:    logger.Named("scoring"),
	}
}

// Questions returns the question list the engine scores against
func (e *Engine) Questions() []model.Question {
	return e.questions
}

// Ranker exposes the font ranker
func (e *Engine) Ranker() *Ranker {
	return e.ranker
}

// Evaluate runs the full pipeline. Both vectors and the recommendation are
// produced together from the same answers.
func (e *Engine) Evaluate(answers map[int]model.Choice) model.Results {
	coarse, display, empty := ScoreTraits(answers, e.questions)
	if len(empty) > 0 {
		// Only reachable with a broken question source or a partial answer set.
		e.logger.Warn("trait axes scored without answers",
			zap.Any("traits", empty),
			zap.Int("answers", len(answers)))
	}

	style := Classify(coarse, e.ranges)
	rec := e.ranker.Rank(style, display)

	e.logger.Debug("evaluated answers",
		zap.Stringer("coarse", coarse),
		zap.Stringer("display", display),
		zap.String("style", string(style)),
		zap.String("primary", rec.Primary.Name))

	return model.Results{
		Coarse:         coarse,
		Display:        display,
		Recommendation: rec,
	}
}

// ParseAnswers reads one A/B letter per question, in question order.
// Spaces and commas between letters are ignored.
func ParseAnswers(letters string, questions []model.Question) (map[int]model.Choice, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' {
			return -1
		}
		return r
	}, letters)
	if len(cleaned) != len(questions) {
		return nil, fmt.Errorf("%w: want %d answers, got %d", ErrInvalidAnswers, len(questions), len(cleaned))
	}

	answers := make(map[int]model.Choice, len(questions))
	for i, q := range questions {
		c, err := model.ParseChoice(cleaned[i : i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrInvalidAnswers, q.ID, err)
		}
		answers[q.ID] = c
	}
	return answers, nil
}

// Recommend evaluates a complete answer string without any session
func (e *Engine) Recommend(letters string) (model.Results, error) {
	answers, err := ParseAnswers(letters, e.questions)
	if err != nil {
		return model.Results{}, err
	}
	return e.Evaluate(answers), nil
}
