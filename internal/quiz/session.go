// Package quiz holds the per-visitor session state machine:
//
//	not_started --Start--> in_progress(1) --Answer--> ... in_progress(10) --Answer--> completed
//
// Back steps to the previous question and retracts its answer, Reset returns
// to question 1 and SkipToResults fills the gaps with A. Results are computed
// only on entering completed and are dropped by every transition out of it.
package quiz

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fontquiz/internal/model"
)

var (
	ErrAlreadyStarted = errors.New("quiz already started")
	ErrNotStarted     = errors.New("quiz not started")
	ErrNotInProgress  = errors.New("quiz is not in progress")
	ErrWrongQuestion  = errors.New("question is not the current question")
	ErrInvalidChoice  = errors.New("choice must be A or B")
	ErrCannotGoBack   = errors.New("already at the first question")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrNotCompleted   = errors.New("quiz not completed")
)

// Engine scores a complete answer set
type Engine interface {
	Questions() []model.Question
	Evaluate(answers map[int]model.Choice) model.Results
}

// Session applies transitions to one SessionState. It is not safe for
// concurrent use; callers serialise access per session.
type Session struct {
	state  *model.SessionState
	engine Engine
	now    func() time.Time
}

// New creates a session in the not_started state
func New(id string, engine Engine) *Session {
	now := time.Now()
	return &Session{
		state: &model.SessionState{
			ID:              id,
			Status:          model.SessionNotStarted,
			CurrentQuestion: 1,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		engine: engine,
		now:    time.Now,
	}
}

// Resume wraps a previously stored state
func Resume(state *model.SessionState, engine Engine) *Session {
	return &Session{
		state:  state,
		engine: engine,
		now:    time.Now,
	}
}

// State returns a copy of the current state
func (s *Session) State() *model.SessionState {
	cp := *s.state
	cp.Answers = append([]model.AnswerEntry(nil), s.state.Answers...)
	if s.state.Results != nil {
		r := *s.state.Results
		cp.Results = &r
	}
	return &cp
}

func (s *Session) total() int {
	return len(s.engine.Questions())
}

func (s *Session) touch() {
	s.state.UpdatedAt = s.now()
}

// Start records the visitor's email and opens question 1
func (s *Session) Start(email string) error {
	if s.state.Status != model.SessionNotStarted {
		return ErrAlreadyStarted
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEmail, err)
	}

	s.state.Email = addr.Address
	s.state.HasStarted = true
	s.state.Status = model.SessionInProgress
	s.state.CurrentQuestion = 1
	s.state.Answers = nil
	s.state.Results = nil
	s.touch()
	return nil
}

// Answer records the choice for the current question. Answering the last
// question completes the quiz and computes results.
func (s *Session) Answer(questionID int, choice model.Choice) error {
	if !choice.Valid() {
		return ErrInvalidChoice
	}
	if s.state.Status != model.SessionInProgress {
		return ErrNotInProgress
	}
	if questionID != s.state.CurrentQuestion {
		return fmt.Errorf("%w: got %d, current is %d", ErrWrongQuestion, questionID, s.state.CurrentQuestion)
	}

	s.state.Answers = append(s.state.Answers, model.AnswerEntry{QuestionID: questionID, Choice: choice})
	if questionID >= s.total() {
		s.complete()
	} else {
		s.state.CurrentQuestion++
	}
	s.touch()
	return nil
}

// Back steps to the previous question and retracts its answer. From the
// completed state it reopens the last question instead.
func (s *Session) Back() error {
	switch s.state.Status {
	case model.SessionNotStarted:
		return ErrNotStarted
	case model.SessionInProgress:
		if s.state.CurrentQuestion <= 1 {
			return ErrCannotGoBack
		}
		s.state.CurrentQuestion--
	case model.SessionCompleted:
		s.state.Status = model.SessionInProgress
	}

	s.retractFrom(s.state.CurrentQuestion)
	s.state.Results = nil
	s.touch()
	return nil
}

// Reset clears progress and returns to question 1. The email and started
// flag are kept, so a started visitor lands on question 1, not the intake.
func (s *Session) Reset() {
	s.state.Answers = nil
	s.state.CurrentQuestion = 1
	s.state.Results = nil
	if s.state.HasStarted {
		s.state.Status = model.SessionInProgress
	} else {
		s.state.Status = model.SessionNotStarted
	}
	s.touch()
}

// Restart discards everything including the email
func (s *Session) Restart() {
	s.state.Email = ""
	s.state.HasStarted = false
	s.state.Status = model.SessionNotStarted
	s.state.CurrentQuestion = 1
	s.state.Answers = nil
	s.state.Results = nil
	s.touch()
}

// SkipToResults answers every open question with A and completes the quiz
func (s *Session) SkipToResults() error {
	if !s.state.HasStarted {
		return ErrNotStarted
	}

	answered := s.state.AnswerMap()
	filled := make([]model.AnswerEntry, 0, s.total())
	for _, q := range s.engine.Questions() {
		choice, ok := answered[q.ID]
		if !ok {
			choice = model.ChoiceA
		}
		filled = append(filled, model.AnswerEntry{QuestionID: q.ID, Choice: choice})
	}
	s.state.Answers = filled
	s.state.CurrentQuestion = s.total()
	s.complete()
	s.touch()
	return nil
}

// CurrentQuestion returns the question awaiting an answer
func (s *Session) CurrentQuestion() (model.Question, bool) {
	if s.state.Status != model.SessionInProgress {
		return model.Question{}, false
	}
	qs := s.engine.Questions()
	i := s.state.CurrentQuestion - 1
	if i < 0 || i >= len(qs) {
		return model.Question{}, false
	}
	return qs[i], true
}

// Results returns the computed results of a completed quiz
func (s *Session) Results() (*model.Results, error) {
	if s.state.Status != model.SessionCompleted || s.state.Results == nil {
		return nil, ErrNotCompleted
	}
	r := *s.state.Results
	return &r, nil
}

// View builds the read-only projection for the presentation layer
func (s *Session) View() *model.SessionView {
	st := s.State()
	v := &model.SessionView{
		ID:              st.ID,
		Status:          st.Status,
		HasStarted:      st.HasStarted,
		CurrentQuestion: st.CurrentQuestion,
		TotalQuestions:  s.total(),
		Answers:         st.Answers,
		Results:         st.Results,
	}
	if q, ok := s.CurrentQuestion(); ok {
		v.Question = &q
	}
	return v
}

func (s *Session) complete() {
	s.state.Status = model.SessionCompleted
	results := s.engine.Evaluate(s.state.AnswerMap())
	s.state.Results = &results
}

func (s *Session) retractFrom(questionID int) {
	kept := s.state.Answers[:0]
	for _, a := range s.state.Answers {
		if a.QuestionID < questionID {
			kept = append(kept, a)
		}
	}
	s.state.Answers = kept
}
