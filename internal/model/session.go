package model

import "time"

type SessionStatus string

const (
	SessionNotStarted SessionStatus = "not_started"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// SessionState is the mutable quiz progress for one visitor
type SessionState struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	Email           string        `json:"email,omitempty" bson:"email,omitempty"`
	HasStarted      bool          `json:"hasStarted" bson:"hasStarted"`
	Status          SessionStatus `json:"status" bson:"status"`
	CurrentQuestion int           `json:"currentQuestion" bson:"currentQuestion"` // 1-based
	Answers         []AnswerEntry `json:"answers" bson:"answers"`                 // question order, one per ID
	Results         *Results      `json:"results,omitempty" bson:"results,omitempty"`
	CreatedAt       time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// AnswerMap returns the recorded choices keyed by question ID
func (s *SessionState) AnswerMap() map[int]Choice {
	m := make(map[int]Choice, len(s.Answers))
	for _, a := range s.Answers {
		m[a.QuestionID] = a.Choice
	}
	return m
}

// SessionView is what the presentation layer receives
type SessionView struct {
	ID              string        `json:"id"`
	Status          SessionStatus `json:"status"`
	HasStarted      bool          `json:"hasStarted"`
	CurrentQuestion int           `json:"currentQuestion"`
	TotalQuestions  int           `json:"totalQuestions"`
	Answers         []AnswerEntry `json:"answers"`
	Question        *Question     `json:"question,omitempty"`
	Results         *Results      `json:"results,omitempty"`
}

// CreateSessionResponse is returned when a new session is opened
type CreateSessionResponse struct {
	SessionID string       `json:"sessionId"`
	Token     string       `json:"token"`
	Session   *SessionView `json:"session"`
}

// StartRequest is the request body for starting the quiz
type StartRequest struct {
	Email string `json:"email"`
}
