package model

import "time"

type LeadEvent string

const (
	LeadStarted   LeadEvent = "quiz_started"
	LeadCompleted LeadEvent = "quiz_completed"
)

// Lead is a CRM record captured from a quiz session
type Lead struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	SessionID  string    `json:"sessionId" bson:"sessionId"`
	Email      string    `json:"email" bson:"email"`
	Event      LeadEvent `json:"event" bson:"event"`
	Results    *Results  `json:"results,omitempty" bson:"results,omitempty"`
	CapturedAt time.Time `json:"capturedAt" bson:"capturedAt"`
}

// ContactMessage is a contact-form submission
type ContactMessage struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	SessionID string    `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	SentAt    time.Time `json:"sentAt" bson:"sentAt"`
}

// Report is the read-only summary handed to report generators
type Report struct {
	SessionID   string         `json:"sessionId" bson:"_id"`
	Email       string         `json:"email,omitempty" bson:"email,omitempty"`
	Style       StyleInfo      `json:"style" bson:"style"`
	Fonts       [3]FontRecord  `json:"fonts" bson:"fonts"`
	Traits      []TraitReading `json:"traits" bson:"traits"`
	Coarse      TraitVector    `json:"coarse" bson:"coarse"`
	GeneratedAt time.Time      `json:"generatedAt" bson:"generatedAt"`
}

// TraitReading describes where a display score sits between an axis' poles
type TraitReading struct {
	Trait    Trait  `json:"trait" bson:"trait"`
	Score    int    `json:"score" bson:"score"`
	LowPole  string `json:"lowPole" bson:"lowPole"`
	HighPole string `json:"highPole" bson:"highPole"`
}
