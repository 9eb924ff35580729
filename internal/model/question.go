package model

import (
	"fmt"
	"strings"
)

// Choice is the binary option picked for a question
type Choice string

const (
	ChoiceA Choice = "A" // low pole of the question's axis
	ChoiceB Choice = "B" // high pole of the question's axis
)

// ParseChoice accepts "a"/"b" in either case
func ParseChoice(s string) (Choice, error) {
	switch Choice(strings.ToUpper(strings.TrimSpace(s))) {
	case ChoiceA:
		return ChoiceA, nil
	case ChoiceB:
		return ChoiceB, nil
	}
	return "", fmt.Errorf("invalid choice %q", s)
}

// Valid reports whether c is A or B
func (c Choice) Valid() bool {
	return c == ChoiceA || c == ChoiceB
}

// Question is a static quiz item measuring one trait axis
type Question struct {
	ID      int    `json:"id" yaml:"id"` // 1-based, equals position in the quiz
	Trait   Trait  `json:"trait" yaml:"trait"`
	Prompt  string `json:"prompt" yaml:"prompt"`
	OptionA string `json:"optionA" yaml:"optionA"`
	OptionB string `json:"optionB" yaml:"optionB"`
}

// AnswerEntry records the choice made for one question
type AnswerEntry struct {
	QuestionID int    `json:"questionId" bson:"questionId"`
	Choice     Choice `json:"choice" bson:"choice"`
}

// AnswerRequest is the request body for answering the current question
type AnswerRequest struct {
	QuestionID int    `json:"questionId"`
	Choice     string `json:"choice"`
}
