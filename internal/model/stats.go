package model

// StyleCount is one row of the completed-style leaderboard
type StyleCount struct {
	Style Style  `json:"style"`
	Label string `json:"label,omitempty"`
	Count int64  `json:"count"`
	Rank  int    `json:"rank"`
}

// QuestionStats counts how often each option of a question was chosen
type QuestionStats struct {
	QuestionID int   `json:"questionId"`
	A          int64 `json:"a"`
	B          int64 `json:"b"`
}
