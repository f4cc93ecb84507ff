// model/answer.go
package model

import "time"

// Answer records one submission to a question.
// Text is set for free text questions, or as an optional comment next to
// choices. Secret carries admin-only metadata (e.g. the Prolific ID of the
// submitter) and is never serialized to API clients.
type Answer struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	Text       string    `json:"text"`
	Secret     string    `json:"-" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UserID     int       `json:"user_id" gorm:"index;not null"`
	QuestionID int       `json:"question_id" gorm:"index;not null"`

	Choices []Choice `json:"choices" gorm:"many2many:answer_choices;"`
}
