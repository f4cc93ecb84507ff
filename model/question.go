// model/question.go
package model

// QuestionType fixes the shape of a question at creation time.
// A question never changes type across updates.
type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single_choice"
	QuestionTypeMultiChoice  QuestionType = "multi_choice"
	QuestionTypeFreeText     QuestionType = "free_text"
	// QuestionTypeDescription marks a block of text shown between questions.
	// It takes no answers and no choices.
	QuestionTypeDescription QuestionType = "description"
)

// SupportsChoices reports whether the type carries child Choice rows.
func (t QuestionType) SupportsChoices() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultiChoice
}

// Question belongs to either a topic (demographics) or a scenario (survey),
// never both and never neither.
// Page -1 means the question appears on any page.
type Question struct {
	ID             int          `json:"id" gorm:"primaryKey"`
	Text           string       `json:"text" gorm:"type:text;not null"`
	QuestionType   QuestionType `json:"question_type" gorm:"size:32;not null"`
	Order          int          `json:"order" gorm:"column:question_order;not null;default:0"`
	Page           int          `json:"page" gorm:"not null;default:-1"`
	ShuffleChoices bool         `json:"shuffle_choices" gorm:"not null;default:false"`
	TopicID        *int         `json:"topic_id" gorm:"index"`
	ScenarioID     *int         `json:"scenario_id" gorm:"index"`

	Choices []Choice `json:"choices,omitempty" gorm:"foreignKey:QuestionID"`
}

// Choice is one selectable option of a single or multi choice question,
// e.g. text "Strongly Agree" with value 5 on a likert scale.
type Choice struct {
	ID         int    `json:"id" gorm:"primaryKey"`
	Text       string `json:"text" gorm:"not null"`
	Value      int    `json:"value"`
	QuestionID int    `json:"question_id" gorm:"index;not null"`
}
