package dto

// ==================== QUESTION DTOs ====================

// ChoicePayload is one option submitted with a choice question. Both fields
// are checked in the repository so that a missing one names the exact field.
type ChoicePayload struct {
	Text  *string `json:"text"`
	Value *int    `json:"value"`
}

// CreateQuestionRequest carries one new question. The stored question type is
// derived from the flags: is_description wins over everything, then an empty
// choice list means free text, otherwise is_multi_choice splits single from
// multi choice.
type CreateQuestionRequest struct {
	TokenBody
	Text           string          `json:"text"`
	TopicID        *int            `json:"topic_id,omitempty"`
	ScenarioID     *int            `json:"scenario_id,omitempty"`
	IsDescription  bool            `json:"is_description"`
	IsMultiChoice  bool            `json:"is_multi_choice"`
	Order          int             `json:"order"`
	Page           *int            `json:"page,omitempty"`
	ShuffleChoices bool            `json:"shuffle_choices"`
	Choices        []ChoicePayload `json:"choices"`
}

func (c CreateQuestionRequest) Validate() error {
	return GetValidator().Struct(c)
}

type CreateQuestionListRequest struct {
	TokenBody
	Questions []CreateQuestionRequest `json:"questions" validate:"required,min=1"`
}

func (c CreateQuestionListRequest) Validate() error {
	return GetValidator().Struct(c)
}

// UpdateQuestionRequest edits a question in place. Choices, when present,
// must match the stored choice list in length and are updated positionally.
type UpdateQuestionRequest struct {
	TokenBody
	Text           *string         `json:"text,omitempty"`
	TopicID        *int            `json:"topic_id,omitempty"`
	ScenarioID     *int            `json:"scenario_id,omitempty"`
	Order          *int            `json:"order,omitempty"`
	Page           *int            `json:"page,omitempty"`
	ShuffleChoices *bool           `json:"shuffle_choices,omitempty"`
	Choices        []ChoicePayload `json:"choices,omitempty"`
}

func (u UpdateQuestionRequest) Validate() error {
	return GetValidator().Struct(u)
}
