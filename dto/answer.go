package dto

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// ==================== ANSWER DTOs ====================

// ChoiceIDList accepts either a single choice ID or a list of IDs on the
// wire. A scalar is normalized to a one element list.
type ChoiceIDList []int

func (l *ChoiceIDList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var ids []int
		if err := sonic.Unmarshal(data, &ids); err != nil {
			return err
		}
		*l = ids
		return nil
	}
	var id int
	if err := sonic.Unmarshal(data, &id); err != nil {
		return err
	}
	*l = []int{id}
	return nil
}

type CreateFreeTextAnswerRequest struct {
	TokenBody
	QuestionID int    `json:"question_id" validate:"required"`
	Text       string `json:"text"`
	Secret     string `json:"secret,omitempty"`
}

func (c CreateFreeTextAnswerRequest) Validate() error {
	return GetValidator().Struct(c)
}

type CreateChoiceAnswerRequest struct {
	TokenBody
	QuestionID int          `json:"question_id" validate:"required"`
	Choices    ChoiceIDList `json:"choices"`
	Text       string       `json:"text,omitempty"`
	Secret     string       `json:"secret,omitempty"`
}

func (c CreateChoiceAnswerRequest) Validate() error {
	return GetValidator().Struct(c)
}
