package dto

// ==================== TOPIC DTOs ====================

type CreateTopicRequest struct {
	TokenBody
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (c CreateTopicRequest) Validate() error {
	return GetValidator().Struct(c)
}

type UpdateTopicRequest struct {
	TokenBody
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (u UpdateTopicRequest) Validate() error {
	return GetValidator().Struct(u)
}

// ==================== SCENARIO DTOs ====================

type CreateScenarioRequest struct {
	TokenBody
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Mode        int    `json:"mode"`
	View        int    `json:"view"`
	TopicID     int    `json:"topic_id" validate:"required"`
}

func (c CreateScenarioRequest) Validate() error {
	return GetValidator().Struct(c)
}

type UpdateScenarioRequest struct {
	TokenBody
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Mode        *int    `json:"mode,omitempty"`
	View        *int    `json:"view,omitempty"`
}

func (u UpdateScenarioRequest) Validate() error {
	return GetValidator().Struct(u)
}

// ==================== MOOD DTOs ====================

type CreateMoodRequest struct {
	TokenBody
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
	Order int    `json:"order"`
}

func (c CreateMoodRequest) Validate() error {
	return GetValidator().Struct(c)
}

type UpdateMoodRequest struct {
	TokenBody
	Name  *string `json:"name,omitempty"`
	Image *string `json:"image,omitempty"`
	Order *int    `json:"order,omitempty"`
}

func (u UpdateMoodRequest) Validate() error {
	return GetValidator().Struct(u)
}
