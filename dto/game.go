package dto

import "time"

// ==================== GAME DTOs ====================

// SubmitGameRequest closes a game. Timestamps are optional overrides for the
// server-side ones, an absent end_time means the submission moment.
type SubmitGameRequest struct {
	TokenBody
	StartTime time.Time `json:"start_time,omitempty"`
	EndTime   time.Time `json:"end_time,omitempty"`
	Guesses   []int     `json:"guesses" validate:"required,min=1"`
	Feedback  string    `json:"feedback,omitempty"`
}

func (s SubmitGameRequest) Validate() error {
	return GetValidator().Struct(s)
}

// CreateRandomGameRequest asks for a game within one scenario's vision pool.
type CreateRandomGameRequest struct {
	TokenBody
	ScenarioID int `json:"scenario_id" validate:"required"`
}

func (s CreateRandomGameRequest) Validate() error {
	return GetValidator().Struct(s)
}

// RandomGameResponse is the vision to guess plus the created game record.
type RandomGameResponse struct {
	GameID     int         `json:"game_id"`
	VisionID   int         `json:"vision_id"`
	ScenarioID int         `json:"scenario_id"`
	Medias     interface{} `json:"medias"`
}
