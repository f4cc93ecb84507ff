// model/game.go
package model

import "time"

// GameStatus tracks the lifecycle of a guessing game.
// IN_PROGRESS moves to COMPLETED exactly once, or to ERROR on a client fault.
type GameStatus string

const (
	GameStatusInProgress GameStatus = "IN_PROGRESS"
	GameStatusCompleted  GameStatus = "COMPLETED"
	GameStatusError      GameStatus = "ERROR"
)

// Game is one round of guessing the mood behind another user's vision.
type Game struct {
	ID        int        `json:"id" gorm:"primaryKey"`
	Status    GameStatus `json:"status" gorm:"size:16;not null"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Feedback  string     `json:"feedback" gorm:"type:text"`
	VisionID  int        `json:"vision_id" gorm:"index;not null"`
	UserID    int        `json:"user_id" gorm:"index;not null"`

	Guesses []Guess `json:"guesses,omitempty" gorm:"foreignKey:GameID"`
}

// Guess is one mood picked during a game.
type Guess struct {
	ID     int `json:"id" gorm:"primaryKey"`
	GameID int `json:"game_id" gorm:"index;not null"`
	MoodID int `json:"mood_id" gorm:"not null"`
}
