// model/survey.go
package model

// Topic groups demographic questions and child scenarios.
type Topic struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`

	// Relationships
	Scenarios []Scenario `json:"scenarios,omitempty" gorm:"foreignKey:TopicID"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:TopicID"`
}

// Scenario is one experiment/presentation context with its own survey questions.
// mode 0 is the normal deployment mode, other numbers are experiment modes.
// view 0 is the normal deployment view, other numbers change the role assignment.
type Scenario struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Image       string `json:"image" gorm:"not null"`
	Mode        int    `json:"mode" gorm:"not null;default:0"`
	View        int    `json:"view" gorm:"not null;default:0"`
	TopicID     int    `json:"topic_id" gorm:"index;not null"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:ScenarioID"`
}
