// model/vision.go
package model

import "time"

// Mood is one of the fixed set of moods a vision can express.
type Mood struct {
	ID    int    `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null"`
	Image string `json:"image"`
	Order int    `json:"order" gorm:"column:mood_order;not null;default:0"`
}

// MediaType classifies the media attached to a vision.
// TEXT is inferred when no URL is given.
type MediaType string

const (
	MediaTypeImage MediaType = "IMAGE"
	MediaTypeGif   MediaType = "GIF"
	MediaTypeVideo MediaType = "VIDEO"
	MediaTypeText  MediaType = "TEXT"
)

// Vision is a user-submitted mood board reacting to a scenario.
type Vision struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
	ScenarioID int       `json:"scenario_id" gorm:"index;not null"`
	UserID     int       `json:"user_id" gorm:"index;not null"`
	MoodID     int       `json:"mood_id" gorm:"not null"`

	Medias []Media `json:"medias,omitempty" gorm:"foreignKey:VisionID"`
}

// Media is one element of a vision. Order is the position within the
// parent vision, assigned from the insertion index. The unsplash fields are
// only present for IMAGE media taken from the Unsplash API.
type Media struct {
	ID                  int       `json:"id" gorm:"primaryKey"`
	URL                 *string   `json:"url"`
	UnsplashImageID     string    `json:"unsplash_image_id"`
	UnsplashCreatorName string    `json:"unsplash_creator_name"`
	UnsplashCreatorURL  string    `json:"unsplash_creator_url"`
	Description         string    `json:"description" gorm:"type:text;not null"`
	Order               int       `json:"order" gorm:"column:media_order;not null"`
	MediaType           MediaType `json:"media_type" gorm:"size:16;not null"`
	VisionID            int       `json:"vision_id" gorm:"index;not null"`
}
