package dto

// ==================== VISION DTOs ====================

// MediaPayload is one media element submitted with a vision. When URL is
// absent the element is stored as plain text media. Its position in the list
// becomes the stored order.
type MediaPayload struct {
	URL                 *string `json:"url,omitempty"`
	Description         string  `json:"description"`
	MediaType           string  `json:"media_type,omitempty"`
	UnsplashImageID     string  `json:"unsplash_image_id,omitempty"`
	UnsplashCreatorName string  `json:"unsplash_creator_name,omitempty"`
	UnsplashCreatorURL  string  `json:"unsplash_creator_url,omitempty"`
}

type CreateVisionRequest struct {
	TokenBody
	ScenarioID int            `json:"scenario_id" validate:"required"`
	MoodID     int            `json:"mood_id" validate:"required"`
	Medias     []MediaPayload `json:"medias" validate:"required,min=1"`
}

func (c CreateVisionRequest) Validate() error {
	return GetValidator().Struct(c)
}

// UpdateVisionRequest replaces the vision's mood and, when medias is present,
// its entire media list.
type UpdateVisionRequest struct {
	TokenBody
	MoodID *int           `json:"mood_id,omitempty"`
	Medias []MediaPayload `json:"medias,omitempty"`
}

func (u UpdateVisionRequest) Validate() error {
	return GetValidator().Struct(u)
}
