package repositories

import (
	"time"

	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
	"gorm.io/gorm"
)

// VisionRepository handles mood, vision and media database operations
type VisionRepository struct {
	BaseRepository
}

func NewVisionRepository(db *gorm.DB) *VisionRepository {
	return &VisionRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// ==================== MOODS ====================

func (ds *VisionRepository) CreateMood(req dto.CreateMoodRequest) (*model.Mood, error) {
	mood := &model.Mood{
		Name:  req.Name,
		Image: req.Image,
		Order: req.Order,
	}
	if err := ds.db.Create(mood).Error; err != nil {
		return nil, err
	}
	return mood, nil
}

func (ds *VisionRepository) ListMoods() ([]model.Mood, error) {
	var moods []model.Mood
	if err := ds.db.Order("mood_order, id").Find(&moods).Error; err != nil {
		return nil, err
	}
	return moods, nil
}

func (ds *VisionRepository) GetMood(moodID int) (*model.Mood, error) {
	var mood model.Mood
	if err := ds.db.Where("id = ?", moodID).First(&mood).Error; err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("mood")
		}
		return nil, err
	}
	return &mood, nil
}

func (ds *VisionRepository) UpdateMood(moodID int, req dto.UpdateMoodRequest) (*model.Mood, error) {
	mood, err := ds.GetMood(moodID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Order != nil {
		updates["mood_order"] = *req.Order
	}
	if len(updates) > 0 {
		if err := ds.db.Model(mood).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return mood, nil
}

func (ds *VisionRepository) DeleteMood(moodID int) error {
	mood, err := ds.GetMood(moodID)
	if err != nil {
		return err
	}
	return ds.db.Delete(mood).Error
}

// ==================== VISIONS ====================

// buildMedias derives stored media rows from the payload. Position in the
// list becomes the order. An element without a URL is stored as TEXT media,
// and unsplash attribution only survives on IMAGE media.
func buildMedias(payloads []dto.MediaPayload) []model.Media {
	medias := make([]model.Media, 0, len(payloads))
	for i, p := range payloads {
		media := model.Media{
			URL:         p.URL,
			Description: p.Description,
			Order:       i,
		}
		switch {
		case p.URL == nil:
			media.MediaType = model.MediaTypeText
		case p.MediaType != "":
			media.MediaType = model.MediaType(p.MediaType)
		default:
			media.MediaType = model.MediaTypeImage
		}
		if media.MediaType == model.MediaTypeImage {
			media.UnsplashImageID = p.UnsplashImageID
			media.UnsplashCreatorName = p.UnsplashCreatorName
			media.UnsplashCreatorURL = p.UnsplashCreatorURL
		}
		medias = append(medias, media)
	}
	return medias
}

func (ds *VisionRepository) CreateVision(userID int, req dto.CreateVisionRequest) (*model.Vision, error) {
	var count int64
	if err := ds.db.Model(&model.Scenario{}).Where("id = ?", req.ScenarioID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, shared.NewNotFoundError("scenario")
	}
	if _, err := ds.GetMood(req.MoodID); err != nil {
		return nil, err
	}

	vision := &model.Vision{
		CreatedAt:  time.Now(),
		ScenarioID: req.ScenarioID,
		UserID:     userID,
		MoodID:     req.MoodID,
		Medias:     buildMedias(req.Medias),
	}
	if err := ds.db.Create(vision).Error; err != nil {
		return nil, err
	}
	return vision, nil
}

func (ds *VisionRepository) GetVision(visionID int) (*model.Vision, error) {
	var vision model.Vision
	err := ds.db.Preload("Medias", func(db *gorm.DB) *gorm.DB {
		return db.Order("media_order")
	}).Where("id = ?", visionID).First(&vision).Error
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("vision")
		}
		return nil, err
	}
	return &vision, nil
}

func (ds *VisionRepository) ListVisionsByScenario(scenarioID int, userID *int) ([]model.Vision, error) {
	query := ds.db.Preload("Medias", func(db *gorm.DB) *gorm.DB {
		return db.Order("media_order")
	}).Where("scenario_id = ?", scenarioID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	var visions []model.Vision
	if err := query.Order("id").Find(&visions).Error; err != nil {
		return nil, err
	}
	return visions, nil
}

// UpdateVision swaps the mood and, when a new media list is given, replaces
// the stored medias wholesale in one transaction.
func (ds *VisionRepository) UpdateVision(visionID, userID int, req dto.UpdateVisionRequest) (*model.Vision, error) {
	vision, err := ds.GetVision(visionID)
	if err != nil {
		return nil, err
	}
	if vision.UserID != userID {
		return nil, shared.NewPermissionDeniedError()
	}
	if req.MoodID != nil {
		if _, err := ds.GetMood(*req.MoodID); err != nil {
			return nil, err
		}
	}

	err = ds.db.Transaction(func(tx *gorm.DB) error {
		if req.MoodID != nil {
			if err := tx.Model(&model.Vision{}).Where("id = ?", visionID).
				Update("mood_id", *req.MoodID).Error; err != nil {
				return err
			}
		}
		if req.Medias != nil {
			if err := tx.Where("vision_id = ?", visionID).Delete(&model.Media{}).Error; err != nil {
				return err
			}
			medias := buildMedias(req.Medias)
			for i := range medias {
				medias[i].VisionID = visionID
			}
			if len(medias) > 0 {
				if err := tx.Create(&medias).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ds.GetVision(visionID)
}

func (ds *VisionRepository) DeleteVision(visionID int) error {
	var vision model.Vision
	if err := ds.db.Where("id = ?", visionID).First(&vision).Error; err != nil {
		if isNotFound(err) {
			return shared.NewNotFoundError("vision")
		}
		return err
	}

	return ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vision_id = ?", visionID).Delete(&model.Media{}).Error; err != nil {
			return err
		}
		return tx.Delete(&vision).Error
	})
}
