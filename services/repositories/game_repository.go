package repositories

import (
	"time"

	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
	"gorm.io/gorm"
)

// GameRepository handles game and guess database operations
type GameRepository struct {
	BaseRepository
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// PickRandomVision selects a vision in the scenario for userID to guess. The
// user's own visions are out, and so is every vision the user already
// finished a game on. A nil result with a nil error means the pool is
// exhausted.
func (ds *GameRepository) PickRandomVision(userID, scenarioID int) (*model.Vision, error) {
	var scenario model.Scenario
	if err := ds.db.Where("id = ?", scenarioID).First(&scenario).Error; err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("scenario")
		}
		return nil, err
	}

	completed := ds.db.Model(&model.Game{}).Select("vision_id").
		Where("user_id = ? AND status = ?", userID, model.GameStatusCompleted)

	var vision model.Vision
	err := ds.db.Preload("Medias", func(db *gorm.DB) *gorm.DB {
		return db.Order("media_order")
	}).
		Where("scenario_id = ?", scenarioID).
		Where("user_id != ?", userID).
		Where("id NOT IN (?)", completed).
		Order("RANDOM()").
		First(&vision).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &vision, nil
}

func (ds *GameRepository) CreateGame(userID, visionID int) (*model.Game, error) {
	now := time.Now()
	game := &model.Game{
		Status:    model.GameStatusInProgress,
		StartTime: &now,
		VisionID:  visionID,
		UserID:    userID,
	}
	if err := ds.db.Create(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

func (ds *GameRepository) GetGame(gameID int) (*model.Game, error) {
	var game model.Game
	err := ds.db.Preload("Guesses").Where("id = ?", gameID).First(&game).Error
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("game")
		}
		return nil, err
	}
	return &game, nil
}

// ListGames returns games, optionally restricted to one user or one vision.
func (ds *GameRepository) ListGames(userID, visionID *int) ([]model.Game, error) {
	query := ds.db.Preload("Guesses")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if visionID != nil {
		query = query.Where("vision_id = ?", *visionID)
	}
	var games []model.Game
	if err := query.Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// SubmitGame finishes an in-progress game. The transition is one way, a
// completed or errored game never goes back, and the guesses land in the
// same transaction as the status flip. Client-reported timestamps override
// the server-side ones, an absent end_time defaults to now.
func (ds *GameRepository) SubmitGame(gameID, userID int, req dto.SubmitGameRequest) (*model.Game, error) {
	game, err := ds.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if game.UserID != userID {
		return nil, shared.NewPermissionDeniedError()
	}
	if game.Status != model.GameStatusInProgress {
		return nil, shared.NewInvalidStateError("game is not in progress")
	}

	start := time.Now()
	if game.StartTime != nil {
		start = *game.StartTime
	}
	if !req.StartTime.IsZero() {
		start = req.StartTime
	}
	end := time.Now()
	if !req.EndTime.IsZero() {
		end = req.EndTime
	}
	if end.Before(start) {
		return nil, shared.NewInvalidStateError("end_time precedes start_time")
	}

	err = ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Game{}).Where("id = ?", gameID).
			Updates(map[string]interface{}{
				"status":     model.GameStatusCompleted,
				"start_time": start,
				"end_time":   end,
				"feedback":   req.Feedback,
			}).Error; err != nil {
			return err
		}
		for _, moodID := range req.Guesses {
			guess := model.Guess{GameID: gameID, MoodID: moodID}
			if err := tx.Create(&guess).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ds.GetGame(gameID)
}

// SetGameError marks an in-progress game as failed on the client side.
func (ds *GameRepository) SetGameError(gameID, userID int) (*model.Game, error) {
	game, err := ds.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if game.UserID != userID {
		return nil, shared.NewPermissionDeniedError()
	}
	if game.Status != model.GameStatusInProgress {
		return nil, shared.NewInvalidStateError("game is not in progress")
	}

	now := time.Now()
	if err := ds.db.Model(&model.Game{}).Where("id = ?", gameID).
		Updates(map[string]interface{}{
			"status":   model.GameStatusError,
			"end_time": now,
		}).Error; err != nil {
		return nil, err
	}
	return ds.GetGame(gameID)
}

// DeleteGame removes a game and its guesses.
func (ds *GameRepository) DeleteGame(gameID int) error {
	var game model.Game
	if err := ds.db.Where("id = ?", gameID).First(&game).Error; err != nil {
		if isNotFound(err) {
			return shared.NewNotFoundError("game")
		}
		return err
	}

	return ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", gameID).Delete(&model.Guess{}).Error; err != nil {
			return err
		}
		return tx.Delete(&game).Error
	})
}
