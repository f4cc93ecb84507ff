package repositories

import (
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
	"gorm.io/gorm"
)

// SurveyRepository handles topic and scenario database operations
type SurveyRepository struct {
	BaseRepository
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// ==================== TOPICS ====================

func (ds *SurveyRepository) CreateTopic(req dto.CreateTopicRequest) (*model.Topic, error) {
	topic := &model.Topic{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := ds.db.Create(topic).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

func (ds *SurveyRepository) GetTopic(topicID int) (*model.Topic, error) {
	var topic model.Topic
	err := ds.db.
		Preload("Scenarios").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order, id")
		}).
		Preload("Questions.Choices").
		Where("id = ?", topicID).First(&topic).Error
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("topic")
		}
		return nil, err
	}
	return &topic, nil
}

func (ds *SurveyRepository) ListTopics() ([]model.Topic, error) {
	var topics []model.Topic
	if err := ds.db.Order("id").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (ds *SurveyRepository) UpdateTopic(topicID int, req dto.UpdateTopicRequest) (*model.Topic, error) {
	var topic model.Topic
	if err := ds.db.Where("id = ?", topicID).First(&topic).Error; err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("topic")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) > 0 {
		if err := ds.db.Model(&topic).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &topic, nil
}

// DeleteTopic removes the topic together with its scenarios and all
// questions hanging off either side. The schema has no ON DELETE CASCADE,
// children go in the same transaction.
func (ds *SurveyRepository) DeleteTopic(topicID int) error {
	var topic model.Topic
	if err := ds.db.Where("id = ?", topicID).First(&topic).Error; err != nil {
		if isNotFound(err) {
			return shared.NewNotFoundError("topic")
		}
		return err
	}

	return ds.db.Transaction(func(tx *gorm.DB) error {
		var scenarioIDs []int
		if err := tx.Model(&model.Scenario{}).Where("topic_id = ?", topicID).
			Pluck("id", &scenarioIDs).Error; err != nil {
			return err
		}

		if err := deleteQuestionsOf(tx, "topic_id = ?", topicID); err != nil {
			return err
		}
		if len(scenarioIDs) > 0 {
			if err := deleteQuestionsOf(tx, "scenario_id IN ?", scenarioIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", scenarioIDs).Delete(&model.Scenario{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&topic).Error
	})
}

// ==================== SCENARIOS ====================

func (ds *SurveyRepository) CreateScenario(req dto.CreateScenarioRequest) (*model.Scenario, error) {
	var count int64
	if err := ds.db.Model(&model.Topic{}).Where("id = ?", req.TopicID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, shared.NewNotFoundError("topic")
	}

	scenario := &model.Scenario{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Mode:        req.Mode,
		View:        req.View,
		TopicID:     req.TopicID,
	}
	if err := ds.db.Create(scenario).Error; err != nil {
		return nil, err
	}
	return scenario, nil
}

func (ds *SurveyRepository) GetScenario(scenarioID int) (*model.Scenario, error) {
	var scenario model.Scenario
	err := ds.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order, id")
		}).
		Preload("Questions.Choices").
		Where("id = ?", scenarioID).First(&scenario).Error
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("scenario")
		}
		return nil, err
	}
	return &scenario, nil
}

func (ds *SurveyRepository) ListScenarios(topicID *int) ([]model.Scenario, error) {
	query := ds.db.Order("id")
	if topicID != nil {
		query = query.Where("topic_id = ?", *topicID)
	}
	var scenarios []model.Scenario
	if err := query.Find(&scenarios).Error; err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (ds *SurveyRepository) UpdateScenario(scenarioID int, req dto.UpdateScenarioRequest) (*model.Scenario, error) {
	var scenario model.Scenario
	if err := ds.db.Where("id = ?", scenarioID).First(&scenario).Error; err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("scenario")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Mode != nil {
		updates["mode"] = *req.Mode
	}
	if req.View != nil {
		updates["view"] = *req.View
	}
	if len(updates) > 0 {
		if err := ds.db.Model(&scenario).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &scenario, nil
}

func (ds *SurveyRepository) DeleteScenario(scenarioID int) error {
	var scenario model.Scenario
	if err := ds.db.Where("id = ?", scenarioID).First(&scenario).Error; err != nil {
		if isNotFound(err) {
			return shared.NewNotFoundError("scenario")
		}
		return err
	}

	return ds.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteQuestionsOf(tx, "scenario_id = ?", scenarioID); err != nil {
			return err
		}
		return tx.Delete(&scenario).Error
	})
}

// deleteQuestionsOf removes questions matching the condition and their choices.
func deleteQuestionsOf(tx *gorm.DB, cond string, args ...interface{}) error {
	var questionIDs []int
	if err := tx.Model(&model.Question{}).Where(cond, args...).
		Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if len(questionIDs) == 0 {
		return nil
	}
	if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Choice{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", questionIDs).Delete(&model.Question{}).Error
}
