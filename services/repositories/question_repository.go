package repositories

import (
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
	"gorm.io/gorm"
)

// QuestionRepository handles question and choice database operations
type QuestionRepository struct {
	BaseRepository
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// buildQuestion validates one creation payload and derives the stored type.
// is_description wins over everything, an empty choice list means free text,
// otherwise is_multi_choice splits single from multi choice.
func buildQuestion(req dto.CreateQuestionRequest) (*model.Question, error) {
	if req.Text == "" {
		return nil, shared.NewMissingFieldError("text")
	}
	if req.TopicID != nil && req.ScenarioID != nil {
		return nil, shared.NewInvalidCombinationError("'topic_id' and 'scenario_id' cannot both be set")
	}
	if req.TopicID == nil && req.ScenarioID == nil {
		return nil, shared.NewInvalidCombinationError("one of 'topic_id' and 'scenario_id' must be set")
	}

	page := -1
	if req.Page != nil {
		page = *req.Page
	}
	question := &model.Question{
		Text:           req.Text,
		Order:          req.Order,
		Page:           page,
		ShuffleChoices: req.ShuffleChoices,
		TopicID:        req.TopicID,
		ScenarioID:     req.ScenarioID,
	}

	switch {
	case req.IsDescription:
		question.QuestionType = model.QuestionTypeDescription
	case len(req.Choices) == 0:
		question.QuestionType = model.QuestionTypeFreeText
	default:
		if req.IsMultiChoice {
			question.QuestionType = model.QuestionTypeMultiChoice
		} else {
			question.QuestionType = model.QuestionTypeSingleChoice
		}
		for _, c := range req.Choices {
			if c.Text == nil {
				return nil, shared.NewMissingFieldError("text")
			}
			if c.Value == nil {
				return nil, shared.NewMissingFieldError("value")
			}
			question.Choices = append(question.Choices, model.Choice{
				Text:  *c.Text,
				Value: *c.Value,
			})
		}
	}
	return question, nil
}

func (ds *QuestionRepository) CreateQuestion(req dto.CreateQuestionRequest) (*model.Question, error) {
	question, err := buildQuestion(req)
	if err != nil {
		return nil, err
	}
	if err := ds.checkParent(question); err != nil {
		return nil, err
	}
	if err := ds.db.Create(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

// CreateQuestionList inserts a batch atomically. One bad payload fails the
// whole batch before anything is written.
func (ds *QuestionRepository) CreateQuestionList(reqs []dto.CreateQuestionRequest) ([]model.Question, error) {
	questions := make([]*model.Question, 0, len(reqs))
	for _, req := range reqs {
		question, err := buildQuestion(req)
		if err != nil {
			return nil, err
		}
		if err := ds.checkParent(question); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	err := ds.db.Transaction(func(tx *gorm.DB) error {
		for _, q := range questions {
			if err := tx.Create(q).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]model.Question, len(questions))
	for i, q := range questions {
		out[i] = *q
	}
	return out, nil
}

func (ds *QuestionRepository) checkParent(q *model.Question) error {
	var count int64
	if q.TopicID != nil {
		if err := ds.db.Model(&model.Topic{}).Where("id = ?", *q.TopicID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.NewNotFoundError("topic")
		}
		return nil
	}
	if err := ds.db.Model(&model.Scenario{}).Where("id = ?", *q.ScenarioID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.NewNotFoundError("scenario")
	}
	return nil
}

func (ds *QuestionRepository) GetQuestion(questionID int) (*model.Question, error) {
	var question model.Question
	err := ds.db.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Where("id = ?", questionID).First(&question).Error
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("question")
		}
		return nil, err
	}
	return &question, nil
}

// ListQuestions filters on parent and page. Page -1 questions appear on any
// page, so a page filter keeps them in the result.
func (ds *QuestionRepository) ListQuestions(topicID, scenarioID, page *int) ([]model.Question, error) {
	query := ds.db.Preload("Choices").Order("question_order, id")
	if topicID != nil {
		query = query.Where("topic_id = ?", *topicID)
	}
	if scenarioID != nil {
		query = query.Where("scenario_id = ?", *scenarioID)
	}
	if page != nil {
		query = query.Where("page = ? OR page = ?", *page, -1)
	}
	var questions []model.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// UpdateQuestion edits a question in place. The question type never changes.
// Ownership can move to another topic or scenario on the same side only, and
// choice payloads must match the stored list one to one, existing choice IDs
// are preserved.
func (ds *QuestionRepository) UpdateQuestion(questionID int, req dto.UpdateQuestionRequest) (*model.Question, error) {
	question, err := ds.GetQuestion(questionID)
	if err != nil {
		return nil, err
	}

	if req.TopicID != nil && req.ScenarioID != nil {
		return nil, shared.NewInvalidCombinationError("cannot set both 'topic_id' and 'scenario_id'")
	}
	if req.TopicID != nil && question.TopicID == nil {
		return nil, shared.NewInvalidStateError("question does not belong to a topic")
	}
	if req.ScenarioID != nil && question.ScenarioID == nil {
		return nil, shared.NewInvalidStateError("question does not belong to a scenario")
	}
	if len(req.Choices) > 0 {
		if !question.QuestionType.SupportsChoices() {
			return nil, shared.NewTypeMismatchError("question of type '" + string(question.QuestionType) + "' has no choices")
		}
		if len(req.Choices) != len(question.Choices) {
			return nil, shared.NewLengthMismatchError("choices")
		}
		for _, c := range req.Choices {
			if c.Text == nil {
				return nil, shared.NewMissingFieldError("text")
			}
			if c.Value == nil {
				return nil, shared.NewMissingFieldError("value")
			}
		}
	}

	err = ds.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Text != nil {
			updates["text"] = *req.Text
		}
		if req.TopicID != nil {
			updates["topic_id"] = *req.TopicID
		}
		if req.ScenarioID != nil {
			updates["scenario_id"] = *req.ScenarioID
		}
		if req.Order != nil {
			updates["question_order"] = *req.Order
		}
		if req.Page != nil {
			updates["page"] = *req.Page
		}
		if req.ShuffleChoices != nil {
			updates["shuffle_choices"] = *req.ShuffleChoices
		}
		if len(updates) > 0 {
			if err := tx.Model(&model.Question{}).Where("id = ?", questionID).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		for i, c := range req.Choices {
			if err := tx.Model(&model.Choice{}).Where("id = ?", question.Choices[i].ID).
				Updates(map[string]interface{}{
					"text":  *c.Text,
					"value": *c.Value,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ds.GetQuestion(questionID)
}

func (ds *QuestionRepository) DeleteQuestion(questionID int) error {
	var question model.Question
	if err := ds.db.Where("id = ?", questionID).First(&question).Error; err != nil {
		if isNotFound(err) {
			return shared.NewNotFoundError("question")
		}
		return err
	}

	return ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&model.Choice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
}
