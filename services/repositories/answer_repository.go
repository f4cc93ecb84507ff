package repositories

import (
	"time"

	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
	"gorm.io/gorm"
)

// AnswerRepository handles answer database operations
type AnswerRepository struct {
	BaseRepository
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *AnswerRepository) CreateFreeTextAnswer(userID int, req dto.CreateFreeTextAnswerRequest) (*model.Answer, error) {
	question, err := ds.getQuestion(req.QuestionID)
	if err != nil {
		return nil, err
	}
	if question.QuestionType != model.QuestionTypeFreeText {
		return nil, shared.NewTypeMismatchError("question of type '" + string(question.QuestionType) + "' does not take a free text answer")
	}

	answer := &model.Answer{
		Text:       req.Text,
		Secret:     req.Secret,
		CreatedAt:  time.Now(),
		UserID:     userID,
		QuestionID: req.QuestionID,
	}
	if err := ds.db.Create(answer).Error; err != nil {
		return nil, err
	}
	return answer, nil
}

// CreateChoiceAnswer records selected choices for a choice question. IDs not
// belonging to the question are dropped silently, a single choice question
// takes at most one selection.
func (ds *AnswerRepository) CreateChoiceAnswer(userID int, req dto.CreateChoiceAnswerRequest) (*model.Answer, error) {
	question, err := ds.getQuestion(req.QuestionID)
	if err != nil {
		return nil, err
	}
	if !question.QuestionType.SupportsChoices() {
		return nil, shared.NewTypeMismatchError("question of type '" + string(question.QuestionType) + "' does not take a choice answer")
	}
	if question.QuestionType == model.QuestionTypeSingleChoice && len(req.Choices) > 1 {
		return nil, shared.NewTypeMismatchError("single choice question takes one choice")
	}

	owned := make(map[int]model.Choice, len(question.Choices))
	for _, c := range question.Choices {
		owned[c.ID] = c
	}
	var selected []model.Choice
	for _, id := range req.Choices {
		if c, ok := owned[id]; ok {
			selected = append(selected, c)
		}
	}

	answer := &model.Answer{
		Text:       req.Text,
		Secret:     req.Secret,
		CreatedAt:  time.Now(),
		UserID:     userID,
		QuestionID: req.QuestionID,
	}
	err = ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(answer).Error; err != nil {
			return err
		}
		if len(selected) > 0 {
			if err := tx.Model(answer).Association("Choices").Append(selected); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return answer, nil
}

func (ds *AnswerRepository) getQuestion(questionID int) (*model.Question, error) {
	var question model.Question
	err := ds.db.Preload("Choices").Where("id = ?", questionID).First(&question).Error
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("question")
		}
		return nil, err
	}
	return &question, nil
}

func (ds *AnswerRepository) GetAnswer(answerID int) (*model.Answer, error) {
	var answer model.Answer
	err := ds.db.Preload("Choices").Where("id = ?", answerID).First(&answer).Error
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("answer")
		}
		return nil, err
	}
	return &answer, nil
}

// DeleteAnswer clears the choice join rows before the answer itself.
func (ds *AnswerRepository) DeleteAnswer(answerID int) error {
	answer, err := ds.GetAnswer(answerID)
	if err != nil {
		return err
	}
	return ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(answer).Association("Choices").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Answer{}, answer.ID).Error
	})
}

func (ds *AnswerRepository) GetAnswersByQuestion(questionID int, userID *int) ([]model.Answer, error) {
	query := ds.db.Preload("Choices").Where("question_id = ?", questionID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	var answers []model.Answer
	if err := query.Order("id").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (ds *AnswerRepository) GetAnswersByScenario(scenarioID int, userID *int) ([]model.Answer, error) {
	return ds.answersByQuestionParent("scenario_id = ?", scenarioID, userID)
}

func (ds *AnswerRepository) GetAnswersByTopic(topicID int, userID *int) ([]model.Answer, error) {
	return ds.answersByQuestionParent("topic_id = ?", topicID, userID)
}

func (ds *AnswerRepository) answersByQuestionParent(cond string, parentID int, userID *int) ([]model.Answer, error) {
	sub := ds.db.Model(&model.Question{}).Select("id").Where(cond, parentID)
	query := ds.db.Preload("Choices").Where("question_id IN (?)", sub)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	var answers []model.Answer
	if err := query.Order("id").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (ds *AnswerRepository) GetAnswersByUser(userID int) ([]model.Answer, error) {
	var answers []model.Answer
	if err := ds.db.Preload("Choices").Where("user_id = ?", userID).
		Order("id").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// ListAnswersForExport returns answers with their choices, newest first so
// that exports keeping the first row per key keep the latest submission. With
// a scenario given, the result covers that scenario's questions plus the
// demographic questions of its topic.
func (ds *AnswerRepository) ListAnswersForExport(scenarioID *int) ([]model.Answer, error) {
	query := ds.db.Preload("Choices", func(db *gorm.DB) *gorm.DB {
		return db.Order("choices.id")
	}).Order("created_at DESC, id DESC")

	if scenarioID != nil {
		var scenario model.Scenario
		if err := ds.db.Where("id = ?", *scenarioID).First(&scenario).Error; err != nil {
			if isNotFound(err) {
				return nil, shared.NewNotFoundError("scenario")
			}
			return nil, err
		}
		sub := ds.db.Model(&model.Question{}).Select("id").
			Where("scenario_id = ? OR topic_id = ?", scenario.ID, scenario.TopicID)
		query = query.Where("question_id IN (?)", sub)
	}

	var answers []model.Answer
	if err := query.Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
