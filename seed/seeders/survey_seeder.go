package seeders

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/periscope-tudelft/periscope_api/model"
)

// SurveySeeder creates a demo topic with one scenario and a small question
// set, enough to click through the study end to end.
type SurveySeeder struct {
	db *gorm.DB
}

func NewSurveySeeder(db *gorm.DB) *SurveySeeder {
	return &SurveySeeder{db: db}
}

func (s *SurveySeeder) Seed() error {
	var count int64
	if err := s.db.Model(&model.Topic{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Topics already present, skipping")
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		topic := &model.Topic{
			Title:       "Urban mobility",
			Description: "How people imagine moving through their city in the future.",
		}
		if err := tx.Create(topic).Error; err != nil {
			return err
		}

		likert := []model.Choice{
			{Text: "Strongly disagree", Value: 1},
			{Text: "Disagree", Value: 2},
			{Text: "Neutral", Value: 3},
			{Text: "Agree", Value: 4},
			{Text: "Strongly agree", Value: 5},
		}

		demographics := []model.Question{
			{
				Text:         "Welcome! The first few questions are about you.",
				QuestionType: model.QuestionTypeDescription,
				Order:        0,
				Page:         0,
				TopicID:      &topic.ID,
			},
			{
				Text:         "What is your age?",
				QuestionType: model.QuestionTypeFreeText,
				Order:        1,
				Page:         0,
				TopicID:      &topic.ID,
			},
			{
				Text:         "I use public transport regularly.",
				QuestionType: model.QuestionTypeSingleChoice,
				Order:        2,
				Page:         0,
				TopicID:      &topic.ID,
				Choices:      likert,
			},
		}
		for i := range demographics {
			if err := tx.Create(&demographics[i]).Error; err != nil {
				return err
			}
		}

		scenario := &model.Scenario{
			Title:       "Car-free city center",
			Description: "Imagine your city center closed to private cars from next year on.",
			TopicID:     topic.ID,
		}
		if err := tx.Create(scenario).Error; err != nil {
			return err
		}

		questions := []model.Question{
			{
				Text:         "How would this change your daily routine?",
				QuestionType: model.QuestionTypeFreeText,
				Order:        0,
				ScenarioID:   &scenario.ID,
			},
			{
				Text:         "Which of these would you use more often?",
				QuestionType: model.QuestionTypeMultiChoice,
				Order:        1,
				ScenarioID:   &scenario.ID,
				Choices: []model.Choice{
					{Text: "Bicycle", Value: 1},
					{Text: "Tram or bus", Value: 2},
					{Text: "Walking", Value: 3},
					{Text: "Shared scooter", Value: 4},
				},
			},
		}
		for i := range questions {
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}

		log.Printf("Seeded demo topic %d with scenario %d", topic.ID, scenario.ID)
		return nil
	})
}
