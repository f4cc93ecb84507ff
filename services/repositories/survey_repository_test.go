package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
)

func TestTopicCRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewSurveyRepository(db)

	topic, err := repo.CreateTopic(dto.CreateTopicRequest{Title: "Mobility", Description: "d"})
	require.NoError(t, err)
	require.NotZero(t, topic.ID)

	updated, err := repo.UpdateTopic(topic.ID, dto.UpdateTopicRequest{Title: strPtr("Mobility 2")})
	require.NoError(t, err)
	require.Equal(t, "Mobility 2", updated.Title)

	got, err := repo.GetTopic(topic.ID)
	require.NoError(t, err)
	require.Equal(t, "Mobility 2", got.Title)
	require.Equal(t, "d", got.Description)

	_, err = repo.GetTopic(9999)
	require.True(t, shared.IsKind(err, shared.KindNotFound))

	topics, err := repo.ListTopics()
	require.NoError(t, err)
	require.Len(t, topics, 1)
}

func TestScenarioCRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewSurveyRepository(db)
	topic := seedTopic(t, db)

	_, err := repo.CreateScenario(dto.CreateScenarioRequest{Title: "x", TopicID: 9999})
	require.True(t, shared.IsKind(err, shared.KindNotFound))

	scenario, err := repo.CreateScenario(dto.CreateScenarioRequest{
		Title:   "Car-free",
		TopicID: topic.ID,
		Mode:    1,
		View:    2,
	})
	require.NoError(t, err)
	require.Equal(t, 1, scenario.Mode)

	updated, err := repo.UpdateScenario(scenario.ID, dto.UpdateScenarioRequest{View: intPtr(0)})
	require.NoError(t, err)
	require.Equal(t, 0, updated.View)

	scenarios, err := repo.ListScenarios(&topic.ID)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)
}

func TestDeleteTopicCascades(t *testing.T) {
	db := openTestDB(t)
	repo := NewSurveyRepository(db)
	questionRepo := NewQuestionRepository(db)

	topic := seedTopic(t, db)
	scenario := seedScenario(t, db, topic.ID)

	_, err := questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text:    "demographic",
		TopicID: &topic.ID,
		Choices: choicePayloads(1, 2),
	})
	require.NoError(t, err)
	_, err = questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text:       "survey",
		ScenarioID: &scenario.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTopic(topic.ID))

	for _, m := range []interface{}{&model.Scenario{}, &model.Question{}, &model.Choice{}} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		require.Zero(t, count)
	}
}

func TestDeleteScenarioCascades(t *testing.T) {
	db := openTestDB(t)
	repo := NewSurveyRepository(db)
	questionRepo := NewQuestionRepository(db)

	topic := seedTopic(t, db)
	scenario := seedScenario(t, db, topic.ID)

	kept, err := questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text:    "stays with the topic",
		TopicID: &topic.ID,
	})
	require.NoError(t, err)
	_, err = questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text:       "goes with the scenario",
		ScenarioID: &scenario.ID,
		Choices:    choicePayloads(1),
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteScenario(scenario.ID))

	var questions []model.Question
	require.NoError(t, db.Find(&questions).Error)
	require.Len(t, questions, 1)
	require.Equal(t, kept.ID, questions[0].ID)

	var count int64
	require.NoError(t, db.Model(&model.Choice{}).Count(&count).Error)
	require.Zero(t, count)
}
