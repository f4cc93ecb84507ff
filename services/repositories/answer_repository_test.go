package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
)

func TestCreateFreeTextAnswer(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	user := seedUser(t, db, "u1")
	questionRepo := NewQuestionRepository(db)
	repo := NewAnswerRepository(db)

	free, err := questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text: "Your age?", TopicID: &topic.ID,
	})
	require.NoError(t, err)
	choice, err := questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text: "Pick one", TopicID: &topic.ID, Choices: choicePayloads(1, 2),
	})
	require.NoError(t, err)

	answer, err := repo.CreateFreeTextAnswer(user.ID, dto.CreateFreeTextAnswerRequest{
		QuestionID: free.ID,
		Text:       "42",
		Secret:     "PROLIFIC1",
	})
	require.NoError(t, err)
	require.Equal(t, "42", answer.Text)
	require.Equal(t, "PROLIFIC1", answer.Secret)

	_, err = repo.CreateFreeTextAnswer(user.ID, dto.CreateFreeTextAnswerRequest{
		QuestionID: choice.ID,
		Text:       "42",
	})
	require.True(t, shared.IsKind(err, shared.KindTypeMismatch))

	_, err = repo.CreateFreeTextAnswer(user.ID, dto.CreateFreeTextAnswerRequest{
		QuestionID: 9999,
	})
	require.True(t, shared.IsKind(err, shared.KindNotFound))
}

func TestCreateChoiceAnswer(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	user := seedUser(t, db, "u1")
	questionRepo := NewQuestionRepository(db)
	repo := NewAnswerRepository(db)

	single, err := questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text: "Pick one", TopicID: &topic.ID, Choices: choicePayloads(1, 2),
	})
	require.NoError(t, err)
	multi, err := questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text: "Pick many", TopicID: &topic.ID, IsMultiChoice: true, Choices: choicePayloads(1, 2, 3),
	})
	require.NoError(t, err)
	free, err := questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text: "Free", TopicID: &topic.ID,
	})
	require.NoError(t, err)

	// free text question takes no choices
	_, err = repo.CreateChoiceAnswer(user.ID, dto.CreateChoiceAnswerRequest{
		QuestionID: free.ID,
		Choices:    dto.ChoiceIDList{single.Choices[0].ID},
	})
	require.True(t, shared.IsKind(err, shared.KindTypeMismatch))

	// single choice takes at most one
	_, err = repo.CreateChoiceAnswer(user.ID, dto.CreateChoiceAnswerRequest{
		QuestionID: single.ID,
		Choices:    dto.ChoiceIDList{single.Choices[0].ID, single.Choices[1].ID},
	})
	require.True(t, shared.IsKind(err, shared.KindTypeMismatch))

	// choices of another question are silently dropped
	answer, err := repo.CreateChoiceAnswer(user.ID, dto.CreateChoiceAnswerRequest{
		QuestionID: multi.ID,
		Choices:    dto.ChoiceIDList{multi.Choices[0].ID, single.Choices[0].ID},
		Text:       "comment",
	})
	require.NoError(t, err)

	got, err := repo.GetAnswersByQuestion(multi.ID, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, answer.ID, got[0].ID)
	require.Len(t, got[0].Choices, 1)
	require.Equal(t, multi.Choices[0].ID, got[0].Choices[0].ID)
	require.Equal(t, "comment", got[0].Text)
}

func TestDeleteAnswer(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	user := seedUser(t, db, "u1")
	questionRepo := NewQuestionRepository(db)
	repo := NewAnswerRepository(db)

	multi, err := questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text: "Pick many", TopicID: &topic.ID, IsMultiChoice: true, Choices: choicePayloads(1, 2),
	})
	require.NoError(t, err)
	answer, err := repo.CreateChoiceAnswer(user.ID, dto.CreateChoiceAnswerRequest{
		QuestionID: multi.ID,
		Choices:    dto.ChoiceIDList{multi.Choices[0].ID, multi.Choices[1].ID},
	})
	require.NoError(t, err)

	got, err := repo.GetAnswer(answer.ID)
	require.NoError(t, err)
	require.Len(t, got.Choices, 2)

	require.NoError(t, repo.DeleteAnswer(answer.ID))

	var joinRows int64
	require.NoError(t, db.Table("answer_choices").Count(&joinRows).Error)
	require.Zero(t, joinRows)

	_, err = repo.GetAnswer(answer.ID)
	require.True(t, shared.IsKind(err, shared.KindNotFound))
	require.True(t, shared.IsKind(repo.DeleteAnswer(answer.ID), shared.KindNotFound))
}

func TestAnswerFilters(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	scenario := seedScenario(t, db, topic.ID)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	questionRepo := NewQuestionRepository(db)
	repo := NewAnswerRepository(db)

	topicQ, err := questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text: "topic q", TopicID: &topic.ID,
	})
	require.NoError(t, err)
	scenarioQ, err := questionRepo.CreateQuestion(dto.CreateQuestionRequest{
		Text: "scenario q", ScenarioID: &scenario.ID,
	})
	require.NoError(t, err)

	for _, u := range []*model.User{alice, bob} {
		_, err = repo.CreateFreeTextAnswer(u.ID, dto.CreateFreeTextAnswerRequest{
			QuestionID: topicQ.ID, Text: "t",
		})
		require.NoError(t, err)
		_, err = repo.CreateFreeTextAnswer(u.ID, dto.CreateFreeTextAnswerRequest{
			QuestionID: scenarioQ.ID, Text: "s",
		})
		require.NoError(t, err)
	}

	byTopic, err := repo.GetAnswersByTopic(topic.ID, nil)
	require.NoError(t, err)
	require.Len(t, byTopic, 2)

	byScenario, err := repo.GetAnswersByScenario(scenario.ID, &alice.ID)
	require.NoError(t, err)
	require.Len(t, byScenario, 1)
	require.Equal(t, alice.ID, byScenario[0].UserID)

	byUser, err := repo.GetAnswersByUser(bob.ID)
	require.NoError(t, err)
	require.Len(t, byUser, 2)
}
