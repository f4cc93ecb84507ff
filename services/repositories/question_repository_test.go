package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
)

func TestCreateQuestionTypeDerivation(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	repo := NewQuestionRepository(db)

	q, err := repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:          "Intro text",
		TopicID:       &topic.ID,
		IsDescription: true,
		Choices:       choicePayloads(1, 2),
	})
	require.NoError(t, err)
	require.Equal(t, model.QuestionTypeDescription, q.QuestionType)
	require.Empty(t, q.Choices)

	q, err = repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:    "Your age?",
		TopicID: &topic.ID,
	})
	require.NoError(t, err)
	require.Equal(t, model.QuestionTypeFreeText, q.QuestionType)

	q, err = repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:    "Pick one",
		TopicID: &topic.ID,
		Choices: choicePayloads(1, 2, 3),
	})
	require.NoError(t, err)
	require.Equal(t, model.QuestionTypeSingleChoice, q.QuestionType)
	require.Len(t, q.Choices, 3)

	q, err = repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:          "Pick many",
		TopicID:       &topic.ID,
		IsMultiChoice: true,
		Choices:       choicePayloads(1, 2),
	})
	require.NoError(t, err)
	require.Equal(t, model.QuestionTypeMultiChoice, q.QuestionType)
}

func TestCreateQuestionValidation(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	scenario := seedScenario(t, db, topic.ID)
	repo := NewQuestionRepository(db)

	_, err := repo.CreateQuestion(dto.CreateQuestionRequest{TopicID: &topic.ID})
	require.True(t, shared.IsKind(err, shared.KindMissingField))

	_, err = repo.CreateQuestion(dto.CreateQuestionRequest{Text: "orphan"})
	require.True(t, shared.IsKind(err, shared.KindInvalidCombination))
	orphanErr, ok := shared.GetAppError(err)
	require.True(t, ok)

	_, err = repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:       "both parents",
		TopicID:    &topic.ID,
		ScenarioID: &scenario.ID,
	})
	require.True(t, shared.IsKind(err, shared.KindInvalidCombination))
	bothErr, ok := shared.GetAppError(err)
	require.True(t, ok)

	// same kind, but the message names the actual mistake
	require.NotEqual(t, orphanErr.Message, bothErr.Message)

	val := 1
	_, err = repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:    "bad choice",
		TopicID: &topic.ID,
		Choices: []dto.ChoicePayload{{Value: &val}},
	})
	require.True(t, shared.IsKind(err, shared.KindMissingField))

	_, err = repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:    "bad choice",
		TopicID: &topic.ID,
		Choices: []dto.ChoicePayload{{Text: strPtr("A")}},
	})
	require.True(t, shared.IsKind(err, shared.KindMissingField))

	missing := 9999
	_, err = repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:    "no parent row",
		TopicID: &missing,
	})
	require.True(t, shared.IsKind(err, shared.KindNotFound))
}

func TestCreateQuestionListAtomic(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	repo := NewQuestionRepository(db)

	_, err := repo.CreateQuestionList([]dto.CreateQuestionRequest{
		{Text: "first", TopicID: &topic.ID},
		{TopicID: &topic.ID}, // missing text
	})
	require.True(t, shared.IsKind(err, shared.KindMissingField))

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Count(&count).Error)
	require.Zero(t, count)

	questions, err := repo.CreateQuestionList([]dto.CreateQuestionRequest{
		{Text: "first", TopicID: &topic.ID},
		{Text: "second", TopicID: &topic.ID, Choices: choicePayloads(1, 2)},
	})
	require.NoError(t, err)
	require.Len(t, questions, 2)
}

func TestUpdateQuestionGuards(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	scenario := seedScenario(t, db, topic.ID)
	repo := NewQuestionRepository(db)

	_, err := repo.UpdateQuestion(42, dto.UpdateQuestionRequest{})
	require.True(t, shared.IsKind(err, shared.KindNotFound))

	q, err := repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:    "topic question",
		TopicID: &topic.ID,
		Choices: choicePayloads(1, 2),
	})
	require.NoError(t, err)

	_, err = repo.UpdateQuestion(q.ID, dto.UpdateQuestionRequest{
		TopicID:    &topic.ID,
		ScenarioID: &scenario.ID,
	})
	require.True(t, shared.IsKind(err, shared.KindInvalidCombination))

	// the question hangs off a topic, moving it to a scenario is retargeting
	// across the null side
	_, err = repo.UpdateQuestion(q.ID, dto.UpdateQuestionRequest{ScenarioID: &scenario.ID})
	require.True(t, shared.IsKind(err, shared.KindInvalidState))

	free, err := repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:    "free text",
		TopicID: &topic.ID,
	})
	require.NoError(t, err)
	_, err = repo.UpdateQuestion(free.ID, dto.UpdateQuestionRequest{Choices: choicePayloads(1)})
	require.True(t, shared.IsKind(err, shared.KindTypeMismatch))

	// shuffle_choices is an updatable field like any other
	require.False(t, q.ShuffleChoices)
	updated, err := repo.UpdateQuestion(q.ID, dto.UpdateQuestionRequest{ShuffleChoices: boolPtr(true)})
	require.NoError(t, err)
	require.True(t, updated.ShuffleChoices)
	require.Equal(t, "topic question", updated.Text)

	updated, err = repo.UpdateQuestion(q.ID, dto.UpdateQuestionRequest{Order: intPtr(5)})
	require.NoError(t, err)
	require.True(t, updated.ShuffleChoices)
}

func TestUpdateQuestionChoicesPositional(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	repo := NewQuestionRepository(db)

	q, err := repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:    "scale",
		TopicID: &topic.ID,
		Choices: choicePayloads(1, 2, 3),
	})
	require.NoError(t, err)
	originalIDs := []int{q.Choices[0].ID, q.Choices[1].ID, q.Choices[2].ID}

	// wrong length leaves everything untouched
	_, err = repo.UpdateQuestion(q.ID, dto.UpdateQuestionRequest{Choices: choicePayloads(1, 2)})
	require.True(t, shared.IsKind(err, shared.KindLengthMismatch))

	got, err := repo.GetQuestion(q.ID)
	require.NoError(t, err)
	require.Len(t, got.Choices, 3)
	require.Equal(t, "A", got.Choices[0].Text)

	updated, err := repo.UpdateQuestion(q.ID, dto.UpdateQuestionRequest{
		Text: strPtr("new scale"),
		Choices: []dto.ChoicePayload{
			{Text: strPtr("Low"), Value: intPtr(10)},
			{Text: strPtr("Mid"), Value: intPtr(20)},
			{Text: strPtr("High"), Value: intPtr(30)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "new scale", updated.Text)
	require.Equal(t, model.QuestionTypeSingleChoice, updated.QuestionType)
	for i, c := range updated.Choices {
		require.Equal(t, originalIDs[i], c.ID)
	}
	require.Equal(t, "Low", updated.Choices[0].Text)
	require.Equal(t, 30, updated.Choices[2].Value)
}

func TestListQuestionsPageFilter(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	repo := NewQuestionRepository(db)

	pageOne := 1
	pageTwo := 2
	anyPage := -1
	_, err := repo.CreateQuestion(dto.CreateQuestionRequest{
		Text: "page one", TopicID: &topic.ID, Page: &pageOne,
	})
	require.NoError(t, err)
	_, err = repo.CreateQuestion(dto.CreateQuestionRequest{
		Text: "page two", TopicID: &topic.ID, Page: &pageTwo,
	})
	require.NoError(t, err)
	_, err = repo.CreateQuestion(dto.CreateQuestionRequest{
		Text: "every page", TopicID: &topic.ID, Page: &anyPage,
	})
	require.NoError(t, err)

	all, err := repo.ListQuestions(&topic.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// page -1 questions ride along with every page
	first, err := repo.ListQuestions(&topic.ID, nil, &pageOne)
	require.NoError(t, err)
	require.Len(t, first, 2)
	texts := []string{first[0].Text, first[1].Text}
	require.Contains(t, texts, "page one")
	require.Contains(t, texts, "every page")
}

func TestDeleteQuestionCascadesChoices(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	repo := NewQuestionRepository(db)

	q, err := repo.CreateQuestion(dto.CreateQuestionRequest{
		Text:    "scale",
		TopicID: &topic.ID,
		Choices: choicePayloads(1, 2),
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteQuestion(q.ID))

	var count int64
	require.NoError(t, db.Model(&model.Choice{}).Count(&count).Error)
	require.Zero(t, count)

	require.True(t, shared.IsKind(repo.DeleteQuestion(q.ID), shared.KindNotFound))
}
