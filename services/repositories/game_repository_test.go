package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
)

func createVision(t *testing.T, repo *VisionRepository, scenarioID, userID, moodID int) *model.Vision {
	t.Helper()
	vision, err := repo.CreateVision(userID, dto.CreateVisionRequest{
		ScenarioID: scenarioID,
		MoodID:     moodID,
		Medias:     []dto.MediaPayload{{Description: "m"}},
	})
	require.NoError(t, err)
	return vision
}

func TestPickRandomVisionExclusions(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	scenario := seedScenario(t, db, topic.ID)
	mood := seedMood(t, db, "Calm")
	me := seedUser(t, db, "me")
	other := seedUser(t, db, "other")
	visionRepo := NewVisionRepository(db)
	repo := NewGameRepository(db)

	mine := createVision(t, visionRepo, scenario.ID, me.ID, mood.ID)
	theirs := createVision(t, visionRepo, scenario.ID, other.ID, mood.ID)

	// own visions never come up
	picked, err := repo.PickRandomVision(me.ID, scenario.ID)
	require.NoError(t, err)
	require.NotNil(t, picked)
	require.Equal(t, theirs.ID, picked.ID)
	require.NotEqual(t, mine.ID, picked.ID)

	// a completed game removes the vision from the pool
	game, err := repo.CreateGame(me.ID, theirs.ID)
	require.NoError(t, err)
	start := time.Now().Add(-time.Minute)
	end := time.Now()
	_, err = repo.SubmitGame(game.ID, me.ID, dto.SubmitGameRequest{
		StartTime: start,
		EndTime:   end,
		Guesses:   []int{mood.ID},
	})
	require.NoError(t, err)

	picked, err = repo.PickRandomVision(me.ID, scenario.ID)
	require.NoError(t, err)
	require.Nil(t, picked)

	// an errored game does not burn the vision
	picked, err = repo.PickRandomVision(other.ID, scenario.ID)
	require.NoError(t, err)
	require.Equal(t, mine.ID, picked.ID)
	game2, err := repo.CreateGame(other.ID, mine.ID)
	require.NoError(t, err)
	_, err = repo.SetGameError(game2.ID, other.ID)
	require.NoError(t, err)

	picked, err = repo.PickRandomVision(other.ID, scenario.ID)
	require.NoError(t, err)
	require.NotNil(t, picked)
	require.Equal(t, mine.ID, picked.ID)

	// visions of other scenarios stay out of the pool
	elsewhere := seedScenario(t, db, topic.ID)
	picked, err = repo.PickRandomVision(me.ID, elsewhere.ID)
	require.NoError(t, err)
	require.Nil(t, picked)

	_, err = repo.PickRandomVision(me.ID, 9999)
	require.True(t, shared.IsKind(err, shared.KindNotFound))
}

func TestSubmitGame(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	scenario := seedScenario(t, db, topic.ID)
	mood := seedMood(t, db, "Calm")
	me := seedUser(t, db, "me")
	other := seedUser(t, db, "other")
	visionRepo := NewVisionRepository(db)
	repo := NewGameRepository(db)

	vision := createVision(t, visionRepo, scenario.ID, other.ID, mood.ID)
	game, err := repo.CreateGame(me.ID, vision.ID)
	require.NoError(t, err)
	require.Equal(t, model.GameStatusInProgress, game.Status)

	start := time.Now().Add(-time.Minute)
	end := time.Now()

	_, err = repo.SubmitGame(game.ID, other.ID, dto.SubmitGameRequest{
		StartTime: start, EndTime: end, Guesses: []int{mood.ID},
	})
	require.True(t, shared.IsKind(err, shared.KindPermissionDenied))

	_, err = repo.SubmitGame(game.ID, me.ID, dto.SubmitGameRequest{
		StartTime: end, EndTime: start, Guesses: []int{mood.ID},
	})
	require.True(t, shared.IsKind(err, shared.KindInvalidState))

	done, err := repo.SubmitGame(game.ID, me.ID, dto.SubmitGameRequest{
		StartTime: start,
		EndTime:   end,
		Guesses:   []int{mood.ID, mood.ID},
		Feedback:  "fun",
	})
	require.NoError(t, err)
	require.Equal(t, model.GameStatusCompleted, done.Status)
	require.Equal(t, "fun", done.Feedback)
	require.Len(t, done.Guesses, 2)
	require.NotNil(t, done.StartTime)
	require.NotNil(t, done.EndTime)

	// the transition is one way
	_, err = repo.SubmitGame(game.ID, me.ID, dto.SubmitGameRequest{
		StartTime: start, EndTime: end, Guesses: []int{mood.ID},
	})
	require.True(t, shared.IsKind(err, shared.KindInvalidState))

	_, err = repo.SetGameError(game.ID, me.ID)
	require.True(t, shared.IsKind(err, shared.KindInvalidState))
}

func TestSubmitGameDefaultTimes(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	scenario := seedScenario(t, db, topic.ID)
	mood := seedMood(t, db, "Calm")
	me := seedUser(t, db, "me")
	other := seedUser(t, db, "other")
	visionRepo := NewVisionRepository(db)
	repo := NewGameRepository(db)

	vision := createVision(t, visionRepo, scenario.ID, other.ID, mood.ID)
	game, err := repo.CreateGame(me.ID, vision.ID)
	require.NoError(t, err)
	require.NotNil(t, game.StartTime)

	// no timestamps given, start stays from creation and end becomes now
	done, err := repo.SubmitGame(game.ID, me.ID, dto.SubmitGameRequest{
		Guesses: []int{mood.ID},
	})
	require.NoError(t, err)
	require.Equal(t, model.GameStatusCompleted, done.Status)
	require.NotNil(t, done.EndTime)
	require.False(t, done.EndTime.Before(*done.StartTime))
}

func TestSetGameErrorAndDelete(t *testing.T) {
	db := openTestDB(t)
	topic := seedTopic(t, db)
	scenario := seedScenario(t, db, topic.ID)
	mood := seedMood(t, db, "Calm")
	me := seedUser(t, db, "me")
	other := seedUser(t, db, "other")
	visionRepo := NewVisionRepository(db)
	repo := NewGameRepository(db)

	vision := createVision(t, visionRepo, scenario.ID, other.ID, mood.ID)
	game, err := repo.CreateGame(me.ID, vision.ID)
	require.NoError(t, err)

	errored, err := repo.SetGameError(game.ID, me.ID)
	require.NoError(t, err)
	require.Equal(t, model.GameStatusError, errored.Status)
	require.NotNil(t, errored.EndTime)

	require.NoError(t, repo.DeleteGame(game.ID))
	var count int64
	require.NoError(t, db.Model(&model.Guess{}).Count(&count).Error)
	require.Zero(t, count)
	_, err = repo.GetGame(game.ID)
	require.True(t, shared.IsKind(err, shared.KindNotFound))
}
