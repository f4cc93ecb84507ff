package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Topic{},
		&model.Scenario{},
		&model.Question{},
		&model.Choice{},
		&model.Answer{},
		&model.Mood{},
		&model.Vision{},
		&model.Media{},
		&model.Game{},
		&model.Guess{},
	))
	return db
}

func seedTopic(t *testing.T, db *gorm.DB) *model.Topic {
	t.Helper()
	topic := &model.Topic{Title: "Mobility", Description: "test topic"}
	require.NoError(t, db.Create(topic).Error)
	return topic
}

func seedScenario(t *testing.T, db *gorm.DB, topicID int) *model.Scenario {
	t.Helper()
	scenario := &model.Scenario{Title: "Car-free center", Description: "test scenario", TopicID: topicID}
	require.NoError(t, db.Create(scenario).Error)
	return scenario
}

func seedUser(t *testing.T, db *gorm.DB, clientID string) *model.User {
	t.Helper()
	user := &model.User{ClientID: clientID, ClientType: 1}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedMood(t *testing.T, db *gorm.DB, name string) *model.Mood {
	t.Helper()
	mood := &model.Mood{Name: name}
	require.NoError(t, db.Create(mood).Error)
	return mood
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func choicePayloads(pairs ...int) []dto.ChoicePayload {
	out := make([]dto.ChoicePayload, 0, len(pairs))
	for i, v := range pairs {
		v := v
		text := string(rune('A' + i))
		out = append(out, dto.ChoicePayload{Text: &text, Value: &v})
	}
	return out
}
