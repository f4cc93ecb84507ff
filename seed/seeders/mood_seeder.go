package seeders

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/periscope-tudelft/periscope_api/model"
)

// MoodSeeder loads the fixed mood palette shown to participants.
type MoodSeeder struct {
	db *gorm.DB
}

func NewMoodSeeder(db *gorm.DB) *MoodSeeder {
	return &MoodSeeder{db: db}
}

var defaultMoods = []string{
	"Joyful",
	"Calm",
	"Curious",
	"Anxious",
	"Sad",
	"Angry",
	"Hopeful",
	"Indifferent",
}

func (s *MoodSeeder) Seed() error {
	var count int64
	if err := s.db.Model(&model.Mood{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Moods already present, skipping")
		return nil
	}

	for i, name := range defaultMoods {
		mood := &model.Mood{
			Name:  name,
			Order: i,
		}
		if err := s.db.Create(mood).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d moods", len(defaultMoods))
	return nil
}
