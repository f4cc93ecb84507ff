package seeders

import (
	"gorm.io/gorm"
)

// MainSeeder coordinates the individual seeders.
type MainSeeder struct {
	db *gorm.DB

	admin  *AdminSeeder
	moods  *MoodSeeder
	survey *SurveySeeder
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{
		db:     db,
		admin:  NewAdminSeeder(db),
		moods:  NewMoodSeeder(db),
		survey: NewSurveySeeder(db),
	}
}

func (s *MainSeeder) SeedAll() error {
	if err := s.admin.Seed(); err != nil {
		return err
	}
	if err := s.moods.Seed(); err != nil {
		return err
	}
	return s.survey.Seed()
}

func (s *MainSeeder) SeedAdminOnly() error {
	return s.admin.Seed()
}

func (s *MainSeeder) SeedMoodsOnly() error {
	return s.moods.Seed()
}

func (s *MainSeeder) SeedSurveyOnly() error {
	return s.survey.Seed()
}
