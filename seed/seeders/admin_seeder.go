package seeders

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
)

// AdminSeeder creates the single admin user when none exists yet.
type AdminSeeder struct {
	db *gorm.DB
}

func NewAdminSeeder(db *gorm.DB) *AdminSeeder {
	return &AdminSeeder{db: db}
}

func (s *AdminSeeder) Seed() error {
	var count int64
	if err := s.db.Model(&model.User{}).
		Where("client_type = ?", shared.ClientTypeAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin user already present, skipping")
		return nil
	}

	clientID := os.Getenv("ADMIN_CLIENT_ID")
	if clientID == "" {
		clientID = "admin"
	}

	admin := &model.User{
		ClientID:   clientID,
		ClientType: shared.ClientTypeAdmin,
		CreatedAt:  time.Now(),
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Admin user created with client_id %q", clientID)
	return nil
}
