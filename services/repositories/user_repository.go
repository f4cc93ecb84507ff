package repositories

import (
	"errors"
	"strings"
	"time"

	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
	"gorm.io/gorm"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *UserRepository) GetUser(userID int) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("user")
		}
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) GetUserByClientID(clientID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("client_id = ?", clientID).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, shared.NewNotFoundError("user")
		}
		return nil, err
	}
	return &user, nil
}

// GetOrCreateUser returns the user owning clientID, creating it on first
// login. Two concurrent first logins race on the unique client_id index, the
// loser re-reads the row the winner inserted.
func (ds *UserRepository) GetOrCreateUser(clientID string) (*model.User, error) {
	var user model.User
	err := ds.db.Where("client_id = ?", clientID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	user = model.User{
		ClientID:   clientID,
		ClientType: shared.ClientTypeNormal,
		CreatedAt:  time.Now(),
	}
	if err := ds.db.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return ds.GetUserByClientID(clientID)
		}
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) SetClientType(userID, clientType int) error {
	res := ds.db.Model(&model.User{}).Where("id = ?", userID).Update("client_type", clientType)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.NewNotFoundError("user")
	}
	return nil
}

func (ds *UserRepository) ListUsers() ([]model.User, error) {
	var users []model.User
	if err := ds.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite does not go through gorm's error translation
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value")
}
