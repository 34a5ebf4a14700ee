package repositories

import (
	"gorm.io/gorm"

	"github.com/Maruaruhe/swgameweb/models"
)

type UserStore interface {
	Create(user *models.User) error
	FindByName(name string) (*models.User, error)
}

type GormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

// FindByName retrieves a user by their unique name. Returns
// gorm.ErrRecordNotFound when no such user exists.
func (s *GormUserStore) FindByName(name string) (*models.User, error) {
	var user models.User
	result := s.db.Where("name = ?", name).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}
