package repositories

import (
	"gorm.io/gorm"

	"github.com/Maruaruhe/swgameweb/models"
)

type ScoreStore interface {
	Create(score *models.Score) error
	Top(limit int) ([]models.Score, error)
}

type GormScoreStore struct {
	db *gorm.DB
}

func NewScoreStore(db *gorm.DB) *GormScoreStore {
	return &GormScoreStore{db: db}
}

func (s *GormScoreStore) Create(score *models.Score) error {
	return s.db.Create(score).Error
}

// Top retrieves the highest scores in descending order, with the author row
// loaded for each so handlers can include the player name.
func (s *GormScoreStore) Top(limit int) ([]models.Score, error) {
	var scores []models.Score
	result := s.db.Order("score desc").Limit(limit).Preload("Author").Find(&scores)
	return scores, result.Error
}
