package database

import (
	"context"

	"github.com/strideapp/stride-api/internal/models"
	"gorm.io/gorm"
)

// AchievementStore owns the persisted trophy rows.
type AchievementStore struct {
	db *gorm.DB
}

func NewAchievementStore(db *gorm.DB) *AchievementStore {
	return &AchievementStore{db: db}
}

func (s *AchievementStore) FetchAll(ctx context.Context, userID uint) ([]models.Achievement, error) {
	var rows []models.Achievement
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_key asc").
		Find(&rows).Error
	return rows, err
}

func (s *AchievementStore) DeleteAll(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Achievement{}).Error
}

func (s *AchievementStore) Record(ctx context.Context, a *models.Achievement) error {
	return s.db.WithContext(ctx).Create(a).Error
}
