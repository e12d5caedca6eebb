package database

import (
	"context"
	"time"

	"github.com/strideapp/stride-api/internal/models"
	"gorm.io/gorm"
)

// WorkoutStore reads workout history for the achievement pipeline.
type WorkoutStore struct {
	db *gorm.DB
}

func NewWorkoutStore(db *gorm.DB) *WorkoutStore {
	return &WorkoutStore{db: db}
}

// WorkoutDays returns one start-of-day timestamp per workout, ascending.
func (s *WorkoutStore) WorkoutDays(ctx context.Context, userID uint) ([]time.Time, error) {
	var workouts []models.Workout
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day asc").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}

	days := make([]time.Time, 0, len(workouts))
	for _, w := range workouts {
		days = append(days, w.Day)
	}
	return days, nil
}
