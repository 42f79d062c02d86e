package repositories

import (
	"context"

	"bab-insa-tournament/packages/core/bracket"
	"bab-insa-tournament/packages/core/models"

	"gorm.io/gorm"
)

// PlayerRepository is the roster read by bracket generation.
type PlayerRepository struct {
	db *gorm.DB
}

var _ bracket.Roster = (*PlayerRepository)(nil)

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{
		db: db,
	}
}

// ListAll returns every player in registration order.
func (r *PlayerRepository) ListAll(ctx context.Context) ([]models.Player, error) {
	var players []models.Player

	result := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (r *PlayerRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Player{}).Error
}
