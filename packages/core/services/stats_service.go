package services

import (
	"context"

	"bab-insa-tournament/packages/core/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

func (s *StatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	var totalPlayers int64
	var totalMatches int64
	var totalGames int64
	var partialMatches int64

	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Player{}).Count(&totalPlayers).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Match{}).Count(&totalMatches).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Game{}).Count(&totalGames).Error; err != nil {
		return nil, err
	}

	// Matches with one game left are half played.
	if err := db.Model(&models.Match{}).
		Where("id IN (?)", db.Model(&models.Game{}).
			Select("match_id").
			Group("match_id").
			Having("COUNT(*) = 1")).
		Count(&partialMatches).Error; err != nil {
		return nil, err
	}

	stats := &models.Stats{
		TotalPlayers:   totalPlayers,
		TotalMatches:   totalMatches,
		TotalGames:     totalGames,
		PartialMatches: partialMatches,
	}

	return stats, nil
}
