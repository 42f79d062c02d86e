package services

import (
	"context"
	"errors"
	"strings"

	"bab-insa-tournament/packages/core/bracket"
	"bab-insa-tournament/packages/core/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerNameRequired = errors.New("player name is required")
	ErrPlayerNameTaken    = errors.New("player name already exists")
)

type PlayerService struct {
	db     *gorm.DB
	engine *bracket.Engine
	logger *zap.Logger
}

func NewPlayerService(db *gorm.DB, engine *bracket.Engine, logger *zap.Logger) *PlayerService {
	return &PlayerService{
		db:     db,
		engine: engine,
		logger: logger,
	}
}

func (s *PlayerService) GetPlayerByID(ctx context.Context, id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.WithContext(ctx).First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, result.Error
	}

	return &player, nil
}

// CreatePlayer registers a player with zeroed stats. Names are trimmed and
// must be unique.
func (s *PlayerService) CreatePlayer(ctx context.Context, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}

	player := &models.Player{
		Name:        name,
		Wins:        0,
		Losses:      0,
		TotalPoints: 0,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Player{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrPlayerNameTaken
		}
		return tx.Create(player).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlayerNameTaken
		}
		return nil, err
	}

	s.logger.Info("player registered", zap.Uint("player_id", player.ID), zap.String("name", player.Name))
	return player, nil
}

// UpdatePlayerScore records one result. "win" and "loss" bump the matching
// counter; points are added to the total either way.
func (s *PlayerService) UpdatePlayerScore(ctx context.Context, id uint, req models.UpdateScoreRequest) (*models.Player, error) {
	updates := map[string]interface{}{
		"total_points": gorm.Expr("total_points + ?", req.Points),
	}
	switch req.Result {
	case "win":
		updates["wins"] = gorm.Expr("wins + 1")
	case "loss":
		updates["losses"] = gorm.Expr("losses + 1")
	}

	result := s.db.WithContext(ctx).Model(&models.Player{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrPlayerNotFound
	}

	return s.GetPlayerByID(ctx, id)
}

func (s *PlayerService) GetAllPlayers(ctx context.Context, orderBy string, direction string, page int, pageSize int) (*models.PaginatedPlayersResponse, error) {
	var players []models.Player
	var total int64

	allowedOrderBy := map[string]bool{
		"created_at":   true,
		"name":         true,
		"wins":         true,
		"losses":       true,
		"total_points": true,
	}

	if !allowedOrderBy[orderBy] {
		orderBy = "created_at"
	}

	direction = strings.ToUpper(direction)
	if direction != "ASC" && direction != "DESC" {
		direction = "DESC"
	}

	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Player{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := db.Order(orderBy + " " + direction).
		Order("id " + direction).
		Offset(offset).
		Limit(pageSize).
		Find(&players).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedPlayersResponse{
		Data:       players,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// ClearRoster deletes every player. It waits for a running bracket generation.
func (s *PlayerService) ClearRoster(ctx context.Context) error {
	if err := s.engine.ClearRoster(ctx); err != nil {
		return err
	}
	s.logger.Info("roster cleared")
	return nil
}
