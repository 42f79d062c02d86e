package models

import (
	"time"
)

type Player struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Wins        int       `gorm:"not null;default:0" json:"wins"`
	Losses      int       `gorm:"not null;default:0" json:"losses"`
	TotalPoints int       `gorm:"not null;default:0" json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Player) TableName() string {
	return "players"
}

type PaginatedPlayersResponse struct {
	Data       []Player `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}

type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateScoreRequest records one game outcome. Result is optional so that
// points can be adjusted without touching the win/loss record.
type UpdateScoreRequest struct {
	Result string `json:"result" binding:"omitempty,oneof=win loss"`
	Points int    `json:"points"`
}

// PlayerNames returns the display names of players in roster order.
func PlayerNames(players []Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names
}
