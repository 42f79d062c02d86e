package bracket

import (
	"context"
	"errors"

	"bab-insa-tournament/packages/core/models"
)

var ErrMatchNotFound = errors.New("match not found")

// Store persists the bracket. Matches are addressed by their match number.
type Store interface {
	Clear(ctx context.Context) error
	InsertMany(ctx context.Context, matches []models.Match) error
	// List returns the bracket in display order.
	List(ctx context.Context) ([]models.Match, error)
	// FindByNumber returns ErrMatchNotFound when no match has that number.
	FindByNumber(ctx context.Context, matchNumber int) (*models.Match, error)
	DeleteByNumber(ctx context.Context, matchNumber int) error
	// UpdateByNumber removes the games named in unset and writes the games in
	// set, leaving any other game of the match as it is.
	UpdateByNumber(ctx context.Context, matchNumber int, unset []string, set []models.Game) error
}

// Roster is the player source of a generation.
type Roster interface {
	// ListAll returns every registered player in registration order.
	ListAll(ctx context.Context) ([]models.Player, error)
	DeleteAll(ctx context.Context) error
}
