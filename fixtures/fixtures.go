package fixtures

import (
	"context"
	"fmt"
	"math/rand/v2"

	"bab-insa-tournament/packages/core/bracket"
	"bab-insa-tournament/packages/core/models"

	petname "github.com/dustinkirkland/golang-petname"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultPlayers = 12

type Fixtures struct {
	db     *gorm.DB
	engine *bracket.Engine
	logger *zap.Logger
}

func NewFixtures(db *gorm.DB, engine *bracket.Engine, logger *zap.Logger) *Fixtures {
	return &Fixtures{db: db, engine: engine, logger: logger}
}

// GenerateTestData registers n players with generated names and stats, then
// builds a bracket from them.
func (f *Fixtures) GenerateTestData(ctx context.Context, n int) error {
	f.logger.Info("starting fixtures generation", zap.Int("players", n))

	players, err := f.generatePlayers(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	result, err := f.engine.Generate(ctx, players, nil)
	if err != nil {
		return fmt.Errorf("failed to generate bracket: %w", err)
	}

	f.logger.Info("fixtures generated",
		zap.Int("players", len(players)),
		zap.Int("teams", result.NbTeams),
		zap.Int("matches", len(result.Matches)),
		zap.Int("stranded_teams", len(result.Stranded)))
	return nil
}

func (f *Fixtures) generatePlayers(ctx context.Context, n int) ([]models.Player, error) {
	seen := make(map[string]bool, n)
	players := make([]models.Player, 0, n)

	for len(players) < n {
		name := petname.Generate(2, "-")
		if seen[name] {
			continue
		}
		seen[name] = true

		wins := rand.IntN(10)   // #nosec G404
		losses := rand.IntN(10) // #nosec G404
		players = append(players, models.Player{
			Name:        name,
			Wins:        wins,
			Losses:      losses,
			TotalPoints: wins*10 + rand.IntN(50), // #nosec G404
		})
	}

	if err := f.db.WithContext(ctx).Create(&players).Error; err != nil {
		return nil, err
	}

	for _, p := range players {
		f.logger.Debug("created player", zap.Uint("id", p.ID), zap.String("name", p.Name))
	}
	return players, nil
}

// ClearAllData deletes the bracket and then the roster.
func (f *Fixtures) ClearAllData(ctx context.Context) error {
	f.logger.Info("clearing all fixture data")

	if err := f.engine.ClearBracket(ctx); err != nil {
		return fmt.Errorf("failed to clear bracket: %w", err)
	}
	if err := f.engine.ClearRoster(ctx); err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}

	// Sequences only exist on postgres.
	if f.db.Dialector.Name() == "postgres" {
		sequences := []string{
			"ALTER SEQUENCE players_id_seq RESTART WITH 1",
			"ALTER SEQUENCE bracket_matches_id_seq RESTART WITH 1",
			"ALTER SEQUENCE bracket_games_id_seq RESTART WITH 1",
		}
		for _, seq := range sequences {
			if err := f.db.WithContext(ctx).Exec(seq).Error; err != nil {
				f.logger.Warn("failed to reset sequence", zap.String("statement", seq), zap.Error(err))
			}
		}
	}

	f.logger.Info("all fixture data cleared")
	return nil
}
