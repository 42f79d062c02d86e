package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bab-insa-tournament/packages/core/bracket"
	"bab-insa-tournament/packages/core/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BracketRepository persists the bracket in the bracket_matches and
// bracket_games tables. It implements bracket.Store.
type BracketRepository struct {
	db *gorm.DB
}

var _ bracket.Store = (*BracketRepository)(nil)

func NewBracketRepository(db *gorm.DB) *BracketRepository {
	return &BracketRepository{
		db: db,
	}
}

func (r *BracketRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Game{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Match{}).Error
	})
}

func (r *BracketRepository) InsertMany(ctx context.Context, matches []models.Match) error {
	if len(matches) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&matches).Error
	})
}

func (r *BracketRepository) List(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match

	result := r.db.WithContext(ctx).
		Preload("Games", orderGames).
		Order("position ASC, match_number ASC").
		Find(&matches)
	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}

func (r *BracketRepository) FindByNumber(ctx context.Context, matchNumber int) (*models.Match, error) {
	return findMatch(r.db.WithContext(ctx), matchNumber)
}

func (r *BracketRepository) DeleteByNumber(ctx context.Context, matchNumber int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		match, err := lockMatch(tx, matchNumber)
		if err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", match.ID).Delete(&models.Game{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Match{}, match.ID).Error
	})
}

// UpdateByNumber deletes the games named in unset, then upserts every game in
// set on (match_id, label).
func (r *BracketRepository) UpdateByNumber(ctx context.Context, matchNumber int, unset []string, set []models.Game) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		match, err := lockMatch(tx, matchNumber)
		if err != nil {
			return err
		}

		if len(unset) > 0 {
			if err := tx.Where("match_id = ? AND label IN ?", match.ID, unset).Delete(&models.Game{}).Error; err != nil {
				return fmt.Errorf("unset games: %w", err)
			}
		}

		for _, g := range set {
			g.ID = 0
			g.MatchID = match.ID
			g.CreatedAt, g.UpdatedAt = time.Time{}, time.Time{}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "match_id"}, {Name: "label"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"team1_player1", "team1_player2", "team2_player1", "team2_player2", "updated_at",
				}),
			}).Create(&g).Error
			if err != nil {
				return fmt.Errorf("set game %q: %w", g.Label, err)
			}
		}

		return tx.Model(match).Update("updated_at", tx.NowFunc()).Error
	})
}

func orderGames(db *gorm.DB) *gorm.DB {
	return db.Order("label ASC")
}

func findMatch(db *gorm.DB, matchNumber int) (*models.Match, error) {
	var match models.Match

	result := db.Preload("Games", orderGames).
		Where("match_number = ?", matchNumber).
		First(&match)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, bracket.ErrMatchNotFound
		}
		return nil, result.Error
	}

	return &match, nil
}

// lockMatch loads the match row with SELECT ... FOR UPDATE where the dialect
// supports row locks. sqlite serializes writers on its own.
func lockMatch(tx *gorm.DB, matchNumber int) (*models.Match, error) {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var match models.Match
	if err := q.Where("match_number = ?", matchNumber).First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bracket.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}
