package migrations

import (
	"bab-insa-tournament/packages/core/models"

	"gorm.io/gorm"
)

// Migrations go through gorm's Migrator so the same definitions run on
// postgres in production and sqlite in tests.
func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_01_000000_create_players_table",
			Up: func(db *gorm.DB) error {
				if db.Migrator().HasTable(&models.Player{}) {
					return nil
				}
				return db.Migrator().CreateTable(&models.Player{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable("players")
			},
		},
		{
			Name: "2025_01_02_000000_create_bracket_tables",
			Up: func(db *gorm.DB) error {
				if !db.Migrator().HasTable(&models.Match{}) {
					if err := db.Migrator().CreateTable(&models.Match{}); err != nil {
						return err
					}
				}
				if !db.Migrator().HasTable(&models.Game{}) {
					if err := db.Migrator().CreateTable(&models.Game{}); err != nil {
						return err
					}
				}
				return nil
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable("bracket_games", "bracket_matches")
			},
		},
		{
			Name: "2025_01_03_000000_add_players_stats_indexes",
			Up: func(db *gorm.DB) error {
				return db.Exec("CREATE INDEX IF NOT EXISTS idx_players_total_points ON players(total_points)").Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP INDEX IF EXISTS idx_players_total_points").Error
			},
		},
	}
}

func GetAllMigrations() []MigrationDefinition {
	return GetCoreMigrations()
}
