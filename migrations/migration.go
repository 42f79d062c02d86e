package migrations

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type MigrationFunc func(*gorm.DB) error

type MigrationDefinition struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

type Migrator struct {
	db         *gorm.DB
	logger     *zap.Logger
	migrations []MigrationDefinition
}

func NewMigrator(db *gorm.DB, logger *zap.Logger) (*Migrator, error) {
	if err := db.AutoMigrate(&Migration{}); err != nil {
		return nil, fmt.Errorf("create migrations table: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Migrator{
		db:         db,
		logger:     logger,
		migrations: []MigrationDefinition{},
	}, nil
}

// NewDefaultMigrator returns a migrator loaded with every migration of the service.
func NewDefaultMigrator(db *gorm.DB, logger *zap.Logger) (*Migrator, error) {
	m, err := NewMigrator(db, logger)
	if err != nil {
		return nil, err
	}
	for _, migration := range GetAllMigrations() {
		m.AddMigration(migration)
	}
	return m, nil
}

func (m *Migrator) AddMigration(migration MigrationDefinition) {
	m.migrations = append(m.migrations, migration)
}

func (m *Migrator) Migrate() error {
	m.logger.Info("running database migrations")

	batch, err := m.getNextBatch()
	if err != nil {
		return err
	}

	applied := 0
	for _, migration := range m.migrations {
		ran, err := m.hasRun(migration.Name)
		if err != nil {
			return err
		}
		if ran {
			continue
		}

		m.logger.Info("migrating", zap.String("migration", migration.Name))

		err = m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return fmt.Errorf("migration %s failed: %w", migration.Name, err)
			}

			record := Migration{
				Name:  migration.Name,
				Batch: batch,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		applied++
		m.logger.Info("migrated", zap.String("migration", migration.Name))
	}

	m.logger.Info("migration completed", zap.Int("applied", applied), zap.Int("batch", batch))
	return nil
}

func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	m.logger.Info("rolling back migrations", zap.Int("steps", steps))

	batch, err := m.getLatestBatch()
	if err != nil {
		return err
	}

	for i := 0; i < steps && batch > 0; i++ {
		var toRollback []Migration
		if err := m.db.Where("batch = ?", batch).Order("id DESC").Find(&toRollback).Error; err != nil {
			return err
		}

		for _, record := range toRollback {
			migration := m.findMigration(record.Name)
			if migration == nil {
				return fmt.Errorf("migration definition not found: %s", record.Name)
			}

			if migration.Down == nil {
				return fmt.Errorf("rollback not defined for migration: %s", record.Name)
			}

			m.logger.Info("rolling back", zap.String("migration", record.Name))

			err := m.db.Transaction(func(tx *gorm.DB) error {
				if err := migration.Down(tx); err != nil {
					return fmt.Errorf("rollback failed for %s: %w", record.Name, err)
				}
				if err := tx.Delete(&record).Error; err != nil {
					return fmt.Errorf("failed to remove migration record %s: %w", record.Name, err)
				}
				return nil
			})
			if err != nil {
				return err
			}

			m.logger.Info("rolled back", zap.String("migration", record.Name))
		}

		batch--
	}

	m.logger.Info("rollback completed")
	return nil
}

// Status lists the applied migrations, oldest batch first.
func (m *Migrator) Status() ([]Migration, error) {
	var applied []Migration
	if err := m.db.Order("batch ASC, id ASC").Find(&applied).Error; err != nil {
		return nil, err
	}
	return applied, nil
}

// Pending lists the registered migrations that have not run yet.
func (m *Migrator) Pending() ([]string, error) {
	var pending []string
	for _, migration := range m.migrations {
		ran, err := m.hasRun(migration.Name)
		if err != nil {
			return nil, err
		}
		if !ran {
			pending = append(pending, migration.Name)
		}
	}
	return pending, nil
}

func (m *Migrator) hasRun(name string) (bool, error) {
	var count int64
	if err := m.db.Model(&Migration{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *Migrator) getNextBatch() (int, error) {
	latest, err := m.getLatestBatch()
	if err != nil {
		return 0, err
	}
	return latest + 1, nil
}

func (m *Migrator) getLatestBatch() (int, error) {
	var batch int
	if err := m.db.Model(&Migration{}).Select("COALESCE(MAX(batch), 0)").Scan(&batch).Error; err != nil {
		return 0, err
	}
	return batch, nil
}

func (m *Migrator) findMigration(name string) *MigrationDefinition {
	for i := range m.migrations {
		if m.migrations[i].Name == name {
			return &m.migrations[i]
		}
	}
	return nil
}
