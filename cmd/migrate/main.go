package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"bab-insa-tournament/config"
	"bab-insa-tournament/migrations"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := config.NewLogger(cfg)
	defer logger.Sync()

	db, err := config.ConnectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	migrator, err := migrations.NewDefaultMigrator(db, logger)
	if err != nil {
		logger.Fatal("migrator setup failed", zap.Error(err))
	}

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		if err := migrator.Migrate(); err != nil {
			logger.Fatal("migration failed", zap.Error(err))
		}
	case "rollback":
		steps := 1
		if len(os.Args) > 2 {
			if s, err := strconv.Atoi(os.Args[2]); err == nil {
				steps = s
			}
		}
		if err := migrator.Rollback(steps); err != nil {
			logger.Fatal("rollback failed", zap.Error(err))
		}
	case "status":
		if err := showStatus(migrator); err != nil {
			logger.Fatal("status failed", zap.Error(err))
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migrate migrate          - Run pending migrations")
	fmt.Println("  go run ./cmd/migrate rollback [steps] - Rollback migrations (default: 1)")
	fmt.Println("  go run ./cmd/migrate status           - Show migration status")
}

func showStatus(migrator *migrations.Migrator) error {
	applied, err := migrator.Status()
	if err != nil {
		return err
	}
	pending, err := migrator.Pending()
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		fmt.Println("No migrations have been run yet.")
	} else {
		fmt.Println("Migration Status:")
		fmt.Println("Batch | Name")
		fmt.Println("------|-----")
		for _, migration := range applied {
			fmt.Printf("%-5d | %s\n", migration.Batch, migration.Name)
		}
	}

	for _, name := range pending {
		fmt.Printf("pending | %s\n", name)
	}
	return nil
}
