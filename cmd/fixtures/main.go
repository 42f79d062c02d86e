package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"bab-insa-tournament/config"
	"bab-insa-tournament/fixtures"
	"bab-insa-tournament/packages/core/bracket"
	"bab-insa-tournament/packages/core/repositories"

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

	engine := bracket.NewEngine(
		repositories.NewBracketRepository(db),
		repositories.NewPlayerRepository(db),
		bracket.WithLogger(logger.Named("bracket")),
	)
	fixtureManager := fixtures.NewFixtures(db, engine, logger)
	ctx := context.Background()

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]
	count := fixtures.DefaultPlayers
	if len(os.Args) > 2 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil && n > 0 {
			count = n
		}
	}

	switch command {
	case "generate":
		if err := fixtureManager.GenerateTestData(ctx, count); err != nil {
			logger.Fatal("failed to generate fixtures", zap.Error(err))
		}
		fmt.Println("✅ Fixtures generated successfully!")
	case "clear":
		if err := fixtureManager.ClearAllData(ctx); err != nil {
			logger.Fatal("failed to clear fixtures", zap.Error(err))
		}
		fmt.Println("✅ All fixture data cleared!")
	case "regenerate":
		fmt.Println("Clearing existing data...")
		if err := fixtureManager.ClearAllData(ctx); err != nil {
			logger.Fatal("failed to clear fixtures", zap.Error(err))
		}
		fmt.Println("Generating new fixtures...")
		if err := fixtureManager.GenerateTestData(ctx, count); err != nil {
			logger.Fatal("failed to generate fixtures", zap.Error(err))
		}
		fmt.Println("✅ Fixtures regenerated successfully!")
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures generate [n]    - Register n players (default: 12) and build a bracket")
	fmt.Println("  go run ./cmd/fixtures clear           - Clear the bracket and the roster")
	fmt.Println("  go run ./cmd/fixtures regenerate [n]  - Clear and regenerate all data")
}
