// main.go
package main

import (
	"context"
	"log"
	"os"

	"restaurant-reservation/cmd"
	"restaurant-reservation/internal/data/cachekey"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/internal/wire"
	"restaurant-reservation/pkg/cache"
	"restaurant-reservation/pkg/database"
	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Connect to database
	db, err := database.InitDB(ctx, config.Database, config.App.Name, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if config.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			logger.Fatal("Failed to apply schema", zap.Error(err))
		}
		logger.Info("Schema applied")
	}

	// Connect to cache
	store, err := cache.InitStore(ctx, config, logger)
	if err != nil {
		logger.Fatal("Failed to connect to cache", zap.Error(err))
	}
	defer store.Close()

	// go run . load-data users.json restaurants.json ...
	if len(os.Args) > 1 && os.Args[1] == "load-data" {
		keys := cachekey.New(config.Cache.Prefix)
		if err := cmd.LoadFixtures(ctx, db, store, keys, os.Args[2:], logger); err != nil {
			logger.Fatal("Failed to load fixtures", zap.Error(err))
		}
		return
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(db, repos, store, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
