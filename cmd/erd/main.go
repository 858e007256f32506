package main

import (
	"fmt"

	"go.uber.org/zap"

	"instaschema/internal/database"
	"instaschema/internal/diagram"
	"instaschema/pkg/config"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Connect to the storage engine and create the tables if absent
	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}

	// Render the ERD next to the database file
	if err := diagram.Render(diagram.Build(), cfg.DiagramPath); err != nil {
		logger.Fatal("failed to render diagram", zap.Error(err))
	}

	fmt.Println("Tables created and 'diagram.png' generated.")
}
