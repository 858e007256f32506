package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"instaschema/internal/models"
	"instaschema/pkg/config"
)

// Open connects to the configured storage engine: a local SQLite file by
// default, or PostgreSQL when DATABASE_URL is set. SQLite needs the
// foreign_keys pragma or FK and cascade rules are silently ignored.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		dsn := fmt.Sprintf("file:%s?_foreign_keys=on", cfg.DatabasePath)
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the five schema tables if they are absent. It is
// idempotent; running it against an up-to-date database changes nothing.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Follower{},
		&models.Post{},
		&models.Comment{},
		&models.Media{},
	)
}

// Close closes the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
