package utils

import (
	"fmt"

	"project/backend/config"
	"project/backend/gateway"
	"project/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection and migrates the schema. Returns
// gateway.ErrNotConfigured when no database host was provided, so the caller
// can degrade to the in-memory store instead of crashing.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	if !cfg.DatabaseConfigured() {
		return nil, gateway.ErrNotConfigured
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the gateway relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProgress{},
		&models.TestResult{},
		&models.Certificate{},
		&models.OTPCode{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
