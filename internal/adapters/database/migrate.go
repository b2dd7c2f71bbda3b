package database

import (
	"fmt"

	"devconnect-service/internal/models"

	"gorm.io/gorm"
)

// Migrate runs schema migrations for all persistent models.
func Migrate(db *gorm.DB) error {
	modelsToMigrate := []interface{}{
		&models.User{},
		&models.ConnectionRequest{},
	}

	for _, model := range modelsToMigrate {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model: %w", err)
		}
	}

	return nil
}
