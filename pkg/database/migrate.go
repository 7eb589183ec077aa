package database

import (
	"gorm.io/gorm"

	"github.com/plant-tracker/server/internal/models"
)

// Migrate creates or updates the schema for every registered model. Both
// cmd/migrate and the API startup path run this, so a fresh deployment
// serves requests without a separate migration step.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Plant{},
	)
}
