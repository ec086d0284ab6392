package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/regsvc/internal/infrastructure/repositories"
)

// Open creates a new database connection
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates the registrations table and its indexes. The
// email/phone/created_at indexes serve the dedup query and the
// createdAt sort; none of them is unique on purpose.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBRegistration{}); err != nil {
		return fmt.Errorf("failed to migrate registrations table: %w", err)
	}
	return nil
}
