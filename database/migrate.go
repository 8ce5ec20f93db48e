package database

import (
	"fmt"

	"clubsphere_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate migrates all models and creates the uniqueness guards that
// gorm tags cannot express.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Club{},
		&models.Event{},
		&models.Membership{},
		&models.EventRegistration{},
		&models.Payment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}

	// One active membership per user and club. Expired rows do not block a
	// renewal, so the index is partial and cannot be declared via gorm tags.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_memberships_active_user_club
		ON memberships (user_email, club_id)
		WHERE status = 'active'
	`).Error
	if err != nil {
		return fmt.Errorf("failed to create active membership index: %w", err)
	}

	return nil
}
