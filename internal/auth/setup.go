package auth

import (
	"fmt"

	"github.com/agricare/agri-backend/internal/db"
	"gorm.io/gorm"
)

// Init ensures the app schema exists and migrates the users table.
func Init(database *gorm.DB) error {
	if err := db.EnsureSchema(database, "app_agri"); err != nil {
		return fmt.Errorf("ensure schema app_agri: %w", err)
	}
	if err := database.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("auto-migrate users: %w", err)
	}
	return nil
}
