package migrations

import (
	"gorm.io/gorm"

	"veriplot-server/models"
)

// Migrate brings the schema up to date for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Receipt{},
		&models.Commission{},
		&models.Referral{},
	)
}
