package catalog

import (
	"gorm.io/gorm"

	"github.com/themosthappypiano/thewoofingoven/pkg/db/models"
)

// AutoMigrate creates or updates every storefront table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.ProductVariant{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.ContactMessage{},
	)
}
