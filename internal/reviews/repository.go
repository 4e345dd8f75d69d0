package reviews

import (
	"context"

	"gorm.io/gorm"

	"github.com/themosthappypiano/thewoofingoven/pkg/db/models"
)

// Repository reads storefront reviews.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every review, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Review, error) {
	var rows []models.Review
	err := r.db.WithContext(ctx).Order("id DESC").Find(&rows).Error
	return rows, err
}
