package contact

import (
	"context"

	"gorm.io/gorm"

	"github.com/themosthappypiano/thewoofingoven/pkg/db/models"
)

// Message is the contact-form payload.
type Message struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Repository stores contact-form submissions.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists the submission and returns the stored row.
func (r *Repository) Create(ctx context.Context, msg Message) (*models.ContactMessage, error) {
	row := &models.ContactMessage{
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
