package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/silvastudio/intake-go-api/internal/dto"
	"github.com/silvastudio/intake-go-api/internal/models"
)

// ContactRepository persists contact form submissions. The store is
// append-only: submissions are never updated or deleted, and List returns
// them in acceptance order.
type ContactRepository interface {
	Create(ctx context.Context, input dto.ContactInput) (models.ContactSubmission, error)
	List(ctx context.Context) ([]models.ContactSubmission, error)
	ListByCategory(ctx context.Context, category string) ([]models.ContactSubmission, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository constructs a repository backed by GORM.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, input dto.ContactInput) (models.ContactSubmission, error) {
	submission := newContactSubmission(input)
	if err := r.db.WithContext(ctx).Create(&submission).Error; err != nil {
		return models.ContactSubmission{}, err
	}
	return submission, nil
}

func (r *contactRepository) List(ctx context.Context) ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&submissions).
		Error
	return submissions, err
}

func (r *contactRepository) ListByCategory(ctx context.Context, category string) ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at ASC").
		Find(&submissions).
		Error
	return submissions, err
}

func newContactSubmission(input dto.ContactInput) models.ContactSubmission {
	category := input.Category
	if category == "" {
		category = models.CategoryGeneral
	}

	return models.ContactSubmission{
		ID:         uuid.NewString(),
		Category:   category,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		SMSConsent: input.SMSConsent,
		CreatedAt:  time.Now().UTC(),
	}
}
