package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/silvastudio/intake-go-api/internal/dto"
	"github.com/silvastudio/intake-go-api/internal/models"
)

// BookingRepository persists lesson booking requests, append-only.
type BookingRepository interface {
	Create(ctx context.Context, input dto.BookingInput) (models.BookingSubmission, error)
	List(ctx context.Context) ([]models.BookingSubmission, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository constructs a repository backed by GORM.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, input dto.BookingInput) (models.BookingSubmission, error) {
	submission := newBookingSubmission(input)
	if err := r.db.WithContext(ctx).Create(&submission).Error; err != nil {
		return models.BookingSubmission{}, err
	}
	return submission, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]models.BookingSubmission, error) {
	var submissions []models.BookingSubmission
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&submissions).
		Error
	return submissions, err
}

func newBookingSubmission(input dto.BookingInput) models.BookingSubmission {
	consent := false
	if input.SMSConsent != nil {
		consent = *input.SMSConsent
	}

	return models.BookingSubmission{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Program:      input.Program,
		Goals:        input.Goals,
		Availability: input.Availability,
		SMSConsent:   consent,
		CreatedAt:    time.Now().UTC(),
	}
}
