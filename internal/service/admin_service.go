package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/silvastudio/intake-go-api/internal/models"
	"github.com/silvastudio/intake-go-api/internal/repository"
)

// AdminService exposes read access to stored submissions for review.
type AdminService interface {
	ListContacts(ctx context.Context, category string) ([]models.ContactSubmission, error)
	ListBookings(ctx context.Context) ([]models.BookingSubmission, error)
}

type adminService struct {
	contacts repository.ContactRepository
	bookings repository.BookingRepository
	logger   zerolog.Logger
}

// NewAdminService constructs the admin review service.
func NewAdminService(contacts repository.ContactRepository, bookings repository.BookingRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		contacts: contacts,
		bookings: bookings,
		logger:   logger.With().Str("component", "admin_service").Logger(),
	}
}

// ListContacts returns contact submissions in acceptance order, optionally
// filtered to a single category.
func (s *adminService) ListContacts(ctx context.Context, category string) ([]models.ContactSubmission, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return s.contacts.List(ctx)
	}
	return s.contacts.ListByCategory(ctx, category)
}

func (s *adminService) ListBookings(ctx context.Context) ([]models.BookingSubmission, error) {
	return s.bookings.List(ctx)
}
