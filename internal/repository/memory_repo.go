package repository

import (
	"context"
	"sync"

	"github.com/silvastudio/intake-go-api/internal/dto"
	"github.com/silvastudio/intake-go-api/internal/models"
)

// MemoryContactRepository keeps contact submissions for the lifetime of the
// process. Fiber handles requests on multiple goroutines, so the
// insert-and-assign-id sequence is guarded by a mutex to keep ids unique and
// timestamps aligned with insertion order.
type MemoryContactRepository struct {
	mu    sync.Mutex
	items []models.ContactSubmission
}

// NewMemoryContactRepository constructs an empty in-memory store.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

func (r *MemoryContactRepository) Create(_ context.Context, input dto.ContactInput) (models.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	submission := newContactSubmission(input)
	r.items = append(r.items, submission)
	return submission, nil
}

// List returns a fresh snapshot in insertion order. Callers can hold the
// slice without observing later writes.
func (r *MemoryContactRepository) List(_ context.Context) ([]models.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.ContactSubmission, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryContactRepository) ListByCategory(_ context.Context, category string) ([]models.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.ContactSubmission, 0, len(r.items))
	for _, item := range r.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

// MemoryBookingRepository keeps booking submissions in process memory.
type MemoryBookingRepository struct {
	mu    sync.Mutex
	items []models.BookingSubmission
}

// NewMemoryBookingRepository constructs an empty in-memory store.
func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

func (r *MemoryBookingRepository) Create(_ context.Context, input dto.BookingInput) (models.BookingSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	submission := newBookingSubmission(input)
	r.items = append(r.items, submission)
	return submission, nil
}

func (r *MemoryBookingRepository) List(_ context.Context) ([]models.BookingSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.BookingSubmission, len(r.items))
	copy(out, r.items)
	return out, nil
}
