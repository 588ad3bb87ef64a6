package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/silvastudio/intake-go-api/internal/dto"
	"github.com/silvastudio/intake-go-api/internal/models"
)

func setupSubmissionTestDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()
	// A named shared-cache database keeps the schema visible across pooled
	// connections while staying private to the test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(entities...))
	return db
}

func TestContactRepositoryCreateAssignsIDAndPersists(t *testing.T) {
	db := setupSubmissionTestDB(t, &models.ContactSubmission{})
	repo := NewContactRepository(db)

	stored, err := repo.Create(context.Background(), dto.ContactInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hi",
	})
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)
	require.False(t, stored.CreatedAt.IsZero())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, stored.ID, items[0].ID)
	require.Equal(t, "Jane Doe", items[0].Name)
}

func TestContactRepositoryListByCategoryFilters(t *testing.T) {
	db := setupSubmissionTestDB(t, &models.ContactSubmission{})
	repo := NewContactRepository(db)

	_, err := repo.Create(context.Background(), dto.ContactInput{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), dto.ContactInput{Name: "B", Email: "b@x.com", Category: "press"})
	require.NoError(t, err)

	press, err := repo.ListByCategory(context.Background(), "press")
	require.NoError(t, err)
	require.Len(t, press, 1)
	require.Equal(t, "B", press[0].Name)

	general, err := repo.ListByCategory(context.Background(), models.CategoryGeneral)
	require.NoError(t, err)
	require.Len(t, general, 1)
	require.Equal(t, "A", general[0].Name)
}

func TestBookingRepositoryCreateAndList(t *testing.T) {
	db := setupSubmissionTestDB(t, &models.BookingSubmission{})
	repo := NewBookingRepository(db)

	consent := false
	stored, err := repo.Create(context.Background(), dto.BookingInput{
		Name:         "Sam",
		Email:        "sam@x.com",
		Phone:        "555-0100",
		Program:      "adult-trial",
		Goals:        "competition prep",
		Availability: "weekday evenings",
		SMSConsent:   &consent,
	})
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "adult-trial", items[0].Program)
	require.False(t, items[0].SMSConsent)
}

func TestContactRepositoryDuplicatePayloadsStoredTwice(t *testing.T) {
	db := setupSubmissionTestDB(t, &models.ContactSubmission{})
	repo := NewContactRepository(db)

	input := dto.ContactInput{Name: "Jane", Email: "jane@example.com", Message: "Hi"}
	first, err := repo.Create(context.Background(), input)
	require.NoError(t, err)
	second, err := repo.Create(context.Background(), input)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
}
