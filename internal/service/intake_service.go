package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/silvastudio/intake-go-api/internal/dto"
	"github.com/silvastudio/intake-go-api/internal/models"
	"github.com/silvastudio/intake-go-api/internal/notify"
	"github.com/silvastudio/intake-go-api/internal/observability"
	"github.com/silvastudio/intake-go-api/internal/repository"
	"github.com/silvastudio/intake-go-api/internal/validate"
)

const notifyTimeout = 10 * time.Second

// IntakeService runs the submission workflow: validate the raw body, persist
// the typed submission, then hand a notification to the external channel
// without blocking the caller on its outcome.
type IntakeService interface {
	SubmitContact(ctx context.Context, raw map[string]any) (dto.SubmissionAck, []dto.FieldError, error)
	SubmitBooking(ctx context.Context, raw map[string]any) (dto.SubmissionAck, []dto.FieldError, error)
}

type intakeService struct {
	contacts  repository.ContactRepository
	bookings  repository.BookingRepository
	validator *validate.Validator
	notifier  notify.Notifier
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewIntakeService constructs the submission intake service.
func NewIntakeService(
	contacts repository.ContactRepository,
	bookings repository.BookingRepository,
	validator *validate.Validator,
	notifier notify.Notifier,
	logger zerolog.Logger,
) IntakeService {
	return &intakeService{
		contacts:  contacts,
		bookings:  bookings,
		validator: validator,
		notifier:  notifier,
		logger:    logger.With().Str("component", "intake_service").Logger(),
		tracer:    otel.Tracer("github.com/silvastudio/intake-go-api/internal/service/intake"),
	}
}

func (s *intakeService) SubmitContact(ctx context.Context, raw map[string]any) (dto.SubmissionAck, []dto.FieldError, error) {
	ctx, span := s.tracer.Start(ctx, "intake.submit_contact")
	defer span.End()

	input, fieldErrs := s.validator.Contact(raw)
	if len(fieldErrs) > 0 {
		span.SetStatus(codes.Error, "validation failed")
		span.SetAttributes(attribute.Int("intake.failed_fields", len(fieldErrs)))
		observability.Submissions().WithLabelValues(notify.KindContact, "rejected").Inc()
		return dto.SubmissionAck{}, fieldErrs, nil
	}

	submission, err := s.contacts.Create(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		observability.Submissions().WithLabelValues(notify.KindContact, "error").Inc()
		return dto.SubmissionAck{}, nil, err
	}

	span.SetAttributes(attribute.String("intake.submission_id", submission.ID))
	observability.Submissions().WithLabelValues(notify.KindContact, "accepted").Inc()
	s.logger.Info().
		Str("submission_id", submission.ID).
		Str("category", submission.Category).
		Msg("contact submission stored")

	go s.dispatch(contactEvent(submission))

	return dto.SubmissionAck{ID: submission.ID}, nil, nil
}

func (s *intakeService) SubmitBooking(ctx context.Context, raw map[string]any) (dto.SubmissionAck, []dto.FieldError, error) {
	ctx, span := s.tracer.Start(ctx, "intake.submit_booking")
	defer span.End()

	input, fieldErrs := s.validator.Booking(raw)
	if len(fieldErrs) > 0 {
		span.SetStatus(codes.Error, "validation failed")
		span.SetAttributes(attribute.Int("intake.failed_fields", len(fieldErrs)))
		observability.Submissions().WithLabelValues(notify.KindBooking, "rejected").Inc()
		return dto.SubmissionAck{}, fieldErrs, nil
	}

	submission, err := s.bookings.Create(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		observability.Submissions().WithLabelValues(notify.KindBooking, "error").Inc()
		return dto.SubmissionAck{}, nil, err
	}

	span.SetAttributes(attribute.String("intake.submission_id", submission.ID))
	observability.Submissions().WithLabelValues(notify.KindBooking, "accepted").Inc()
	s.logger.Info().
		Str("submission_id", submission.ID).
		Str("program", submission.Program).
		Msg("booking submission stored")

	go s.dispatch(bookingEvent(submission))

	return dto.SubmissionAck{ID: submission.ID}, nil, nil
}

// dispatch runs on its own goroutine with a detached context: the HTTP
// response must not wait on, or fail because of, the notification channel.
func (s *intakeService) dispatch(event notify.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Warn().
			Err(err).
			Str("kind", event.Kind).
			Str("submission_id", event.SubmissionID).
			Msg("notification dispatch failed")
	}
}

func contactEvent(submission models.ContactSubmission) notify.Event {
	return notify.Event{
		Kind:         notify.KindContact,
		SubmissionID: submission.ID,
		Name:         submission.Name,
		Email:        submission.Email,
		Phone:        submission.Phone,
		Summary:      submission.Message,
		SMSConsent:   submission.SMSConsent,
		CreatedAt:    submission.CreatedAt,
	}
}

func bookingEvent(submission models.BookingSubmission) notify.Event {
	return notify.Event{
		Kind:         notify.KindBooking,
		SubmissionID: submission.ID,
		Name:         submission.Name,
		Email:        submission.Email,
		Phone:        submission.Phone,
		Program:      submission.Program,
		Summary:      submission.Goals,
		SMSConsent:   submission.SMSConsent,
		CreatedAt:    submission.CreatedAt,
	}
}
