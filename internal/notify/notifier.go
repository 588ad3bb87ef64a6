// Package notify delivers best-effort alerts about accepted submissions to
// an external channel. Delivery is fire-and-forget: a failed notification is
// logged by the caller and never turns a stored submission into an error.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Submission kinds carried on notification events.
const (
	KindContact = "contact"
	KindBooking = "booking"
)

// Event is the channel-agnostic summary of an accepted submission.
type Event struct {
	Kind         string    `json:"kind"`
	SubmissionID string    `json:"submissionId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Program      string    `json:"program,omitempty"`
	Summary      string    `json:"summary,omitempty"`
	SMSConsent   bool      `json:"smsConsent"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Notifier delivers a submission event to an external collaborator.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// LogNotifier writes submission events to the structured log. It is the
// default channel when no provider is configured.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier constructs a logging notifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With().Str("component", "log_notifier").Logger()}
}

// Notify logs the event and reports success.
func (n *LogNotifier) Notify(_ context.Context, event Event) error {
	n.logger.Info().
		Str("kind", event.Kind).
		Str("submission_id", event.SubmissionID).
		Str("name", event.Name).
		Msg("new submission received")
	return nil
}

func subjectLine(event Event) string {
	if event.Kind == KindBooking {
		return fmt.Sprintf("New lesson booking request from %s", event.Name)
	}
	return fmt.Sprintf("New contact message from %s", event.Name)
}

func bodyText(event Event) string {
	body := fmt.Sprintf("Name: %s\nEmail: %s", event.Name, event.Email)
	if event.Phone != "" {
		body += fmt.Sprintf("\nPhone: %s", event.Phone)
	}
	if event.Program != "" {
		body += fmt.Sprintf("\nProgram: %s", event.Program)
	}
	if event.Summary != "" {
		body += fmt.Sprintf("\n\n%s", event.Summary)
	}
	body += fmt.Sprintf("\n\nReference: %s", event.SubmissionID)
	return body
}
