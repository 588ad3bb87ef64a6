package dto

// Validation failure reasons surfaced to clients, one per failing field.
const (
	ReasonRequired = "required"
	ReasonFormat   = "format"
	ReasonInvalid  = "invalid"
)

// FieldError describes a single failed validation check.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ContactInput is the normalized, fully-typed payload of a contact form
// submission after the validator has narrowed the raw request body.
type ContactInput struct {
	Category   string `json:"category" validate:"omitempty,max=64"`
	Name       string `json:"name" validate:"required,max=160"`
	Email      string `json:"email" validate:"required,email,max=160"`
	Phone      string `json:"phone" validate:"omitempty,max=32"`
	Message    string `json:"message" validate:"omitempty,max=4000"`
	SMSConsent bool   `json:"smsConsent"`
}

// BookingInput is the normalized payload of a lesson booking request.
// SMSConsent is a pointer because the field is mandatory with no default:
// a missing value must be reported as a validation failure, not coerced.
type BookingInput struct {
	Name         string `json:"name" validate:"required,max=160"`
	Email        string `json:"email" validate:"required,email,max=160"`
	Phone        string `json:"phone" validate:"required,max=32"`
	Program      string `json:"program" validate:"required,max=120"`
	Goals        string `json:"goals" validate:"omitempty,max=2000"`
	Availability string `json:"availability" validate:"omitempty,max=2000"`
	SMSConsent   *bool  `json:"smsConsent" validate:"required"`
}

// SubmissionAck acknowledges an accepted submission.
type SubmissionAck struct {
	ID string `json:"id"`
}
