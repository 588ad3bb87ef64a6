package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/silvastudio/intake-go-api/internal/dto"
	"github.com/silvastudio/intake-go-api/internal/models"
)

// Validator narrows raw, untyped request bodies into typed submission inputs.
// It is the sole authority on what a valid submission looks like: all fields
// are checked in one pass and every failing field is reported, so a form UI
// can highlight each invalid input at once.
type Validator struct {
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
}

// New constructs a Validator. Field names in reported errors follow the JSON
// wire names of the input structs.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate:  v,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Contact validates a raw contact form body. Unknown fields are ignored. The
// returned error list is nil when the input is acceptable.
func (v *Validator) Contact(raw map[string]any) (dto.ContactInput, []dto.FieldError) {
	fields := newFieldSet()

	input := dto.ContactInput{
		Category: fields.text(raw, "category"),
		Name:     fields.text(raw, "name"),
		Email:    fields.text(raw, "email"),
		Phone:    fields.text(raw, "phone"),
		Message:  v.sanitizeText(fields.text(raw, "message")),
	}
	if consent, ok := fields.boolean(raw, "smsConsent"); ok {
		input.SMSConsent = consent
	}
	if input.Category == "" {
		input.Category = models.CategoryGeneral
	}

	v.checkStruct(input, fields)
	return input, fields.errs
}

// Booking validates a raw lesson booking body. smsConsent is mandatory here:
// an absent value is a validation failure rather than a default.
func (v *Validator) Booking(raw map[string]any) (dto.BookingInput, []dto.FieldError) {
	fields := newFieldSet()

	input := dto.BookingInput{
		Name:         fields.text(raw, "name"),
		Email:        fields.text(raw, "email"),
		Phone:        fields.text(raw, "phone"),
		Program:      fields.text(raw, "program"),
		Goals:        v.sanitizeText(fields.text(raw, "goals")),
		Availability: v.sanitizeText(fields.text(raw, "availability")),
	}
	if consent, ok := fields.boolean(raw, "smsConsent"); ok {
		input.SMSConsent = &consent
	}

	v.checkStruct(input, fields)
	return input, fields.errs
}

func (v *Validator) sanitizeText(value string) string {
	return strings.TrimSpace(v.sanitizer.Sanitize(value))
}

// checkStruct runs tag validation and folds the results into the field set.
// Fields that already failed type narrowing are skipped so a single field
// never reports twice.
func (v *Validator) checkStruct(input any, fields *fieldSet) {
	err := v.validate.Struct(input)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields.add("", dto.ReasonInvalid)
		return
	}

	for _, fe := range verrs {
		fields.add(fe.Field(), reasonForTag(fe.Tag()))
	}
}

func reasonForTag(tag string) string {
	if tag == "required" {
		return dto.ReasonRequired
	}
	return dto.ReasonFormat
}

// fieldSet accumulates per-field failures and remembers which fields have
// already been reported.
type fieldSet struct {
	errs []dto.FieldError
	seen map[string]bool
}

func newFieldSet() *fieldSet {
	return &fieldSet{seen: make(map[string]bool)}
}

func (f *fieldSet) add(field, reason string) {
	if f.seen[field] {
		return
	}
	f.seen[field] = true
	f.errs = append(f.errs, dto.FieldError{Field: field, Reason: reason})
}

// text extracts a trimmed string field from the raw body. A present value of
// the wrong JSON type is a per-field failure, never a panic.
func (f *fieldSet) text(raw map[string]any, key string) string {
	value, ok := raw[key]
	if !ok || value == nil {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		f.add(key, dto.ReasonInvalid)
		return ""
	}
	return strings.TrimSpace(s)
}

// boolean extracts a bool field. The second return reports presence so
// callers can distinguish "absent" from "false".
func (f *fieldSet) boolean(raw map[string]any, key string) (bool, bool) {
	value, ok := raw[key]
	if !ok || value == nil {
		return false, false
	}
	b, ok := value.(bool)
	if !ok {
		f.add(key, dto.ReasonInvalid)
		return false, false
	}
	return b, true
}
