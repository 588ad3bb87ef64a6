package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/silvastudio/intake-go-api/internal/dto"
)

func reasonFor(t *testing.T, errs []dto.FieldError, field string) string {
	t.Helper()
	for _, fe := range errs {
		if fe.Field == field {
			return fe.Reason
		}
	}
	t.Fatalf("no error reported for field %q: %v", field, errs)
	return ""
}

func TestContactValidEchoesTrimmedFields(t *testing.T) {
	v := New()

	input, errs := v.Contact(map[string]any{
		"name":    "  Jane Doe  ",
		"email":   "jane@example.com",
		"phone":   "555-0100",
		"message": " Hi ",
	})

	require.Empty(t, errs)
	require.Equal(t, "Jane Doe", input.Name)
	require.Equal(t, "jane@example.com", input.Email)
	require.Equal(t, "555-0100", input.Phone)
	require.Equal(t, "Hi", input.Message)
	require.Equal(t, "general", input.Category)
	require.False(t, input.SMSConsent)
}

func TestContactMissingEmailReportedAsRequired(t *testing.T) {
	v := New()

	cases := []map[string]any{
		{},
		{"name": "Jane"},
		{"name": "Jane", "message": "hello", "phone": "555-0100"},
	}

	for _, raw := range cases {
		_, errs := v.Contact(raw)
		require.Equal(t, dto.ReasonRequired, reasonFor(t, errs, "email"))
	}
}

func TestContactEmailFormat(t *testing.T) {
	v := New()

	_, errs := v.Contact(map[string]any{"name": "Jane", "email": "not-an-address"})
	require.Equal(t, dto.ReasonFormat, reasonFor(t, errs, "email"))
}

func TestContactReportsAllFailingFieldsAtOnce(t *testing.T) {
	v := New()

	_, errs := v.Contact(map[string]any{"name": "", "email": "bad-email"})
	require.Len(t, errs, 2)
	require.Equal(t, dto.ReasonRequired, reasonFor(t, errs, "name"))
	require.Equal(t, dto.ReasonFormat, reasonFor(t, errs, "email"))
}

func TestContactUnknownFieldsIgnored(t *testing.T) {
	v := New()

	_, errs := v.Contact(map[string]any{
		"name":       "Jane",
		"email":      "jane@example.com",
		"newsletter": true,
		"utm_source": "instagram",
	})
	require.Empty(t, errs)
}

func TestContactWrongTypeIsFieldFailureNotPanic(t *testing.T) {
	v := New()

	_, errs := v.Contact(map[string]any{"name": "Jane", "email": 42})
	require.Len(t, errs, 1)
	require.Equal(t, dto.ReasonInvalid, reasonFor(t, errs, "email"))
}

func TestContactSanitizesMessageMarkup(t *testing.T) {
	v := New()

	input, errs := v.Contact(map[string]any{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": `<script>alert("hi")</script>see you on the mats`,
	})
	require.Empty(t, errs)
	require.Equal(t, "see you on the mats", input.Message)
}

func TestBookingValid(t *testing.T) {
	v := New()

	input, errs := v.Booking(map[string]any{
		"name":       "Sam",
		"email":      "sam@x.com",
		"phone":      "555-0100",
		"program":    "adult-trial",
		"smsConsent": false,
	})

	require.Empty(t, errs)
	require.Equal(t, "adult-trial", input.Program)
	require.NotNil(t, input.SMSConsent)
	require.False(t, *input.SMSConsent)
}

func TestBookingMissingConsentIsRequired(t *testing.T) {
	v := New()

	_, errs := v.Booking(map[string]any{
		"name":    "Sam",
		"email":   "sam@x.com",
		"phone":   "555-0100",
		"program": "adult-trial",
	})
	require.Equal(t, dto.ReasonRequired, reasonFor(t, errs, "smsConsent"))
}

func TestBookingConsentWrongTypeReportedOnce(t *testing.T) {
	v := New()

	_, errs := v.Booking(map[string]any{
		"name":       "Sam",
		"email":      "sam@x.com",
		"phone":      "555-0100",
		"program":    "adult-trial",
		"smsConsent": "yes",
	})
	require.Len(t, errs, 1)
	require.Equal(t, dto.ReasonInvalid, reasonFor(t, errs, "smsConsent"))
}

func TestBookingRequiredFields(t *testing.T) {
	v := New()

	_, errs := v.Booking(map[string]any{"smsConsent": true})
	require.Len(t, errs, 4)
	for _, field := range []string{"name", "email", "phone", "program"} {
		require.Equal(t, dto.ReasonRequired, reasonFor(t, errs, field))
	}
}
