package validation

import (
	"errors"
	"testing"
	"time"

	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingLike struct {
	Name  string `json:"name" validate:"required,min=2,max=50"`
	Phone string `json:"phone" validate:"required,phone"`
	Email string `json:"email" validate:"required,email"`
	Date  string `json:"date" validate:"required,notpast"`
	Time  string `json:"time" validate:"required,hhmm"`
}

type priced struct {
	MinPrice float64 `json:"minPrice" validate:"gte=0"`
	MaxPrice float64 `json:"maxPrice" validate:"gtfield=MinPrice"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func freezeNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestTranslateAggregatesEveryField(t *testing.T) {
	freezeNow(t, time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC))
	v := newValidator(t)

	err := Translate(v.Struct(bookingLike{
		Name:  "A",
		Phone: "abc",
		Email: "not-an-email",
		Date:  "2026-05-09",
		Time:  "25:00",
	}))

	ve, ok := xerrors.AsValidation(err)
	require.True(t, ok)
	fields := map[string]string{}
	for _, f := range ve.Fields {
		fields[f.Field] = f.Message
	}
	assert.Len(t, fields, 5)
	assert.Equal(t, "must be at least 2 characters", fields["name"])
	assert.Equal(t, "must be a valid phone number", fields["phone"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be today or a future date", fields["date"])
	assert.Equal(t, "must be a time in HH:MM format", fields["time"])
	assert.True(t, errors.Is(err, xerrors.ErrInvalidInput))
}

func TestNotPastAcceptsToday(t *testing.T) {
	freezeNow(t, time.Date(2026, 5, 10, 23, 30, 0, 0, time.UTC))
	v := newValidator(t)

	err := v.Struct(bookingLike{
		Name:  "Asha",
		Phone: "+91 98765 43210",
		Email: "asha@example.com",
		Date:  "2026-05-10",
		Time:  "10:30",
	})
	assert.NoError(t, err)
}

func TestNotPastUsesBusinessTimeZone(t *testing.T) {
	prev := location
	t.Cleanup(func() { location = prev })

	kolkata := time.FixedZone("IST", 5*3600+1800)
	SetLocation(kolkata)
	// 20:00 UTC on the 10th is already the 11th in IST.
	freezeNow(t, time.Date(2026, 5, 10, 20, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC), Today())
}

func TestGtFieldRejectsMaxBelowMin(t *testing.T) {
	v := newValidator(t)

	err := Translate(v.Struct(priced{MinPrice: 500, MaxPrice: 300}))
	ve, ok := xerrors.AsValidation(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "maxPrice", ve.Fields[0].Field)
	assert.Equal(t, "must be greater than minPrice", ve.Fields[0].Message)

	assert.Error(t, v.Struct(priced{MinPrice: 500, MaxPrice: 500}))
	assert.NoError(t, v.Struct(priced{MinPrice: 500, MaxPrice: 501}))
}

func TestNormalizeDate(t *testing.T) {
	d, err := NormalizeDate("2026-07-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = NormalizeDate("2026-07-01T18:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = NormalizeDate("01/07/2026")
	assert.Error(t, err)
}

func TestTranslateUnknownErrorIsBadRequest(t *testing.T) {
	err := Translate(opaqueErr{})
	assert.True(t, errors.Is(err, xerrors.ErrBadRequest))
}

type opaqueErr struct{}

func (opaqueErr) Error() string { return "boom" }

func TestNormalizeContactService(t *testing.T) {
	cases := map[string]string{
		"Bridal Mehndi":      "bridal",
		"engagement":         "bridal",
		"Arabic Mehndi":      "party",
		"baby shower":        "party",
		"Indo-Western Mehndi": "party",
		"Festival Mehndi":    "festival",
		"Corporate Event":    "corporate",
		"corporate":          "corporate",
		"something else":     "other",
		"":                   "other",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeContactService(in), in)
	}
}

type phoneOnly struct {
	Phone string `json:"phone" validate:"phone"`
}

func TestPhoneRule(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		phone string
		ok    bool
	}{
		{"9876543210", true},
		{"+91 98765 43210", true},
		{"+1-555-123-4567", true},
		{"1234567", true},
		{"123456789012345", true},
		{"123456", false},
		{"1234567890123456", false},
		{"12345678901234567890", false},
		{"+12345678901234567890", false},
		{"1-----1", false},
		{"98765--43210", false},
		{"abc1234567", false},
		{"+91 98765 43210 12 3", false},
	}
	for _, tc := range cases {
		err := v.Struct(phoneOnly{Phone: tc.phone})
		if tc.ok {
			assert.NoError(t, err, tc.phone)
		} else {
			assert.Error(t, err, tc.phone)
		}
	}
}
