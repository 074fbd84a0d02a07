// Package validation wires the request rules used by gin binding and turns
// validator failures into field-level errors.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"

	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	dateLayout = "2006-01-02"

	phoneMinDigits = 7
	phoneMaxDigits = 15
	// maxPhoneLength is the width of the phone columns.
	maxPhoneLength = 20
)

var (
	phoneRegex = regexp.MustCompile(`^\+?[0-9](?:[0-9]|[\s\-][0-9])*$`)
	hhmmRegex  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	location = time.UTC
	now      = time.Now

	registerOnce sync.Once
	registerErr  error
)

// SetLocation sets the business time zone used to decide what "today" is.
func SetLocation(loc *time.Location) {
	if loc != nil {
		location = loc
	}
}

// RegisterWithGin installs the custom rules on gin's validator engine. It is
// safe to call more than once.
func RegisterWithGin() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not validator/v10")
			return
		}
		registerErr = Register(v)
	})
	return registerErr
}

// Register adds json field naming and the custom rules to v.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	rules := map[string]validator.Func{
		"notpast": notPast,
		"phone":   phone,
		"hhmm":    hhmm,
		"slug":    slugRule,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// NormalizeDate parses a calendar date (YYYY-MM-DD or RFC3339) and returns
// midnight UTC of that calendar day in the business time zone.
func NormalizeDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(dateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	y, m, d := t.In(location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// Today returns the current calendar day in the business time zone as
// midnight UTC, comparable with NormalizeDate results.
func Today() time.Time {
	y, m, d := now().In(location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func notPast(fl validator.FieldLevel) bool {
	d, err := NormalizeDate(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.Before(Today())
}

// phone accepts 7 to 15 digits with an optional leading + and single spaces
// or dashes between digits.
func phone(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if len(s) > maxPhoneLength || !phoneRegex.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= phoneMinDigits && digits <= phoneMaxDigits
}

func hhmm(fl validator.FieldLevel) bool {
	return hhmmRegex.MatchString(fl.Field().String())
}

func slugRule(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// Translate converts a binding error into a *ValidationError listing every
// failing field. Errors that are not about payload shape are wrapped as bad
// requests.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]xerrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, xerrors.FieldError{
				Field:   fieldPath(fe),
				Message: message(fe),
			})
		}
		return &xerrors.ValidationError{Fields: fields}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return xerrors.NewValidationError(field, fmt.Sprintf("must be of type %s", typeErr.Type.String()))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return xerrors.NewValidationError("body", "request body must be valid JSON")
	}

	return fmt.Errorf("%w: %v", xerrors.ErrBadRequest, err)
}

// fieldPath drops the top-level struct name from the namespace so nested
// fields read like "sections[0].type".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	param := fe.Param()
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required", "required_if", "required_with", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isText {
			return fmt.Sprintf("must be at least %s characters", param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", param)
		}
		return fmt.Sprintf("must be at least %s", param)
	case "max":
		if isText {
			return fmt.Sprintf("must be at most %s characters", param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", param)
		}
		return fmt.Sprintf("must be at most %s", param)
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "gt":
		return fmt.Sprintf("must be greater than %s", param)
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", param)
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(param, "'", "")
	case "gtfield":
		return "must be greater than " + lowerFirst(param)
	case "nefield":
		return "must differ from " + lowerFirst(param)
	case "notpast":
		return "must be today or a future date"
	case "phone":
		return "must be a valid phone number"
	case "hhmm":
		return "must be a time in HH:MM format"
	case "slug":
		return "must contain only lowercase letters, numbers and single hyphens"
	case "url":
		return "must be a valid URL"
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", param)
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

var contactServiceRules = []struct {
	target   string
	keywords []string
}{
	{"bridal", []string{"bridal", "bride", "engagement", "wedding"}},
	{"party", []string{"party", "arabic", "baby shower", "indo-western", "indo western", "sangeet"}},
	{"festival", []string{"festival", "karva", "eid", "diwali", "teej"}},
	{"corporate", []string{"corporate"}},
}

// NormalizeContactService maps the contact form's free vocabulary onto the
// persisted contact service enum (bridal, party, festival, corporate, other).
func NormalizeContactService(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "other"
	}
	for _, rule := range contactServiceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(v, kw) {
				return rule.target
			}
		}
	}
	return "other"
}
