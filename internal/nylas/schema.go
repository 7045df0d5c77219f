package nylas

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

// Issue is one failed rule at a JSON path such as "participants[0].email".
type Issue struct {
	Path string `json:"path"`
	Rule string `json:"rule"`
}

// SchemaError lists every structural problem found in a payload.
type SchemaError struct {
	Issues []Issue
}

func (e *SchemaError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = fmt.Sprintf("%s (%s)", issue.Path, issue.Rule)
	}
	return "schema validation failed: " + strings.Join(parts, ", ")
}

var schema = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	if err := v.RegisterValidation("rrule", validateRecurrenceLine); err != nil {
		panic(fmt.Sprintf("failed to register rrule validation: %v", err))
	}
	v.RegisterStructValidation(validateWhen, When{})
	v.RegisterStructValidation(validateConferencing, Conferencing{})
	return v
}

// Validate checks a wire value against its schema. It returns nil or a
// *SchemaError.
func Validate(value any) error {
	err := schema.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate payload: %w", err)
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{Path: issuePath(fe.Namespace()), Rule: fe.Tag()})
	}
	return &SchemaError{Issues: issues}
}

// Parse decodes raw JSON into T and validates the result. Actions do not
// use it on responses: inbound data is decoded leniently and checked by the
// transformers, so rules that only apply to provider output (Calendar.Object,
// TimeSlot ordering) are enforced only for callers of Parse.
func Parse[T any](raw []byte) (T, error) {
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, fmt.Errorf("failed to decode payload: %w", err)
	}
	if err := Validate(&value); err != nil {
		return value, err
	}
	return value, nil
}

// issuePath drops the root type name from a validator namespace.
func issuePath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func validateWhen(sl validator.StructLevel) {
	w := sl.Current().Interface().(When)
	switch w.Kind {
	case calendar.WhenTime:
		if w.Time <= 0 {
			sl.ReportError(w.Time, "time", "Time", "gt", "0")
		}
	case calendar.WhenTimespan:
		if w.EndTime < w.StartTime {
			sl.ReportError(w.EndTime, "end_time", "EndTime", "gtefield", "start_time")
		}
	case calendar.WhenDate:
		if w.Date == "" {
			sl.ReportError(w.Date, "date", "Date", "required", "")
		}
	case calendar.WhenDatespan:
		if w.StartDate == "" || w.EndDate == "" {
			sl.ReportError(w.StartDate, "start_date", "StartDate", "required", "")
		}
	default:
		sl.ReportError(w.Kind, "variant", "Kind", "required", "")
	}
}

func validateConferencing(sl validator.StructLevel) {
	c := sl.Current().Interface().(Conferencing)
	if !conferencingProviders[c.Provider] {
		sl.ReportError(c.Provider, "provider", "Provider", "oneof", "Google Meet|Zoom Meeting|Microsoft Teams")
	}
	if c.Kind == calendar.ConferencingNone {
		sl.ReportError(c.Kind, "autocreate", "Autocreate", "required_without", "details")
	}
}

// validateRecurrenceLine accepts any recurrence line and requires RRULE
// lines to parse as RFC 5545 rules.
func validateRecurrenceLine(fl validator.FieldLevel) bool {
	line := fl.Field().String()
	if len(line) < len("RRULE:") || !strings.EqualFold(line[:len("RRULE:")], "RRULE:") {
		return true
	}
	_, err := rrule.StrToROption(line[len("RRULE:"):])
	return err == nil
}
