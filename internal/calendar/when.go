package calendar

import (
	"encoding/json"
	"fmt"
)

// WhenKind identifies which shape a When value holds.
type WhenKind int

const (
	WhenUnknown WhenKind = iota
	WhenTime
	WhenTimespan
	WhenDate
	WhenDatespan
)

func (k WhenKind) String() string {
	switch k {
	case WhenTime:
		return "time"
	case WhenTimespan:
		return "timespan"
	case WhenDate:
		return "date"
	case WhenDatespan:
		return "datespan"
	default:
		return "unknown"
	}
}

// When is the time and duration of an event. Only the fields belonging to
// Kind are meaningful. Times are Unix seconds, dates are ISO 8601 strings.
type When struct {
	Kind WhenKind

	Time     int64
	Timezone string

	StartTime     int64
	EndTime       int64
	StartTimezone string
	EndTimezone   string

	Date string

	StartDate string
	EndDate   string
}

// AtTime returns a point-in-time When.
func AtTime(t int64, timezone string) When {
	return When{Kind: WhenTime, Time: t, Timezone: timezone}
}

// Timespan returns a When spanning two points in time.
func Timespan(start, end int64, startTimezone, endTimezone string) When {
	return When{Kind: WhenTimespan, StartTime: start, EndTime: end, StartTimezone: startTimezone, EndTimezone: endTimezone}
}

// OnDate returns an all-day When.
func OnDate(date string) When {
	return When{Kind: WhenDate, Date: date}
}

// Datespan returns a multi-day When.
func Datespan(start, end string) When {
	return When{Kind: WhenDatespan, StartDate: start, EndDate: end}
}

// IsZero reports whether no variant was resolved.
func (w When) IsZero() bool {
	return w.Kind == WhenUnknown
}

// WhenFields names the JSON key of every When field. Domain and provider
// shapes use different key styles.
type WhenFields struct {
	Time          string
	Timezone      string
	StartTime     string
	EndTime       string
	StartTimezone string
	EndTimezone   string
	Date          string
	StartDate     string
	EndDate       string
}

var camelWhenFields = WhenFields{
	Time:          "time",
	Timezone:      "timezone",
	StartTime:     "startTime",
	EndTime:       "endTime",
	StartTimezone: "startTimezone",
	EndTimezone:   "endTimezone",
	Date:          "date",
	StartDate:     "startDate",
	EndDate:       "endDate",
}

// EncodeWhen writes only the fields of w's variant under keys. Empty
// timezones are left out and an unknown kind is null.
func EncodeWhen(w When, keys WhenFields) ([]byte, error) {
	out := map[string]any{}
	setTimezone := func(key, tz string) {
		if tz != "" {
			out[key] = tz
		}
	}
	switch w.Kind {
	case WhenTime:
		out[keys.Time] = w.Time
		setTimezone(keys.Timezone, w.Timezone)
	case WhenTimespan:
		out[keys.StartTime] = w.StartTime
		out[keys.EndTime] = w.EndTime
		setTimezone(keys.StartTimezone, w.StartTimezone)
		setTimezone(keys.EndTimezone, w.EndTimezone)
	case WhenDate:
		out[keys.Date] = w.Date
	case WhenDatespan:
		out[keys.StartDate] = w.StartDate
		out[keys.EndDate] = w.EndDate
	default:
		return []byte("null"), nil
	}
	return json.Marshal(out)
}

// DecodeWhen resolves the variant of a JSON object from marker keys. The
// first match wins in the order time, start+end time, date, start+end date.
// An object with no marker, or null, gives WhenUnknown. Null field values
// decode to their zero value.
func DecodeWhen(data []byte, keys WhenFields) (When, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return When{}, fmt.Errorf("failed to decode when: %w", err)
	}

	var w When
	var err error
	switch {
	case hasFields(fields, keys.Time):
		w.Kind = WhenTime
		err = decodeFields(fields, map[string]any{keys.Time: &w.Time, keys.Timezone: &w.Timezone})
	case hasFields(fields, keys.StartTime, keys.EndTime):
		w.Kind = WhenTimespan
		err = decodeFields(fields, map[string]any{
			keys.StartTime:     &w.StartTime,
			keys.EndTime:       &w.EndTime,
			keys.StartTimezone: &w.StartTimezone,
			keys.EndTimezone:   &w.EndTimezone,
		})
	case hasFields(fields, keys.Date):
		w.Kind = WhenDate
		err = decodeFields(fields, map[string]any{keys.Date: &w.Date})
	case hasFields(fields, keys.StartDate, keys.EndDate):
		w.Kind = WhenDatespan
		err = decodeFields(fields, map[string]any{keys.StartDate: &w.StartDate, keys.EndDate: &w.EndDate})
	}
	if err != nil {
		return When{}, fmt.Errorf("failed to decode when: %w", err)
	}
	return w, nil
}

// MarshalJSON writes only the fields of the resolved variant.
func (w When) MarshalJSON() ([]byte, error) {
	return EncodeWhen(w, camelWhenFields)
}

// UnmarshalJSON resolves the variant with DecodeWhen.
func (w *When) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeWhen(data, camelWhenFields)
	if err != nil {
		return err
	}
	*w = decoded
	return nil
}

func hasFields(fields map[string]json.RawMessage, keys ...string) bool {
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			return false
		}
	}
	return true
}

// decodeFields fills each target from its key when present.
func decodeFields(fields map[string]json.RawMessage, targets map[string]any) error {
	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
	}
	return nil
}
