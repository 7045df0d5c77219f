package nylas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

func validAvailability() Availability {
	return Availability{
		Participants:    []AvailabilityParticipant{{Email: "a@example.com"}},
		StartTime:       1000,
		EndTime:         2000,
		DurationMinutes: 30,
	}
}

func TestValidateEvent(t *testing.T) {
	base := func() Event {
		return Event{Title: "Call", When: When(calendar.Timespan(1, 2, "", ""))}
	}

	tests := []struct {
		name   string
		mutate func(*Event)
		issues []Issue
	}{
		{
			name:   "valid",
			mutate: func(*Event) {},
		},
		{
			name:   "bad participant email",
			mutate: func(e *Event) { e.Participants = []Participant{{Email: "not-an-email"}} },
			issues: []Issue{{Path: "participants[0].email", Rule: "email"}},
		},
		{
			name:   "participant needs email or name",
			mutate: func(e *Event) { e.Participants = []Participant{{Comment: "x"}} },
			issues: []Issue{{Path: "participants[0].name", Rule: "required_without"}},
		},
		{
			name:   "resource needs email",
			mutate: func(e *Event) { e.Resources = []Resource{{Name: "Room"}} },
			issues: []Issue{{Path: "resources[0].email", Rule: "required"}},
		},
		{
			name:   "unknown visibility",
			mutate: func(e *Event) { e.Visibility = "secret" },
			issues: []Issue{{Path: "visibility", Rule: "oneof"}},
		},
		{
			name:   "reminders need use_default",
			mutate: func(e *Event) { e.Reminders = &Reminders{} },
			issues: []Issue{{Path: "reminders.use_default", Rule: "required"}},
		},
		{
			name:   "timespan ends before it starts",
			mutate: func(e *Event) { e.When = When(calendar.Timespan(10, 5, "", "")) },
			issues: []Issue{{Path: "when.end_time", Rule: "gtefield"}},
		},
		{
			name:   "unresolved when",
			mutate: func(e *Event) { e.When = When{} },
			issues: []Issue{{Path: "when.variant", Rule: "required"}},
		},
		{
			name:   "malformed rrule",
			mutate: func(e *Event) { e.Recurrence = []string{"RRULE:FREQ=SOMETIMES"} },
			issues: []Issue{{Path: "recurrence[0]", Rule: "rrule"}},
		},
		{
			name:   "exdate lines are not parsed as rules",
			mutate: func(e *Event) { e.Recurrence = []string{"RRULE:FREQ=WEEKLY;BYDAY=MO", "EXDATE:20240101T100000Z"} },
		},
		{
			name: "unknown conferencing provider",
			mutate: func(e *Event) {
				e.Conferencing = &Conferencing{Provider: "Skype", Kind: calendar.ConferencingAutocreate, Autocreate: map[string]any{}}
			},
			issues: []Issue{{Path: "conferencing.provider", Rule: "oneof"}},
		},
		{
			name: "conference details need a url",
			mutate: func(e *Event) {
				e.Conferencing = &Conferencing{Provider: calendar.ConferencingMicrosoftTeams, Kind: calendar.ConferencingDetails, Details: &ConferenceDetails{}}
			},
			issues: []Issue{{Path: "conferencing.details.url", Rule: "required"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := base()
			tt.mutate(&event)

			err := Validate(&event)
			if tt.issues == nil {
				assert.NoError(t, err)
				return
			}

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.issues, schemaErr.Issues)
		})
	}
}

func TestValidateAvailability(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Availability)
		issues []Issue
	}{
		{
			name:   "valid",
			mutate: func(*Availability) {},
		},
		{
			name:   "no participants",
			mutate: func(a *Availability) { a.Participants = nil },
			issues: []Issue{{Path: "participants", Rule: "min"}},
		},
		{
			name:   "end before start",
			mutate: func(a *Availability) { a.EndTime = a.StartTime },
			issues: []Issue{{Path: "end_time", Rule: "gtfield"}},
		},
		{
			name:   "duration must be positive",
			mutate: func(a *Availability) { a.DurationMinutes = 0 },
			issues: []Issue{{Path: "duration_minutes", Rule: "gt"}},
		},
		{
			name: "buffer above 120 minutes",
			mutate: func(a *Availability) {
				a.AvailabilityRules = &AvailabilityRules{AvailabilityMethod: "collective", Buffer: &Buffer{Before: 121}}
			},
			issues: []Issue{{Path: "availability_rules.buffer.before", Rule: "max"}},
		},
		{
			name: "buffer at the limits",
			mutate: func(a *Availability) {
				a.AvailabilityRules = &AvailabilityRules{AvailabilityMethod: "max-fairness", Buffer: &Buffer{Before: 0, After: 120}}
			},
		},
		{
			name: "open hours day out of range",
			mutate: func(a *Availability) {
				a.Participants[0].OpenHours = []OpenHours{{Days: []int{7}, Timezone: "UTC", Start: "09:00", End: "17:00"}}
			},
			issues: []Issue{{Path: "participants[0].open_hours[0].days[0]", Rule: "max"}},
		},
		{
			name: "unknown availability method",
			mutate: func(a *Availability) {
				a.AvailabilityRules = &AvailabilityRules{AvailabilityMethod: "random"}
			},
			issues: []Issue{{Path: "availability_rules.availability_method", Rule: "oneof"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAvailability()
			tt.mutate(&req)

			err := Validate(&req)
			if tt.issues == nil {
				assert.NoError(t, err)
				return
			}

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.issues, schemaErr.Issues)
		})
	}
}

func TestParse(t *testing.T) {
	precedence := []struct {
		name string
		when string
		want calendar.When
	}{
		{"time over timespan", `{"time":5,"start_time":1,"end_time":2}`, calendar.AtTime(5, "")},
		{"time over every marker", `{"time":5,"start_time":1,"end_time":2,"date":"2024-01-01","start_date":"2024-01-01","end_date":"2024-01-02"}`, calendar.AtTime(5, "")},
		{"timespan over date", `{"date":"2024-01-01","start_time":1,"end_time":2}`, calendar.Timespan(1, 2, "", "")},
		{"date over datespan", `{"date":"2024-01-01","start_date":"2024-01-01","end_date":"2024-01-02"}`, calendar.OnDate("2024-01-01")},
	}
	for _, tt := range precedence {
		t.Run(tt.name, func(t *testing.T) {
			event, err := Parse[Event]([]byte(`{"title":"x","when":` + tt.when + `}`))
			require.NoError(t, err)
			assert.Equal(t, tt.want, calendar.When(event.When))
		})
	}

	t.Run("invalid json", func(t *testing.T) {
		_, err := Parse[Event]([]byte(`{`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode payload")
	})

	t.Run("schema failure", func(t *testing.T) {
		_, err := Parse[TimeSlot]([]byte(`{"emails":[],"start_time":10,"end_time":5}`))
		require.Error(t, err)
		assert.Equal(t, "schema validation failed: end_time (gtefield)", err.Error())
	})
}
