package testutil

import (
	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

// EventBuilder builds domain events for tests
type EventBuilder struct {
	event calendar.Event
}

// NewEventBuilder creates a new event builder with defaults
func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		event: calendar.Event{
			CalendarID: "primary",
			Busy:       true,
			Title:      "Test Event",
			When:       calendar.Timespan(1700000000, 1700003600, "UTC", "UTC"),
		},
	}
}

// WithID sets the event id
func (b *EventBuilder) WithID(id string) *EventBuilder {
	b.event.ID = id
	return b
}

// WithCalendar sets the calendar id
func (b *EventBuilder) WithCalendar(calendarID string) *EventBuilder {
	b.event.CalendarID = calendarID
	return b
}

// WithTitle sets the title
func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.event.Title = title
	return b
}

// At makes the event a point in time
func (b *EventBuilder) At(t int64) *EventBuilder {
	b.event.When = calendar.AtTime(t, "")
	return b
}

// Between makes the event a timespan
func (b *EventBuilder) Between(start, end int64) *EventBuilder {
	b.event.When = calendar.Timespan(start, end, "", "")
	return b
}

// AllDay makes the event an all-day event
func (b *EventBuilder) AllDay(date string) *EventBuilder {
	b.event.When = calendar.OnDate(date)
	return b
}

// WithParticipant adds a participant
func (b *EventBuilder) WithParticipant(email, name string) *EventBuilder {
	b.event.Participants = append(b.event.Participants, calendar.Participant{Email: email, Name: name})
	return b
}

// WithMeetLink attaches Google Meet details
func (b *EventBuilder) WithMeetLink(url string) *EventBuilder {
	b.event.Conferencing = calendar.ConferenceWithDetails(calendar.ConferencingGoogleMeet, calendar.ConferenceDetails{URL: url})
	return b
}

// Build returns the event
func (b *EventBuilder) Build() calendar.Event {
	return b.event
}
