// Package nylas adapts the calendar model to the Nylas v3 REST API. It
// holds the wire shapes, their validation, the transformers between wire and
// domain shapes, and the actions that run a request end to end.
package nylas

import (
	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

// Calendar is a calendar as the provider returns it.
type Calendar struct {
	GrantID            string `json:"grant_id,omitempty"`
	Description        string `json:"description,omitempty"`
	ID                 string `json:"id,omitempty"`
	IsPrimary          bool   `json:"is_primary,omitempty"`
	Name               string `json:"name"`
	Object             string `json:"object,omitempty" validate:"omitempty,eq=calendar"`
	ReadOnly           bool   `json:"read_only,omitempty"`
	Timezone           string `json:"timezone,omitempty"`
	HexColor           string `json:"hex_color,omitempty"`
	HexForegroundColor string `json:"hex_foreground_color,omitempty"`
	IsOwnedByUser      bool   `json:"is_owned_by_user,omitempty"`
	Location           string `json:"location,omitempty"`
}

// Event is a calendar event on the wire.
type Event struct {
	ID               string            `json:"id,omitempty"`
	CalendarID       string            `json:"calendar_id,omitempty"`
	Busy             bool              `json:"busy"`
	Capacity         *int              `json:"capacity,omitempty"`
	Conferencing     *Conferencing     `json:"conferencing,omitempty"`
	Description      string            `json:"description,omitempty" validate:"max=8192"`
	HideParticipants *bool             `json:"hide_participants,omitempty"`
	Location         string            `json:"location,omitempty" validate:"max=255"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	Participants     []Participant     `json:"participants,omitempty" validate:"dive"`
	Resources        []Resource        `json:"resources,omitempty" validate:"dive"`
	Recurrence       []string          `json:"recurrence,omitempty" validate:"dive,rrule"`
	Reminders        *Reminders        `json:"reminders,omitempty"`
	Title            string            `json:"title" validate:"max=1024"`
	Visibility       string            `json:"visibility,omitempty" validate:"omitempty,oneof=public private default"`
	When             When              `json:"when"`
}

type Participant struct {
	Comment     string `json:"comment,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Name        string `json:"name,omitempty" validate:"required_without=Email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=yes no maybe noreply"`
}

type Resource struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty"`
}

type ReminderOverride struct {
	ReminderMinutes int    `json:"reminder_minutes,omitempty" validate:"min=0"`
	ReminderMethod  string `json:"reminder_method,omitempty" validate:"omitempty,oneof=popup email display sound"`
}

type Reminders struct {
	UseDefault *bool              `json:"use_default,omitempty" validate:"required"`
	Overrides  []ReminderOverride `json:"overrides,omitempty" validate:"dive"`
}

// ConferenceDetails carries the fields of every details shape: Google Meet
// (phone, pin), Zoom (meeting_code, password) and Teams (url only).
type ConferenceDetails struct {
	Phone       []string `json:"phone,omitempty"`
	Pin         string   `json:"pin,omitempty"`
	MeetingCode string   `json:"meeting_code,omitempty"`
	Password    string   `json:"password,omitempty"`
	URL         string   `json:"url" validate:"required"`
}

// Availability is the body of POST /calendars/availability.
type Availability struct {
	Participants      []AvailabilityParticipant `json:"participants" validate:"min=1,dive"`
	StartTime         int64                     `json:"start_time" validate:"gt=0"`
	EndTime           int64                     `json:"end_time" validate:"gtfield=StartTime"`
	DurationMinutes   int                       `json:"duration_minutes" validate:"gt=0"`
	IntervalMinutes   *int                      `json:"interval_minutes,omitempty" validate:"omitempty,gt=0"`
	RoundTo           *int                      `json:"round_to,omitempty" validate:"omitempty,gt=0"`
	AvailabilityRules *AvailabilityRules        `json:"availability_rules,omitempty"`
}

type AvailabilityParticipant struct {
	Email       string      `json:"email" validate:"required,email"`
	CalendarIDs []string    `json:"calendar_ids,omitempty"`
	OpenHours   []OpenHours `json:"open_hours,omitempty" validate:"dive"`
}

type OpenHours struct {
	Days     []int    `json:"days" validate:"dive,min=0,max=6"`
	Timezone string   `json:"timezone" validate:"required"`
	Start    string   `json:"start" validate:"required"`
	End      string   `json:"end" validate:"required"`
	Exdates  []string `json:"exdates,omitempty"`
}

type AvailabilityRules struct {
	AvailabilityMethod string      `json:"availability_method" validate:"required,oneof=collective max-fairness max-availability"`
	Buffer             *Buffer     `json:"buffer,omitempty"`
	DefaultOpenHours   []OpenHours `json:"default_open_hours,omitempty" validate:"dive"`
	RoundRobinGroupID  string      `json:"round_robin_group_id,omitempty"`
}

// Buffer minutes must stay within [0,120].
type Buffer struct {
	Before int `json:"before" validate:"min=0,max=120"`
	After  int `json:"after" validate:"min=0,max=120"`
}

// AvailabilityInfo is the data of an availability response. Null slots
// decode to nil and are dropped by AvailabilityInfoFromNylas.
type AvailabilityInfo struct {
	Order     []string    `json:"order"`
	TimeSlots []*TimeSlot `json:"time_slots" validate:"dive"`
}

type TimeSlot struct {
	Emails    []string `json:"emails"`
	StartTime int64    `json:"start_time"`
	EndTime   int64    `json:"end_time" validate:"gtefield=StartTime"`
}

// conferencingProviders are the providers the API accepts.
var conferencingProviders = map[calendar.ConferencingProvider]bool{
	calendar.ConferencingGoogleMeet:     true,
	calendar.ConferencingZoomMeeting:    true,
	calendar.ConferencingMicrosoftTeams: true,
}
