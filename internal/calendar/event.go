package calendar

// Visibility controls who can see an event.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilityDefault Visibility = "default"
)

// ParticipantStatus is a participant's reply to an invitation.
type ParticipantStatus string

const (
	ParticipantYes     ParticipantStatus = "yes"
	ParticipantNo      ParticipantStatus = "no"
	ParticipantMaybe   ParticipantStatus = "maybe"
	ParticipantNoReply ParticipantStatus = "noreply"
)

// ReminderMethod is how a reminder reaches the user.
type ReminderMethod string

const (
	ReminderPopup   ReminderMethod = "popup"
	ReminderEmail   ReminderMethod = "email"
	ReminderDisplay ReminderMethod = "display"
	ReminderSound   ReminderMethod = "sound"
)

// Event is a calendar event in the application's own shape.
type Event struct {
	ID               string            `json:"id,omitempty"`
	CalendarID       string            `json:"calendarId,omitempty"`
	Busy             bool              `json:"busy"`
	Capacity         *int              `json:"capacity,omitempty"`
	Conferencing     *Conferencing     `json:"conferencing,omitempty"`
	Description      string            `json:"description,omitempty"`
	HideParticipants *bool             `json:"hideParticipants,omitempty"`
	Location         string            `json:"location,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	Participants     []Participant     `json:"participants,omitempty"`
	Resources        []Resource        `json:"resources,omitempty"`
	Recurrence       []string          `json:"recurrence,omitempty"`
	Reminders        *Reminders        `json:"reminders,omitempty"`
	Title            string            `json:"title,omitempty"`
	Visibility       Visibility        `json:"visibility,omitempty"`
	When             When              `json:"when"`
}

// Participant is a person invited to an event. Either Email or Name must
// be set for the participant to be kept.
type Participant struct {
	Comment     string            `json:"comment,omitempty"`
	Email       string            `json:"email,omitempty"`
	Name        string            `json:"name,omitempty"`
	PhoneNumber string            `json:"phoneNumber,omitempty"`
	Status      ParticipantStatus `json:"status,omitempty"`
}

// Resource is a bookable room or piece of equipment, identified by Email.
type Resource struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// ReminderOverride replaces the calendar's default reminder.
type ReminderOverride struct {
	ReminderMinutes int            `json:"reminderMinutes,omitempty"`
	ReminderMethod  ReminderMethod `json:"reminderMethod,omitempty"`
}

// Reminders is only valid when UseDefault is set, even to false.
type Reminders struct {
	UseDefault *bool              `json:"useDefault,omitempty"`
	Overrides  []ReminderOverride `json:"overrides,omitempty"`
}

// EventID addresses a single event.
type EventID struct {
	EventID    string `json:"eventId"`
	CalendarID string `json:"calendarId"`
}

// EventQuery selects the events of one calendar inside a time window given
// in Unix seconds.
type EventQuery struct {
	CalendarID string `json:"calendarId"`
	StartTime  int64  `json:"startTime"`
	EndTime    int64  `json:"endTime"`
}
