package nylas

import (
	"maps"
	"slices"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

// EventFromNylas converts a wire event into a domain event. Events without
// an id or a resolved when are absent.
type EventFromNylas struct{}

func (EventFromNylas) Transform(in *Event) *calendar.Event {
	if in == nil || in.ID == "" {
		return nil
	}
	when, ok := convertWhen(calendar.When(in.When))
	if !ok {
		return nil
	}

	return &calendar.Event{
		ID:               in.ID,
		CalendarID:       in.CalendarID,
		Busy:             in.Busy,
		Capacity:         clonePtr(in.Capacity),
		Conferencing:     conferencingFromNylas(in.Conferencing),
		Description:      in.Description,
		HideParticipants: clonePtr(in.HideParticipants),
		Location:         in.Location,
		Metadata:         maps.Clone(in.Metadata),
		Participants:     mapSlice(in.Participants, participantFromNylas),
		Resources:        mapSlice(in.Resources, resourceFromNylas),
		Recurrence:       slices.Clone(in.Recurrence),
		Reminders:        remindersFromNylas(in.Reminders),
		Title:            in.Title,
		Visibility:       calendar.Visibility(in.Visibility),
		When:             when,
	}
}

// EventToNylas converts a domain event into its wire form. Events without a
// resolved when are absent.
type EventToNylas struct{}

func (EventToNylas) Transform(in *calendar.Event) *Event {
	if in == nil {
		return nil
	}
	when, ok := convertWhen(in.When)
	if !ok {
		return nil
	}

	return &Event{
		ID:               in.ID,
		CalendarID:       in.CalendarID,
		Busy:             in.Busy,
		Capacity:         clonePtr(in.Capacity),
		Conferencing:     conferencingToNylas(in.Conferencing),
		Description:      in.Description,
		HideParticipants: clonePtr(in.HideParticipants),
		Location:         in.Location,
		Metadata:         maps.Clone(in.Metadata),
		Participants:     mapSlice(in.Participants, participantToNylas),
		Resources:        mapSlice(in.Resources, resourceToNylas),
		Recurrence:       slices.Clone(in.Recurrence),
		Reminders:        remindersToNylas(in.Reminders),
		Title:            in.Title,
		Visibility:       string(in.Visibility),
		When:             When(when),
	}
}

func participantFromNylas(in Participant) (calendar.Participant, bool) {
	if in.Email == "" && in.Name == "" {
		return calendar.Participant{}, false
	}
	return calendar.Participant{
		Comment:     in.Comment,
		Email:       in.Email,
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		Status:      calendar.ParticipantStatus(in.Status),
	}, true
}

func participantToNylas(in calendar.Participant) (Participant, bool) {
	if in.Email == "" && in.Name == "" {
		return Participant{}, false
	}
	return Participant{
		Comment:     in.Comment,
		Email:       in.Email,
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		Status:      string(in.Status),
	}, true
}

func resourceFromNylas(in Resource) (calendar.Resource, bool) {
	if in.Email == "" {
		return calendar.Resource{}, false
	}
	return calendar.Resource{Email: in.Email, Name: in.Name}, true
}

func resourceToNylas(in calendar.Resource) (Resource, bool) {
	if in.Email == "" {
		return Resource{}, false
	}
	return Resource{Email: in.Email, Name: in.Name}, true
}

func remindersFromNylas(in *Reminders) *calendar.Reminders {
	if in == nil || in.UseDefault == nil {
		return nil
	}
	return &calendar.Reminders{
		UseDefault: clonePtr(in.UseDefault),
		Overrides: mapSlice(in.Overrides, func(o ReminderOverride) (calendar.ReminderOverride, bool) {
			if o.ReminderMinutes == 0 && o.ReminderMethod == "" {
				return calendar.ReminderOverride{}, false
			}
			return calendar.ReminderOverride{
				ReminderMinutes: o.ReminderMinutes,
				ReminderMethod:  calendar.ReminderMethod(o.ReminderMethod),
			}, true
		}),
	}
}

func remindersToNylas(in *calendar.Reminders) *Reminders {
	if in == nil || in.UseDefault == nil {
		return nil
	}
	return &Reminders{
		UseDefault: clonePtr(in.UseDefault),
		Overrides: mapSlice(in.Overrides, func(o calendar.ReminderOverride) (ReminderOverride, bool) {
			if o.ReminderMinutes == 0 && o.ReminderMethod == "" {
				return ReminderOverride{}, false
			}
			return ReminderOverride{
				ReminderMinutes: o.ReminderMinutes,
				ReminderMethod:  string(o.ReminderMethod),
			}, true
		}),
	}
}

func conferencingFromNylas(in *Conferencing) *calendar.Conferencing {
	if in == nil {
		return nil
	}
	switch in.Kind {
	case calendar.ConferencingAutocreate:
		return calendar.AutocreateConference(in.Provider, maps.Clone(in.Autocreate))
	case calendar.ConferencingDetails:
		if in.Details == nil {
			return nil
		}
		return calendar.ConferenceWithDetails(in.Provider, calendar.ConferenceDetails{
			URL:         in.Details.URL,
			Phone:       slices.Clone(in.Details.Phone),
			Pin:         in.Details.Pin,
			MeetingCode: in.Details.MeetingCode,
			Password:    in.Details.Password,
		})
	default:
		return nil
	}
}

func conferencingToNylas(in *calendar.Conferencing) *Conferencing {
	if in == nil {
		return nil
	}
	switch in.Kind {
	case calendar.ConferencingAutocreate:
		return &Conferencing{
			Provider:   in.Provider,
			Kind:       calendar.ConferencingAutocreate,
			Autocreate: maps.Clone(in.Autocreate),
		}
	case calendar.ConferencingDetails:
		if in.Details == nil {
			return nil
		}
		return &Conferencing{
			Provider: in.Provider,
			Kind:     calendar.ConferencingDetails,
			Details: &ConferenceDetails{
				Phone:       slices.Clone(in.Details.Phone),
				Pin:         in.Details.Pin,
				MeetingCode: in.Details.MeetingCode,
				Password:    in.Details.Password,
				URL:         in.Details.URL,
			},
		}
	default:
		return nil
	}
}
