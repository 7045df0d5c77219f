package server

import (
	"github.com/rs/zerolog"

	"github.com/omriShneor/calendar_nylas/internal/nylas"
)

// NylasActions wires every calendar action to one Nylas request sender.
func NylasActions(sender nylas.RequestSender, logger zerolog.Logger) Actions {
	opt := nylas.WithLogger(logger)
	return Actions{
		CreateEvent:   nylas.NewCreateCalendarEventAction(sender, opt),
		UpdateEvent:   nylas.NewUpdateCalendarEventAction(sender, opt),
		DeleteEvent:   nylas.NewDeleteCalendarEventAction(sender, opt),
		ListEvents:    nylas.NewGetCalendarEventsAction(sender, opt),
		ListCalendars: nylas.NewGetCalendarsAction(sender, opt),
		Availability:  nylas.NewGetCalendarsAvailabilityAction(sender, opt),
	}
}
