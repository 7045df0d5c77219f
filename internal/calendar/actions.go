package calendar

import "context"

// CreateEventAction creates an event in the calendar named by its CalendarID.
type CreateEventAction interface {
	Execute(ctx context.Context, event Event) Response[Event]
}

// UpdateEventAction replaces an existing event.
type UpdateEventAction interface {
	Execute(ctx context.Context, event Event) Response[Event]
}

// DeleteEventAction removes an event. Success carries no data.
type DeleteEventAction interface {
	Execute(ctx context.Context, id EventID) Response[struct{}]
}

// ListEventsAction lists the events of a calendar in a time window.
type ListEventsAction interface {
	Execute(ctx context.Context, query EventQuery) Response[[]Event]
}

// ListCalendarsAction lists calendars, optionally filtered by name.
type ListCalendarsAction interface {
	Execute(ctx context.Context, names CalendarNames) Response[[]Calendar]
}

// AvailabilityAction finds free time slots for a set of participants.
type AvailabilityAction interface {
	Execute(ctx context.Context, request Availability) Response[AvailabilityInfo]
}
