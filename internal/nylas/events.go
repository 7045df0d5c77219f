package nylas

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

const (
	msgCalendarIDRequired = "Calendar ID is required"
	msgEventIDsRequired   = "Event ID and Calendar ID are required"
	msgEventQueryRequired = "Calendar ID, Start Time, and End Time are required"
)

// CreateCalendarEventAction creates an event with POST /events.
type CreateCalendarEventAction struct {
	sender RequestSender
	opts   options
}

func NewCreateCalendarEventAction(sender RequestSender, opts ...Option) *CreateCalendarEventAction {
	return &CreateCalendarEventAction{sender: sender, opts: newOptions(opts)}
}

func (a *CreateCalendarEventAction) Execute(ctx context.Context, event calendar.Event) calendar.Response[calendar.Event] {
	log := executionLogger(a.opts.logger, "create_event")

	if event.CalendarID == "" {
		return failWith[calendar.Event](log, &failure{calendar.ErrorCodeValidation, msgCalendarIDRequired})
	}
	body, f := encodeOutbound(log, a.opts.eventToNylas.Transform(&event))
	if f != nil {
		return failWith[calendar.Event](log, f)
	}

	path := "/events?calendar_id=" + url.QueryEscape(event.CalendarID)
	return sendEvent(ctx, log, a.sender, a.opts.eventFromNylas, path, RequestOptions{Method: http.MethodPost, Body: body})
}

// UpdateCalendarEventAction replaces an event with PUT /events/{id}.
type UpdateCalendarEventAction struct {
	sender RequestSender
	opts   options
}

func NewUpdateCalendarEventAction(sender RequestSender, opts ...Option) *UpdateCalendarEventAction {
	return &UpdateCalendarEventAction{sender: sender, opts: newOptions(opts)}
}

func (a *UpdateCalendarEventAction) Execute(ctx context.Context, event calendar.Event) calendar.Response[calendar.Event] {
	log := executionLogger(a.opts.logger, "update_event")

	if event.ID == "" || event.CalendarID == "" {
		return failWith[calendar.Event](log, &failure{calendar.ErrorCodeValidation, msgEventIDsRequired})
	}
	body, f := encodeOutbound(log, a.opts.eventToNylas.Transform(&event))
	if f != nil {
		return failWith[calendar.Event](log, f)
	}

	path := fmt.Sprintf("/events/%s?calendar_id=%s", url.PathEscape(event.ID), url.QueryEscape(event.CalendarID))
	return sendEvent(ctx, log, a.sender, a.opts.eventFromNylas, path, RequestOptions{Method: http.MethodPut, Body: body})
}

// DeleteCalendarEventAction removes an event with DELETE /events/{id}.
type DeleteCalendarEventAction struct {
	sender RequestSender
	opts   options
}

func NewDeleteCalendarEventAction(sender RequestSender, opts ...Option) *DeleteCalendarEventAction {
	return &DeleteCalendarEventAction{sender: sender, opts: newOptions(opts)}
}

// Execute does not read the response body. Success carries no data.
func (a *DeleteCalendarEventAction) Execute(ctx context.Context, id calendar.EventID) calendar.Response[struct{}] {
	log := executionLogger(a.opts.logger, "delete_event")

	if id.EventID == "" || id.CalendarID == "" {
		return failWith[struct{}](log, &failure{calendar.ErrorCodeValidation, msgEventIDsRequired})
	}

	path := fmt.Sprintf("/events/%s?calendar_id=%s", url.PathEscape(id.EventID), url.QueryEscape(id.CalendarID))
	if _, f := dispatch(ctx, log, a.sender, path, RequestOptions{Method: http.MethodDelete}); f != nil {
		return failWith[struct{}](log, f)
	}

	log.Info().Str("event_id", id.EventID).Msg("event deleted")
	return calendar.Empty[struct{}]()
}

// GetCalendarEventsAction lists the events of a calendar in a time window.
type GetCalendarEventsAction struct {
	sender RequestSender
	opts   options
}

func NewGetCalendarEventsAction(sender RequestSender, opts ...Option) *GetCalendarEventsAction {
	return &GetCalendarEventsAction{sender: sender, opts: newOptions(opts)}
}

func (a *GetCalendarEventsAction) Execute(ctx context.Context, query calendar.EventQuery) calendar.Response[[]calendar.Event] {
	log := executionLogger(a.opts.logger, "list_events")

	if query.CalendarID == "" || query.StartTime == 0 || query.EndTime == 0 {
		return failWith[[]calendar.Event](log, &failure{calendar.ErrorCodeValidation, msgEventQueryRequired})
	}

	path := fmt.Sprintf("/events?calendar_id=%s&start=%d&end=%d", url.QueryEscape(query.CalendarID), query.StartTime, query.EndTime)
	resp, f := dispatch(ctx, log, a.sender, path, RequestOptions{Method: http.MethodGet})
	if f != nil {
		return failWith[[]calendar.Event](log, f)
	}
	data, f := readData(log, resp)
	if f != nil {
		return failWith[[]calendar.Event](log, f)
	}

	events := transformList(data, a.opts.eventFromNylas)
	if len(events) == 0 {
		return failWith[[]calendar.Event](log, &failure{calendar.ErrorCodeTransformation, msgTransformationFailed})
	}

	log.Info().Int("count", len(events)).Msg("events fetched")
	return calendar.Success(events)
}

// sendEvent runs the shared tail of create and update.
func sendEvent(
	ctx context.Context,
	log zerolog.Logger,
	sender RequestSender,
	fromNylas Transformer[Event, calendar.Event],
	path string,
	opts RequestOptions,
) calendar.Response[calendar.Event] {
	resp, f := dispatch(ctx, log, sender, path, opts)
	if f != nil {
		return failWith[calendar.Event](log, f)
	}
	data, f := readData(log, resp)
	if f != nil {
		return failWith[calendar.Event](log, f)
	}

	event := fromNylas.Transform(decodeOne[Event](data))
	if event == nil {
		return failWith[calendar.Event](log, &failure{calendar.ErrorCodeTransformation, msgTransformationFailed})
	}

	log.Info().Str("event_id", event.ID).Msg("event saved")
	return calendar.Success(*event)
}
