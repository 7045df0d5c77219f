package nylas_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
	"github.com/omriShneor/calendar_nylas/internal/mocks"
	"github.com/omriShneor/calendar_nylas/internal/nylas"
)

func newEvent() calendar.Event {
	return calendar.Event{
		CalendarID: "primary",
		Busy:       true,
		Title:      "Design review",
		When:       calendar.Timespan(1700000000, 1700003600, "UTC", "UTC"),
		Participants: []calendar.Participant{
			{Email: "ana@example.com", Name: "Ana"},
		},
	}
}

func TestCreateCalendarEventAction(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and returns the stored event", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		sender.On("Send", ctx, "/events?calendar_id=primary", mock.MatchedBy(func(opts nylas.RequestOptions) bool {
			return opts.Method == http.MethodPost && !opts.WithoutGrant &&
				assert.JSONEq(t, `{
					"calendar_id": "primary",
					"busy": true,
					"title": "Design review",
					"participants": [{"email": "ana@example.com", "name": "Ana"}],
					"when": {"start_time": 1700000000, "end_time": 1700003600, "start_timezone": "UTC", "end_timezone": "UTC"}
				}`, string(opts.Body))
		})).Return(mocks.OKResponse(`{
			"request_id": "req-1",
			"data": {
				"id": "evt-123",
				"calendar_id": "primary",
				"busy": true,
				"title": "Design review",
				"participants": [{"email": "ana@example.com", "name": "Ana", "status": "noreply"}],
				"when": {"object": "timespan", "start_time": 1700000000, "end_time": 1700003600, "start_timezone": "UTC", "end_timezone": "UTC"}
			}
		}`), nil)

		resp := nylas.NewCreateCalendarEventAction(sender).Execute(ctx, newEvent())

		require.True(t, resp.Success, "%+v", resp.Error)
		require.NotNil(t, resp.Data)
		assert.Equal(t, "evt-123", resp.Data.ID)
		assert.Equal(t, calendar.Timespan(1700000000, 1700003600, "UTC", "UTC"), resp.Data.When)
		assert.Equal(t, calendar.ParticipantNoReply, resp.Data.Participants[0].Status)
		sender.AssertExpectations(t)
	})

	t.Run("calendar id is required", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		event := newEvent()
		event.CalendarID = ""

		resp := nylas.NewCreateCalendarEventAction(sender).Execute(ctx, event)

		assert.False(t, resp.Success)
		assert.Equal(t, &calendar.Error{Code: calendar.ErrorCodeValidation, Message: "Calendar ID is required"}, resp.Error)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("event without a time is invalid input", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		event := newEvent()
		event.When = calendar.When{}

		resp := nylas.NewCreateCalendarEventAction(sender).Execute(ctx, event)

		assert.Equal(t, &calendar.Error{Code: calendar.ErrorCodeValidation, Message: "Invalid input"}, resp.Error)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("schema failure names the path", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		event := newEvent()
		event.Participants = []calendar.Participant{{Email: "broken"}}

		resp := nylas.NewCreateCalendarEventAction(sender).Execute(ctx, event)

		require.NotNil(t, resp.Error)
		assert.Equal(t, calendar.ErrorCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "participants[0].email")
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("response without a usable event", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		sender.On("Send", ctx, mock.Anything, mock.Anything).
			Return(mocks.OKResponse(`{"data":{"title":"no id","when":{"time":1}}}`), nil)

		resp := nylas.NewCreateCalendarEventAction(sender).Execute(ctx, newEvent())

		assert.Equal(t, &calendar.Error{Code: calendar.ErrorCodeTransformation, Message: "Failed to transform data"}, resp.Error)
	})

	t.Run("custom transformer", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		sender.On("Send", ctx, mock.Anything, mock.Anything).
			Return(mocks.OKResponse(`{"data":{"id":"evt-1"}}`), nil)
		fixed := nylas.TransformerFunc[nylas.Event, calendar.Event](func(in *nylas.Event) *calendar.Event {
			return &calendar.Event{ID: in.ID, Title: "from custom transformer"}
		})

		resp := nylas.NewCreateCalendarEventAction(sender, nylas.WithEventFromNylas(fixed)).Execute(ctx, newEvent())

		require.True(t, resp.Success)
		assert.Equal(t, "from custom transformer", resp.Data.Title)
	})
}

func TestUpdateCalendarEventAction(t *testing.T) {
	ctx := context.Background()

	t.Run("puts to the event path", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		sender.On("Send", ctx, "/events/evt-1?calendar_id=primary", mock.MatchedBy(func(opts nylas.RequestOptions) bool {
			return opts.Method == http.MethodPut
		})).Return(mocks.OKResponse(`{"data":{"id":"evt-1","calendar_id":"primary","title":"Moved","when":{"time":1700000000}}}`), nil)

		event := newEvent()
		event.ID = "evt-1"
		resp := nylas.NewUpdateCalendarEventAction(sender).Execute(ctx, event)

		require.True(t, resp.Success)
		assert.Equal(t, "Moved", resp.Data.Title)
		sender.AssertExpectations(t)
	})

	t.Run("ids are required", func(t *testing.T) {
		resp := nylas.NewUpdateCalendarEventAction(new(mocks.MockRequestSender)).Execute(ctx, newEvent())
		assert.Equal(t, &calendar.Error{Code: calendar.ErrorCodeValidation, Message: "Event ID and Calendar ID are required"}, resp.Error)
	})
}

func TestDeleteCalendarEventAction(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		id        calendar.EventID
		response  nylas.Response
		sendErr   error
		wantError *calendar.Error
	}{
		{
			name:     "deleted",
			id:       calendar.EventID{EventID: "evt-1", CalendarID: "primary"},
			response: mocks.OKResponse(`not even json`),
		},
		{
			name:      "not found",
			id:        calendar.EventID{EventID: "evt-1", CalendarID: "primary"},
			response:  mocks.FailedResponse("Not Found"),
			wantError: &calendar.Error{Code: calendar.ErrorCodeRequestFailed, Message: "Not Found"},
		},
		{
			name:      "transport error",
			id:        calendar.EventID{EventID: "evt-1", CalendarID: "primary"},
			sendErr:   errors.New("connection refused"),
			wantError: &calendar.Error{Code: calendar.ErrorCodeRequestFailed, Message: "connection refused"},
		},
		{
			name:      "missing event id",
			id:        calendar.EventID{CalendarID: "primary"},
			wantError: &calendar.Error{Code: calendar.ErrorCodeValidation, Message: "Event ID and Calendar ID are required"},
		},
		{
			name:      "missing calendar id",
			id:        calendar.EventID{EventID: "evt-1"},
			wantError: &calendar.Error{Code: calendar.ErrorCodeValidation, Message: "Event ID and Calendar ID are required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := new(mocks.MockRequestSender)
			if tt.response != nil || tt.sendErr != nil {
				sender.On("Send", ctx, "/events/evt-1?calendar_id=primary", nylas.RequestOptions{Method: http.MethodDelete}).
					Return(tt.response, tt.sendErr)
			}

			resp := nylas.NewDeleteCalendarEventAction(sender).Execute(ctx, tt.id)

			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantError == nil, resp.Success)
			assert.Nil(t, resp.Data)
			sender.AssertExpectations(t)
		})
	}
}

func TestGetCalendarEventsAction(t *testing.T) {
	ctx := context.Background()
	query := calendar.EventQuery{CalendarID: "primary", StartTime: 1700000000, EndTime: 1700086400}
	path := "/events?calendar_id=primary&start=1700000000&end=1700086400"

	tests := []struct {
		name      string
		query     calendar.EventQuery
		body      string
		wantIDs   []string
		wantError *calendar.Error
	}{
		{
			name:    "keeps events that transform",
			query:   query,
			body:    `{"data":[{"id":"a","when":{"time":1}},{"when":{"time":2}},{"id":"c","when":{"date":"2024-01-01"}},{"id":"d","when":{}}]}`,
			wantIDs: []string{"a", "c"},
		},
		{
			name:      "empty list",
			query:     query,
			body:      `{"data":[]}`,
			wantError: &calendar.Error{Code: calendar.ErrorCodeTransformation, Message: "Failed to transform data"},
		},
		{
			name:      "nothing transforms",
			query:     query,
			body:      `{"data":[{"title":"no id"}]}`,
			wantError: &calendar.Error{Code: calendar.ErrorCodeTransformation, Message: "Failed to transform data"},
		},
		{
			name:      "body is not json",
			query:     query,
			body:      `<html>`,
			wantError: &calendar.Error{Code: calendar.ErrorCodeParse, Message: "Failed to parse response"},
		},
		{
			name:      "body is null",
			query:     query,
			body:      `null`,
			wantError: &calendar.Error{Code: calendar.ErrorCodeParse, Message: "Failed to parse response"},
		},
		{
			name:      "window is required",
			query:     calendar.EventQuery{CalendarID: "primary", StartTime: 1},
			wantError: &calendar.Error{Code: calendar.ErrorCodeValidation, Message: "Calendar ID, Start Time, and End Time are required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := new(mocks.MockRequestSender)
			if tt.body != "" {
				sender.On("Send", ctx, path, nylas.RequestOptions{Method: http.MethodGet}).
					Return(mocks.OKResponse(tt.body), nil)
			}

			resp := nylas.NewGetCalendarEventsAction(sender).Execute(ctx, tt.query)

			assert.Equal(t, tt.wantError, resp.Error)
			if tt.wantError != nil {
				assert.Nil(t, resp.Data)
				return
			}
			require.NotNil(t, resp.Data)
			ids := make([]string, 0, len(*resp.Data))
			for _, e := range *resp.Data {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetCalendarsAction(t *testing.T) {
	ctx := context.Background()
	body := `{"data":[
		{"id":"c1","name":"Work","object":"calendar"},
		{"id":"c2","name":"Personal","object":"calendar"},
		{"id":"c3","name":"Holidays","object":"calendar","read_only":true}
	]}`

	tests := []struct {
		name    string
		names   []string
		wantIDs []string
	}{
		{name: "no filter", wantIDs: []string{"c1", "c2", "c3"}},
		{name: "filter keeps provider order", names: []string{"Holidays", "Work"}, wantIDs: []string{"c1", "c3"}},
		{name: "filter matches nothing", names: []string{"Travel"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := new(mocks.MockRequestSender)
			sender.On("Send", ctx, "/calendars", nylas.RequestOptions{Method: http.MethodGet}).
				Return(mocks.OKResponse(body), nil)

			resp := nylas.NewGetCalendarsAction(sender).Execute(ctx, calendar.CalendarNames{CalendarNames: tt.names})

			require.True(t, resp.Success)
			ids := make([]string, 0)
			for _, c := range *resp.Data {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	t.Run("no calendars", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		sender.On("Send", ctx, "/calendars", mock.Anything).Return(mocks.OKResponse(`{"data":[]}`), nil)

		resp := nylas.NewGetCalendarsAction(sender).Execute(ctx, calendar.CalendarNames{CalendarNames: []string{"Work"}})

		assert.Equal(t, calendar.ErrorCodeTransformation, resp.Error.Code)
	})

	t.Run("provider error", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		sender.On("Send", ctx, "/calendars", mock.Anything).Return(mocks.FailedResponse("Unauthorized"), nil)

		resp := nylas.NewGetCalendarsAction(sender).Execute(ctx, calendar.CalendarNames{})

		assert.Equal(t, &calendar.Error{Code: calendar.ErrorCodeRequestFailed, Message: "Unauthorized"}, resp.Error)
	})
}

func TestGetCalendarsAvailabilityAction(t *testing.T) {
	ctx := context.Background()
	request := calendar.Availability{
		Participants:    []calendar.AvailabilityParticipant{{Email: "ana@example.com"}},
		StartTime:       1700000000,
		EndTime:         1700007200,
		DurationMinutes: 60,
	}

	t.Run("posts outside the grant", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		sender.On("Send", ctx, "/calendars/availability", mock.MatchedBy(func(opts nylas.RequestOptions) bool {
			return opts.Method == http.MethodPost && opts.WithoutGrant && len(opts.Body) > 0
		})).Return(mocks.OKResponse(`{"data":{
			"order": ["ana@example.com"],
			"time_slots": [{"emails":["ana@example.com"],"start_time":1700000000,"end_time":1700003600,"status":"free"}]
		}}`), nil)

		resp := nylas.NewGetCalendarsAvailabilityAction(sender).Execute(ctx, request)

		require.True(t, resp.Success, "%+v", resp.Error)
		assert.Equal(t, []string{"ana@example.com"}, resp.Data.Order)
		assert.Equal(t, []calendar.TimeSlot{{
			Emails:    []string{"ana@example.com"},
			StartTime: 1700000000,
			EndTime:   1700003600,
		}}, resp.Data.TimeSlots)
		sender.AssertExpectations(t)
	})

	t.Run("buffer out of range", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		bad := request
		bad.AvailabilityRules = &calendar.AvailabilityRules{
			AvailabilityMethod: calendar.AvailabilityCollective,
			Buffer:             &calendar.Buffer{After: 200},
		}

		resp := nylas.NewGetCalendarsAvailabilityAction(sender).Execute(ctx, bad)

		require.NotNil(t, resp.Error)
		assert.Equal(t, calendar.ErrorCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "availability_rules.buffer.after")
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("null data", func(t *testing.T) {
		sender := new(mocks.MockRequestSender)
		sender.On("Send", ctx, mock.Anything, mock.Anything).Return(mocks.OKResponse(`{"data":null}`), nil)

		resp := nylas.NewGetCalendarsAvailabilityAction(sender).Execute(ctx, request)

		assert.Equal(t, calendar.ErrorCodeTransformation, resp.Error.Code)
	})
}

func TestCreateStandupEndToEnd(t *testing.T) {
	ctx := context.Background()
	sender := new(mocks.MockRequestSender)
	sender.On("Send", ctx, "/events?calendar_id=cal1", mock.Anything).
		Return(mocks.OKResponse(`{"data":{"id":"evt1","calendar_id":"cal1","busy":true,"title":"Standup","when":{"time":1700000000}}}`), nil)

	resp := nylas.NewCreateCalendarEventAction(sender).Execute(ctx, calendar.Event{
		CalendarID: "cal1",
		Busy:       true,
		Title:      "Standup",
		When:       calendar.AtTime(1700000000, ""),
	})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"id":"evt1","calendarId":"cal1","busy":true,"title":"Standup","when":{"time":1700000000}}}`, string(data))
}

func TestActionsPropagateProviderFailure(t *testing.T) {
	ctx := context.Background()
	updated := newEvent()
	updated.ID = "evt-1"
	availability := calendar.Availability{
		Participants:    []calendar.AvailabilityParticipant{{Email: "ana@example.com"}},
		StartTime:       1700000000,
		EndTime:         1700007200,
		DurationMinutes: 60,
	}

	tests := []struct {
		name string
		run  func(sender nylas.RequestSender) *calendar.Error
	}{
		{"create event", func(s nylas.RequestSender) *calendar.Error {
			return nylas.NewCreateCalendarEventAction(s).Execute(ctx, newEvent()).Error
		}},
		{"update event", func(s nylas.RequestSender) *calendar.Error {
			return nylas.NewUpdateCalendarEventAction(s).Execute(ctx, updated).Error
		}},
		{"delete event", func(s nylas.RequestSender) *calendar.Error {
			return nylas.NewDeleteCalendarEventAction(s).Execute(ctx, calendar.EventID{EventID: "evt-1", CalendarID: "primary"}).Error
		}},
		{"list events", func(s nylas.RequestSender) *calendar.Error {
			return nylas.NewGetCalendarEventsAction(s).Execute(ctx, calendar.EventQuery{CalendarID: "primary", StartTime: 1, EndTime: 2}).Error
		}},
		{"list calendars", func(s nylas.RequestSender) *calendar.Error {
			return nylas.NewGetCalendarsAction(s).Execute(ctx, calendar.CalendarNames{}).Error
		}},
		{"availability", func(s nylas.RequestSender) *calendar.Error {
			return nylas.NewGetCalendarsAvailabilityAction(s).Execute(ctx, availability).Error
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := new(mocks.MockRequestSender)
			sender.On("Send", ctx, mock.Anything, mock.Anything).Return(mocks.FailedResponse("Not Found"), nil)

			err := tt.run(sender)

			assert.Equal(t, &calendar.Error{Code: calendar.ErrorCodeRequestFailed, Message: "Not Found"}, err)
			sender.AssertNumberOfCalls(t, "Send", 1)
		})
	}
}
