package mocks

import (
	"context"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
	"github.com/stretchr/testify/mock"
)

// MockCreateEventAction is a mock implementation of calendar.CreateEventAction
type MockCreateEventAction struct {
	mock.Mock
}

func (m *MockCreateEventAction) Execute(ctx context.Context, event calendar.Event) calendar.Response[calendar.Event] {
	args := m.Called(ctx, event)
	return args.Get(0).(calendar.Response[calendar.Event])
}

// MockUpdateEventAction is a mock implementation of calendar.UpdateEventAction
type MockUpdateEventAction struct {
	mock.Mock
}

func (m *MockUpdateEventAction) Execute(ctx context.Context, event calendar.Event) calendar.Response[calendar.Event] {
	args := m.Called(ctx, event)
	return args.Get(0).(calendar.Response[calendar.Event])
}

// MockDeleteEventAction is a mock implementation of calendar.DeleteEventAction
type MockDeleteEventAction struct {
	mock.Mock
}

func (m *MockDeleteEventAction) Execute(ctx context.Context, id calendar.EventID) calendar.Response[struct{}] {
	args := m.Called(ctx, id)
	return args.Get(0).(calendar.Response[struct{}])
}

// MockListEventsAction is a mock implementation of calendar.ListEventsAction
type MockListEventsAction struct {
	mock.Mock
}

func (m *MockListEventsAction) Execute(ctx context.Context, query calendar.EventQuery) calendar.Response[[]calendar.Event] {
	args := m.Called(ctx, query)
	return args.Get(0).(calendar.Response[[]calendar.Event])
}

// MockListCalendarsAction is a mock implementation of calendar.ListCalendarsAction
type MockListCalendarsAction struct {
	mock.Mock
}

func (m *MockListCalendarsAction) Execute(ctx context.Context, names calendar.CalendarNames) calendar.Response[[]calendar.Calendar] {
	args := m.Called(ctx, names)
	return args.Get(0).(calendar.Response[[]calendar.Calendar])
}

// MockAvailabilityAction is a mock implementation of calendar.AvailabilityAction
type MockAvailabilityAction struct {
	mock.Mock
}

func (m *MockAvailabilityAction) Execute(ctx context.Context, request calendar.Availability) calendar.Response[calendar.AvailabilityInfo] {
	args := m.Called(ctx, request)
	return args.Get(0).(calendar.Response[calendar.AvailabilityInfo])
}
