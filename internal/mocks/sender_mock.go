package mocks

import (
	"context"
	"encoding/json"

	"github.com/omriShneor/calendar_nylas/internal/nylas"
	"github.com/stretchr/testify/mock"
)

// MockRequestSender is a mock implementation of nylas.RequestSender
type MockRequestSender struct {
	mock.Mock
}

func (m *MockRequestSender) Send(ctx context.Context, path string, opts nylas.RequestOptions) (nylas.Response, error) {
	args := m.Called(ctx, path, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(nylas.Response), args.Error(1)
}

// MockResponse is a canned provider response with a free-form status text.
type MockResponse struct {
	Ok     bool
	Status string
	Body   string
}

func (r *MockResponse) OK() bool {
	return r.Ok
}

func (r *MockResponse) StatusText() string {
	return r.Status
}

func (r *MockResponse) JSON(v any) error {
	return json.Unmarshal([]byte(r.Body), v)
}

// OKResponse returns a successful response with the given JSON body.
func OKResponse(body string) *MockResponse {
	return &MockResponse{Ok: true, Status: "OK", Body: body}
}

// FailedResponse returns a non-ok response with the given status text.
func FailedResponse(status string) *MockResponse {
	return &MockResponse{Status: status}
}
