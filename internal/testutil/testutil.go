package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/omriShneor/calendar_nylas/internal/nylas"
	"github.com/omriShneor/calendar_nylas/internal/server"
)

const (
	TestAPIKey  = "nyk_test_key"
	TestGrantID = "grant-test-1"
)

// TestServer wraps the HTTP API, backed by a fake Nylas API, for E2E testing
type TestServer struct {
	Server     *server.Server
	HTTPServer *httptest.Server
	Nylas      *FakeNylas
	t          *testing.T
}

// TestServerOption configures a test server
type TestServerOption func(*TestServer)

// WithCalendars seeds the fake provider with calendars
func WithCalendars(calendars ...nylas.Calendar) TestServerOption {
	return func(ts *TestServer) {
		for _, c := range calendars {
			ts.Nylas.AddCalendar(c)
		}
	}
}

// NewTestServer creates a fully wired test server for E2E testing
func NewTestServer(t *testing.T, opts ...TestServerOption) *TestServer {
	t.Helper()

	ts := &TestServer{
		Nylas: NewFakeNylas(TestAPIKey, TestGrantID),
		t:     t,
	}

	// Apply options before creating server
	for _, opt := range opts {
		opt(ts)
	}

	client, err := nylas.NewClient(nylas.ClientConfig{
		APIKey:  TestAPIKey,
		GrantID: TestGrantID,
		APIURL:  ts.Nylas.URL(),
	})
	require.NoError(t, err, "failed to create nylas client")

	ts.Server = server.New(server.ServerConfig{
		Actions: server.NylasActions(client, zerolog.Nop()),
		Port:    0, // Will use httptest server
		Logger:  zerolog.Nop(),
	})
	ts.HTTPServer = httptest.NewServer(ts.Server.Handler())

	t.Cleanup(func() {
		ts.HTTPServer.Close()
		ts.Nylas.Close()
	})

	return ts
}

// BaseURL returns the test server base URL
func (ts *TestServer) BaseURL() string {
	return ts.HTTPServer.URL
}

// Client returns an HTTP client configured for the test server
func (ts *TestServer) Client() *http.Client {
	return ts.HTTPServer.Client()
}
