// Package main provides a test server for exercising the calendar API
// without a Nylas account. Calls go to an in-memory fake of the Nylas API
// seeded with two calendars and one event.
//
// Usage:
//
//	go run ./cmd/testserver
//
// CALENDAR_HTTP_PORT and CALENDAR_LOG_LEVEL are honored.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
	"github.com/omriShneor/calendar_nylas/internal/config"
	"github.com/omriShneor/calendar_nylas/internal/logging"
	"github.com/omriShneor/calendar_nylas/internal/nylas"
	"github.com/omriShneor/calendar_nylas/internal/server"
	"github.com/omriShneor/calendar_nylas/internal/testutil"
)

func main() {
	fmt.Println("Starting calendar test server...")
	fmt.Println("This server talks to an in-memory fake of the Nylas API.")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, true)

	fake := testutil.NewFakeNylas(testutil.TestAPIKey, testutil.TestGrantID)
	defer fake.Close()
	seed(fake)
	fmt.Printf("Fake Nylas API listening on %s\n", fake.URL())

	client, err := nylas.NewClient(nylas.ClientConfig{
		APIKey:  testutil.TestAPIKey,
		GrantID: testutil.TestGrantID,
		APIURL:  fake.URL(),
	})
	if err != nil {
		fmt.Printf("Failed to create client: %v\n", err)
		os.Exit(1)
	}

	srv := server.New(server.ServerConfig{
		Actions: server.NylasActions(client, logger),
		Port:    cfg.HTTPPort,
		Logger:  logger,
	})
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "HTTP server error: %v\n", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	fmt.Println("Shutting down test server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "HTTP server shutdown error: %v\n", err)
	}
}

func seed(fake *testutil.FakeNylas) {
	fake.AddCalendar(nylas.Calendar{
		ID:            "primary",
		Name:          "Work",
		Timezone:      "America/New_York",
		IsPrimary:     true,
		IsOwnedByUser: true,
	})
	fake.AddCalendar(nylas.Calendar{
		ID:       "holidays",
		Name:     "Holidays",
		ReadOnly: true,
	})

	now := time.Now().Truncate(time.Hour).Unix()
	fake.AddEvent(nylas.Event{
		CalendarID: "primary",
		Busy:       true,
		Title:      "Standup",
		When:       nylas.When(calendar.Timespan(now+3600, now+5400, "America/New_York", "America/New_York")),
	})
}
