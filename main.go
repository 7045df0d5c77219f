package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omriShneor/calendar_nylas/internal/config"
	"github.com/omriShneor/calendar_nylas/internal/logging"
	"github.com/omriShneor/calendar_nylas/internal/nylas"
	"github.com/omriShneor/calendar_nylas/internal/server"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fatal("loading config", err)
	}
	if err := cfg.Validate(); err != nil {
		fatal("validating config", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.DevMode)

	client, err := nylas.NewClient(nylas.ClientConfig{
		APIKey:  cfg.NylasAPIKey,
		GrantID: cfg.NylasGrantID,
		APIURL:  cfg.NylasAPIURL,
		Timeout: cfg.NylasTimeout,
	})
	if err != nil {
		fatal("creating nylas client", err)
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

	waitForShutdown(srv)
}

func fatal(context string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}

func waitForShutdown(srv *server.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	fmt.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "HTTP server shutdown error: %v\n", err)
	}
}
