package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

type Server struct {
	createEvent   calendar.CreateEventAction
	updateEvent   calendar.UpdateEventAction
	deleteEvent   calendar.DeleteEventAction
	listEvents    calendar.ListEventsAction
	listCalendars calendar.ListCalendarsAction
	availability  calendar.AvailabilityAction
	logger        zerolog.Logger
	httpSrv       *http.Server
	port          int
}

// Actions are the calendar operations the server exposes.
type Actions struct {
	CreateEvent   calendar.CreateEventAction
	UpdateEvent   calendar.UpdateEventAction
	DeleteEvent   calendar.DeleteEventAction
	ListEvents    calendar.ListEventsAction
	ListCalendars calendar.ListCalendarsAction
	Availability  calendar.AvailabilityAction
}

// ServerConfig holds configuration for server creation
type ServerConfig struct {
	Actions Actions
	Port    int
	Logger  zerolog.Logger
}

func New(cfg ServerConfig) *Server {
	s := &Server{
		createEvent:   cfg.Actions.CreateEvent,
		updateEvent:   cfg.Actions.UpdateEvent,
		deleteEvent:   cfg.Actions.DeleteEvent,
		listEvents:    cfg.Actions.ListEvents,
		listCalendars: cfg.Actions.ListCalendars,
		availability:  cfg.Actions.Availability,
		logger:        cfg.Logger,
		port:          cfg.Port,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.loggingMiddleware(s.corsMiddleware(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", s.handleHealthCheck)

	// Calendars
	mux.HandleFunc("GET /api/calendars", s.handleListCalendars)
	mux.HandleFunc("POST /api/availability", s.handleAvailability)

	// Events
	mux.HandleFunc("GET /api/events", s.handleListEvents)
	mux.HandleFunc("POST /api/events", s.handleCreateEvent)
	mux.HandleFunc("PUT /api/events/{id}", s.handleUpdateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", s.handleDeleteEvent)
}

func (s *Server) Start() error {
	s.logger.Info().Int("port", s.port).Msg("starting HTTP server")
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// corsMiddleware adds CORS headers so browser clients can call the API
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
