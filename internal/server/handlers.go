package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Calendars API

func (s *Server) handleListCalendars(w http.ResponseWriter, r *http.Request) {
	names := calendar.CalendarNames{CalendarNames: r.URL.Query()["name"]}
	respondResult(w, s.listCalendars.Execute(r.Context(), names))
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	var request calendar.Availability
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	respondResult(w, s.availability.Execute(r.Context(), request))
}

// statusFor maps an action result to an HTTP status.
func statusFor(err *calendar.Error) int {
	if err == nil {
		return http.StatusOK
	}
	switch err.Code {
	case calendar.ErrorCodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func respondResult[T any](w http.ResponseWriter, resp calendar.Response[T]) {
	respondJSON(w, statusFor(resp.Error), resp)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON response: %v\n", err)
	}
}

// respondError writes a request problem in the same envelope actions use.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, calendar.Failure[struct{}](calendar.ErrorCodeValidation, message))
}
