package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := calendar.EventQuery{CalendarID: q.Get("calendar_id")}

	var err error
	if query.StartTime, err = parseEpoch(q.Get("start")); err != nil {
		respondError(w, http.StatusBadRequest, "invalid start")
		return
	}
	if query.EndTime, err = parseEpoch(q.Get("end")); err != nil {
		respondError(w, http.StatusBadRequest, "invalid end")
		return
	}

	respondResult(w, s.listEvents.Execute(r.Context(), query))
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var event calendar.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	respondResult(w, s.createEvent.Execute(r.Context(), event))
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var event calendar.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	event.ID = r.PathValue("id")
	respondResult(w, s.updateEvent.Execute(r.Context(), event))
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := calendar.EventID{
		EventID:    r.PathValue("id"),
		CalendarID: r.URL.Query().Get("calendar_id"),
	}
	respondResult(w, s.deleteEvent.Execute(r.Context(), id))
}

// parseEpoch reads Unix seconds. An empty value is 0 so the action can
// report the missing field.
func parseEpoch(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseInt(value, 10, 64)
}
