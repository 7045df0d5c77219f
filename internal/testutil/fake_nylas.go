package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
	"github.com/omriShneor/calendar_nylas/internal/nylas"
)

// maxAvailabilitySlots caps the slots the fake returns per request.
const maxAvailabilitySlots = 50

// FakeNylas is an in-memory stand-in for the Nylas v3 API. It serves one
// grant and requires the configured API key as a bearer token.
type FakeNylas struct {
	APIKey  string
	GrantID string

	server *httptest.Server

	mu        sync.Mutex
	calendars []nylas.Calendar
	events    map[string]nylas.Event
	order     []string
	failures  map[string]int
}

// NewFakeNylas starts a fake API server. Call Close when done.
func NewFakeNylas(apiKey, grantID string) *FakeNylas {
	f := &FakeNylas{
		APIKey:   apiKey,
		GrantID:  grantID,
		events:   make(map[string]nylas.Event),
		failures: make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v3/grants/{grant}/calendars", f.handleListCalendars)
	mux.HandleFunc("GET /v3/grants/{grant}/events", f.handleListEvents)
	mux.HandleFunc("POST /v3/grants/{grant}/events", f.handleCreateEvent)
	mux.HandleFunc("PUT /v3/grants/{grant}/events/{id}", f.handleUpdateEvent)
	mux.HandleFunc("DELETE /v3/grants/{grant}/events/{id}", f.handleDeleteEvent)
	mux.HandleFunc("POST /v3/calendars/availability", f.handleAvailability)

	f.server = httptest.NewServer(f.authMiddleware(mux))
	return f
}

// URL is the API root to hand to nylas.ClientConfig.
func (f *FakeNylas) URL() string {
	return f.server.URL
}

func (f *FakeNylas) Close() {
	f.server.Close()
}

// AddCalendar registers a calendar for the grant.
func (f *FakeNylas) AddCalendar(c nylas.Calendar) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.Object == "" {
		c.Object = "calendar"
	}
	c.GrantID = f.GrantID
	f.calendars = append(f.calendars, c)
}

// AddEvent stores an event, assigning an id when it has none.
func (f *FakeNylas) AddEvent(e nylas.Event) nylas.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.storeLocked(e)
}

// GetEvent returns a stored event.
func (f *FakeNylas) GetEvent(id string) (nylas.Event, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	return e, ok
}

// EventCount returns how many events are stored.
func (f *FakeNylas) EventCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

// FailNext makes the next request for "METHOD /path-pattern" answer with
// status instead of being served. Patterns match the mux, e.g.
// "GET /v3/grants/{grant}/calendars".
func (f *FakeNylas) FailNext(pattern string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[pattern] = status
}

func (f *FakeNylas) storeLocked(e nylas.Event) nylas.Event {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, exists := f.events[e.ID]; !exists {
		f.order = append(f.order, e.ID)
	}
	f.events[e.ID] = e
	return e
}

func (f *FakeNylas) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.APIKey {
			writeAPIError(w, http.StatusUnauthorized, "invalid api key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// rejected answers for an unknown grant or a queued failure. It reports
// whether the request was answered.
func (f *FakeNylas) rejected(w http.ResponseWriter, r *http.Request) bool {
	if grant := r.PathValue("grant"); grant != "" && grant != f.GrantID {
		writeAPIError(w, http.StatusNotFound, "grant not found")
		return true
	}

	f.mu.Lock()
	status, ok := f.failures[r.Pattern]
	delete(f.failures, r.Pattern)
	f.mu.Unlock()
	if !ok {
		return false
	}
	writeAPIError(w, status, http.StatusText(status))
	return true
}

func (f *FakeNylas) handleListCalendars(w http.ResponseWriter, r *http.Request) {
	if f.rejected(w, r) {
		return
	}
	f.mu.Lock()
	calendars := append([]nylas.Calendar{}, f.calendars...)
	f.mu.Unlock()
	writeData(w, http.StatusOK, calendars)
}

func (f *FakeNylas) handleListEvents(w http.ResponseWriter, r *http.Request) {
	if f.rejected(w, r) {
		return
	}
	q := r.URL.Query()
	calendarID := q.Get("calendar_id")
	if calendarID == "" {
		writeAPIError(w, http.StatusBadRequest, "calendar_id is required")
		return
	}
	start, _ := strconv.ParseInt(q.Get("start"), 10, 64)
	end, _ := strconv.ParseInt(q.Get("end"), 10, 64)

	f.mu.Lock()
	events := make([]nylas.Event, 0, len(f.order))
	for _, id := range f.order {
		e, ok := f.events[id]
		if !ok || e.CalendarID != calendarID || !overlaps(e.When, start, end) {
			continue
		}
		events = append(events, e)
	}
	f.mu.Unlock()

	writeData(w, http.StatusOK, events)
}

func (f *FakeNylas) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	if f.rejected(w, r) {
		return
	}
	var e nylas.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeAPIError(w, http.StatusBadRequest, err.Error())
		return
	}
	e.ID = ""
	e.CalendarID = r.URL.Query().Get("calendar_id")

	f.mu.Lock()
	e = f.storeLocked(e)
	f.mu.Unlock()

	writeData(w, http.StatusOK, e)
}

func (f *FakeNylas) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	if f.rejected(w, r) {
		return
	}
	id := r.PathValue("id")
	var e nylas.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeAPIError(w, http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.events[id]
	if !ok || existing.CalendarID != r.URL.Query().Get("calendar_id") {
		writeAPIError(w, http.StatusNotFound, "event not found")
		return
	}
	e.ID = id
	e.CalendarID = existing.CalendarID
	writeData(w, http.StatusOK, f.storeLocked(e))
}

func (f *FakeNylas) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if f.rejected(w, r) {
		return
	}
	id := r.PathValue("id")

	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.events[id]
	if !ok || existing.CalendarID != r.URL.Query().Get("calendar_id") {
		writeAPIError(w, http.StatusNotFound, "event not found")
		return
	}
	delete(f.events, id)
	for i, stored := range f.order {
		if stored == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"request_id": uuid.NewString()})
}

// handleAvailability reports every slot of the window as free for all
// participants.
func (f *FakeNylas) handleAvailability(w http.ResponseWriter, r *http.Request) {
	if f.rejected(w, r) {
		return
	}
	var req nylas.Availability
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.DurationMinutes <= 0 || req.EndTime <= req.StartTime {
		writeAPIError(w, http.StatusBadRequest, "invalid window")
		return
	}

	emails := make([]string, 0, len(req.Participants))
	for _, p := range req.Participants {
		emails = append(emails, p.Email)
	}
	step := int64(req.DurationMinutes) * 60
	if req.IntervalMinutes != nil && *req.IntervalMinutes > 0 {
		step = int64(*req.IntervalMinutes) * 60
	}
	length := int64(req.DurationMinutes) * 60

	slots := []*nylas.TimeSlot{}
	for t := req.StartTime; t+length <= req.EndTime && len(slots) < maxAvailabilitySlots; t += step {
		slots = append(slots, &nylas.TimeSlot{Emails: emails, StartTime: t, EndTime: t + length})
	}

	writeData(w, http.StatusOK, nylas.AvailabilityInfo{Order: emails, TimeSlots: slots})
}

// overlaps reports whether a timed event touches [start, end]. Date-based
// events and open windows always match.
func overlaps(w nylas.When, start, end int64) bool {
	if start == 0 || end == 0 {
		return true
	}
	switch w.Kind {
	case calendar.WhenTime:
		return w.Time >= start && w.Time <= end
	case calendar.WhenTimespan:
		return w.StartTime <= end && w.EndTime >= start
	default:
		return true
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, map[string]any{
		"request_id": uuid.NewString(),
		"data":       data,
	})
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"request_id": uuid.NewString(),
		"error": map[string]string{
			"type":    "api_error",
			"message": message,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
