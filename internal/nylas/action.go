package nylas

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

const (
	msgInvalidInput         = "Invalid input"
	msgParseFailed          = "Failed to parse response"
	msgTransformationFailed = "Failed to transform data"
)

// Option customizes an action. Unset collaborators get the package defaults.
type Option func(*options)

type options struct {
	logger                    zerolog.Logger
	eventToNylas              Transformer[calendar.Event, Event]
	eventFromNylas            Transformer[Event, calendar.Event]
	calendarFromNylas         Transformer[Calendar, calendar.Calendar]
	availabilityToNylas       Transformer[calendar.Availability, Availability]
	availabilityInfoFromNylas Transformer[AvailabilityInfo, calendar.AvailabilityInfo]
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func WithEventToNylas(t Transformer[calendar.Event, Event]) Option {
	return func(o *options) { o.eventToNylas = t }
}

func WithEventFromNylas(t Transformer[Event, calendar.Event]) Option {
	return func(o *options) { o.eventFromNylas = t }
}

func WithCalendarFromNylas(t Transformer[Calendar, calendar.Calendar]) Option {
	return func(o *options) { o.calendarFromNylas = t }
}

func WithAvailabilityToNylas(t Transformer[calendar.Availability, Availability]) Option {
	return func(o *options) { o.availabilityToNylas = t }
}

func WithAvailabilityInfoFromNylas(t Transformer[AvailabilityInfo, calendar.AvailabilityInfo]) Option {
	return func(o *options) { o.availabilityInfoFromNylas = t }
}

func newOptions(opts []Option) options {
	o := options{
		logger:                    zerolog.Nop(),
		eventToNylas:              EventToNylas{},
		eventFromNylas:            EventFromNylas{},
		calendarFromNylas:         CalendarFromNylas{},
		availabilityToNylas:       AvailabilityToNylas{},
		availabilityInfoFromNylas: AvailabilityInfoFromNylas{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// executionLogger tags every line of one execution with the action name and
// a fresh execution id.
func executionLogger(base zerolog.Logger, action string) zerolog.Logger {
	return base.With().
		Str("action", action).
		Str("execution_id", uuid.NewString()).
		Logger()
}

// failure is a terminal pipeline state.
type failure struct {
	code    calendar.ErrorCode
	message string
}

func failWith[T any](log zerolog.Logger, f *failure) calendar.Response[T] {
	log.Error().Str("code", string(f.code)).Msg(f.message)
	return calendar.Failure[T](f.code, f.message)
}

// encodeOutbound validates a transformed payload and serializes it.
func encodeOutbound[T any](log zerolog.Logger, payload *T) ([]byte, *failure) {
	if payload == nil {
		return nil, &failure{calendar.ErrorCodeValidation, msgInvalidInput}
	}
	if err := Validate(payload); err != nil {
		log.Debug().Err(err).Msg("outbound payload rejected")
		return nil, &failure{calendar.ErrorCodeValidation, err.Error()}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Debug().Err(err).Msg("outbound payload not serializable")
		return nil, &failure{calendar.ErrorCodeValidation, msgInvalidInput}
	}
	return body, nil
}

// dispatch sends the request and reports whether the provider accepted it.
func dispatch(ctx context.Context, log zerolog.Logger, sender RequestSender, path string, opts RequestOptions) (Response, *failure) {
	event := log.Debug().Str("method", opts.Method).Str("path", path)
	if opts.Body != nil {
		event = event.RawJSON("payload", opts.Body)
	}
	event.Msg("dispatching request")

	resp, err := sender.Send(ctx, path, opts)
	if err != nil {
		return nil, &failure{calendar.ErrorCodeRequestFailed, err.Error()}
	}
	if !resp.OK() {
		return nil, &failure{calendar.ErrorCodeRequestFailed, resp.StatusText()}
	}
	return resp, nil
}

// readData decodes the response envelope and returns its data field.
func readData(log zerolog.Logger, resp Response) (json.RawMessage, *failure) {
	var envelope *struct {
		Data json.RawMessage `json:"data"`
	}
	if err := resp.JSON(&envelope); err != nil {
		log.Debug().Err(err).Msg("response is not JSON")
		return nil, &failure{calendar.ErrorCodeParse, msgParseFailed}
	}
	if envelope == nil {
		return nil, &failure{calendar.ErrorCodeParse, msgParseFailed}
	}
	log.Debug().Int("data_bytes", len(envelope.Data)).Msg("response parsed")
	return envelope.Data, nil
}

// decodeOne decodes a single wire value. Null or malformed data is absent.
func decodeOne[T any](raw json.RawMessage) *T {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return &value
}

// transformList decodes a wire list element by element and keeps the ones
// that decode and transform.
func transformList[In, Out any](raw json.RawMessage, t Transformer[In, Out]) []Out {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]Out, 0, len(items))
	for _, item := range items {
		if v := t.Transform(decodeOne[In](item)); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

var (
	_ calendar.CreateEventAction   = (*CreateCalendarEventAction)(nil)
	_ calendar.UpdateEventAction   = (*UpdateCalendarEventAction)(nil)
	_ calendar.DeleteEventAction   = (*DeleteCalendarEventAction)(nil)
	_ calendar.ListEventsAction    = (*GetCalendarEventsAction)(nil)
	_ calendar.ListCalendarsAction = (*GetCalendarsAction)(nil)
	_ calendar.AvailabilityAction  = (*GetCalendarsAvailabilityAction)(nil)
	_ RequestSender                = (*Client)(nil)
)
