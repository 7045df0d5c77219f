package nylas

import (
	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

// When is the wire form of calendar.When. Kind is resolved once on decode.
type When calendar.When

var wireWhenFields = calendar.WhenFields{
	Time:          "time",
	Timezone:      "timezone",
	StartTime:     "start_time",
	EndTime:       "end_time",
	StartTimezone: "start_timezone",
	EndTimezone:   "end_timezone",
	Date:          "date",
	StartDate:     "start_date",
	EndDate:       "end_date",
}

func (w When) MarshalJSON() ([]byte, error) {
	return calendar.EncodeWhen(calendar.When(w), wireWhenFields)
}

func (w *When) UnmarshalJSON(data []byte) error {
	decoded, err := calendar.DecodeWhen(data, wireWhenFields)
	if err != nil {
		return err
	}
	*w = When(decoded)
	return nil
}

// Conferencing is the wire form of calendar.Conferencing. The json tags name
// validation paths; encoding goes through MarshalJSON.
type Conferencing struct {
	Provider   calendar.ConferencingProvider `json:"provider"`
	Kind       calendar.ConferencingKind     `json:"-"`
	Autocreate map[string]any                `json:"autocreate"`
	Details    *ConferenceDetails            `json:"details"`
}

func (c Conferencing) MarshalJSON() ([]byte, error) {
	return calendar.EncodeConferencing(c.Provider, c.Kind, c.Autocreate, c.Details)
}

func (c *Conferencing) UnmarshalJSON(data []byte) error {
	provider, kind, autocreate, details, err := calendar.DecodeConferencing[ConferenceDetails](data)
	if err != nil {
		return err
	}
	*c = Conferencing{Provider: provider, Kind: kind, Autocreate: autocreate, Details: details}
	return nil
}
