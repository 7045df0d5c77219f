package calendar

import (
	"encoding/json"
	"fmt"
)

// ConferencingProvider names the service hosting a conference.
type ConferencingProvider string

const (
	ConferencingGoogleMeet     ConferencingProvider = "Google Meet"
	ConferencingZoomMeeting    ConferencingProvider = "Zoom Meeting"
	ConferencingMicrosoftTeams ConferencingProvider = "Microsoft Teams"
)

// ConferencingKind identifies which branch a Conferencing value holds.
type ConferencingKind int

const (
	ConferencingNone ConferencingKind = iota
	ConferencingAutocreate
	ConferencingDetails
)

// ConferenceDetails holds manually entered conference data. Google Meet uses
// Phone and Pin, Zoom uses MeetingCode and Password, Teams only needs URL.
type ConferenceDetails struct {
	URL         string   `json:"url"`
	Phone       []string `json:"phone,omitempty"`
	Pin         string   `json:"pin,omitempty"`
	MeetingCode string   `json:"meetingCode,omitempty"`
	Password    string   `json:"password,omitempty"`
}

// Conferencing either asks the provider to create a conference or carries
// the details of an existing one, never both.
type Conferencing struct {
	Provider   ConferencingProvider
	Kind       ConferencingKind
	Autocreate map[string]any
	Details    *ConferenceDetails
}

// AutocreateConference returns a Conferencing that asks the provider to
// create the meeting.
func AutocreateConference(provider ConferencingProvider, settings map[string]any) *Conferencing {
	return &Conferencing{Provider: provider, Kind: ConferencingAutocreate, Autocreate: settings}
}

// ConferenceWithDetails returns a Conferencing for an existing meeting.
func ConferenceWithDetails(provider ConferencingProvider, details ConferenceDetails) *Conferencing {
	return &Conferencing{Provider: provider, Kind: ConferencingDetails, Details: &details}
}

// EncodeConferencing writes provider plus exactly one of autocreate or
// details, chosen by kind. Nil autocreate settings are written as {}.
func EncodeConferencing[D any](provider ConferencingProvider, kind ConferencingKind, autocreate map[string]any, details *D) ([]byte, error) {
	switch kind {
	case ConferencingAutocreate:
		if autocreate == nil {
			autocreate = map[string]any{}
		}
		return json.Marshal(struct {
			Provider   ConferencingProvider `json:"provider"`
			Autocreate map[string]any       `json:"autocreate"`
		}{provider, autocreate})
	case ConferencingDetails:
		return json.Marshal(struct {
			Provider ConferencingProvider `json:"provider"`
			Details  *D                   `json:"details"`
		}{provider, details})
	default:
		return json.Marshal(struct {
			Provider ConferencingProvider `json:"provider"`
		}{provider})
	}
}

// DecodeConferencing reads provider, autocreate and details. Autocreate wins
// when both branches are present; neither gives ConferencingNone.
func DecodeConferencing[D any](data []byte) (ConferencingProvider, ConferencingKind, map[string]any, *D, error) {
	var raw struct {
		Provider   ConferencingProvider `json:"provider"`
		Autocreate map[string]any       `json:"autocreate"`
		Details    *D                   `json:"details"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", ConferencingNone, nil, nil, fmt.Errorf("failed to decode conferencing: %w", err)
	}
	switch {
	case raw.Autocreate != nil:
		return raw.Provider, ConferencingAutocreate, raw.Autocreate, nil, nil
	case raw.Details != nil:
		return raw.Provider, ConferencingDetails, nil, raw.Details, nil
	default:
		return raw.Provider, ConferencingNone, nil, nil, nil
	}
}

func (c Conferencing) MarshalJSON() ([]byte, error) {
	return EncodeConferencing(c.Provider, c.Kind, c.Autocreate, c.Details)
}

func (c *Conferencing) UnmarshalJSON(data []byte) error {
	provider, kind, autocreate, details, err := DecodeConferencing[ConferenceDetails](data)
	if err != nil {
		return err
	}
	*c = Conferencing{Provider: provider, Kind: kind, Autocreate: autocreate, Details: details}
	return nil
}
