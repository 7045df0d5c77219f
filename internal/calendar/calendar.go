// Package calendar holds the provider-agnostic calendar model, the result
// envelope every action returns and the action contracts.
package calendar

// Calendar is a calendar the user can see.
type Calendar struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Timezone           string `json:"timezone"`
	Location           string `json:"location"`
	ReadOnly           bool   `json:"readOnly"`
	IsPrimary          bool   `json:"isPrimary"`
	IsOwnedByUser      bool   `json:"isOwnedByUser"`
	HexColor           string `json:"hexColor,omitempty"`
	HexForegroundColor string `json:"hexForegroundColor,omitempty"`
}

// CalendarNames filters a calendar listing by name. An empty list keeps
// every calendar.
type CalendarNames struct {
	CalendarNames []string `json:"calendarNames"`
}
