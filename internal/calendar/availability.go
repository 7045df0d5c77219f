package calendar

// AvailabilityMethod decides how free time is combined across participants.
type AvailabilityMethod string

const (
	AvailabilityCollective      AvailabilityMethod = "collective"
	AvailabilityMaxFairness     AvailabilityMethod = "max-fairness"
	AvailabilityMaxAvailability AvailabilityMethod = "max-availability"
)

// Availability asks for free time slots shared by a set of participants.
type Availability struct {
	Participants      []AvailabilityParticipant `json:"participants"`
	StartTime         int64                     `json:"startTime"`
	EndTime           int64                     `json:"endTime"`
	DurationMinutes   int                       `json:"durationMinutes"`
	IntervalMinutes   *int                      `json:"intervalMinutes,omitempty"`
	RoundTo           *int                      `json:"roundTo,omitempty"`
	AvailabilityRules *AvailabilityRules        `json:"availabilityRules,omitempty"`
}

type AvailabilityParticipant struct {
	Email       string      `json:"email"`
	CalendarIDs []string    `json:"calendarIds,omitempty"`
	OpenHours   []OpenHours `json:"openHours,omitempty"`
}

// OpenHours limits availability to some days and hours. Days run from
// 0 (Sunday) to 6 (Saturday), Start and End use 24-hour "HH:MM".
type OpenHours struct {
	Days     []int    `json:"days"`
	Timezone string   `json:"timezone"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Exdates  []string `json:"exdates,omitempty"`
}

type AvailabilityRules struct {
	AvailabilityMethod AvailabilityMethod `json:"availabilityMethod"`
	Buffer             *Buffer            `json:"buffer,omitempty"`
	DefaultOpenHours   []OpenHours        `json:"defaultOpenHours,omitempty"`
	RoundRobinGroupID  string             `json:"roundRobinGroupId,omitempty"`
}

// Buffer is the free time in minutes kept around existing meetings.
type Buffer struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

// AvailabilityInfo is the answer to an Availability request.
type AvailabilityInfo struct {
	Order     []string   `json:"order"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

type TimeSlot struct {
	Emails    []string `json:"emails"`
	StartTime int64    `json:"startTime"`
	EndTime   int64    `json:"endTime"`
}
