package nylas

import (
	"slices"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

// AvailabilityToNylas converts an availability request into its wire form.
type AvailabilityToNylas struct{}

func (AvailabilityToNylas) Transform(in *calendar.Availability) *Availability {
	if in == nil {
		return nil
	}
	return &Availability{
		Participants: mapSlice(in.Participants, func(p calendar.AvailabilityParticipant) (AvailabilityParticipant, bool) {
			return AvailabilityParticipant{
				Email:       p.Email,
				CalendarIDs: slices.Clone(p.CalendarIDs),
				OpenHours:   mapSlice(p.OpenHours, openHoursToNylas),
			}, true
		}),
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		DurationMinutes:   in.DurationMinutes,
		IntervalMinutes:   clonePtr(in.IntervalMinutes),
		RoundTo:           clonePtr(in.RoundTo),
		AvailabilityRules: rulesToNylas(in.AvailabilityRules),
	}
}

func rulesToNylas(in *calendar.AvailabilityRules) *AvailabilityRules {
	if in == nil {
		return nil
	}
	out := &AvailabilityRules{
		AvailabilityMethod: string(in.AvailabilityMethod),
		DefaultOpenHours:   mapSlice(in.DefaultOpenHours, openHoursToNylas),
		RoundRobinGroupID:  in.RoundRobinGroupID,
	}
	if in.Buffer != nil {
		out.Buffer = &Buffer{Before: in.Buffer.Before, After: in.Buffer.After}
	}
	return out
}

func openHoursToNylas(in calendar.OpenHours) (OpenHours, bool) {
	return OpenHours{
		Days:     slices.Clone(in.Days),
		Timezone: in.Timezone,
		Start:    in.Start,
		End:      in.End,
		Exdates:  slices.Clone(in.Exdates),
	}, true
}

// AvailabilityInfoFromNylas converts an availability response into the
// domain shape. Missing sequences come back empty.
type AvailabilityInfoFromNylas struct{}

func (AvailabilityInfoFromNylas) Transform(in *AvailabilityInfo) *calendar.AvailabilityInfo {
	if in == nil {
		return nil
	}
	slots := make([]calendar.TimeSlot, 0, len(in.TimeSlots))
	for _, slot := range in.TimeSlots {
		if slot == nil {
			continue
		}
		emails := slices.Clone(slot.Emails)
		if emails == nil {
			emails = []string{}
		}
		slots = append(slots, calendar.TimeSlot{
			Emails:    emails,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}
	order := slices.Clone(in.Order)
	if order == nil {
		order = []string{}
	}
	return &calendar.AvailabilityInfo{Order: order, TimeSlots: slots}
}
