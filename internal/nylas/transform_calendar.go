package nylas

import "github.com/omriShneor/calendar_nylas/internal/calendar"

// CalendarFromNylas converts a wire calendar into a domain calendar. Missing
// optional fields become "" or false.
type CalendarFromNylas struct{}

func (CalendarFromNylas) Transform(in *Calendar) *calendar.Calendar {
	if in == nil {
		return nil
	}
	return &calendar.Calendar{
		ID:                 in.ID,
		Name:               in.Name,
		Description:        in.Description,
		Timezone:           in.Timezone,
		Location:           in.Location,
		ReadOnly:           in.ReadOnly,
		IsPrimary:          in.IsPrimary,
		IsOwnedByUser:      in.IsOwnedByUser,
		HexColor:           in.HexColor,
		HexForegroundColor: in.HexForegroundColor,
	}
}
