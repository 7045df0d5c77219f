package nylas

import (
	"context"
	"net/http"
	"slices"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

// GetCalendarsAction lists the grant's calendars with GET /calendars and
// keeps the ones whose name is in the filter.
type GetCalendarsAction struct {
	sender RequestSender
	opts   options
}

func NewGetCalendarsAction(sender RequestSender, opts ...Option) *GetCalendarsAction {
	return &GetCalendarsAction{sender: sender, opts: newOptions(opts)}
}

// Execute fails when no calendar survives transformation. A filter that
// matches nothing returns an empty list.
func (a *GetCalendarsAction) Execute(ctx context.Context, names calendar.CalendarNames) calendar.Response[[]calendar.Calendar] {
	log := executionLogger(a.opts.logger, "list_calendars")

	resp, f := dispatch(ctx, log, a.sender, "/calendars", RequestOptions{Method: http.MethodGet})
	if f != nil {
		return failWith[[]calendar.Calendar](log, f)
	}
	data, f := readData(log, resp)
	if f != nil {
		return failWith[[]calendar.Calendar](log, f)
	}

	calendars := transformList(data, a.opts.calendarFromNylas)
	if len(calendars) == 0 {
		return failWith[[]calendar.Calendar](log, &failure{calendar.ErrorCodeTransformation, msgTransformationFailed})
	}

	calendars = filterByName(calendars, names.CalendarNames)
	log.Info().Int("count", len(calendars)).Strs("names", names.CalendarNames).Msg("calendars fetched")
	return calendar.Success(calendars)
}

func filterByName(calendars []calendar.Calendar, names []string) []calendar.Calendar {
	if len(names) == 0 {
		return calendars
	}
	kept := make([]calendar.Calendar, 0, len(calendars))
	for _, c := range calendars {
		if slices.Contains(names, c.Name) {
			kept = append(kept, c)
		}
	}
	return kept
}
