package nylas

import (
	"context"
	"net/http"

	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

// GetCalendarsAvailabilityAction asks POST /calendars/availability for free
// time slots. The endpoint lives outside the grant.
type GetCalendarsAvailabilityAction struct {
	sender RequestSender
	opts   options
}

func NewGetCalendarsAvailabilityAction(sender RequestSender, opts ...Option) *GetCalendarsAvailabilityAction {
	return &GetCalendarsAvailabilityAction{sender: sender, opts: newOptions(opts)}
}

func (a *GetCalendarsAvailabilityAction) Execute(ctx context.Context, request calendar.Availability) calendar.Response[calendar.AvailabilityInfo] {
	log := executionLogger(a.opts.logger, "get_availability")

	body, f := encodeOutbound(log, a.opts.availabilityToNylas.Transform(&request))
	if f != nil {
		return failWith[calendar.AvailabilityInfo](log, f)
	}

	resp, f := dispatch(ctx, log, a.sender, "/calendars/availability", RequestOptions{
		Method:       http.MethodPost,
		Body:         body,
		WithoutGrant: true,
	})
	if f != nil {
		return failWith[calendar.AvailabilityInfo](log, f)
	}
	data, f := readData(log, resp)
	if f != nil {
		return failWith[calendar.AvailabilityInfo](log, f)
	}

	info := a.opts.availabilityInfoFromNylas.Transform(decodeOne[AvailabilityInfo](data))
	if info == nil {
		return failWith[calendar.AvailabilityInfo](log, &failure{calendar.ErrorCodeTransformation, msgTransformationFailed})
	}

	log.Info().Int("slots", len(info.TimeSlots)).Msg("availability fetched")
	return calendar.Success(*info)
}
