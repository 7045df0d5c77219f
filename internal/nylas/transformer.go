package nylas

import (
	"github.com/omriShneor/calendar_nylas/internal/calendar"
)

// Transformer converts one shape into another. A nil input or a nil result
// means the value is absent.
type Transformer[In, Out any] interface {
	Transform(in *In) *Out
}

// TransformerFunc adapts a plain function to Transformer.
type TransformerFunc[In, Out any] func(in *In) *Out

func (f TransformerFunc[In, Out]) Transform(in *In) *Out {
	return f(in)
}

// mapSlice converts every element and drops the ones fn rejects. Order is
// kept and a nil input stays nil.
func mapSlice[In, Out any](in []In, fn func(In) (Out, bool)) []Out {
	if in == nil {
		return nil
	}
	out := make([]Out, 0, len(in))
	for _, item := range in {
		if v, ok := fn(item); ok {
			out = append(out, v)
		}
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// convertWhen rebuilds w keeping only the fields of its variant.
func convertWhen(w calendar.When) (calendar.When, bool) {
	switch w.Kind {
	case calendar.WhenTime:
		return calendar.AtTime(w.Time, w.Timezone), true
	case calendar.WhenTimespan:
		return calendar.Timespan(w.StartTime, w.EndTime, w.StartTimezone, w.EndTimezone), true
	case calendar.WhenDate:
		return calendar.OnDate(w.Date), true
	case calendar.WhenDatespan:
		return calendar.Datespan(w.StartDate, w.EndDate), true
	default:
		return calendar.When{}, false
	}
}
