package shared

import (
	"net/http"
	"time"

	"hirequality/internal/domain/hires"
)

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// ParseFilter reads the optional from/to query parameters. Issues are added to
// v; the returned filter only carries the dates that parsed.
func ParseFilter(r *http.Request, v *Validator) hires.Filter {
	var filter hires.Filter
	query := r.URL.Query()
	if raw := query.Get("from"); raw != "" {
		if from, ok := v.Date("from", raw); ok {
			from = truncateDay(from)
			filter.From = &from
		}
	}
	if raw := query.Get("to"); raw != "" {
		if to, ok := v.Date("to", raw); ok {
			to = truncateDay(to)
			filter.To = &to
		}
	}
	if filter.From != nil && filter.To != nil {
		v.DateOrder("from", *filter.From, "to", *filter.To)
	}
	return filter
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
