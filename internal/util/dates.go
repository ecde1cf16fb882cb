package util

import (
	"errors"
	"strings"
	"time"
)

// ParseDateRange turns optional start/end strings into query bounds.
// Inputs accept RFC3339 timestamps or bare YYYY-MM-DD dates; a date-only
// end is widened by a day so the whole end date is included. A reversed
// range is swapped rather than rejected.
func ParseDateRange(startStr, endStr *string) (start time.Time, hasStart bool, endExclusive time.Time, hasEnd bool, err error) {
	var (
		rawStart, rawEnd time.Time
		endDateOnly      bool
	)

	if startStr != nil {
		t, ok, _, e := parseDateOrTimestamp(*startStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		if ok {
			rawStart = t
			hasStart = true
		}
	}

	if endStr != nil {
		t, ok, dateOnly, e := parseDateOrTimestamp(*endStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		if ok {
			rawEnd = t
			hasEnd = true
			endDateOnly = dateOnly
		}
	}

	if hasStart && hasEnd && rawEnd.Before(rawStart) {
		rawStart, rawEnd = rawEnd, rawStart
	}

	if hasStart {
		start = rawStart
	}
	if hasEnd {
		endExclusive = rawEnd
		if endDateOnly {
			endExclusive = rawEnd.AddDate(0, 0, 1)
		}
	}

	return start, hasStart, endExclusive, hasEnd, nil
}

func parseDateOrTimestamp(s string) (t time.Time, ok bool, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, false, nil
	}

	if tt, e := time.Parse(time.RFC3339, s); e == nil {
		return tt, true, false, nil
	}
	if tt, e := time.Parse("2006-01-02", s); e == nil {
		return tt, true, true, nil
	}

	return time.Time{}, false, false, errors.New("invalid date format (use YYYY-MM-DD or RFC3339)")
}
