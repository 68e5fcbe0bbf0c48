// Package timefmt is the single home for date/time display formatting and
// slot duration arithmetic. The backend mixes ISO datetimes, bare dates, and
// bare "HH:MM:SS" clock strings; every caller goes through this package
// instead of parsing locally.
package timefmt

import (
	"math"
	"strings"
	"time"
)

// anchorDate is an arbitrary fixed day used to difference two bare clock
// strings so that only the time-of-day delta matters.
const anchorDate = "2000-01-01"

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var clockLayouts = []string{"15:04:05", "15:04"}

// IsClock reports whether the input is a bare colon-delimited time-only
// token such as "09:00:00" or "09:00".
func IsClock(s string) bool {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func parseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO date or datetime in the long weekday form used
// across the candidate screens, e.g. "Monday, 14 September 2026".
// Unparseable input yields an empty string; it never panics.
func FormatDate(dateLike string) string {
	t, ok := parseDateTime(dateLike)
	if !ok {
		return ""
	}
	return t.Format("Monday, 2 January 2006")
}

// FormatTime renders a display clock "HH:MM". A bare clock string is
// truncated directly, without constructing a throwaway date, so that no
// timezone shift can alter the displayed hour. Anything else is parsed as a
// full datetime and its clock extracted. Unparseable input yields "".
func FormatTime(timeLike string) string {
	s := strings.TrimSpace(timeLike)
	if IsClock(s) {
		if len(s) > 5 && strings.Count(s, ":") == 2 {
			return s[:5]
		}
		if len(s) == 4 { // "H:MM" padded for display
			return "0" + s
		}
		return s
	}
	t, ok := parseDateTime(s)
	if !ok {
		return ""
	}
	return t.Format("15:04")
}

// SlotDuration returns the whole-minute duration between start and end.
// Two bare clock strings are anchored to the same fixed date before
// differencing. The result is rounded to the nearest minute and clamped at
// zero: a negative delta only arises from corrupt server data and renders
// more sensibly as an empty duration than a negative one.
func SlotDuration(start, end string) int {
	var from, to time.Time
	var ok bool

	if IsClock(start) && IsClock(end) {
		from, ok = parseDateTime(anchorDate + "T" + normalizeClock(start))
		if !ok {
			return 0
		}
		to, ok = parseDateTime(anchorDate + "T" + normalizeClock(end))
		if !ok {
			return 0
		}
	} else {
		from, ok = parseDateTime(start)
		if !ok {
			return 0
		}
		to, ok = parseDateTime(end)
		if !ok {
			return 0
		}
	}

	minutes := int(math.Round(to.Sub(from).Minutes()))
	if minutes < 0 {
		return 0
	}
	return minutes
}

// normalizeClock expands "HH:MM" to "HH:MM:SS" so one layout suffices
func normalizeClock(s string) string {
	s = strings.TrimSpace(s)
	if strings.Count(s, ":") == 1 {
		return s + ":00"
	}
	return s
}
