package venue

import (
	"strconv"
	"strings"
	"time"
)

// CLOSED_MARKER is the schedule value of a day without screenings.
const CLOSED_MARKER = "Fermé"

// NO_HOURS_TEXT is shown when a day has no schedule entry.
const NO_HOURS_TEXT = "Horaires non disponibles"

// Weekdays indexed by time.Weekday (Sunday=0 ... Saturday=6). The catalog
// keys its schedules with these names.
var Weekdays = [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

// WeeklySchedule maps a weekday name to CLOSED_MARKER or "HH:MM-HH:MM".
type WeeklySchedule map[string]string

// DayName returns the schedule key for t.
func DayName(t time.Time) string {
	return Weekdays[t.Weekday()]
}

// IsOpenAt reports whether the venue is open at t, using only the entry of
// t's own weekday. A venue without any schedule is considered open; a day
// without an entry is closed; an entry that cannot be read is considered open.
func (s WeeklySchedule) IsOpenAt(t time.Time) bool {
	if len(s) == 0 {
		return true
	}

	hours, ok := s[DayName(t)]
	if !ok || isClosed(hours) {
		return false
	}

	opens, closes, ok := parseInterval(hours)
	if !ok {
		return true
	}

	now := t.Hour()*60 + t.Minute()
	if opens <= closes {
		return now >= opens && now <= closes
	}
	// crosses midnight
	return now >= opens || now <= closes
}

// HoursOn returns the raw entry for t's weekday, or NO_HOURS_TEXT.
func (s WeeklySchedule) HoursOn(t time.Time) string {
	if hours, ok := s[DayName(t)]; ok && hours != "" {
		return hours
	}
	return NO_HOURS_TEXT
}

func isClosed(hours string) bool {
	h := strings.TrimSpace(hours)
	return h == "" || strings.EqualFold(h, CLOSED_MARKER) || strings.EqualFold(h, "ferme") || strings.EqualFold(h, "closed")
}

// parseInterval reads "HH:MM-HH:MM" into minutes since midnight.
func parseInterval(hours string) (opens, closes int, ok bool) {
	parts := strings.SplitN(hours, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, end := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if start == "" || end == "" {
		return 0, 0, false
	}

	opens, ok = parseClock(start)
	if !ok {
		return 0, 0, false
	}
	closes, ok = parseClock(end)
	if !ok {
		return 0, 0, false
	}
	return opens, closes, true
}

func parseClock(clock string) (int, bool) {
	hm := strings.SplitN(clock, ":", 2)
	h, err := strconv.Atoi(strings.TrimSpace(hm[0]))
	if err != nil || h < 0 || h > 24 {
		return 0, false
	}
	m := 0
	if len(hm) == 2 {
		m, err = strconv.Atoi(strings.TrimSpace(hm[1]))
		if err != nil || m < 0 || m > 59 {
			return 0, false
		}
	}
	return h*60 + m, true
}
