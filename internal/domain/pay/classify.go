package pay

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60

	nightEndsMin     = 6 * 60  // weekday shifts starting before 06:00 are night
	eveningBoundsMin = 20 * 60 // weekday shifts reaching 20:00 are evening
)

// ParseClock converts an HH:MM string into minutes since midnight.
func ParseClock(value string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return hour*60 + minute, nil
}

// SpanMinutes returns the worked span between start and end in minutes.
// End at or before start means the shift runs into the next day.
func SpanMinutes(startMin, endMin int) int {
	if endMin <= startMin {
		endMin += minutesPerDay
	}
	return endMin - startMin
}

// Classify maps a shift onto its pay category. Rules short-circuit in
// order: public holiday beats weekend, weekend beats time of day. Weekday
// shifts classify by the span they cover, not just the start time: crossing
// midnight makes a night shift, and ending at or past 20:00 makes an
// evening shift (a shift ending at exactly 20:00 is evening, not day).
func Classify(date time.Time, startMin, endMin int, publicHoliday bool) Category {
	if publicHoliday {
		return CategoryPublicHoliday
	}
	switch date.Weekday() {
	case time.Saturday:
		return CategorySaturday
	case time.Sunday:
		return CategorySunday
	}

	if endMin <= startMin {
		endMin += minutesPerDay
	}
	switch {
	case startMin < nightEndsMin || endMin > minutesPerDay:
		return CategoryWeekdayNight
	case startMin >= eveningBoundsMin || endMin >= eveningBoundsMin:
		return CategoryWeekdayEvening
	default:
		return CategoryWeekdayDay
	}
}
