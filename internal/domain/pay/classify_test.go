package pay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterd/internal/domain/pay"
)

// 2025-08-04 is a Monday.
var monday = time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC)

func mins(t *testing.T, clock string) int {
	t.Helper()
	m, err := pay.ParseClock(clock)
	require.NoError(t, err)
	return m
}

func TestParseClock(t *testing.T) {
	m, err := pay.ParseClock("07:30")
	require.NoError(t, err)
	assert.Equal(t, 450, m)

	m, err = pay.ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	for _, bad := range []string{"", "7.30", "24:00", "12:60", "ab:cd", "12"} {
		_, err := pay.ParseClock(bad)
		assert.ErrorIs(t, err, pay.ErrInvalidTime, "input %q", bad)
	}
}

func TestClassifyWeekday(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  pay.Category
	}{
		{"morning shift", "07:30", "15:30", pay.CategoryWeekdayDay},
		{"ends one minute before eight", "15:00", "19:59", pay.CategoryWeekdayDay},
		{"ends exactly at eight", "15:00", "20:00", pay.CategoryWeekdayEvening},
		{"ends past eight", "15:30", "23:30", pay.CategoryWeekdayEvening},
		{"starts at eight", "20:00", "23:00", pay.CategoryWeekdayEvening},
		{"starts before six", "05:00", "13:00", pay.CategoryWeekdayNight},
		{"overnight wrap", "23:30", "07:30", pay.CategoryWeekdayNight},
		{"starts late and wraps", "22:00", "06:00", pay.CategoryWeekdayNight},
		// Night takes precedence over the evening rule when both match.
		{"early start reaching evening", "05:00", "21:00", pay.CategoryWeekdayNight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pay.Classify(monday, mins(t, tc.start), mins(t, tc.end), false)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyWeekendOverridesTimeOfDay(t *testing.T) {
	saturday := time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC)

	for _, clock := range [][2]string{{"07:30", "15:30"}, {"15:00", "20:00"}, {"23:30", "07:30"}} {
		start, end := mins(t, clock[0]), mins(t, clock[1])
		assert.Equal(t, pay.CategorySaturday, pay.Classify(saturday, start, end, false))
		assert.Equal(t, pay.CategorySunday, pay.Classify(sunday, start, end, false))
	}
}

func TestClassifyPublicHolidayOverridesEverything(t *testing.T) {
	saturday := time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, pay.CategoryPublicHoliday, pay.Classify(monday, mins(t, "07:30"), mins(t, "15:30"), true))
	assert.Equal(t, pay.CategoryPublicHoliday, pay.Classify(saturday, mins(t, "23:30"), mins(t, "07:30"), true))
}

func TestSpanMinutes(t *testing.T) {
	assert.Equal(t, 480, pay.SpanMinutes(mins(t, "07:30"), mins(t, "15:30")))
	assert.Equal(t, 480, pay.SpanMinutes(mins(t, "23:30"), mins(t, "07:30")))
	// Equal start and end reads as a full day, not a zero-length shift.
	assert.Equal(t, 1440, pay.SpanMinutes(mins(t, "09:00"), mins(t, "09:00")))
}
