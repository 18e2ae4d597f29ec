package holidays

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEasterSunday(t *testing.T) {
	cases := map[int]time.Time{
		2024: date(2024, time.March, 31),
		2025: date(2025, time.April, 20),
		2026: date(2026, time.April, 5),
	}
	for year, want := range cases {
		if got := easterSunday(year); !got.Equal(want) {
			t.Fatalf("easter %d: expected %s, got %s", year, want.Format("2006-01-02"), got.Format("2006-01-02"))
		}
	}
}

func TestFixedAndDerivedHolidays(t *testing.T) {
	cal := NewCalendar()

	cases := []struct {
		day  time.Time
		name string
	}{
		{date(2025, time.January, 1), "New Year's Day"},
		{date(2025, time.April, 18), "Good Friday"},
		{date(2025, time.April, 21), "Easter Monday"},
		{date(2025, time.April, 25), "Anzac Day"},
		{date(2025, time.May, 5), "Labour Day"},
		{date(2025, time.October, 6), "King's Birthday"},
		{date(2025, time.December, 25), "Christmas Day"},
		{date(2025, time.December, 26), "Boxing Day"},
	}
	for _, tc := range cases {
		ok, err := cal.IsPublicHoliday(tc.day, LocationQLD)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("%s should be a holiday", tc.day.Format("2006-01-02"))
		}
		if got := cal.HolidayName(tc.day); got != tc.name {
			t.Fatalf("%s: expected %q, got %q", tc.day.Format("2006-01-02"), tc.name, got)
		}
	}

	if ok, _ := cal.IsPublicHoliday(date(2025, time.July, 15), LocationQLD); ok {
		t.Fatal("ordinary Tuesday should not be a holiday")
	}
}

func TestWeekendObservance(t *testing.T) {
	cal := NewCalendar()

	// 2021: Christmas on Saturday, Boxing Day on Sunday.
	for _, day := range []time.Time{
		date(2021, time.December, 27),
		date(2021, time.December, 28),
	} {
		if ok, _ := cal.IsPublicHoliday(day, LocationQLD); !ok {
			t.Fatalf("%s should be an observed holiday", day.Format("2006-01-02"))
		}
	}

	// Australia Day 2025 falls on a Sunday; the Monday is observed.
	if ok, _ := cal.IsPublicHoliday(date(2025, time.January, 27), LocationQLD); !ok {
		t.Fatal("2025-01-27 should be the observed Australia Day")
	}
}

func TestShowHolidayIsBrisbaneOnly(t *testing.T) {
	cal := NewCalendar()
	ekka := date(2025, time.August, 13) // second Wednesday of August

	if ok, _ := cal.IsPublicHoliday(ekka, LocationBrisbane); !ok {
		t.Fatal("show day should be a holiday in Brisbane")
	}
	if ok, _ := cal.IsPublicHoliday(ekka, "bne"); !ok {
		t.Fatal("location matching should be case-insensitive")
	}
	if ok, _ := cal.IsPublicHoliday(ekka, LocationQLD); ok {
		t.Fatal("show day should not apply outside Brisbane")
	}
	if name := cal.HolidayName(ekka); name != "Royal Queensland Show" {
		t.Fatalf("expected show holiday name, got %q", name)
	}
}

func TestHolidaysInRange(t *testing.T) {
	cal := NewCalendar()

	got := cal.HolidaysInRange(date(2025, time.April, 1), date(2025, time.April, 30), LocationQLD)
	// Good Friday, Easter Saturday, Easter Sunday, Easter Monday, Anzac Day.
	if len(got) != 5 {
		t.Fatalf("expected 5 holidays in April 2025, got %d: %+v", len(got), got)
	}
	if got[0].Date != "2025-04-18" || got[0].Name != "Good Friday" {
		t.Fatalf("unexpected first holiday: %+v", got[0])
	}

	brisbane := cal.HolidaysInRange(date(2025, time.August, 1), date(2025, time.August, 31), LocationBrisbane)
	if len(brisbane) != 1 || brisbane[0].Date != "2025-08-13" {
		t.Fatalf("expected only the show day in August for Brisbane, got %+v", brisbane)
	}
	if state := cal.HolidaysInRange(date(2025, time.August, 1), date(2025, time.August, 31), LocationQLD); len(state) != 0 {
		t.Fatalf("expected no August holidays state-wide, got %+v", state)
	}
}
