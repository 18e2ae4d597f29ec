// Package holidays computes Queensland public holidays. Dates are derived,
// not fetched, so lookups are deterministic and never leave the process.
package holidays

import (
	"strings"
	"sync"
	"time"
)

const (
	LocationQLD      = "QLD"
	LocationBrisbane = "BRISBANE"

	// showHolidayName marks the Royal Queensland Show people's day, which
	// applies only within Brisbane.
	showHolidayName = "Royal Queensland Show"
)

// Holiday is one public holiday occurrence.
type Holiday struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Calendar answers public-holiday queries for Queensland locations. Years
// are computed on first use and cached; safe for concurrent use.
type Calendar struct {
	mu    sync.Mutex
	years map[int]map[string]string // year -> YYYY-MM-DD -> holiday name
}

func NewCalendar() *Calendar {
	return &Calendar{years: make(map[int]map[string]string)}
}

// IsPublicHoliday reports whether date is a public holiday at location.
// The show holiday counts only for Brisbane; every other QLD holiday applies
// state-wide. The error return satisfies the calculator's oracle contract;
// a computed calendar cannot fail.
func (c *Calendar) IsPublicHoliday(date time.Time, location string) (bool, error) {
	name := c.lookup(date)
	if name == "" {
		return false, nil
	}
	if name == showHolidayName && !isBrisbane(location) {
		return false, nil
	}
	return true, nil
}

// HolidayName returns the holiday name for date, or "" when it is not one.
func (c *Calendar) HolidayName(date time.Time) string {
	return c.lookup(date)
}

// HolidaysInRange lists holidays between from and to inclusive, applying
// the same location filter as IsPublicHoliday.
func (c *Calendar) HolidaysInRange(from, to time.Time, location string) []Holiday {
	var out []Holiday
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		ok, _ := c.IsPublicHoliday(d, location)
		if !ok {
			continue
		}
		out = append(out, Holiday{
			Date:     d.Format("2006-01-02"),
			Name:     c.lookup(d),
			Location: location,
		})
	}
	return out
}

func isBrisbane(location string) bool {
	switch strings.ToUpper(strings.TrimSpace(location)) {
	case LocationBrisbane, "BNE":
		return true
	}
	return false
}

func (c *Calendar) lookup(date time.Time) string {
	year := date.Year()
	c.mu.Lock()
	table, ok := c.years[year]
	if !ok {
		table = computeYear(year)
		c.years[year] = table
	}
	c.mu.Unlock()
	return table[date.Format("2006-01-02")]
}

// computeYear builds the Queensland holiday table for one calendar year.
// Rules follow the current gazetted set; historical variations before 2016
// (October Labour Day, June King's Birthday) are not modelled.
func computeYear(year int) map[string]string {
	table := make(map[string]string)
	add := func(d time.Time, name string) {
		table[d.Format("2006-01-02")] = name
	}
	addObserved := func(d time.Time, name string) {
		add(d, name)
		if shifted, ok := weekendObservance(d); ok {
			add(shifted, name+" (observed)")
		}
	}

	addObserved(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), "New Year's Day")
	addObserved(time.Date(year, time.January, 26, 0, 0, 0, 0, time.UTC), "Australia Day")

	easter := easterSunday(year)
	add(easter.AddDate(0, 0, -2), "Good Friday")
	add(easter.AddDate(0, 0, -1), "Easter Saturday")
	add(easter, "Easter Sunday")
	add(easter.AddDate(0, 0, 1), "Easter Monday")

	add(time.Date(year, time.April, 25, 0, 0, 0, 0, time.UTC), "Anzac Day")
	add(nthWeekday(year, time.May, time.Monday, 1), "Labour Day")
	add(nthWeekday(year, time.August, time.Wednesday, 2), showHolidayName)
	add(nthWeekday(year, time.October, time.Monday, 1), "King's Birthday")

	addObserved(time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC), "Christmas Day")
	addObserved(time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC), "Boxing Day")

	return table
}

// weekendObservance returns the substitute weekday for a holiday landing on
// a weekend: Saturday shifts two days, Sunday shifts one or two so that a
// Christmas/Boxing Day pair never collides.
func weekendObservance(d time.Time) (time.Time, bool) {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2), true
	case time.Sunday:
		// The December pair each skip to the first clear weekday so the
		// substitutes never land on each other.
		if d.Month() == time.December {
			return d.AddDate(0, 0, 2), true
		}
		return d.AddDate(0, 0, 1), true
	}
	return time.Time{}, false
}

// nthWeekday returns the nth given weekday of a month.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset+(n-1)*7)
}

// easterSunday computes Gregorian Easter via the anonymous computus.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
