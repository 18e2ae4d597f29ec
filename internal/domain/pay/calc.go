package pay

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

// includedWakeHours is the number of awake hours already covered by the
// sleepover allowance. Only hours beyond it attract hourly pay.
const includedWakeHours = 2.0

// DefaultLocation is the holiday region consulted when none is configured.
const DefaultLocation = "QLD"

// HolidayLookup is the single external collaborator of the engine. A
// failed lookup degrades to non-holiday inside the calculator.
type HolidayLookup interface {
	IsPublicHoliday(date time.Time, location string) (bool, error)
}

// Calculator computes hours and pay for shifts. It is stateless; the rate
// table is supplied per call.
type Calculator struct {
	Holidays HolidayLookup
	Location string
}

func NewCalculator(holidays HolidayLookup, location string) *Calculator {
	if location == "" {
		location = DefaultLocation
	}
	return &Calculator{Holidays: holidays, Location: location}
}

// Calculate derives hours worked, category, base pay, sleepover allowance
// and total pay for one shift against the given rate table.
//
// Step order matters: hours come from the raw times regardless of overrides,
// the holiday oracle is consulted only when no manual signal is present, and
// the hourly rate resolves manual rate, then manual category, then the
// classifier.
func (c *Calculator) Calculate(shift Shift, table RateTable) (Breakdown, error) {
	if err := table.Validate(); err != nil {
		return Breakdown{}, err
	}

	startMin, err := ParseClock(shift.StartTime)
	if err != nil {
		return Breakdown{}, err
	}
	endMin, err := ParseClock(shift.EndTime)
	if err != nil {
		return Breakdown{}, err
	}

	breakdown := Breakdown{
		HoursWorked:   float64(SpanMinutes(startMin, endMin)) / 60.0,
		PublicHoliday: shift.PublicHoliday,
	}

	// Manual signals always win; the oracle is never consulted over an
	// explicit flag or category override.
	if shift.ManualCategory == nil && !breakdown.PublicHoliday && c.Holidays != nil {
		holiday, err := c.Holidays.IsPublicHoliday(shift.Date, c.Location)
		if err != nil {
			slog.Warn("holiday lookup failed, treating as non-holiday",
				"date", shift.Date.Format("2006-01-02"), "location", c.Location, "err", err)
		} else {
			breakdown.PublicHoliday = holiday
		}
	}

	category, rate, err := resolveRate(shift, table, startMin, endMin, breakdown.PublicHoliday)
	if err != nil {
		return Breakdown{}, err
	}
	breakdown.Category = category
	breakdown.HourlyRate = rate

	sleepover := shift.Sleepover
	if shift.ManualSleepover != nil {
		sleepover = *shift.ManualSleepover
	}

	if sleepover {
		breakdown.SleepoverAllowance = table.SleepoverAllowance()
		breakdown.BasePay = decimal.Zero
		if extra := shift.WakeHours - includedWakeHours; extra > 0 {
			breakdown.BasePay = decimal.NewFromFloat(extra).Mul(rate).Round(2)
		}
	} else {
		breakdown.SleepoverAllowance = decimal.Zero
		breakdown.BasePay = decimal.NewFromFloat(breakdown.HoursWorked).Mul(rate).Round(2)
	}

	breakdown.TotalPay = breakdown.BasePay.Add(breakdown.SleepoverAllowance)
	return breakdown, nil
}

// resolveRate picks the hourly rate: manual rate verbatim, else manual
// category mapped straight onto the table, else the classifier's category.
// The reported category follows the same precedence so exports see what the
// rate was actually derived from.
func resolveRate(shift Shift, table RateTable, startMin, endMin int, publicHoliday bool) (Category, decimal.Decimal, error) {
	if shift.ManualRate != nil {
		category := Classify(shift.Date, startMin, endMin, publicHoliday)
		if shift.ManualCategory != nil {
			category = *shift.ManualCategory
		}
		return category, *shift.ManualRate, nil
	}

	if shift.ManualCategory != nil {
		rate, ok := table.Hourly[*shift.ManualCategory]
		if !ok {
			return "", decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCategory, *shift.ManualCategory)
		}
		return *shift.ManualCategory, rate, nil
	}

	category := Classify(shift.Date, startMin, endMin, publicHoliday)
	return category, table.Hourly[category], nil
}
