package pay

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the closed set of pay classifications a shift can fall into.
type Category string

const (
	CategoryWeekdayDay     Category = "weekday_day"
	CategoryWeekdayEvening Category = "weekday_evening"
	CategoryWeekdayNight   Category = "weekday_night"
	CategorySaturday       Category = "saturday"
	CategorySunday         Category = "sunday"
	CategoryPublicHoliday  Category = "public_holiday"

	// CategorySleepover names the sleepover allowance in the persisted rate
	// key space. Classification never returns it; sleepover is an orthogonal
	// flag on the entry.
	CategorySleepover Category = "sleepover"
)

// HourlyCategories lists every category that must carry an hourly rate.
var HourlyCategories = []Category{
	CategoryWeekdayDay,
	CategoryWeekdayEvening,
	CategoryWeekdayNight,
	CategorySaturday,
	CategorySunday,
	CategoryPublicHoliday,
}

// Mode selects which sleepover allowance constant applies. It is a
// deployment-level switch, never inferred per entry.
type Mode string

const (
	ModeDefault Mode = "default"
	ModeSchads  Mode = "schads"
)

// RateTable is the rate snapshot a single calculation runs against. Callers
// load it from the settings store per call; the engine never reads shared
// state.
type RateTable struct {
	Mode             Mode
	Hourly           map[Category]decimal.Decimal
	SleepoverDefault decimal.Decimal
	SleepoverSchads  decimal.Decimal
}

// Shift carries the inputs of one pay calculation. Manual fields bypass
// automatic derivation when set.
type Shift struct {
	Date            time.Time
	StartTime       string // HH:MM
	EndTime         string // HH:MM
	Sleepover       bool
	PublicHoliday   bool
	ManualCategory  *Category
	ManualRate      *decimal.Decimal
	ManualSleepover *bool
	WakeHours       float64
}

// Breakdown is the computed pay for a shift. TotalPay is always
// BasePay + SleepoverAllowance.
type Breakdown struct {
	Category           Category
	HourlyRate         decimal.Decimal
	HoursWorked        float64
	BasePay            decimal.Decimal
	SleepoverAllowance decimal.Decimal
	TotalPay           decimal.Decimal
	PublicHoliday      bool
}

func (t RateTable) Validate() error {
	for _, category := range HourlyCategories {
		rate, ok := t.Hourly[category]
		if !ok {
			return &MissingRateError{Key: string(category)}
		}
		if rate.IsNegative() {
			return &MissingRateError{Key: string(category), Negative: true}
		}
	}
	switch t.Mode {
	case ModeDefault:
		if t.SleepoverDefault.IsNegative() {
			return &MissingRateError{Key: "sleepover_default", Negative: true}
		}
	case ModeSchads:
		if t.SleepoverSchads.IsNegative() {
			return &MissingRateError{Key: "sleepover_schads", Negative: true}
		}
	default:
		return ErrUnknownMode
	}
	return nil
}

// SleepoverAllowance returns the flat allowance for the table's mode.
func (t RateTable) SleepoverAllowance() decimal.Decimal {
	if t.Mode == ModeSchads {
		return t.SleepoverSchads
	}
	return t.SleepoverDefault
}
