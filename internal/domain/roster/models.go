package roster

import (
	"time"

	"github.com/shopspring/decimal"

	"rosterd/internal/domain/pay"
)

// Template is a reusable weekly shift definition. DayOfWeek runs 0=Monday
// through 6=Sunday.
type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Sleepover bool      `json:"isSleepover"`
	DayOfWeek int       `json:"dayOfWeek"`
	CreatedAt time.Time `json:"createdAt"`
}

// Entry is one rostered shift on a calendar day. Pay fields are snapshots
// taken at write time; changing the rate table later requires an explicit
// recalculation.
type Entry struct {
	ID            string `json:"id"`
	Date          string `json:"date"` // YYYY-MM-DD
	TemplateID    string `json:"shiftTemplateId,omitempty"`
	StaffID       string `json:"staffId,omitempty"`
	StaffName     string `json:"staffName,omitempty"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Sleepover     bool   `json:"isSleepover"`
	PublicHoliday bool   `json:"isPublicHoliday"`
	HolidayName   string `json:"holidayName,omitempty"`

	ManualCategory  *string          `json:"manualCategory,omitempty"`
	ManualRate      *decimal.Decimal `json:"manualHourlyRate,omitempty"`
	ManualSleepover *bool            `json:"manualSleepover,omitempty"`
	WakeHours       *float64         `json:"wakeHours,omitempty"`

	Category           string          `json:"category"`
	HoursWorked        float64         `json:"hoursWorked"`
	BasePay            decimal.Decimal `json:"basePay"`
	SleepoverAllowance decimal.Decimal `json:"sleepoverAllowance"`
	TotalPay           decimal.Decimal `json:"totalPay"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SummaryRow aggregates one staff member's rostered work over a range.
// Hour buckets follow the entry's snapshotted category.
type SummaryRow struct {
	StaffID            string          `json:"staffId,omitempty"`
	StaffName          string          `json:"staffName"`
	DayHours           float64         `json:"dayHours"`
	EveningHours       float64         `json:"eveningHours"`
	NightHours         float64         `json:"nightHours"`
	SaturdayHours      float64         `json:"saturdayHours"`
	SundayHours        float64         `json:"sundayHours"`
	PublicHolidayHours float64         `json:"publicHolidayHours"`
	TotalHours         float64         `json:"totalHours"`
	ShiftCount         int             `json:"shiftCount"`
	SleepoverAllowance decimal.Decimal `json:"sleepoverAllowance"`
	TotalPay           decimal.Decimal `json:"totalPay"`
}

// shift maps an entry onto the pay engine's input.
func (e *Entry) shift(date time.Time) pay.Shift {
	s := pay.Shift{
		Date:          date,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Sleepover:     e.Sleepover,
		PublicHoliday: e.PublicHoliday,
		ManualRate:    e.ManualRate,
	}
	if e.ManualCategory != nil {
		category := pay.Category(*e.ManualCategory)
		s.ManualCategory = &category
	}
	if e.ManualSleepover != nil {
		value := *e.ManualSleepover
		s.ManualSleepover = &value
	}
	if e.WakeHours != nil {
		s.WakeHours = *e.WakeHours
	}
	return s
}
