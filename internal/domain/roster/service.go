package roster

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"rosterd/internal/domain/pay"
	"rosterd/internal/domain/settings"
	"rosterd/internal/platform/metrics"
)

// Namer resolves a holiday's display name once an entry is known to fall on
// one. Optional; entries keep an empty name without it.
type Namer interface {
	HolidayName(date time.Time) string
}

type Service struct {
	Store    *Store
	Rates    *settings.Store
	Calc     *pay.Calculator
	Names    Namer
	Reporter *metrics.Collector
}

func NewService(store *Store, rates *settings.Store, calc *pay.Calculator, names Namer, reporter *metrics.Collector) *Service {
	return &Service{Store: store, Rates: rates, Calc: calc, Names: names, Reporter: reporter}
}

// Price runs the pay engine over the entry and writes the derived fields
// back onto it. The current rate table is loaded fresh for each call.
func (s *Service) Price(ctx context.Context, entry *Entry) error {
	current, err := s.Rates.Get(ctx)
	if err != nil {
		return fmt.Errorf("load rate settings: %w", err)
	}
	return s.priceWith(entry, current.RateTable())
}

func (s *Service) priceWith(entry *Entry, table pay.RateTable) error {
	date, err := time.Parse("2006-01-02", entry.Date)
	if err != nil {
		return fmt.Errorf("invalid entry date %q: %w", entry.Date, err)
	}

	breakdown, err := s.Calc.Calculate(entry.shift(date), table)
	if err != nil {
		return err
	}
	if s.Reporter != nil {
		s.Reporter.RecordCalculation()
	}

	entry.Category = string(breakdown.Category)
	entry.HoursWorked = breakdown.HoursWorked
	entry.BasePay = breakdown.BasePay
	entry.SleepoverAllowance = breakdown.SleepoverAllowance
	entry.TotalPay = breakdown.TotalPay
	entry.PublicHoliday = breakdown.PublicHoliday
	entry.HolidayName = ""
	if breakdown.PublicHoliday && s.Names != nil {
		entry.HolidayName = s.Names.HolidayName(date)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, entry *Entry) error {
	entry.ID = uuid.NewString()
	if err := s.Price(ctx, entry); err != nil {
		return err
	}
	return s.Store.InsertEntry(ctx, entry)
}

func (s *Service) Update(ctx context.Context, entry *Entry) error {
	if err := s.Price(ctx, entry); err != nil {
		return err
	}
	return s.Store.UpdateEntry(ctx, entry)
}

func (s *Service) ListMonth(ctx context.Context, month time.Time) ([]Entry, error) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return s.Store.ListRange(ctx, first, first.AddDate(0, 1, 0))
}

// GenerateMonth expands every shift template across the matching weekdays
// of a month, skipping (date, template) pairs that already exist. Returns
// the number of entries created.
func (s *Service) GenerateMonth(ctx context.Context, month time.Time) (int, error) {
	templates, err := s.Store.ListTemplates(ctx)
	if err != nil {
		return 0, err
	}
	current, err := s.Rates.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("load rate settings: %w", err)
	}
	table := current.RateTable()

	created := 0
	for _, candidate := range ExpandTemplates(month, templates) {
		exists, err := s.Store.EntryExists(ctx, candidate.Date, candidate.TemplateID)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		entry := candidate
		entry.ID = uuid.NewString()
		if err := s.priceWith(&entry, table); err != nil {
			return created, err
		}
		if err := s.Store.InsertEntry(ctx, &entry); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// RecalculateMonth reprices every stored entry of a month under the current
// rate table. Pay fields are snapshots, so this is the explicit path after
// a rate change or a holiday-calendar correction.
func (s *Service) RecalculateMonth(ctx context.Context, month time.Time) (int, error) {
	entries, err := s.ListMonth(ctx, month)
	if err != nil {
		return 0, err
	}
	current, err := s.Rates.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("load rate settings: %w", err)
	}
	table := current.RateTable()

	updated := 0
	for i := range entries {
		entry := entries[i]
		if err := s.priceWith(&entry, table); err != nil {
			return updated, err
		}
		if err := s.Store.UpdateEntry(ctx, &entry); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// PaySummary aggregates entries between from and to (inclusive) per staff
// member.
func (s *Service) PaySummary(ctx context.Context, from, to time.Time) ([]SummaryRow, error) {
	entries, err := s.Store.ListRange(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return Summarize(entries), nil
}

// ExpandTemplates builds the unpriced candidate entries for a month: one
// per template per matching weekday.
func ExpandTemplates(month time.Time, templates []Template) []Entry {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	var out []Entry
	for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
		weekday := TemplateWeekday(day)
		for _, t := range templates {
			if t.DayOfWeek != weekday {
				continue
			}
			out = append(out, Entry{
				Date:       day.Format("2006-01-02"),
				TemplateID: t.ID,
				StartTime:  t.StartTime,
				EndTime:    t.EndTime,
				Sleepover:  t.Sleepover,
			})
		}
	}
	return out
}

// TemplateWeekday converts Go's Sunday-first weekday to the template
// convention of 0=Monday.
func TemplateWeekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// Summarize folds entries into per-staff totals. Unassigned shifts group
// under a single pseudo row.
func Summarize(entries []Entry) []SummaryRow {
	byStaff := make(map[string]*SummaryRow)
	for _, e := range entries {
		name := e.StaffName
		if name == "" {
			name = "Unassigned"
		}
		row, ok := byStaff[name]
		if !ok {
			row = &SummaryRow{StaffID: e.StaffID, StaffName: name}
			byStaff[name] = row
		}

		switch pay.Category(e.Category) {
		case pay.CategoryWeekdayDay:
			row.DayHours += e.HoursWorked
		case pay.CategoryWeekdayEvening:
			row.EveningHours += e.HoursWorked
		case pay.CategoryWeekdayNight:
			row.NightHours += e.HoursWorked
		case pay.CategorySaturday:
			row.SaturdayHours += e.HoursWorked
		case pay.CategorySunday:
			row.SundayHours += e.HoursWorked
		case pay.CategoryPublicHoliday:
			row.PublicHolidayHours += e.HoursWorked
		}
		row.TotalHours += e.HoursWorked
		row.ShiftCount++
		row.SleepoverAllowance = row.SleepoverAllowance.Add(e.SleepoverAllowance)
		row.TotalPay = row.TotalPay.Add(e.TotalPay)
	}

	out := make([]SummaryRow, 0, len(byStaff))
	for _, row := range byStaff {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StaffName < out[j].StaffName })
	return out
}
