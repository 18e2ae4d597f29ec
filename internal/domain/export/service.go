// Package export renders roster, pay-summary and workforce reports as CSV,
// Excel or PDF downloads.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rosterd/internal/domain/roster"
	"rosterd/internal/domain/staff"
)

const (
	ReportRoster     = "roster"
	ReportPaySummary = "pay-summary"
	ReportWorkforce  = "workforce"

	FormatCSV   = "csv"
	FormatExcel = "xlsx"
	FormatPDF   = "pdf"
)

// Dataset is a rendered report: a title plus tabular string data. All three
// output formats consume the same shape.
type Dataset struct {
	Title  string
	Name   string // file name stem
	Header []string
	Rows   [][]string
}

type Service struct {
	Roster *roster.Service
	Staff  *staff.Store
}

func NewService(rosterSvc *roster.Service, staffStore *staff.Store) *Service {
	return &Service{Roster: rosterSvc, Staff: staffStore}
}

// Build resolves a report name into its dataset over the given range. The
// workforce report ignores the range.
func (s *Service) Build(ctx context.Context, report string, from, to time.Time) (Dataset, error) {
	switch report {
	case ReportRoster:
		return s.rosterDataset(ctx, from, to)
	case ReportPaySummary:
		return s.paySummaryDataset(ctx, from, to)
	case ReportWorkforce:
		return s.workforceDataset(ctx)
	default:
		return Dataset{}, fmt.Errorf("unknown report %q", report)
	}
}

func (s *Service) rosterDataset(ctx context.Context, from, to time.Time) (Dataset, error) {
	entries, err := s.Roster.Store.ListRange(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return Dataset{}, err
	}

	d := Dataset{
		Title: "Shift Roster",
		Name:  "shift-roster",
		Header: []string{
			"date", "staff", "start_time", "end_time", "category", "sleepover",
			"hours_worked", "base_pay", "sleepover_allowance", "total_pay",
		},
	}
	for _, e := range entries {
		name := e.StaffName
		if name == "" {
			name = "Unassigned"
		}
		d.Rows = append(d.Rows, []string{
			e.Date, name, e.StartTime, e.EndTime, e.Category, boolCell(e.Sleepover),
			hoursCell(e.HoursWorked), moneyCell(e.BasePay), moneyCell(e.SleepoverAllowance), moneyCell(e.TotalPay),
		})
	}
	return d, nil
}

func (s *Service) paySummaryDataset(ctx context.Context, from, to time.Time) (Dataset, error) {
	rows, err := s.Roster.PaySummary(ctx, from, to)
	if err != nil {
		return Dataset{}, err
	}

	d := Dataset{
		Title: "Pay Summary",
		Name:  "pay-summary",
		Header: []string{
			"staff", "day_hours", "evening_hours", "night_hours",
			"saturday_hours", "sunday_hours", "public_holiday_hours",
			"total_hours", "shift_count", "sleepover_allowance", "total_pay",
		},
	}
	for _, r := range rows {
		d.Rows = append(d.Rows, []string{
			r.StaffName,
			hoursCell(r.DayHours), hoursCell(r.EveningHours), hoursCell(r.NightHours),
			hoursCell(r.SaturdayHours), hoursCell(r.SundayHours), hoursCell(r.PublicHolidayHours),
			hoursCell(r.TotalHours), fmt.Sprintf("%d", r.ShiftCount),
			moneyCell(r.SleepoverAllowance), moneyCell(r.TotalPay),
		})
	}
	return d, nil
}

func (s *Service) workforceDataset(ctx context.Context) (Dataset, error) {
	members, err := s.Staff.ListActive(ctx)
	if err != nil {
		return Dataset{}, err
	}

	d := Dataset{
		Title:  "Workforce",
		Name:   "workforce",
		Header: []string{"id", "name", "status", "created_at"},
	}
	for _, m := range members {
		status := "Active"
		if !m.Active {
			status = "Inactive"
		}
		d.Rows = append(d.Rows, []string{m.ID, m.Name, status, m.CreatedAt.Format("2006-01-02")})
	}
	return d, nil
}

func moneyCell(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func hoursCell(hours float64) string {
	return fmt.Sprintf("%.1f", hours)
}

func boolCell(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
