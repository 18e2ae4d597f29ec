package roster

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrEntryNotFound    = errors.New("roster entry not found")
	ErrTemplateNotFound = errors.New("shift template not found")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListTemplates(ctx context.Context) ([]Template, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, start_time, end_time, is_sleepover, day_of_week, created_at
    FROM shift_templates
    ORDER BY day_of_week, name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []Template
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.Name, &t.StartTime, &t.EndTime, &t.Sleepover, &t.DayOfWeek, &t.CreatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (s *Store) CreateTemplate(ctx context.Context, t *Template) error {
	t.ID = uuid.NewString()
	return s.DB.QueryRow(ctx, `
    INSERT INTO shift_templates (id, name, start_time, end_time, is_sleepover, day_of_week)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING created_at
  `, t.ID, t.Name, t.StartTime, t.EndTime, t.Sleepover, t.DayOfWeek).Scan(&t.CreatedAt)
}

func (s *Store) UpdateTemplate(ctx context.Context, t *Template) error {
	err := s.DB.QueryRow(ctx, `
    UPDATE shift_templates
    SET name = $2, start_time = $3, end_time = $4, is_sleepover = $5, day_of_week = $6
    WHERE id = $1
    RETURNING created_at
  `, t.ID, t.Name, t.StartTime, t.EndTime, t.Sleepover, t.DayOfWeek).Scan(&t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrTemplateNotFound
	}
	return err
}

const entryColumns = `
    e.id,
    to_char(e.entry_date, 'YYYY-MM-DD'),
    COALESCE(e.template_id::text, ''),
    COALESCE(e.staff_id::text, ''),
    COALESCE(s.name, ''),
    e.start_time, e.end_time,
    e.is_sleepover, e.is_public_holiday, e.holiday_name,
    e.manual_category,
    e.manual_rate::text,
    e.manual_sleepover,
    e.wake_hours,
    e.category, e.hours_worked,
    e.base_pay::text, e.sleepover_allowance::text, e.total_pay::text,
    e.created_at, e.updated_at`

func scanEntry(row pgx.Row) (Entry, error) {
	var e Entry
	var manualRate *string
	err := row.Scan(
		&e.ID, &e.Date, &e.TemplateID, &e.StaffID, &e.StaffName,
		&e.StartTime, &e.EndTime,
		&e.Sleepover, &e.PublicHoliday, &e.HolidayName,
		&e.ManualCategory, &manualRate, &e.ManualSleepover, &e.WakeHours,
		&e.Category, &e.HoursWorked,
		&e.BasePay, &e.SleepoverAllowance, &e.TotalPay,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return Entry{}, err
	}
	if manualRate != nil {
		rate, err := decimal.NewFromString(*manualRate)
		if err != nil {
			return Entry{}, err
		}
		e.ManualRate = &rate
	}
	return e, nil
}

// ListRange returns entries with from <= date < to, joined with the
// assigned staff name.
func (s *Store) ListRange(ctx context.Context, from, to time.Time) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+entryColumns+`
    FROM roster_entries e
    LEFT JOIN staff s ON e.staff_id = s.id
    WHERE e.entry_date >= $1::date AND e.entry_date < $2::date
    ORDER BY e.entry_date, e.start_time
  `, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) GetEntry(ctx context.Context, id string) (*Entry, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+entryColumns+`
    FROM roster_entries e
    LEFT JOIN staff s ON e.staff_id = s.id
    WHERE e.id = $1
  `, id)
	e, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) EntryExists(ctx context.Context, date, templateID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM roster_entries
    WHERE entry_date = $1::date AND template_id = $2::uuid
  `, date, templateID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) InsertEntry(ctx context.Context, e *Entry) error {
	var manualRate *string
	if e.ManualRate != nil {
		value := e.ManualRate.String()
		manualRate = &value
	}
	return s.DB.QueryRow(ctx, `
    INSERT INTO roster_entries (
      id, entry_date, template_id, staff_id,
      start_time, end_time,
      is_sleepover, is_public_holiday, holiday_name,
      manual_category, manual_rate, manual_sleepover, wake_hours,
      category, hours_worked, base_pay, sleepover_allowance, total_pay
    ) VALUES (
      $1, $2::date, NULLIF($3, '')::uuid, NULLIF($4, '')::uuid,
      $5, $6,
      $7, $8, $9,
      $10, $11::numeric, $12, $13,
      $14, $15, $16::numeric, $17::numeric, $18::numeric
    )
    RETURNING created_at, updated_at
  `,
		e.ID, e.Date, e.TemplateID, e.StaffID,
		e.StartTime, e.EndTime,
		e.Sleepover, e.PublicHoliday, e.HolidayName,
		e.ManualCategory, manualRate, e.ManualSleepover, e.WakeHours,
		e.Category, e.HoursWorked, e.BasePay.StringFixed(2), e.SleepoverAllowance.StringFixed(2), e.TotalPay.StringFixed(2),
	).Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (s *Store) UpdateEntry(ctx context.Context, e *Entry) error {
	var manualRate *string
	if e.ManualRate != nil {
		value := e.ManualRate.String()
		manualRate = &value
	}
	err := s.DB.QueryRow(ctx, `
    UPDATE roster_entries
    SET entry_date = $2::date,
        template_id = NULLIF($3, '')::uuid,
        staff_id = NULLIF($4, '')::uuid,
        start_time = $5, end_time = $6,
        is_sleepover = $7, is_public_holiday = $8, holiday_name = $9,
        manual_category = $10, manual_rate = $11::numeric, manual_sleepover = $12, wake_hours = $13,
        category = $14, hours_worked = $15,
        base_pay = $16::numeric, sleepover_allowance = $17::numeric, total_pay = $18::numeric,
        updated_at = now()
    WHERE id = $1
    RETURNING created_at, updated_at
  `,
		e.ID, e.Date, e.TemplateID, e.StaffID,
		e.StartTime, e.EndTime,
		e.Sleepover, e.PublicHoliday, e.HolidayName,
		e.ManualCategory, manualRate, e.ManualSleepover, e.WakeHours,
		e.Category, e.HoursWorked, e.BasePay.StringFixed(2), e.SleepoverAllowance.StringFixed(2), e.TotalPay.StringFixed(2),
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrEntryNotFound
	}
	return err
}

func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM roster_entries WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}
