package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"rosterd/internal/platform/config"
)

var seedStaff = []string{
	"Angela", "Chanelle", "Rose", "Caroline", "Nox", "Elina",
	"Kayla", "Rhet", "Nikita", "Molly", "Felicity", "Issey",
}

var seedDayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// defaultRates is the seeded rate table, keyed the same way the settings
// API exposes it.
const defaultRates = `{
  "weekday_day": 42.00,
  "weekday_evening": 44.50,
  "weekday_night": 48.50,
  "saturday": 57.50,
  "sunday": 74.00,
  "public_holiday": 88.50,
  "sleepover_default": 175.00,
  "sleepover_schads": 60.02
}`

// Seed installs the default staff roster, the weekly shift template pattern
// and the initial rate table. Every insert is idempotent.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := seedStaffRows(ctx, pool); err != nil {
		return err
	}
	if err := seedTemplates(ctx, pool); err != nil {
		return err
	}
	return seedSettings(ctx, pool, cfg.PayMode)
}

func seedStaffRows(ctx context.Context, pool *pgxpool.Pool) error {
	for _, name := range seedStaff {
		_, err := pool.Exec(ctx, `
      INSERT INTO staff (id, name, active)
      VALUES ($1, $2, TRUE)
      ON CONFLICT (name) DO NOTHING
    `, uuid.NewString(), name)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedTemplates(ctx context.Context, pool *pgxpool.Pool) error {
	// Four shifts per day: morning, a mid shift ending at 20:00, an evening
	// shift crossing the 20:00 boundary, and an overnight sleepover. Tuesday
	// and Thursday run the longer mid shift.
	midStart := map[int]string{1: "12:00", 3: "12:00"}

	for day := 0; day < 7; day++ {
		start, ok := midStart[day]
		if !ok {
			start = "15:00"
		}
		shifts := []struct {
			n          int
			start, end string
			sleepover  bool
		}{
			{1, "07:30", "15:30", false},
			{2, start, "20:00", false},
			{3, "15:30", "23:30", false},
			{4, "23:30", "07:30", true},
		}
		for _, s := range shifts {
			name := fmt.Sprintf("%s Shift %d", seedDayNames[day], s.n)
			_, err := pool.Exec(ctx, `
        INSERT INTO shift_templates (id, name, start_time, end_time, is_sleepover, day_of_week)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (name) DO NOTHING
      `, uuid.NewString(), name, s.start, s.end, s.sleepover, day)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedSettings(ctx context.Context, pool *pgxpool.Pool, payMode string) error {
	_, err := pool.Exec(ctx, `
    INSERT INTO roster_settings (id, pay_mode, rates)
    VALUES (1, $1, $2::jsonb)
    ON CONFLICT (id) DO NOTHING
  `, payMode, defaultRates)
	return err
}
