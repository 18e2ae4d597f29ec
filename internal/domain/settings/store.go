package settings

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Store reads and writes the single rate-settings record. Calculations load
// a fresh snapshot per call; rate updates are never transactional with
// in-flight calculations.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context) (Settings, error) {
	var payMode, ratesJSON string
	err := s.DB.QueryRow(ctx, `
    SELECT pay_mode, rates::text
    FROM roster_settings
    WHERE id = 1
  `).Scan(&payMode, &ratesJSON)
	if err != nil {
		return Settings{}, err
	}

	rates := make(map[string]decimal.Decimal)
	if err := json.Unmarshal([]byte(ratesJSON), &rates); err != nil {
		return Settings{}, err
	}
	return Settings{PayMode: payMode, Rates: rates}, nil
}

func (s *Store) Put(ctx context.Context, value Settings) error {
	ratesJSON, err := json.Marshal(value.Rates)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO roster_settings (id, pay_mode, rates, updated_at)
    VALUES (1, $1, $2::jsonb, now())
    ON CONFLICT (id) DO UPDATE
    SET pay_mode = EXCLUDED.pay_mode, rates = EXCLUDED.rates, updated_at = now()
  `, value.PayMode, string(ratesJSON))
	return err
}
