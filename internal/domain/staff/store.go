package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("staff member not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ListActive returns active staff ordered by name. Deactivated members stay
// in the table so historical roster entries keep their assignment.
func (s *Store) ListActive(ctx context.Context) ([]Member, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, active, created_at
    FROM staff
    WHERE active
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Member, error) {
	var m Member
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, active, created_at
    FROM staff
    WHERE id = $1
  `, id).Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) Create(ctx context.Context, name string) (*Member, error) {
	id := uuid.NewString()
	var m Member
	err := s.DB.QueryRow(ctx, `
    INSERT INTO staff (id, name, active)
    VALUES ($1, $2, TRUE)
    RETURNING id, name, active, created_at
  `, id, name).Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) Update(ctx context.Context, id, name string, active bool) (*Member, error) {
	var m Member
	err := s.DB.QueryRow(ctx, `
    UPDATE staff
    SET name = $2, active = $3
    WHERE id = $1
    RETURNING id, name, active, created_at
  `, id, name, active).Scan(&m.ID, &m.Name, &m.Active, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Deactivate soft-deletes a staff member.
func (s *Store) Deactivate(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE staff SET active = FALSE WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
