package postgres

import (
	"context"
	"database/sql"
	"errors"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/repository"
)

type settingRepository struct {
	db *sql.DB
}

func NewSettingRepository(db *sql.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

func (s *settingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	st := &domain.Setting{}
	query := `SELECT key, value, description FROM settings WHERE key = $1`
	err := s.db.QueryRowContext(ctx, query, key).Scan(&st.Key, &st.Value, &st.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSettingNotFound
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Upsert is last-write-wins. No versioning, no value-shape validation;
// callers parse and default.
func (s *settingRepository) Upsert(ctx context.Context, setting *domain.Setting) error {
	query := `INSERT INTO settings (key, value, description) VALUES ($1, $2, $3)
	          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, description = EXCLUDED.description`
	_, err := s.db.ExecContext(ctx, query, setting.Key, setting.Value, setting.Description)
	return err
}

func (s *settingRepository) List(ctx context.Context) ([]domain.Setting, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value, description FROM settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Setting
	for rows.Next() {
		var st domain.Setting
		if err := rows.Scan(&st.Key, &st.Value, &st.Description); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *settingRepository) EnsureDefault(ctx context.Context, setting *domain.Setting) error {
	query := `INSERT INTO settings (key, value, description) VALUES ($1, $2, $3) ON CONFLICT (key) DO NOTHING`
	_, err := s.db.ExecContext(ctx, query, setting.Key, setting.Value, setting.Description)
	return err
}
