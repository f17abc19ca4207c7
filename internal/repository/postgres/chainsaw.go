package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/repository"
)

type chainsawReservationRepository struct {
	db *sql.DB
}

func NewChainsawReservationRepository(db *sql.DB) repository.ChainsawReservationRepository {
	return &chainsawReservationRepository{db: db}
}

const chainsawColumns = `id, requester_id, requested_date, description, status, admin_notes, decided_by, decided_at, created_at, updated_at`

func scanChainsaw(row interface{ Scan(...any) error }) (*domain.ChainsawReservation, error) {
	r := &domain.ChainsawReservation{}
	err := row.Scan(&r.ID, &r.RequesterID, &r.RequestedDate, &r.Description, &r.Status,
		&r.AdminNotes, &r.DecidedBy, &r.DecidedAt, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *chainsawReservationRepository) Create(ctx context.Context, r *domain.ChainsawReservation) error {
	query := `INSERT INTO chainsaw_reservations (requester_id, requested_date, description, status, admin_notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	return s.db.QueryRowContext(ctx, query, r.RequesterID, dateArg(r.RequestedDate), r.Description, r.Status, r.AdminNotes, now, now).Scan(&r.ID)
}

func (s *chainsawReservationRepository) GetByID(ctx context.Context, id int32) (*domain.ChainsawReservation, error) {
	query := `SELECT ` + chainsawColumns + ` FROM chainsaw_reservations WHERE id = $1`
	r, err := scanChainsaw(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return r, err
}

func (s *chainsawReservationRepository) Update(ctx context.Context, r *domain.ChainsawReservation) error {
	query := `UPDATE chainsaw_reservations SET status=$1, admin_notes=$2, decided_by=$3, decided_at=$4, updated_at=$5 WHERE id=$6`
	r.UpdatedAt = time.Now()
	_, err := s.db.ExecContext(ctx, query, r.Status, r.AdminNotes, r.DecidedBy, r.DecidedAt, r.UpdatedAt, r.ID)
	return err
}

func (s *chainsawReservationRepository) Delete(ctx context.Context, id int32) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM chainsaw_reservations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *chainsawReservationRepository) list(ctx context.Context, query string, args ...any) ([]domain.ChainsawReservation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ChainsawReservation
	for rows.Next() {
		r, err := scanChainsaw(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *chainsawReservationRepository) ListByRequester(ctx context.Context, requesterID int32) ([]domain.ChainsawReservation, error) {
	query := `SELECT ` + chainsawColumns + ` FROM chainsaw_reservations WHERE requester_id = $1 ORDER BY requested_date DESC`
	return s.list(ctx, query, requesterID)
}

func (s *chainsawReservationRepository) ListAll(ctx context.Context) ([]domain.ChainsawReservation, error) {
	query := `SELECT ` + chainsawColumns + ` FROM chainsaw_reservations ORDER BY requested_date DESC`
	return s.list(ctx, query)
}

func (s *chainsawReservationRepository) AutoComplete(ctx context.Context, before time.Time) (int64, error) {
	query := `UPDATE chainsaw_reservations SET status = $1, updated_at = NOW() WHERE status = $2 AND requested_date < $3`
	result, err := s.db.ExecContext(ctx, query, domain.ChainsawStatusCompleted, domain.ChainsawStatusInProgress, dateArg(before))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
