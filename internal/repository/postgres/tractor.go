package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/repository"
)

type tractorReservationRepository struct {
	db *sql.DB
}

func NewTractorReservationRepository(db *sql.DB) repository.TractorReservationRepository {
	return &tractorReservationRepository{db: db}
}

const tractorColumns = `id, requester_id, requested_date, hours_needed, value_per_hour_cents, total_value_cents, status, admin_notes, decided_by, decided_at, created_at, updated_at`

func scanTractor(row interface{ Scan(...any) error }) (*domain.TractorReservation, error) {
	r := &domain.TractorReservation{}
	err := row.Scan(&r.ID, &r.RequesterID, &r.RequestedDate, &r.HoursNeeded, &r.ValuePerHourCents,
		&r.TotalValueCents, &r.Status, &r.AdminNotes, &r.DecidedBy, &r.DecidedAt, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *tractorReservationRepository) Create(ctx context.Context, r *domain.TractorReservation) error {
	query := `INSERT INTO tractor_reservations (requester_id, requested_date, hours_needed, value_per_hour_cents, total_value_cents, status, admin_notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	return s.db.QueryRowContext(ctx, query, r.RequesterID, dateArg(r.RequestedDate), r.HoursNeeded,
		r.ValuePerHourCents, r.TotalValueCents, r.Status, r.AdminNotes, now, now).Scan(&r.ID)
}

func (s *tractorReservationRepository) GetByID(ctx context.Context, id int32) (*domain.TractorReservation, error) {
	query := `SELECT ` + tractorColumns + ` FROM tractor_reservations WHERE id = $1`
	r, err := scanTractor(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return r, err
}

func (s *tractorReservationRepository) Update(ctx context.Context, r *domain.TractorReservation) error {
	query := `UPDATE tractor_reservations SET status=$1, admin_notes=$2, decided_by=$3, decided_at=$4, updated_at=$5 WHERE id=$6`
	r.UpdatedAt = time.Now()
	_, err := s.db.ExecContext(ctx, query, r.Status, r.AdminNotes, r.DecidedBy, r.DecidedAt, r.UpdatedAt, r.ID)
	return err
}

func (s *tractorReservationRepository) Delete(ctx context.Context, id int32) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tractor_reservations WHERE id = $1`, id)
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

func (s *tractorReservationRepository) list(ctx context.Context, query string, args ...any) ([]domain.TractorReservation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TractorReservation
	for rows.Next() {
		r, err := scanTractor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *tractorReservationRepository) ListByRequester(ctx context.Context, requesterID int32) ([]domain.TractorReservation, error) {
	query := `SELECT ` + tractorColumns + ` FROM tractor_reservations WHERE requester_id = $1 ORDER BY requested_date DESC`
	return s.list(ctx, query, requesterID)
}

func (s *tractorReservationRepository) ListAll(ctx context.Context) ([]domain.TractorReservation, error) {
	query := `SELECT ` + tractorColumns + ` FROM tractor_reservations ORDER BY requested_date DESC`
	return s.list(ctx, query)
}

func (s *tractorReservationRepository) AutoComplete(ctx context.Context, before time.Time) (int64, error) {
	query := `UPDATE tractor_reservations SET status = $1, updated_at = NOW() WHERE status = $2 AND requested_date < $3`
	result, err := s.db.ExecContext(ctx, query, domain.CartStatusCompleted, domain.CartStatusApproved, dateArg(before))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
