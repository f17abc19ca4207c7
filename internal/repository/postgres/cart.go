package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/repository"
)

type cartReservationRepository struct {
	db *sql.DB
}

func NewCartReservationRepository(db *sql.DB) repository.CartReservationRepository {
	return &cartReservationRepository{db: db}
}

const cartColumns = `id, requester_id, requested_date, value_cents, status, admin_notes, decided_by, decided_at, created_at, updated_at`

func scanCart(row interface{ Scan(...any) error }) (*domain.CartReservation, error) {
	r := &domain.CartReservation{}
	err := row.Scan(&r.ID, &r.RequesterID, &r.RequestedDate, &r.ValueCents, &r.Status,
		&r.AdminNotes, &r.DecidedBy, &r.DecidedAt, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *cartReservationRepository) Create(ctx context.Context, r *domain.CartReservation) error {
	query := `INSERT INTO cart_reservations (requester_id, requested_date, value_cents, status, admin_notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	return s.db.QueryRowContext(ctx, query, r.RequesterID, dateArg(r.RequestedDate), r.ValueCents, r.Status, r.AdminNotes, now, now).Scan(&r.ID)
}

func (s *cartReservationRepository) GetByID(ctx context.Context, id int32) (*domain.CartReservation, error) {
	query := `SELECT ` + cartColumns + ` FROM cart_reservations WHERE id = $1`
	r, err := scanCart(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return r, err
}

func (s *cartReservationRepository) Update(ctx context.Context, r *domain.CartReservation) error {
	query := `UPDATE cart_reservations SET status=$1, admin_notes=$2, decided_by=$3, decided_at=$4, updated_at=$5 WHERE id=$6`
	r.UpdatedAt = time.Now()
	_, err := s.db.ExecContext(ctx, query, r.Status, r.AdminNotes, r.DecidedBy, r.DecidedAt, r.UpdatedAt, r.ID)
	return err
}

func (s *cartReservationRepository) Delete(ctx context.Context, id int32) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cart_reservations WHERE id = $1`, id)
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

func (s *cartReservationRepository) list(ctx context.Context, query string, args ...any) ([]domain.CartReservation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CartReservation
	for rows.Next() {
		r, err := scanCart(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *cartReservationRepository) ListByRequester(ctx context.Context, requesterID int32) ([]domain.CartReservation, error) {
	query := `SELECT ` + cartColumns + ` FROM cart_reservations WHERE requester_id = $1 ORDER BY requested_date DESC`
	return s.list(ctx, query, requesterID)
}

func (s *cartReservationRepository) ListAll(ctx context.Context) ([]domain.CartReservation, error) {
	query := `SELECT ` + cartColumns + ` FROM cart_reservations ORDER BY requested_date DESC`
	return s.list(ctx, query)
}

func (s *cartReservationRepository) CountActiveByRequester(ctx context.Context, requesterID int32) (int32, error) {
	query := `SELECT count(*) FROM cart_reservations WHERE requester_id = $1 AND status IN ($2, $3)`
	var count int32
	err := s.db.QueryRowContext(ctx, query, requesterID, domain.CartStatusPending, domain.CartStatusApproved).Scan(&count)
	return count, err
}

func (s *cartReservationRepository) CountApprovedOnDate(ctx context.Context, date time.Time) (int32, error) {
	query := `SELECT count(*) FROM cart_reservations WHERE requested_date = $1 AND status = $2`
	var count int32
	err := s.db.QueryRowContext(ctx, query, dateArg(date), domain.CartStatusApproved).Scan(&count)
	return count, err
}

// ApproveWithCapacityCheck approves inside a transaction that serializes
// all approvals for the same calendar date: the reservation row is locked,
// then a per-date advisory lock is taken before the recount. Two admins
// approving different reservations for the same date queue on the advisory
// lock, so the second recount sees the first commit and the capacity can
// never be over-committed.
func (s *cartReservationRepository) ApproveWithCapacityCheck(ctx context.Context, r *domain.CartReservation, capacity int32) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var date time.Time
	lockQuery := `SELECT requested_date FROM cart_reservations WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, lockQuery, r.ID).Scan(&date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	day := dateArg(date)

	// Held until commit or rollback; keyed on the date so approvals for
	// different days do not contend.
	advisoryQuery := `SELECT pg_advisory_xact_lock(hashtext('cart_capacity:' || $1))`
	if _, err := tx.ExecContext(ctx, advisoryQuery, day); err != nil {
		return err
	}

	var approved int32
	countQuery := `SELECT count(*) FROM cart_reservations WHERE requested_date = $1 AND status = $2`
	if err := tx.QueryRowContext(ctx, countQuery, day, domain.CartStatusApproved).Scan(&approved); err != nil {
		return err
	}
	if approved >= capacity {
		return domain.ErrNoCartsAvailable
	}

	r.UpdatedAt = time.Now()
	updateQuery := `UPDATE cart_reservations SET status=$1, admin_notes=$2, decided_by=$3, decided_at=$4, updated_at=$5 WHERE id=$6`
	if _, err := tx.ExecContext(ctx, updateQuery, r.Status, r.AdminNotes, r.DecidedBy, r.DecidedAt, r.UpdatedAt, r.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *cartReservationRepository) AutoComplete(ctx context.Context, before time.Time) (int64, error) {
	query := `UPDATE cart_reservations SET status = $1, updated_at = NOW() WHERE status = $2 AND requested_date < $3`
	result, err := s.db.ExecContext(ctx, query, domain.CartStatusCompleted, domain.CartStatusApproved, dateArg(before))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
