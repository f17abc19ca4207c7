package repository

import (
	"context"
	"time"

	"condoreserve-backend/internal/domain"
)

type CartReservationRepository interface {
	Create(ctx context.Context, r *domain.CartReservation) error
	GetByID(ctx context.Context, id int32) (*domain.CartReservation, error)
	Update(ctx context.Context, r *domain.CartReservation) error
	Delete(ctx context.Context, id int32) error
	ListByRequester(ctx context.Context, requesterID int32) ([]domain.CartReservation, error)
	ListAll(ctx context.Context) ([]domain.CartReservation, error)

	// CountActiveByRequester counts PENDING and APPROVED reservations
	// held by one requester.
	CountActiveByRequester(ctx context.Context, requesterID int32) (int32, error)
	// CountApprovedOnDate counts APPROVED reservations on one calendar day.
	CountApprovedOnDate(ctx context.Context, date time.Time) (int32, error)
	// ApproveWithCapacityCheck approves a pending reservation inside a
	// transaction that locks the row, takes a per-date advisory lock and
	// recounts approvals for the same date, so capacity can never be
	// over-committed by concurrent admins even when they approve
	// different reservations.
	// Returns domain.ErrNoCartsAvailable when the recount hits capacity.
	ApproveWithCapacityCheck(ctx context.Context, r *domain.CartReservation, capacity int32) error
	// AutoComplete advances APPROVED reservations dated before the cutoff
	// to COMPLETED and returns the number of rows touched.
	AutoComplete(ctx context.Context, before time.Time) (int64, error)
}

type TractorReservationRepository interface {
	Create(ctx context.Context, r *domain.TractorReservation) error
	GetByID(ctx context.Context, id int32) (*domain.TractorReservation, error)
	Update(ctx context.Context, r *domain.TractorReservation) error
	Delete(ctx context.Context, id int32) error
	ListByRequester(ctx context.Context, requesterID int32) ([]domain.TractorReservation, error)
	ListAll(ctx context.Context) ([]domain.TractorReservation, error)
	AutoComplete(ctx context.Context, before time.Time) (int64, error)
}

type ChainsawReservationRepository interface {
	Create(ctx context.Context, r *domain.ChainsawReservation) error
	GetByID(ctx context.Context, id int32) (*domain.ChainsawReservation, error)
	Update(ctx context.Context, r *domain.ChainsawReservation) error
	Delete(ctx context.Context, id int32) error
	ListByRequester(ctx context.Context, requesterID int32) ([]domain.ChainsawReservation, error)
	ListAll(ctx context.Context) ([]domain.ChainsawReservation, error)
	AutoComplete(ctx context.Context, before time.Time) (int64, error)
}

type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, setting *domain.Setting) error
	List(ctx context.Context) ([]domain.Setting, error)
	// EnsureDefault inserts a setting only when the key does not exist yet.
	EnsureDefault(ctx context.Context, setting *domain.Setting) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	ListAdmins(ctx context.Context) ([]domain.User, error)
}

type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, entityType string, limit, offset int32) ([]domain.AuditEntry, int32, error)
}
