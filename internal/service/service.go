package service

import (
	"context"

	"condoreserve-backend/internal/domain"
)

// CreateCartInput carries the payload for a cart reservation request.
// RequesterID is only honored when an admin creates on a resident's
// behalf; otherwise the acting user owns the reservation.
type CreateCartInput struct {
	RequestedDate string `json:"requested_date"`
	RequesterID   int32  `json:"requester_id,omitempty"`
}

type CreateTractorInput struct {
	RequestedDate string `json:"requested_date"`
	HoursNeeded   int32  `json:"hours_needed"`
	RequesterID   int32  `json:"requester_id,omitempty"`
}

type CreateChainsawInput struct {
	RequestedDate string `json:"requested_date"`
	Description   string `json:"description"`
	RequesterID   int32  `json:"requester_id,omitempty"`
}

type ReservationService interface {
	CreateCart(ctx context.Context, actor domain.Actor, input CreateCartInput) (*domain.CartReservation, error)
	CreateTractor(ctx context.Context, actor domain.Actor, input CreateTractorInput) (*domain.TractorReservation, error)
	CreateChainsaw(ctx context.Context, actor domain.Actor, input CreateChainsawInput) (*domain.ChainsawReservation, error)

	TransitionCart(ctx context.Context, actor domain.Actor, id int32, newStatus domain.CartStatus, adminNotes string) (*domain.CartReservation, error)
	TransitionTractor(ctx context.Context, actor domain.Actor, id int32, newStatus domain.CartStatus, adminNotes string) (*domain.TractorReservation, error)
	TransitionChainsaw(ctx context.Context, actor domain.Actor, id int32, newStatus domain.ChainsawStatus, adminNotes string) (*domain.ChainsawReservation, error)

	CancelCart(ctx context.Context, actor domain.Actor, id int32) error
	CancelTractor(ctx context.Context, actor domain.Actor, id int32) error
	CancelChainsaw(ctx context.Context, actor domain.Actor, id int32) error

	GetCart(ctx context.Context, actor domain.Actor, id int32) (*domain.CartReservation, error)
	GetTractor(ctx context.Context, actor domain.Actor, id int32) (*domain.TractorReservation, error)
	GetChainsaw(ctx context.Context, actor domain.Actor, id int32) (*domain.ChainsawReservation, error)

	ListCarts(ctx context.Context, actor domain.Actor) ([]domain.CartReservation, error)
	ListTractors(ctx context.Context, actor domain.Actor) ([]domain.TractorReservation, error)
	ListChainsaws(ctx context.Context, actor domain.Actor) ([]domain.ChainsawReservation, error)
}

type SettingsService interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Set(ctx context.Context, actor domain.Actor, key, value, description string) error
	List(ctx context.Context) ([]domain.Setting, error)
	// EnsureDefaults idempotently seeds the keys the engine depends on.
	EnsureDefaults(ctx context.Context) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type AuditService interface {
	ListEntries(ctx context.Context, actor domain.Actor, entityType string, page, pageSize int32) ([]domain.AuditEntry, int32, error)
}

// Notifier dispatches user-facing events. Implementations are
// fire-and-forget: a notifier failure never surfaces to the caller and
// never rolls back the mutation that triggered it.
type Notifier interface {
	NotifyUser(userID int32, title, message, link string, attrs map[string]string)
	NotifyAdmins(title, message, link string, attrs map[string]string)
}

// AuditRecorder writes before/after snapshots of mutating operations.
// Write-only and fire-and-forget from the engine's perspective.
type AuditRecorder interface {
	RecordCreate(actorID int32, entityType, entityID string, after any)
	RecordUpdate(actorID int32, entityType, entityID string, before, after any)
	RecordDelete(actorID int32, entityType, entityID string, before any)
}

// PushSender delivers a push notification to a single device.
type PushSender interface {
	Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}
