package postgres

import (
	"database/sql"
	"time"

	"condoreserve-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CartReservationRepository
	repository.TractorReservationRepository
	repository.ChainsawReservationRepository
	repository.SettingRepository
	repository.NotificationRepository
	repository.UserRepository
	repository.AuditRepository
}

// dateArg renders a calendar date for binding against DATE columns.
// Binding the yyyy-mm-dd string keeps the stored day independent of the
// database session timezone; a time.Time would go through a timestamptz
// cast that can shift the day.
func dateArg(t time.Time) string {
	return t.Format("2006-01-02")
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                            db,
		CartReservationRepository:     NewCartReservationRepository(db),
		TractorReservationRepository:  NewTractorReservationRepository(db),
		ChainsawReservationRepository: NewChainsawReservationRepository(db),
		SettingRepository:             NewSettingRepository(db),
		NotificationRepository:        NewNotificationRepository(db),
		UserRepository:                NewUserRepository(db),
		AuditRepository:               NewAuditRepository(db),
	}
}
