package jobs

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"condoreserve-backend/internal/config"
	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/repository/postgres"
)

func newJobRunner(t *testing.T) (*JobRunner, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewJobRunner(db, postgres.NewStore(db), &config.Config{}), mock
}

func TestAutoCompleteOverdueReservations(t *testing.T) {
	t.Run("SweepsAllThreeVariants", func(t *testing.T) {
		jr, mock := newJobRunner(t)

		mock.ExpectExec("UPDATE cart_reservations SET status").
			WithArgs(domain.CartStatusCompleted, domain.CartStatusApproved, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("UPDATE tractor_reservations SET status").
			WithArgs(domain.CartStatusCompleted, domain.CartStatusApproved, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE chainsaw_reservations SET status").
			WithArgs(domain.ChainsawStatusCompleted, domain.ChainsawStatusInProgress, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		jr.AutoCompleteOverdueReservations()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SecondRunFindsNothing", func(t *testing.T) {
		jr, mock := newJobRunner(t)

		mock.ExpectExec("UPDATE cart_reservations SET status").
			WithArgs(domain.CartStatusCompleted, domain.CartStatusApproved, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE tractor_reservations SET status").
			WithArgs(domain.CartStatusCompleted, domain.CartStatusApproved, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE chainsaw_reservations SET status").
			WithArgs(domain.ChainsawStatusCompleted, domain.ChainsawStatusInProgress, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		jr.AutoCompleteOverdueReservations()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("VariantFailureDoesNotStopOthers", func(t *testing.T) {
		jr, mock := newJobRunner(t)

		mock.ExpectExec("UPDATE cart_reservations SET status").
			WithArgs(domain.CartStatusCompleted, domain.CartStatusApproved, sqlmock.AnyArg()).
			WillReturnError(assert.AnError)
		mock.ExpectExec("UPDATE tractor_reservations SET status").
			WithArgs(domain.CartStatusCompleted, domain.CartStatusApproved, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE chainsaw_reservations SET status").
			WithArgs(domain.ChainsawStatusCompleted, domain.ChainsawStatusInProgress, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		jr.AutoCompleteOverdueReservations()
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
