package jobs

import (
	"context"
	"time"

	"condoreserve-backend/internal/logger"
)

// AutoCompleteOverdueReservations advances reservations whose requested
// date has passed and that an admin forgot to finalize: approved carts
// and tractors, and in-progress chainsaw requests, all move to
// COMPLETED. The sweep is idempotent; a second run right after the first
// finds nothing left to touch. A failure on one variant does not stop
// the others.
func (jr *JobRunner) AutoCompleteOverdueReservations() {
	jr.runWithRecovery("AutoCompleteOverdueReservations", func() {
		ctx := context.Background()

		// Strictly before the start of today: a reservation for today is
		// still running and must not be closed out.
		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		if count, err := jr.store.CartReservationRepository.AutoComplete(ctx, startOfDay); err != nil {
			logger.Error("Failed to auto-complete cart reservations", "error", err)
		} else if count > 0 {
			logger.Info("Auto-completed cart reservations", "count", count)
		}

		if count, err := jr.store.TractorReservationRepository.AutoComplete(ctx, startOfDay); err != nil {
			logger.Error("Failed to auto-complete tractor reservations", "error", err)
		} else if count > 0 {
			logger.Info("Auto-completed tractor reservations", "count", count)
		}

		if count, err := jr.store.ChainsawReservationRepository.AutoComplete(ctx, startOfDay); err != nil {
			logger.Error("Failed to auto-complete chainsaw reservations", "error", err)
		} else if count > 0 {
			logger.Info("Auto-completed chainsaw reservations", "count", count)
		}
	})
}
