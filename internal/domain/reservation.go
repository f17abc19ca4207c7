package domain

import "time"

// CartStatus is the status vocabulary shared by cart and tractor
// reservations. Chainsaw service requests use ChainsawStatus instead;
// the two sets are not interchangeable.
type CartStatus string

const (
	CartStatusPending   CartStatus = "PENDING"
	CartStatusApproved  CartStatus = "APPROVED"
	CartStatusRejected  CartStatus = "REJECTED"
	CartStatusCompleted CartStatus = "COMPLETED"
)

type ChainsawStatus string

const (
	ChainsawStatusPending    ChainsawStatus = "PENDING"
	ChainsawStatusInProgress ChainsawStatus = "IN_PROGRESS"
	ChainsawStatusCancelled  ChainsawStatus = "CANCELLED"
	ChainsawStatusCompleted  ChainsawStatus = "COMPLETED"
)

// Reservation holds the fields common to all three reservation variants.
// DecidedBy/DecidedAt are set whenever an admin makes any status decision,
// not only on approval.
type Reservation struct {
	ID          int32 `json:"id"`
	RequesterID int32 `json:"requester_id"`
	// RequestedDate is a calendar date; the time-of-day slot is implicit
	// per variant (carts are a full 08:00-16:00 day).
	RequestedDate time.Time  `json:"requested_date"`
	AdminNotes    string     `json:"admin_notes"`
	DecidedBy     *int32     `json:"decided_by,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CartReservation struct {
	Reservation
	// ValueCents is the flat cart price snapshotted from settings at
	// creation time.
	ValueCents int64      `json:"value_cents"`
	Status     CartStatus `json:"status"`
}

type TractorReservation struct {
	Reservation
	HoursNeeded int32 `json:"hours_needed"`
	// Price snapshot fields, captured from settings at creation time.
	// Later changes to the hourly rate setting never touch these.
	ValuePerHourCents int64      `json:"value_per_hour_cents"`
	TotalValueCents   int64      `json:"total_value_cents"`
	Status            CartStatus `json:"status"`
}

type ChainsawReservation struct {
	Reservation
	Description string         `json:"description"`
	Status      ChainsawStatus `json:"status"`
}

// cart/tractor transitions: PENDING -> APPROVED | REJECTED,
// APPROVED -> COMPLETED. REJECTED and COMPLETED are terminal.
var cartTransitions = map[CartStatus][]CartStatus{
	CartStatusPending:  {CartStatusApproved, CartStatusRejected},
	CartStatusApproved: {CartStatusCompleted},
}

// chainsaw transitions: PENDING -> IN_PROGRESS | CANCELLED,
// IN_PROGRESS -> COMPLETED. CANCELLED and COMPLETED are terminal.
var chainsawTransitions = map[ChainsawStatus][]ChainsawStatus{
	ChainsawStatusPending:    {ChainsawStatusInProgress, ChainsawStatusCancelled},
	ChainsawStatusInProgress: {ChainsawStatusCompleted},
}

// CanTransitionCart reports whether from -> to is a legal admin-issued
// transition for cart and tractor reservations.
func CanTransitionCart(from, to CartStatus) bool {
	for _, s := range cartTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func CanTransitionChainsaw(from, to ChainsawStatus) bool {
	for _, s := range chainsawTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidCartStatus reports whether s is a known cart/tractor status value.
func ValidCartStatus(s CartStatus) bool {
	switch s {
	case CartStatusPending, CartStatusApproved, CartStatusRejected, CartStatusCompleted:
		return true
	}
	return false
}

func ValidChainsawStatus(s ChainsawStatus) bool {
	switch s {
	case ChainsawStatusPending, ChainsawStatusInProgress, ChainsawStatusCancelled, ChainsawStatusCompleted:
		return true
	}
	return false
}
