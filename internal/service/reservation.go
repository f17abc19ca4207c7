package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/repository"
)

const (
	defaultMinHoursAdvance     = 24
	defaultAvailableCarts      = 2
	defaultCartPrice           = "50.00"
	defaultTractorPricePerHour = "150.00"
)

const (
	entityCartReservation     = "cart_reservation"
	entityTractorReservation  = "tractor_reservation"
	entityChainsawReservation = "chainsaw_reservation"
)

type reservationService struct {
	cartRepo     repository.CartReservationRepository
	tractorRepo  repository.TractorReservationRepository
	chainsawRepo repository.ChainsawReservationRepository
	settingRepo  repository.SettingRepository
	userRepo     repository.UserRepository
	notifier     Notifier
	audit        AuditRecorder
}

func NewReservationService(
	cartRepo repository.CartReservationRepository,
	tractorRepo repository.TractorReservationRepository,
	chainsawRepo repository.ChainsawReservationRepository,
	settingRepo repository.SettingRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	audit AuditRecorder,
) ReservationService {
	return &reservationService{
		cartRepo:     cartRepo,
		tractorRepo:  tractorRepo,
		chainsawRepo: chainsawRepo,
		settingRepo:  settingRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		audit:        audit,
	}
}

// settingInt reads a numeric setting, falling back to def when the key
// was never configured. Settings are fetched fresh on every call so an
// admin change takes effect immediately for new requests.
func (s *reservationService) settingInt(ctx context.Context, key string, def int) (int, error) {
	st, err := s.settingRepo.Get(ctx, key)
	if err == domain.ErrSettingNotFound {
		return def, nil
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(st.Value))
	if err != nil {
		return def, nil
	}
	return v, nil
}

func (s *reservationService) settingCents(ctx context.Context, key, def string) (int64, error) {
	value := def
	st, err := s.settingRepo.Get(ctx, key)
	if err != nil && err != domain.ErrSettingNotFound {
		return 0, err
	}
	if err == nil {
		value = st.Value
	}
	cents, err := parseMoneyCents(value)
	if err != nil {
		return parseMoneyCents(def)
	}
	return cents, nil
}

// parseMoneyCents converts a decimal money string ("150.00") to cents.
// Integer math only; at most two fraction digits are accepted.
func parseMoneyCents(value string) (int64, error) {
	whole, frac, _ := strings.Cut(strings.TrimSpace(value), ".")
	if len(frac) > 2 {
		return 0, fmt.Errorf("invalid money value %q: more than two decimal places", value)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid money value %q: %w", value, err)
	}
	f, err := strconv.ParseUint(frac, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid money value %q: %w", value, err)
	}
	return int64(w)*100 + int64(f), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func parseRequestedDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, domain.Validationf("requested_date is required")
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, domain.Validationf("invalid requested_date, expected yyyy-mm-dd")
	}
	return date, nil
}

// resolveRequester decides who owns the new reservation. An admin may
// create on behalf of a target resident; anyone else owns their own
// request.
func resolveRequester(actor domain.Actor, target int32) (int32, bool, error) {
	if target != 0 && target != actor.UserID {
		if !actor.IsAdmin() {
			return 0, false, domain.ErrAdminOnly
		}
		return target, true, nil
	}
	return actor.UserID, false, nil
}

func (s *reservationService) checkAdvanceNotice(ctx context.Context, date time.Time) error {
	minHours, err := s.settingInt(ctx, domain.SettingMinHoursAdvance, defaultMinHoursAdvance)
	if err != nil {
		return err
	}
	if date.Before(time.Now().Add(time.Duration(minHours) * time.Hour)) {
		return domain.Validationf("at least %d hours advance notice required", minHours)
	}
	return nil
}

func (s *reservationService) requesterName(ctx context.Context, id int32) string {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Sprintf("resident #%d", id)
	}
	return u.Name
}

func (s *reservationService) CreateCart(ctx context.Context, actor domain.Actor, input CreateCartInput) (*domain.CartReservation, error) {
	requesterID, onBehalf, err := resolveRequester(actor, input.RequesterID)
	if err != nil {
		return nil, err
	}

	date, err := parseRequestedDate(input.RequestedDate)
	if err != nil {
		return nil, err
	}

	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil, domain.ErrWeekendDate
	}

	active, err := s.cartRepo.CountActiveByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, domain.ErrActiveCartExists
	}

	if err := s.checkAdvanceNotice(ctx, date); err != nil {
		return nil, err
	}

	capacity, err := s.settingInt(ctx, domain.SettingAvailableCarts, defaultAvailableCarts)
	if err != nil {
		return nil, err
	}
	approved, err := s.cartRepo.CountApprovedOnDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if approved >= int32(capacity) {
		return nil, domain.ErrNoCartsAvailable
	}

	price, err := s.settingCents(ctx, domain.SettingCartPrice, defaultCartPrice)
	if err != nil {
		return nil, err
	}

	r := &domain.CartReservation{
		Reservation: domain.Reservation{
			RequesterID:   requesterID,
			RequestedDate: date,
		},
		ValueCents: price,
		Status:     domain.CartStatusPending,
	}
	if err := s.cartRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.emitCreated(ctx, actor, onBehalf, requesterID, entityCartReservation, "cart", r.ID, date, r)
	return r, nil
}

func (s *reservationService) CreateTractor(ctx context.Context, actor domain.Actor, input CreateTractorInput) (*domain.TractorReservation, error) {
	requesterID, onBehalf, err := resolveRequester(actor, input.RequesterID)
	if err != nil {
		return nil, err
	}

	if input.HoursNeeded < 1 {
		return nil, domain.Validationf("hours_needed must be at least 1")
	}

	date, err := parseRequestedDate(input.RequestedDate)
	if err != nil {
		return nil, err
	}

	if err := s.checkAdvanceNotice(ctx, date); err != nil {
		return nil, err
	}

	perHour, err := s.settingCents(ctx, domain.SettingTractorPricePerHour, defaultTractorPricePerHour)
	if err != nil {
		return nil, err
	}

	r := &domain.TractorReservation{
		Reservation: domain.Reservation{
			RequesterID:   requesterID,
			RequestedDate: date,
		},
		HoursNeeded:       input.HoursNeeded,
		ValuePerHourCents: perHour,
		TotalValueCents:   perHour * int64(input.HoursNeeded),
		Status:            domain.CartStatusPending,
	}
	if err := s.tractorRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.emitCreated(ctx, actor, onBehalf, requesterID, entityTractorReservation, "tractor", r.ID, date, r)
	return r, nil
}

func (s *reservationService) CreateChainsaw(ctx context.Context, actor domain.Actor, input CreateChainsawInput) (*domain.ChainsawReservation, error) {
	requesterID, onBehalf, err := resolveRequester(actor, input.RequesterID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Description) == "" {
		return nil, domain.Validationf("description is required")
	}

	date, err := parseRequestedDate(input.RequestedDate)
	if err != nil {
		return nil, err
	}

	if err := s.checkAdvanceNotice(ctx, date); err != nil {
		return nil, err
	}

	r := &domain.ChainsawReservation{
		Reservation: domain.Reservation{
			RequesterID:   requesterID,
			RequestedDate: date,
		},
		Description: input.Description,
		Status:      domain.ChainsawStatusPending,
	}
	if err := s.chainsawRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.emitCreated(ctx, actor, onBehalf, requesterID, entityChainsawReservation, "chainsaw", r.ID, date, r)
	return r, nil
}

// emitCreated fans out the post-create side effects: admins always hear
// about a new request, the target resident only when an admin filed it on
// their behalf, and the audit log gets the created snapshot. All of it is
// best-effort.
func (s *reservationService) emitCreated(ctx context.Context, actor domain.Actor, onBehalf bool, requesterID int32, entityType, variant string, id int32, date time.Time, record any) {
	link := fmt.Sprintf("/reservations/%s/%d", variant, id)
	attrs := map[string]string{
		"type":           strings.ToUpper(entityType) + "_REQUESTED",
		"reservation_id": fmt.Sprintf("%d", id),
	}
	name := s.requesterName(ctx, requesterID)
	s.notifier.NotifyAdmins(
		fmt.Sprintf("New %s reservation", variant),
		fmt.Sprintf("%s requested the %s for %s", name, variant, date.Format("2006-01-02")),
		link, attrs)
	if onBehalf {
		s.notifier.NotifyUser(requesterID,
			"Reservation created for you",
			fmt.Sprintf("An administrator requested the %s for %s on your behalf", variant, date.Format("2006-01-02")),
			link, attrs)
	}
	s.audit.RecordCreate(actor.UserID, entityType, fmt.Sprintf("%d", id), record)
}

func (s *reservationService) TransitionCart(ctx context.Context, actor domain.Actor, id int32, newStatus domain.CartStatus, adminNotes string) (*domain.CartReservation, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	if !domain.ValidCartStatus(newStatus) {
		return nil, domain.Validationf("unknown status %q", string(newStatus))
	}

	r, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *r

	if !domain.CanTransitionCart(r.Status, newStatus) {
		return nil, domain.ErrIllegalTransition
	}

	now := time.Now()
	adminID := actor.UserID
	r.Status = newStatus
	r.AdminNotes = adminNotes
	r.DecidedBy = &adminID
	r.DecidedAt = &now

	if newStatus == domain.CartStatusApproved {
		// Approval re-validates capacity under a row lock so concurrent
		// admins cannot over-commit the available carts.
		capacity, err := s.settingInt(ctx, domain.SettingAvailableCarts, defaultAvailableCarts)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.ApproveWithCapacityCheck(ctx, r, int32(capacity)); err != nil {
			return nil, err
		}
	} else {
		if err := s.cartRepo.Update(ctx, r); err != nil {
			return nil, err
		}
	}

	s.emitDecided(ctx, actor, r.RequesterID, entityCartReservation, "cart", id, string(newStatus), before, r)
	return r, nil
}

func (s *reservationService) TransitionTractor(ctx context.Context, actor domain.Actor, id int32, newStatus domain.CartStatus, adminNotes string) (*domain.TractorReservation, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	if !domain.ValidCartStatus(newStatus) {
		return nil, domain.Validationf("unknown status %q", string(newStatus))
	}

	r, err := s.tractorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *r

	if !domain.CanTransitionCart(r.Status, newStatus) {
		return nil, domain.ErrIllegalTransition
	}

	now := time.Now()
	adminID := actor.UserID
	r.Status = newStatus
	r.AdminNotes = adminNotes
	r.DecidedBy = &adminID
	r.DecidedAt = &now

	if err := s.tractorRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	s.emitDecided(ctx, actor, r.RequesterID, entityTractorReservation, "tractor", id, string(newStatus), before, r)
	return r, nil
}

func (s *reservationService) TransitionChainsaw(ctx context.Context, actor domain.Actor, id int32, newStatus domain.ChainsawStatus, adminNotes string) (*domain.ChainsawReservation, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	if !domain.ValidChainsawStatus(newStatus) {
		return nil, domain.Validationf("unknown status %q", string(newStatus))
	}

	r, err := s.chainsawRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *r

	if !domain.CanTransitionChainsaw(r.Status, newStatus) {
		return nil, domain.ErrIllegalTransition
	}

	now := time.Now()
	adminID := actor.UserID
	r.Status = newStatus
	r.AdminNotes = adminNotes
	r.DecidedBy = &adminID
	r.DecidedAt = &now

	if err := s.chainsawRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	s.emitDecided(ctx, actor, r.RequesterID, entityChainsawReservation, "chainsaw", id, string(newStatus), before, r)
	return r, nil
}

func (s *reservationService) emitDecided(ctx context.Context, actor domain.Actor, requesterID int32, entityType, variant string, id int32, status string, before, after any) {
	link := fmt.Sprintf("/reservations/%s/%d", variant, id)
	s.notifier.NotifyUser(requesterID,
		fmt.Sprintf("%s reservation %s", titleCase(variant), strings.ToLower(strings.ReplaceAll(status, "_", " "))),
		fmt.Sprintf("Your %s reservation is now %s", variant, strings.ToLower(strings.ReplaceAll(status, "_", " "))),
		link,
		map[string]string{
			"type":           strings.ToUpper(entityType) + "_" + status,
			"reservation_id": fmt.Sprintf("%d", id),
		})
	s.audit.RecordUpdate(actor.UserID, entityType, fmt.Sprintf("%d", id), before, after)
}

func (s *reservationService) CancelCart(ctx context.Context, actor domain.Actor, id int32) error {
	r, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.RequesterID != actor.UserID {
		return domain.ErrForbidden
	}
	if r.Status != domain.CartStatusPending {
		return domain.ErrNotPending
	}
	if err := s.cartRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitCancelled(ctx, actor, entityCartReservation, "cart", id, r.RequestedDate, r)
	return nil
}

func (s *reservationService) CancelTractor(ctx context.Context, actor domain.Actor, id int32) error {
	r, err := s.tractorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.RequesterID != actor.UserID {
		return domain.ErrForbidden
	}
	if r.Status != domain.CartStatusPending {
		return domain.ErrNotPending
	}
	if err := s.tractorRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitCancelled(ctx, actor, entityTractorReservation, "tractor", id, r.RequestedDate, r)
	return nil
}

func (s *reservationService) CancelChainsaw(ctx context.Context, actor domain.Actor, id int32) error {
	r, err := s.chainsawRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.RequesterID != actor.UserID {
		return domain.ErrForbidden
	}
	if r.Status != domain.ChainsawStatusPending {
		return domain.ErrNotPending
	}
	if err := s.chainsawRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitCancelled(ctx, actor, entityChainsawReservation, "chainsaw", id, r.RequestedDate, r)
	return nil
}

func (s *reservationService) emitCancelled(ctx context.Context, actor domain.Actor, entityType, variant string, id int32, date time.Time, record any) {
	name := s.requesterName(ctx, actor.UserID)
	s.notifier.NotifyAdmins(
		fmt.Sprintf("%s reservation cancelled", titleCase(variant)),
		fmt.Sprintf("%s cancelled their %s reservation for %s", name, variant, date.Format("2006-01-02")),
		"",
		map[string]string{
			"type":           strings.ToUpper(entityType) + "_CANCELLED",
			"reservation_id": fmt.Sprintf("%d", id),
		})
	s.audit.RecordDelete(actor.UserID, entityType, fmt.Sprintf("%d", id), record)
}

func (s *reservationService) GetCart(ctx context.Context, actor domain.Actor, id int32) (*domain.CartReservation, error) {
	r, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.RequesterID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return r, nil
}

func (s *reservationService) GetTractor(ctx context.Context, actor domain.Actor, id int32) (*domain.TractorReservation, error) {
	r, err := s.tractorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.RequesterID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return r, nil
}

func (s *reservationService) GetChainsaw(ctx context.Context, actor domain.Actor, id int32) (*domain.ChainsawReservation, error) {
	r, err := s.chainsawRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.RequesterID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return r, nil
}

func (s *reservationService) ListCarts(ctx context.Context, actor domain.Actor) ([]domain.CartReservation, error) {
	if actor.IsAdmin() {
		return s.cartRepo.ListAll(ctx)
	}
	return s.cartRepo.ListByRequester(ctx, actor.UserID)
}

func (s *reservationService) ListTractors(ctx context.Context, actor domain.Actor) ([]domain.TractorReservation, error) {
	if actor.IsAdmin() {
		return s.tractorRepo.ListAll(ctx)
	}
	return s.tractorRepo.ListByRequester(ctx, actor.UserID)
}

func (s *reservationService) ListChainsaws(ctx context.Context, actor domain.Actor) ([]domain.ChainsawReservation, error) {
	if actor.IsAdmin() {
		return s.chainsawRepo.ListAll(ctx)
	}
	return s.chainsawRepo.ListByRequester(ctx, actor.UserID)
}
