package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/service"
)

const (
	variantCart     = "cart"
	variantTractor  = "tractor"
	variantChainsaw = "chainsaw"
)

// ReservationHandler exposes the reservation engine over REST.
type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// createPayload is the superset of the three variant create bodies; the
// engine validates the fields the variant actually needs.
type createPayload struct {
	RequestedDate string `json:"requested_date"`
	HoursNeeded   int32  `json:"hours_needed"`
	Description   string `json:"description"`
	RequesterID   int32  `json:"requester_id"`
}

type statusPayload struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

func requestVars(w http.ResponseWriter, r *http.Request, needID bool) (domain.Actor, string, int32, bool) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing identity")
		return domain.Actor{}, "", 0, false
	}

	vars := mux.Vars(r)
	variant := vars["variant"]
	switch variant {
	case variantCart, variantTractor, variantChainsaw:
	default:
		writeJSONError(w, http.StatusNotFound, "unknown reservation variant")
		return domain.Actor{}, "", 0, false
	}

	var id int32
	if needID {
		parsed, err := strconv.ParseInt(vars["id"], 10, 32)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid reservation id")
			return domain.Actor{}, "", 0, false
		}
		id = int32(parsed)
	}
	return actor, variant, id, true
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, variant, _, ok := requestVars(w, r, false)
	if !ok {
		return
	}

	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		created any
		err     error
	)
	switch variant {
	case variantCart:
		created, err = h.svc.CreateCart(r.Context(), actor, service.CreateCartInput{
			RequestedDate: payload.RequestedDate,
			RequesterID:   payload.RequesterID,
		})
	case variantTractor:
		created, err = h.svc.CreateTractor(r.Context(), actor, service.CreateTractorInput{
			RequestedDate: payload.RequestedDate,
			HoursNeeded:   payload.HoursNeeded,
			RequesterID:   payload.RequesterID,
		})
	case variantChainsaw:
		created, err = h.svc.CreateChainsaw(r.Context(), actor, service.CreateChainsawInput{
			RequestedDate: payload.RequestedDate,
			Description:   payload.Description,
			RequesterID:   payload.RequesterID,
		})
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, variant, _, ok := requestVars(w, r, false)
	if !ok {
		return
	}

	var (
		listed any
		err    error
	)
	switch variant {
	case variantCart:
		listed, err = h.svc.ListCarts(r.Context(), actor)
	case variantTractor:
		listed, err = h.svc.ListTractors(r.Context(), actor)
	case variantChainsaw:
		listed, err = h.svc.ListChainsaws(r.Context(), actor)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listed)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, variant, id, ok := requestVars(w, r, true)
	if !ok {
		return
	}

	var (
		found any
		err   error
	)
	switch variant {
	case variantCart:
		found, err = h.svc.GetCart(r.Context(), actor, id)
	case variantTractor:
		found, err = h.svc.GetTractor(r.Context(), actor, id)
	case variantChainsaw:
		found, err = h.svc.GetChainsaw(r.Context(), actor, id)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, variant, id, ok := requestVars(w, r, true)
	if !ok {
		return
	}

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		updated any
		err     error
	)
	switch variant {
	case variantCart:
		updated, err = h.svc.TransitionCart(r.Context(), actor, id, domain.CartStatus(payload.Status), payload.AdminNotes)
	case variantTractor:
		updated, err = h.svc.TransitionTractor(r.Context(), actor, id, domain.CartStatus(payload.Status), payload.AdminNotes)
	case variantChainsaw:
		updated, err = h.svc.TransitionChainsaw(r.Context(), actor, id, domain.ChainsawStatus(payload.Status), payload.AdminNotes)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, variant, id, ok := requestVars(w, r, true)
	if !ok {
		return
	}

	var err error
	switch variant {
	case variantCart:
		err = h.svc.CancelCart(r.Context(), actor, id)
	case variantTractor:
		err = h.svc.CancelTractor(r.Context(), actor, id)
	case variantChainsaw:
		err = h.svc.CancelChainsaw(r.Context(), actor, id)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
