package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"condoreserve-backend/internal/service"
)

type SettingsHandler struct {
	svc service.SettingsService
}

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

type settingPayload struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	setting, err := h.svc.Get(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (h *SettingsHandler) Set(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var payload settingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	key := mux.Vars(r)["key"]
	if err := h.svc.Set(r.Context(), actor, key, payload.Value, payload.Description); err != nil {
		writeDomainError(w, err)
		return
	}

	setting, err := h.svc.Get(r.Context(), key)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}
