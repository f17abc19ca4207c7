package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"condoreserve-backend/internal/security"
)

// NewRouter wires every API route behind the auth middleware. The
// health endpoint stays public.
func NewRouter(
	tokens security.TokenManager,
	reservations *ReservationHandler,
	settings *SettingsHandler,
	notifications *NotificationHandler,
	audit *AuditHandler,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/reservations/{variant}", reservations.Create).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{variant}", reservations.List).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{variant}/{id}", reservations.Get).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{variant}/{id}/status", reservations.UpdateStatus).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{variant}/{id}", reservations.Cancel).Methods(http.MethodDelete)

	api.HandleFunc("/settings", settings.List).Methods(http.MethodGet)
	api.HandleFunc("/settings/{key}", settings.Get).Methods(http.MethodGet)
	api.HandleFunc("/settings/{key}", settings.Set).Methods(http.MethodPut)

	api.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", notifications.MarkAsRead).Methods(http.MethodPost)

	api.HandleFunc("/audit", audit.List).Methods(http.MethodGet)

	return router
}
