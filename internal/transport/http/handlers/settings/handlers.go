package settingshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rosterd/internal/domain/settings"
	"rosterd/internal/transport/http/api"
	"rosterd/internal/transport/http/middleware"
	"rosterd/internal/transport/http/shared"
)

type Handler struct {
	Store *settings.Store
}

func NewHandler(store *settings.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Put("/", h.handlePut)
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	value, err := h.Store.Get(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_get_failed", "failed to load settings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, value, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePut(w http.ResponseWriter, r *http.Request) {
	var payload settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if err := payload.Validate(); err != nil {
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), []shared.ValidationIssue{
			{Field: "rates", Reason: err.Error()},
		})
		return
	}

	if err := h.Store.Put(r.Context(), payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_put_failed", "failed to store settings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}
