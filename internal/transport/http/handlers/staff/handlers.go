package staffhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rosterd/internal/domain/staff"
	"rosterd/internal/transport/http/api"
	"rosterd/internal/transport/http/middleware"
	"rosterd/internal/transport/http/shared"
)

type Handler struct {
	Store *staff.Store
}

func NewHandler(store *staff.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/staff", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{staffID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDeactivate)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.Store.ListActive(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_list_failed", "failed to list staff", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, members, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	member, err := h.Store.Get(r.Context(), chi.URLParam(r, "staffID"))
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "staff member not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "staff_get_failed", "failed to load staff member", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, member, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	member, err := h.Store.Create(r.Context(), payload.Name)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_create_failed", "failed to create staff member", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, member, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	var payload struct {
		Name   string `json:"name"`
		Active *bool  `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	active := true
	if payload.Active != nil {
		active = *payload.Active
	}

	member, err := h.Store.Update(r.Context(), staffID, payload.Name, active)
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "staff member not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "staff_update_failed", "failed to update staff member", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, member, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	if err := h.Store.Deactivate(r.Context(), staffID); err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "staff member not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "staff_deactivate_failed", "failed to deactivate staff member", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": staffID, "status": "deactivated"}, middleware.GetRequestID(r.Context()))
}
