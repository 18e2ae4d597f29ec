package rosterhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rosterd/internal/domain/pay"
	"rosterd/internal/domain/roster"
	"rosterd/internal/transport/http/api"
	"rosterd/internal/transport/http/middleware"
	"rosterd/internal/transport/http/shared"
)

type Handler struct {
	Service *roster.Service
}

func NewHandler(service *roster.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shift-templates", func(r chi.Router) {
		r.Get("/", h.handleListTemplates)
		r.Post("/", h.handleCreateTemplate)
		r.Put("/{templateID}", h.handleUpdateTemplate)
	})
	r.Route("/roster", func(r chi.Router) {
		r.Get("/", h.handleListMonth)
		r.Post("/", h.handleCreateEntry)
		r.Get("/summary", h.handlePaySummary)
		r.Post("/generate/{month}", h.handleGenerateMonth)
		r.Post("/recalculate/{month}", h.handleRecalculateMonth)
		r.Route("/{entryID}", func(r chi.Router) {
			r.Put("/", h.handleUpdateEntry)
			r.Delete("/", h.handleDeleteEntry)
		})
	})
}

func (h *Handler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.Service.Store.ListTemplates(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "template_list_failed", "failed to list shift templates", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, templates, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var payload roster.Template
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if h.rejectTemplate(w, r, &payload) {
		return
	}

	if err := h.Service.Store.CreateTemplate(r.Context(), &payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "template_create_failed", "failed to create shift template", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var payload roster.Template
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = chi.URLParam(r, "templateID")
	if h.rejectTemplate(w, r, &payload) {
		return
	}

	if err := h.Service.Store.UpdateTemplate(r.Context(), &payload); err != nil {
		if errors.Is(err, roster.ErrTemplateNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "shift template not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "template_update_failed", "failed to update shift template", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) rejectTemplate(w http.ResponseWriter, r *http.Request, t *roster.Template) bool {
	v := shared.NewValidator()
	v.Required("name", t.Name, "name is required")
	v.Clock("startTime", t.StartTime)
	v.Clock("endTime", t.EndTime)
	v.DayOfWeek("dayOfWeek", t.DayOfWeek)
	return v.Reject(w, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListMonth(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	month, ok := v.Month("month", r.URL.Query().Get("month"))
	if !ok {
		v.Reject(w, middleware.GetRequestID(r.Context()))
		return
	}

	entries, err := h.Service.ListMonth(r.Context(), month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "roster_list_failed", "failed to list roster entries", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var payload roster.Entry
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if h.rejectEntry(w, r, &payload) {
		return
	}

	if err := h.Service.Create(r.Context(), &payload); err != nil {
		h.failCalculation(w, r, err, "roster_create_failed", "failed to create roster entry")
		return
	}
	api.Created(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")
	existing, err := h.Service.Store.GetEntry(r.Context(), entryID)
	if err != nil {
		if errors.Is(err, roster.ErrEntryNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "roster entry not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "roster_update_failed", "failed to update roster entry", middleware.GetRequestID(r.Context()))
		return
	}

	var payload roster.Entry
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = existing.ID
	payload.CreatedAt = existing.CreatedAt
	if h.rejectEntry(w, r, &payload) {
		return
	}

	if err := h.Service.Update(r.Context(), &payload); err != nil {
		if errors.Is(err, roster.ErrEntryNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "roster entry not found", middleware.GetRequestID(r.Context()))
			return
		}
		h.failCalculation(w, r, err, "roster_update_failed", "failed to update roster entry")
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")
	if err := h.Service.Store.DeleteEntry(r.Context(), entryID); err != nil {
		if errors.Is(err, roster.ErrEntryNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "roster entry not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "roster_delete_failed", "failed to delete roster entry", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": entryID, "status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGenerateMonth(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	month, ok := v.Month("month", chi.URLParam(r, "month"))
	if !ok {
		v.Reject(w, middleware.GetRequestID(r.Context()))
		return
	}

	created, err := h.Service.GenerateMonth(r.Context(), month)
	if err != nil {
		h.failCalculation(w, r, err, "roster_generate_failed", "failed to generate roster")
		return
	}
	api.Created(w, map[string]any{"month": month.Format("2006-01"), "created": created}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRecalculateMonth(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	month, ok := v.Month("month", chi.URLParam(r, "month"))
	if !ok {
		v.Reject(w, middleware.GetRequestID(r.Context()))
		return
	}

	updated, err := h.Service.RecalculateMonth(r.Context(), month)
	if err != nil {
		h.failCalculation(w, r, err, "roster_recalculate_failed", "failed to recalculate roster")
		return
	}
	api.Success(w, map[string]any{"month": month.Format("2006-01"), "updated": updated}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePaySummary(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	from, _ := v.Date("from", r.URL.Query().Get("from"))
	to, _ := v.Date("to", r.URL.Query().Get("to"))
	if !v.HasIssues() && to.Before(from) {
		v.Add("to", "must not be before from")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	rows, err := h.Service.PaySummary(r.Context(), from, to)
	if err != nil {
		h.failCalculation(w, r, err, "pay_summary_failed", "failed to build pay summary")
		return
	}
	api.Success(w, rows, middleware.GetRequestID(r.Context()))
}

func (h *Handler) rejectEntry(w http.ResponseWriter, r *http.Request, e *roster.Entry) bool {
	v := shared.NewValidator()
	if _, ok := v.Date("date", e.Date); ok {
		e.Date = e.Date[:10]
	}
	v.Clock("startTime", e.StartTime)
	v.Clock("endTime", e.EndTime)
	if e.WakeHours != nil && *e.WakeHours < 0 {
		v.Add("wakeHours", "must not be negative")
	}
	return v.Reject(w, middleware.GetRequestID(r.Context()))
}

// failCalculation maps pay-engine errors onto the envelope; anything else is a 500.
func (h *Handler) failCalculation(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, pay.ErrInvalidTime):
		api.Fail(w, http.StatusBadRequest, "invalid_time", "start and end times must be HH:MM", requestID)
	case errors.Is(err, pay.ErrUnknownCategory):
		api.Fail(w, http.StatusBadRequest, "unknown_category", "manual category is not in the rate table", requestID)
	default:
		var missing *pay.MissingRateError
		if errors.As(err, &missing) {
			api.Fail(w, http.StatusConflict, "rates_invalid", "stored rate table is incomplete, update settings first", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, code, message, requestID)
	}
}
