package holidayhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rosterd/internal/domain/holidays"
	"rosterd/internal/transport/http/api"
	"rosterd/internal/transport/http/middleware"
	"rosterd/internal/transport/http/shared"
)

type Handler struct {
	Calendar        *holidays.Calendar
	DefaultLocation string
}

func NewHandler(calendar *holidays.Calendar, defaultLocation string) *Handler {
	return &Handler{Calendar: calendar, DefaultLocation: defaultLocation}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/holidays", func(r chi.Router) {
		r.Get("/", h.handleRange)
		r.Get("/check", h.handleCheck)
	})
}

func (h *Handler) location(r *http.Request) string {
	if loc := r.URL.Query().Get("location"); loc != "" {
		return loc
	}
	return h.DefaultLocation
}

func (h *Handler) handleRange(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	from, _ := v.Date("from", r.URL.Query().Get("from"))
	to, _ := v.Date("to", r.URL.Query().Get("to"))
	if !v.HasIssues() && to.Before(from) {
		v.Add("to", "must not be before from")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	found := h.Calendar.HolidaysInRange(from, to, h.location(r))
	api.Success(w, found, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	date, ok := v.Date("date", r.URL.Query().Get("date"))
	if !ok {
		v.Reject(w, middleware.GetRequestID(r.Context()))
		return
	}

	location := h.location(r)
	isHoliday, err := h.Calendar.IsPublicHoliday(date, location)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holiday_check_failed", "failed to check holiday status", middleware.GetRequestID(r.Context()))
		return
	}

	result := map[string]any{
		"date":            date.Format("2006-01-02"),
		"location":        location,
		"isPublicHoliday": isHoliday,
	}
	if isHoliday {
		result["name"] = h.Calendar.HolidayName(date)
	}
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}
