package exporthandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"rosterd/internal/domain/export"
	"rosterd/internal/transport/http/api"
	"rosterd/internal/transport/http/middleware"
	"rosterd/internal/transport/http/shared"
)

var contentTypes = map[string]string{
	export.FormatCSV:   "text/csv",
	export.FormatExcel: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	export.FormatPDF:   "application/pdf",
}

type Handler struct {
	Service *export.Service
}

func NewHandler(service *export.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/exports/{file}", h.handleExport)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	report, format, ok := strings.Cut(chi.URLParam(r, "file"), ".")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_export", "expected {report}.{format}", requestID)
		return
	}
	contentType, known := contentTypes[format]
	if !known {
		api.Fail(w, http.StatusBadRequest, "invalid_format", "format must be csv, xlsx or pdf", requestID)
		return
	}

	from, to, ok := h.resolveRange(w, r)
	if !ok {
		return
	}

	dataset, err := h.Service.Build(r.Context(), report, from, to)
	if err != nil {
		switch report {
		case export.ReportRoster, export.ReportPaySummary, export.ReportWorkforce:
			api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to build export dataset", requestID)
		default:
			api.Fail(w, http.StatusNotFound, "unknown_report", "report must be roster, pay-summary or workforce", requestID)
		}
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dataset.Name+"."+format))

	switch format {
	case export.FormatCSV:
		err = export.WriteCSV(w, dataset)
	case export.FormatExcel:
		err = export.WriteExcel(w, dataset)
	case export.FormatPDF:
		err = export.WritePDF(w, dataset)
	}
	if err != nil {
		// Headers are already sent; all we can do is note the failure.
		slog.Warn("export render failed", "report", report, "format", format, "requestId", requestID, "error", err)
	}
}

// resolveRange reads from/to query filters, defaulting to the current month.
func (h *Handler) resolveRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	requestID := middleware.GetRequestID(r.Context())
	rawFrom := r.URL.Query().Get("from")
	rawTo := r.URL.Query().Get("to")

	if rawFrom == "" && rawTo == "" {
		now := time.Now()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, -1), true
	}

	v := shared.NewValidator()
	from, _ := v.Date("from", rawFrom)
	to, _ := v.Date("to", rawTo)
	if !v.HasIssues() && to.Before(from) {
		v.Add("to", "must not be before from")
	}
	if v.Reject(w, requestID) {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
