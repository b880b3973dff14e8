package reportshandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"lbc/internal/domain/audit"
	"lbc/internal/domain/employee"
	"lbc/internal/domain/reports"
	"lbc/internal/transport/http/api"
	"lbc/internal/transport/http/middleware"
	"lbc/internal/transport/http/shared"
)

type Handler struct {
	Service *reports.Service
	Audit   *audit.Service
}

func NewHandler(service *reports.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/vacations/{employeeID}/pdf", h.handleVacationSummary)
	})
}

func (h *Handler) handleVacationSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year := time.Now().UTC().Year()
	if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			api.Fail(w, http.StatusBadRequest, "invalid_year", "year must be a positive number", middleware.GetRequestID(r.Context()))
			return
		}
		year = parsed
	}

	path, err := h.Service.VacationSummaryPDF(r.Context(), employeeID, year)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to generate report", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Audit.Record(r.Context(), shared.Actor(r), "report.vacations.pdf", "employee", employeeID, middleware.GetRequestID(r.Context()), shared.ClientIP(r), map[string]int{"year": year}); err != nil {
		slog.Warn("audit report.vacations.pdf failed", "err", err)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=vacation-summary.pdf")
	http.ServeFile(w, r, path)
}
