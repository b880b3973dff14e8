package vacationhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"lbc/internal/domain/audit"
	"lbc/internal/domain/calendar"
	"lbc/internal/domain/vacation"
	"lbc/internal/transport/http/api"
	"lbc/internal/transport/http/middleware"
	"lbc/internal/transport/http/shared"
)

type Handler struct {
	Service *vacation.Service
	Audit   *audit.Service
}

func NewHandler(service *vacation.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/vacations", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{vacationID}", h.handleGet)
		r.Put("/{vacationID}", h.handleUpdate)
		r.Post("/{vacationID}/approve", h.handleApprove)
		r.Post("/{vacationID}/reject", h.handleReject)
		r.Post("/{vacationID}/cancel", h.handleCancel)
	})
}

type vacationPayload struct {
	EmployeeID string `json:"employeeId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Notes      string `json:"notes"`
}

func (p vacationPayload) toInput(v *shared.Validator) vacation.CreateInput {
	v.Required("employeeId", p.EmployeeID, "employee id is required")
	start, _ := v.Date("startDate", p.StartDate)
	end, _ := v.Date("endDate", p.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	return vacation.CreateInput{
		EmployeeID: strings.TrimSpace(p.EmployeeID),
		StartDate:  start,
		EndDate:    end,
		Notes:      strings.TrimSpace(p.Notes),
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employeeID := strings.TrimSpace(r.URL.Query().Get("employeeId"))
	yearRaw := strings.TrimSpace(r.URL.Query().Get("year"))

	if employeeID != "" && yearRaw != "" {
		year, err := strconv.Atoi(yearRaw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_year", "year must be a number", middleware.GetRequestID(r.Context()))
			return
		}
		vacations, err := h.Service.ListByEmployeeYear(r.Context(), employeeID, year)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "vacation_list_failed", "failed to list vacation requests", middleware.GetRequestID(r.Context()))
			return
		}
		api.Success(w, vacations, middleware.GetRequestID(r.Context()))
		return
	}

	vacations, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "vacation_list_failed", "failed to list vacation requests", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, vacations, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	vacationID := chi.URLParam(r, "vacationID")
	v, err := h.Service.Get(r.Context(), vacationID)
	if err != nil {
		h.failVacationError(w, r, err, "vacation_get_failed")
		return
	}
	api.Success(w, v, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload vacationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	input := payload.toInput(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	created, err := h.Service.Create(r.Context(), input)
	if err != nil {
		h.failVacationError(w, r, err, "vacation_create_failed")
		return
	}

	h.record(r, "vacation.create", created.ID, payload)
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	vacationID := chi.URLParam(r, "vacationID")

	var payload vacationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	input := payload.toInput(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	updated, err := h.Service.Update(r.Context(), vacationID, input)
	if err != nil {
		h.failVacationError(w, r, err, "vacation_update_failed")
		return
	}

	h.record(r, "vacation.update", vacationID, payload)
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

type decisionRequest struct {
	Approver string `json:"approver"`
	Reason   string `json:"reason"`
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	vacationID := chi.URLParam(r, "vacationID")

	var payload decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if strings.TrimSpace(payload.Approver) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "approver is required", middleware.GetRequestID(r.Context()))
		return
	}

	approved, err := h.Service.Approve(r.Context(), vacationID, strings.TrimSpace(payload.Approver))
	if err != nil {
		h.failVacationError(w, r, err, "vacation_approve_failed")
		return
	}

	h.record(r, "vacation.approve", vacationID, payload)
	api.Success(w, approved, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	vacationID := chi.URLParam(r, "vacationID")

	var payload decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if strings.TrimSpace(payload.Approver) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "approver is required", middleware.GetRequestID(r.Context()))
		return
	}

	rejected, err := h.Service.Reject(r.Context(), vacationID, strings.TrimSpace(payload.Approver), strings.TrimSpace(payload.Reason))
	if err != nil {
		h.failVacationError(w, r, err, "vacation_reject_failed")
		return
	}

	h.record(r, "vacation.reject", vacationID, payload)
	api.Success(w, rejected, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	vacationID := chi.URLParam(r, "vacationID")
	cancelled, err := h.Service.Cancel(r.Context(), vacationID)
	if err != nil {
		h.failVacationError(w, r, err, "vacation_cancel_failed")
		return
	}

	h.record(r, "vacation.cancel", vacationID, nil)
	api.Success(w, cancelled, middleware.GetRequestID(r.Context()))
}

func (h *Handler) record(r *http.Request, action, entityID string, details any) {
	actor := shared.Actor(r)
	if err := h.Audit.Record(r.Context(), actor, action, "vacation", entityID, middleware.GetRequestID(r.Context()), shared.ClientIP(r), details); err != nil {
		slog.Warn("audit "+action+" failed", "err", err)
	}
}

func (h *Handler) failVacationError(w http.ResponseWriter, r *http.Request, err error, fallbackCode string) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, vacation.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "vacation request not found", requestID)
	case errors.Is(err, vacation.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
	case errors.Is(err, vacation.ErrNotPending):
		api.Fail(w, http.StatusConflict, "not_pending", "only pending requests can be approved", requestID)
	case errors.Is(err, vacation.ErrAlreadyCancelled):
		api.Fail(w, http.StatusConflict, "already_cancelled", "vacation request is already cancelled", requestID)
	case errors.Is(err, calendar.ErrInvalidRange), errors.Is(err, calendar.ErrInvalidInput):
		api.Fail(w, http.StatusBadRequest, "invalid_dates", "invalid date range", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, fallbackCode, "operation failed", requestID)
	}
}
