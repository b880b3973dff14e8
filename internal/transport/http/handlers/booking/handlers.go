package bookinghandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"lbc/internal/domain/audit"
	"lbc/internal/domain/booking"
	"lbc/internal/domain/calendar"
	"lbc/internal/domain/vacation"
	"lbc/internal/transport/http/api"
	"lbc/internal/transport/http/middleware"
	"lbc/internal/transport/http/shared"
)

type Handler struct {
	Service   *booking.Service
	Vacations *vacation.Service
	Audit     *audit.Service
}

func NewHandler(service *booking.Service, vacations *vacation.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Vacations: vacations, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{bookingID}", h.handleGet)
		r.Put("/{bookingID}", h.handleUpdate)
		r.Post("/{bookingID}/cancel", h.handleCancel)
		r.Post("/{bookingID}/convert", h.handleConvert)
	})
}

type bookingPayload struct {
	EmployeeID   string `json:"employeeId"`
	StartDate    string `json:"startDate"`
	DaysReserved int    `json:"daysReserved"`
	Notes        string `json:"notes"`
}

func (p bookingPayload) toInput(v *shared.Validator) booking.CreateInput {
	v.Required("employeeId", p.EmployeeID, "employee id is required")
	start, _ := v.Date("startDate", p.StartDate)
	if p.DaysReserved <= 0 {
		v.Add("daysReserved", "must be a positive number of business days")
	}
	return booking.CreateInput{
		EmployeeID:   strings.TrimSpace(p.EmployeeID),
		StartDate:    start,
		DaysReserved: p.DaysReserved,
		Notes:        strings.TrimSpace(p.Notes),
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if employeeID := strings.TrimSpace(r.URL.Query().Get("employeeId")); employeeID != "" {
		bookings, err := h.Service.ActiveByEmployee(r.Context(), employeeID)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "booking_list_failed", "failed to list bookings", middleware.GetRequestID(r.Context()))
			return
		}
		api.Success(w, bookings, middleware.GetRequestID(r.Context()))
		return
	}

	bookings, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "booking_list_failed", "failed to list bookings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, bookings, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")
	b, err := h.Service.Get(r.Context(), bookingID)
	if err != nil {
		h.failBookingError(w, r, err, "booking_get_failed")
		return
	}
	api.Success(w, b, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload bookingPayload
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
		h.failBookingError(w, r, err, "booking_create_failed")
		return
	}

	h.record(r, "booking.create", created.ID, payload)
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")

	var payload bookingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	input := payload.toInput(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	updated, err := h.Service.Update(r.Context(), bookingID, input)
	if err != nil {
		h.failBookingError(w, r, err, "booking_update_failed")
		return
	}

	h.record(r, "booking.update", bookingID, payload)
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")
	cancelled, err := h.Service.Cancel(r.Context(), bookingID)
	if err != nil {
		h.failBookingError(w, r, err, "booking_cancel_failed")
		return
	}

	h.record(r, "booking.cancel", bookingID, nil)
	api.Success(w, cancelled, middleware.GetRequestID(r.Context()))
}

type convertRequest struct {
	Notes string `json:"notes"`
}

// handleConvert turns a reservation into a formal vacation request and links
// the two records.
func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")

	// The body is optional; an empty request keeps the booking's notes.
	var payload convertRequest
	_ = json.NewDecoder(r.Body).Decode(&payload)

	b, err := h.Service.Get(r.Context(), bookingID)
	if err != nil {
		h.failBookingError(w, r, err, "booking_convert_failed")
		return
	}
	if b.Status == booking.StatusCancelled {
		api.Fail(w, http.StatusConflict, "booking_cancelled", "cancelled bookings cannot be converted", middleware.GetRequestID(r.Context()))
		return
	}
	if b.VacationID != "" {
		api.Fail(w, http.StatusConflict, "already_converted", "booking is already linked to a vacation request", middleware.GetRequestID(r.Context()))
		return
	}

	notes := strings.TrimSpace(payload.Notes)
	if notes == "" {
		notes = b.Notes
	}
	created, err := h.Vacations.Create(r.Context(), vacation.CreateInput{
		EmployeeID: b.EmployeeID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Notes:      notes,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "booking_convert_failed", "failed to create vacation request", middleware.GetRequestID(r.Context()))
		return
	}

	linked, err := h.Service.LinkVacation(r.Context(), bookingID, created.ID)
	if err != nil {
		h.failBookingError(w, r, err, "booking_convert_failed")
		return
	}

	h.record(r, "booking.convert", bookingID, map[string]string{"vacationId": created.ID})
	api.Created(w, map[string]any{"booking": linked, "vacation": created}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) record(r *http.Request, action, entityID string, details any) {
	actor := shared.Actor(r)
	if err := h.Audit.Record(r.Context(), actor, action, "booking", entityID, middleware.GetRequestID(r.Context()), shared.ClientIP(r), details); err != nil {
		slog.Warn("audit "+action+" failed", "err", err)
	}
}

func (h *Handler) failBookingError(w http.ResponseWriter, r *http.Request, err error, fallbackCode string) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, booking.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "booking not found", requestID)
	case errors.Is(err, booking.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found or inactive", requestID)
	case errors.Is(err, booking.ErrConflict):
		api.Fail(w, http.StatusConflict, "booking_conflict", "the period overlaps an active reservation", requestID)
	case errors.Is(err, booking.ErrCancelled):
		api.Fail(w, http.StatusConflict, "booking_cancelled", "booking is cancelled", requestID)
	case errors.Is(err, booking.ErrLinked):
		api.Fail(w, http.StatusConflict, "booking_linked", "booking is linked to a vacation request", requestID)
	case errors.Is(err, booking.ErrAlreadyLinked):
		api.Fail(w, http.StatusConflict, "already_converted", "booking is already linked to a vacation request", requestID)
	case errors.Is(err, booking.ErrInvalidDays):
		api.Fail(w, http.StatusBadRequest, "invalid_days", "days reserved must be positive", requestID)
	case errors.Is(err, booking.ErrPastStartDate):
		api.Fail(w, http.StatusBadRequest, "past_start_date", "start date must not be in the past", requestID)
	case errors.Is(err, calendar.ErrInvalidInput), errors.Is(err, calendar.ErrInvalidRange):
		api.Fail(w, http.StatusBadRequest, "invalid_dates", "invalid date range", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, fallbackCode, "operation failed", requestID)
	}
}
