package calendarhandler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"lbc/internal/domain/calendar"
	"lbc/internal/transport/http/api"
	"lbc/internal/transport/http/middleware"
	"lbc/internal/transport/http/shared"
)

type Handler struct {
	Holidays *calendar.Cache
}

func NewHandler(holidays *calendar.Cache) *Handler {
	return &Handler{Holidays: holidays}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/calendar", func(r chi.Router) {
		r.Get("/holidays", h.handleHolidays)
		r.Get("/business-days", h.handleBusinessDays)
		r.Get("/end-date", h.handleEndDate)
		r.Get("/is-holiday", h.handleIsHoliday)
	})
}

func (h *Handler) handleHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("year")))
	if err != nil || year <= 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_year", "year must be a positive number", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, h.Holidays.HolidaysForYear(year), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBusinessDays(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	start, _ := v.Date("start", r.URL.Query().Get("start"))
	end, _ := v.Date("end", r.URL.Query().Get("end"))
	v.DateOrder("start", start, "end", end)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	days, err := calendar.BusinessDaysBetween(calendar.Normalize(start), calendar.Normalize(end))
	if err != nil {
		h.failCalendarError(w, r, err)
		return
	}
	api.Success(w, map[string]int{"businessDays": days}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEndDate(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	start, _ := v.Date("start", r.URL.Query().Get("start"))
	days, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("days")))
	if err != nil || days <= 0 {
		v.Add("days", "must be a positive number of business days")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	end, err := calendar.EndDateForBusinessDays(calendar.Normalize(start), days)
	if err != nil {
		h.failCalendarError(w, r, err)
		return
	}
	api.Success(w, map[string]string{"endDate": end.Format("2006-01-02")}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleIsHoliday(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	date, _ := v.Date("date", r.URL.Query().Get("date"))
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	api.Success(w, map[string]bool{"holiday": calendar.IsHoliday(calendar.Normalize(date))}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failCalendarError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	if errors.Is(err, calendar.ErrInvalidRange) || errors.Is(err, calendar.ErrInvalidInput) {
		api.Fail(w, http.StatusBadRequest, "invalid_dates", "invalid date input", requestID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "calendar_failed", "calendar computation failed", requestID)
}
