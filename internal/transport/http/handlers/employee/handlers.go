package employeehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"lbc/internal/domain/audit"
	"lbc/internal/domain/employee"
	"lbc/internal/transport/http/api"
	"lbc/internal/transport/http/middleware"
	"lbc/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
	Audit   *audit.Service
}

func NewHandler(service *employee.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/managers", h.handleManagers)
		r.Get("/top-level", h.handleTopLevel)
		r.Get("/hired", h.handleHiredBetween)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDeactivate)
		r.Get("/{employeeID}/subordinates", h.handleSubordinates)
		r.Put("/{employeeID}/manager", h.handleAssignManager)
		r.Delete("/{employeeID}/manager", h.handleRemoveManager)
	})
}

type employeePayload struct {
	Name            string   `json:"name"`
	Surname         string   `json:"surname"`
	FiscalNumber    string   `json:"fiscalNumber"`
	FiscalCountry   string   `json:"fiscalNumberCountry"`
	SocialNumber    string   `json:"socialNumber"`
	DateOfBirth     string   `json:"dateOfBirth"`
	EmploymentType  string   `json:"employmentType"`
	Role            string   `json:"role"`
	HireDate        string   `json:"hireDate"`
	TerminationDate string   `json:"terminationDate"`
	SalaryBase      *float64 `json:"salaryBase"`
	ManagerID       string   `json:"managerId"`
}

func (p employeePayload) toEmployee(v *shared.Validator) employee.Employee {
	v.Required("name", p.Name, "name is required")
	v.Required("surname", p.Surname, "surname is required")
	v.Enum("employmentType", p.EmploymentType, employee.EmploymentTypes, "unknown employment type")
	v.Enum("role", p.Role, employee.Roles, "unknown role")

	hireDate, ok := v.Date("hireDate", p.HireDate)
	if ok && hireDate.After(time.Now().UTC()) {
		v.Add("hireDate", "must not be in the future")
	}
	if p.SalaryBase != nil && *p.SalaryBase < 0 {
		v.Add("salaryBase", "must not be negative")
	}

	e := employee.Employee{
		Name:           strings.TrimSpace(p.Name),
		Surname:        strings.TrimSpace(p.Surname),
		FiscalNumber:   strings.TrimSpace(p.FiscalNumber),
		FiscalCountry:  strings.ToUpper(strings.TrimSpace(p.FiscalCountry)),
		SocialNumber:   strings.TrimSpace(p.SocialNumber),
		EmploymentType: strings.ToUpper(strings.TrimSpace(p.EmploymentType)),
		Role:           strings.ToUpper(strings.TrimSpace(p.Role)),
		HireDate:       hireDate,
		SalaryBase:     p.SalaryBase,
		ManagerID:      strings.TrimSpace(p.ManagerID),
	}
	if p.DateOfBirth != "" {
		if dob, ok := v.Date("dateOfBirth", p.DateOfBirth); ok {
			e.DateOfBirth = &dob
		}
	}
	if p.TerminationDate != "" {
		if term, ok := v.Date("terminationDate", p.TerminationDate); ok {
			v.DateOrder("hireDate", hireDate, "terminationDate", term)
			e.TerminationDate = &term
		}
	}
	return e
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	employees, err := h.Service.List(r.Context(), activeOnly)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	emp, err := h.Service.Get(r.Context(), employeeID)
	if err != nil {
		h.failEmployeeError(w, r, err, "employee_get_failed")
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	emp := payload.toEmployee(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	created, err := h.Service.Create(r.Context(), emp)
	if err != nil {
		h.failEmployeeError(w, r, err, "employee_create_failed")
		return
	}

	h.record(r, "employee.create", created.ID, payload)
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	emp := payload.toEmployee(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	updated, err := h.Service.Update(r.Context(), employeeID, emp)
	if err != nil {
		h.failEmployeeError(w, r, err, "employee_update_failed")
		return
	}

	h.record(r, "employee.update", employeeID, payload)
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if err := h.Service.Deactivate(r.Context(), employeeID); err != nil {
		h.failEmployeeError(w, r, err, "employee_deactivate_failed")
		return
	}

	h.record(r, "employee.deactivate", employeeID, nil)
	api.Success(w, map[string]string{"status": "deactivated"}, middleware.GetRequestID(r.Context()))
}

type assignManagerRequest struct {
	ManagerID string `json:"managerId"`
}

func (h *Handler) handleAssignManager(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var payload assignManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if strings.TrimSpace(payload.ManagerID) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "manager id required", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.AssignManager(r.Context(), employeeID, strings.TrimSpace(payload.ManagerID)); err != nil {
		h.failEmployeeError(w, r, err, "manager_assign_failed")
		return
	}

	h.record(r, "employee.manager.assign", employeeID, payload)
	api.Success(w, map[string]string{"status": "assigned"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRemoveManager(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if err := h.Service.RemoveManager(r.Context(), employeeID); err != nil {
		h.failEmployeeError(w, r, err, "manager_remove_failed")
		return
	}

	h.record(r, "employee.manager.remove", employeeID, nil)
	api.Success(w, map[string]string{"status": "removed"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubordinates(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	subordinates, err := h.Service.Subordinates(r.Context(), employeeID)
	if err != nil {
		h.failEmployeeError(w, r, err, "subordinates_failed")
		return
	}
	api.Success(w, subordinates, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.Service.Managers(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "managers_failed", "failed to list managers", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, managers, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTopLevel(w http.ResponseWriter, r *http.Request) {
	topLevel, err := h.Service.TopLevel(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "top_level_failed", "failed to list top-level employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, topLevel, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHiredBetween(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	start, _ := v.Date("start", r.URL.Query().Get("start"))
	end, _ := v.Date("end", r.URL.Query().Get("end"))
	v.DateOrder("start", start, "end", end)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	employees, err := h.Service.HiredBetween(r.Context(), start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "hired_between_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) record(r *http.Request, action, entityID string, details any) {
	actor := shared.Actor(r)
	if err := h.Audit.Record(r.Context(), actor, action, "employee", entityID, middleware.GetRequestID(r.Context()), shared.ClientIP(r), details); err != nil {
		slog.Warn("audit "+action+" failed", "err", err)
	}
}

func (h *Handler) failEmployeeError(w http.ResponseWriter, r *http.Request, err error, fallbackCode string) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, employee.ErrManagerNotFound):
		api.Fail(w, http.StatusNotFound, "manager_not_found", "manager not found", requestID)
	case errors.Is(err, employee.ErrSelfManager):
		api.Fail(w, http.StatusConflict, "self_manager", "an employee cannot manage themselves", requestID)
	case errors.Is(err, employee.ErrManagerCycle):
		api.Fail(w, http.StatusConflict, "manager_cycle", "assignment would create a reporting cycle", requestID)
	case errors.Is(err, employee.ErrHasSubordinates):
		api.Fail(w, http.StatusConflict, "has_subordinates", "employee still manages active subordinates", requestID)
	case errors.Is(err, employee.ErrAlreadyInactive):
		api.Fail(w, http.StatusConflict, "already_inactive", "employee is already inactive", requestID)
	case errors.Is(err, employee.ErrDuplicateFiscal):
		api.Fail(w, http.StatusConflict, "duplicate_fiscal_number", "fiscal number already registered", requestID)
	case errors.Is(err, employee.ErrDuplicateSocial):
		api.Fail(w, http.StatusConflict, "duplicate_social_number", "social security number already registered", requestID)
	case errors.Is(err, employee.ErrInvalidFiscal):
		api.Fail(w, http.StatusBadRequest, "invalid_fiscal_number", "fiscal number failed validation", requestID)
	case errors.Is(err, employee.ErrInvalidSocial):
		api.Fail(w, http.StatusBadRequest, "invalid_social_number", "social security number failed validation", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, fallbackCode, "operation failed", requestID)
	}
}
