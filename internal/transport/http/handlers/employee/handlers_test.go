package employeehandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Validation failures are rejected before any store call, so a nil service is
// safe here.
func newTestRouter() http.Handler {
	router := chi.NewRouter()
	handler := NewHandler(nil, nil)
	handler.RegisterRoutes(router)
	return router
}

func postJSON(t *testing.T, router http.Handler, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateRejectsMissingName(t *testing.T) {
	rec := postJSON(t, newTestRouter(), "/employees", `{
		"surname": "Silva",
		"employmentType": "PERMANENT",
		"role": "EMPLOYEE",
		"hireDate": "2024-01-15"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "validation_error") {
		t.Fatalf("expected validation_error, got %s", rec.Body.String())
	}
}

func TestCreateRejectsUnknownEmploymentType(t *testing.T) {
	rec := postJSON(t, newTestRouter(), "/employees", `{
		"name": "Ana",
		"surname": "Silva",
		"employmentType": "CONTRACTOR",
		"role": "EMPLOYEE",
		"hireDate": "2024-01-15"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateRejectsFutureHireDate(t *testing.T) {
	rec := postJSON(t, newTestRouter(), "/employees", `{
		"name": "Ana",
		"surname": "Silva",
		"employmentType": "PERMANENT",
		"role": "EMPLOYEE",
		"hireDate": "2099-01-15"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "hireDate") {
		t.Fatalf("expected hireDate issue, got %s", rec.Body.String())
	}
}

func TestCreateRejectsTerminationBeforeHire(t *testing.T) {
	rec := postJSON(t, newTestRouter(), "/employees", `{
		"name": "Ana",
		"surname": "Silva",
		"employmentType": "PERMANENT",
		"role": "EMPLOYEE",
		"hireDate": "2024-01-15",
		"terminationDate": "2023-06-01"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateRejectsNegativeSalary(t *testing.T) {
	rec := postJSON(t, newTestRouter(), "/employees", `{
		"name": "Ana",
		"surname": "Silva",
		"employmentType": "PERMANENT",
		"role": "EMPLOYEE",
		"hireDate": "2024-01-15",
		"salaryBase": -100
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAssignManagerRejectsBlankID(t *testing.T) {
	rec := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/employees/abc/manager", strings.NewReader(`{"managerId": "  "}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newTestRouter().ServeHTTP(rec, req)
		return rec
	}()
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
