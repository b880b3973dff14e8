package bookinghandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter() http.Handler {
	router := chi.NewRouter()
	handler := NewHandler(nil, nil, nil)
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

func TestCreateRejectsNonPositiveDays(t *testing.T) {
	rec := postJSON(t, newTestRouter(), "/bookings", `{
		"employeeId": "abc",
		"startDate": "2025-11-13",
		"daysReserved": 0
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "daysReserved") {
		t.Fatalf("expected daysReserved issue, got %s", rec.Body.String())
	}
}

func TestCreateRejectsMissingEmployee(t *testing.T) {
	rec := postJSON(t, newTestRouter(), "/bookings", `{
		"startDate": "2025-11-13",
		"daysReserved": 5
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateRejectsMalformedDate(t *testing.T) {
	rec := postJSON(t, newTestRouter(), "/bookings", `{
		"employeeId": "abc",
		"startDate": "13/11/2025",
		"daysReserved": 5
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateRejectsInvalidJSON(t *testing.T) {
	rec := postJSON(t, newTestRouter(), "/bookings", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_payload") {
		t.Fatalf("expected invalid_payload, got %s", rec.Body.String())
	}
}
