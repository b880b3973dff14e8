package calendarhandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"lbc/internal/domain/calendar"
)

func newTestRouter() http.Handler {
	router := chi.NewRouter()
	handler := NewHandler(calendar.NewCache())
	handler.RegisterRoutes(router)
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func doRequest(t *testing.T, router http.Handler, target string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return rec.Code, body
}

func TestHandleHolidays(t *testing.T) {
	router := newTestRouter()
	status, body := doRequest(t, router, "/calendar/holidays?year=2025")
	if status != http.StatusOK || !body.Success {
		t.Fatalf("expected 200 success, got %d", status)
	}

	var holidays []calendar.Holiday
	if err := json.Unmarshal(body.Data, &holidays); err != nil {
		t.Fatalf("invalid holidays payload: %v", err)
	}
	if len(holidays) != 11 {
		t.Fatalf("expected 11 holidays in 2025, got %d", len(holidays))
	}
}

func TestHandleHolidaysRejectsBadYear(t *testing.T) {
	router := newTestRouter()
	status, body := doRequest(t, router, "/calendar/holidays?year=abc")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body.Error == nil || body.Error.Code != "invalid_year" {
		t.Fatalf("expected invalid_year error, got %+v", body.Error)
	}
}

func TestHandleBusinessDays(t *testing.T) {
	router := newTestRouter()
	status, body := doRequest(t, router, "/calendar/business-days?start=2025-11-17&end=2025-11-21")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var payload map[string]int
	if err := json.Unmarshal(body.Data, &payload); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if payload["businessDays"] != 5 {
		t.Fatalf("expected 5 business days, got %d", payload["businessDays"])
	}
}

func TestHandleBusinessDaysRejectsInvertedRange(t *testing.T) {
	router := newTestRouter()
	status, _ := doRequest(t, router, "/calendar/business-days?start=2025-11-21&end=2025-11-17")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", status)
	}
}

func TestHandleEndDate(t *testing.T) {
	router := newTestRouter()
	status, body := doRequest(t, router, "/calendar/end-date?start=2025-11-13&days=5")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var payload map[string]string
	if err := json.Unmarshal(body.Data, &payload); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if payload["endDate"] != "2025-11-19" {
		t.Fatalf("expected 2025-11-19, got %s", payload["endDate"])
	}
}

func TestHandleEndDateRejectsNonPositiveDays(t *testing.T) {
	router := newTestRouter()
	status, _ := doRequest(t, router, "/calendar/end-date?start=2025-11-13&days=0")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestHandleIsHoliday(t *testing.T) {
	router := newTestRouter()

	status, body := doRequest(t, router, "/calendar/is-holiday?date=2025-12-25")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var payload map[string]bool
	if err := json.Unmarshal(body.Data, &payload); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if !payload["holiday"] {
		t.Fatal("expected Christmas to be a holiday")
	}

	_, body = doRequest(t, router, "/calendar/is-holiday?date=2025-11-13")
	if err := json.Unmarshal(body.Data, &payload); err != nil {
		t.Fatalf("invalid payload: %v", err)
	}
	if payload["holiday"] {
		t.Fatal("expected an ordinary Thursday to not be a holiday")
	}
}
