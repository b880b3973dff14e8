package shared

import (
	"testing"
	"time"
)

func TestValidatorRequired(t *testing.T) {
	v := NewValidator()
	v.Required("name", "  ", "name is required")
	if !v.HasIssues() {
		t.Fatal("expected issue for blank value")
	}

	v = NewValidator()
	v.Required("name", "Ana", "name is required")
	if v.HasIssues() {
		t.Fatal("expected no issue for present value")
	}
}

func TestValidatorEnum(t *testing.T) {
	allowed := []string{"PERMANENT", "FIXED_TERM"}

	v := NewValidator()
	v.Enum("employmentType", "permanent", allowed, "unknown employment type")
	if v.HasIssues() {
		t.Fatal("expected case-insensitive match")
	}

	v = NewValidator()
	v.Enum("employmentType", "CONTRACTOR", allowed, "unknown employment type")
	if !v.HasIssues() {
		t.Fatal("expected issue for unknown value")
	}

	v = NewValidator()
	v.Enum("employmentType", "", allowed, "unknown employment type")
	if v.HasIssues() {
		t.Fatal("empty value is left to Required")
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()
	parsed, ok := v.Date("hireDate", "2025-11-13")
	if !ok || v.HasIssues() {
		t.Fatalf("expected valid date, issues=%v", v.Issues())
	}
	if parsed.Year() != 2025 || parsed.Month() != time.November || parsed.Day() != 13 {
		t.Fatalf("unexpected parsed date: %v", parsed)
	}

	v = NewValidator()
	if _, ok := v.Date("hireDate", "13/11/2025"); ok {
		t.Fatal("expected rejection of unsupported format")
	}
	if !v.HasIssues() {
		t.Fatal("expected issue recorded")
	}
}

func TestValidatorDateOrder(t *testing.T) {
	start := time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.November, 13, 0, 0, 0, 0, time.UTC)

	v := NewValidator()
	v.DateOrder("start", start, "end", end)
	if !v.HasIssues() {
		t.Fatal("expected issue for inverted range")
	}

	v = NewValidator()
	v.DateOrder("start", end, "end", start)
	if v.HasIssues() {
		t.Fatal("expected no issue for ordered range")
	}

	v = NewValidator()
	v.DateOrder("start", start, "end", start)
	if v.HasIssues() {
		t.Fatal("equal dates are a valid single-day range")
	}
}

func TestValidatorIssuesSorted(t *testing.T) {
	v := NewValidator()
	v.Add("surname", "surname is required")
	v.Add("name", "name is required")

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].Field != "name" || issues[1].Field != "surname" {
		t.Fatalf("expected sorted issues, got %+v", issues)
	}
}

func TestParseDateFormats(t *testing.T) {
	if _, err := ParseDate("2025-11-13"); err != nil {
		t.Fatalf("plain date failed: %v", err)
	}
	if _, err := ParseDate("2025-11-13T10:00:00Z"); err != nil {
		t.Fatalf("rfc3339 failed: %v", err)
	}
	parsed, err := ParseDate("")
	if err != nil || !parsed.IsZero() {
		t.Fatalf("empty input should parse to zero time, got %v %v", parsed, err)
	}
}
