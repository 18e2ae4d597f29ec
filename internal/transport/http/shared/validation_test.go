package shared

import (
	"net/http/httptest"
	"testing"
)

func TestValidatorClock(t *testing.T) {
	v := NewValidator()
	if !v.Clock("startTime", "07:30") {
		t.Fatal("07:30 should be valid")
	}
	if v.Clock("endTime", "7.30") {
		t.Fatal("7.30 should be invalid")
	}
	if !v.HasIssues() {
		t.Fatal("expected an issue recorded")
	}
	issues := v.Issues()
	if len(issues) != 1 || issues[0].Field != "endTime" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}

func TestValidatorMonth(t *testing.T) {
	v := NewValidator()
	parsed, ok := v.Month("month", "2025-08")
	if !ok {
		t.Fatal("2025-08 should parse")
	}
	if parsed.Month() != 8 || parsed.Day() != 1 {
		t.Fatalf("expected first of August, got %s", parsed)
	}

	if _, ok := v.Month("month", "August"); ok {
		t.Fatal("August should not parse")
	}
}

func TestValidatorReject(t *testing.T) {
	v := NewValidator()
	rec := httptest.NewRecorder()
	if v.Reject(rec, "req-1") {
		t.Fatal("no issues should not reject")
	}

	v.Add("name", "is required")
	rec = httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected rejection")
	}
	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
