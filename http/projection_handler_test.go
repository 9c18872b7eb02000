package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"payoff-agent/domain"
	"payoff-agent/service"
)

func newProjectionHandler() *ProjectionHandler {
	return NewProjectionHandler(service.NewProjectionService())
}

func TestProjectHandler_OK(t *testing.T) {
	handler := newProjectionHandler()

	body := []byte(`{
		"loan": {
			"id": "loan-1",
			"principal": 15000,
			"roi": 12,
			"reference_outstanding": 10000,
			"reference_date": "2024-01-15",
			"currency": "USD"
		},
		"contributions": [
			{"amount": 500, "contribution_date": "2024-01-15"},
			{"amount": 700, "contribution_date": "2024-02-01"}
		],
		"months_ahead": 3
	}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/projection", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Project(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.ProjectionResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// Same-day contribution is already in the reference balance.
	if result.CurrentOutstanding != 9300 {
		t.Errorf("expected outstanding 9300, got %v", result.CurrentOutstanding)
	}
	if len(result.Months) != 3 {
		t.Errorf("expected 3 projected months, got %d", len(result.Months))
	}
}

func TestProjectHandler_MethodNotAllowed(t *testing.T) {
	handler := newProjectionHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/projection", nil)
	w := httptest.NewRecorder()

	handler.Project(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestProjectHandler_MissingReferenceDate(t *testing.T) {
	handler := newProjectionHandler()

	body := []byte(`{"loan": {"reference_outstanding": 1000, "roi": 10}}`)
	req := httptest.NewRequest(http.MethodPost, "/loan/projection", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Project(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestOutstandingHandler_OK(t *testing.T) {
	handler := newProjectionHandler()

	body := []byte(`{
		"loan": {
			"reference_outstanding": 10000,
			"roi": 12,
			"reference_date": "2024-01-15"
		},
		"contributions": [
			{"amount": 1000, "contribution_date": "2024-03-10"}
		]
	}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/outstanding", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Outstanding(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.OutstandingResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Outstanding != 9000 {
		t.Errorf("expected outstanding 9000, got %v", result.Outstanding)
	}
}

func TestOutstandingHandler_BadRequest(t *testing.T) {
	handler := newProjectionHandler()

	req := httptest.NewRequest(http.MethodPost, "/loan/outstanding", bytes.NewBuffer([]byte(`not json`)))
	w := httptest.NewRecorder()

	handler.Outstanding(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
