package http

import (
	"net/http"

	"payoff-agent/domain"
	"payoff-agent/service"
)

// PayoffHandler exposes the payoff engine over JSON.
type PayoffHandler struct {
	service *service.PayoffService
}

func NewPayoffHandler(service *service.PayoffService) *PayoffHandler {
	return &PayoffHandler{service: service}
}

// BuildPlan handles POST /payoff/plan.
func (h *PayoffHandler) BuildPlan(w http.ResponseWriter, r *http.Request) {
	var req domain.PayoffRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.BuildPlan(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// CompareStrategies handles POST /payoff/compare.
func (h *PayoffHandler) CompareStrategies(w http.ResponseWriter, r *http.Request) {
	var req domain.CompareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.CompareStrategies(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GoalSeek handles POST /payoff/goal.
func (h *PayoffHandler) GoalSeek(w http.ResponseWriter, r *http.Request) {
	var req domain.GoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.RequiredExtra(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// CreditSummary handles POST /credit/summary.
func (h *PayoffHandler) CreditSummary(w http.ResponseWriter, r *http.Request) {
	var req domain.SummaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Summarize(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
