package http

import (
	"net/http"

	"payoff-agent/domain"
	"payoff-agent/service"
)

// ProjectionHandler exposes the loan projector over JSON.
type ProjectionHandler struct {
	service *service.ProjectionService
}

func NewProjectionHandler(service *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{service: service}
}

// Outstanding handles POST /loan/outstanding.
func (h *ProjectionHandler) Outstanding(w http.ResponseWriter, r *http.Request) {
	var req domain.OutstandingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Outstanding(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Project handles POST /loan/projection.
func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	var req domain.ProjectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Project(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
