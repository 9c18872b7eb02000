package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"payoff-agent/domain"
)

// PlanRecord is one stored payoff plan.
type PlanRecord struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Request   domain.PayoffRequest `json:"request"`
	Result    domain.PayoffResult  `json:"result"`
}

// PlanRepositoryMemory is an in-memory implementation of PlanRepository.
type PlanRepositoryMemory struct {
	mu   sync.Mutex
	data []PlanRecord
}

// NewPlanRepositoryMemory creates an empty in-memory plan repository.
func NewPlanRepositoryMemory() *PlanRepositoryMemory {
	return &PlanRepositoryMemory{
		data: []PlanRecord{},
	}
}

// Save stores the plan with a fresh record id.
func (r *PlanRepositoryMemory) Save(req domain.PayoffRequest, result domain.PayoffResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, PlanRecord{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Request:   req,
		Result:    result,
	})
	return nil
}

// All returns a copy of every stored record.
func (r *PlanRepositoryMemory) All() []PlanRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]PlanRecord, len(r.data))
	copy(out, r.data)
	return out
}
