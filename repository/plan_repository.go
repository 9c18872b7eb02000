package repository

import "payoff-agent/domain"

// PlanRepository stores computed payoff plans alongside the request that
// produced them.
type PlanRepository interface {
	Save(req domain.PayoffRequest, result domain.PayoffResult) error
}
