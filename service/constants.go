package service

const (
	MaxInterestRate    = 1000.0        // 1000% annual
	MaxBalance         = 100_000_000.0 // 100 million
	MaxCardsPerRequest = 50            // cards per request

	// DefaultMaxPayoffMonths caps the simulation at 50 years. Policy choice,
	// not a mathematical limit; CalculatePayoff takes it as a parameter.
	DefaultMaxPayoffMonths = 600

	// GoalSolverIterations bounds the binary search. Precision comes from the
	// iteration count, never from a convergence threshold.
	GoalSolverIterations = 50

	// BalanceEpsilon is the residual below which a balance counts as paid off.
	BalanceEpsilon = 0.01

	// ExtraPaymentEpsilon is added to the negative-amortization deficit before
	// rounding up, so the suggested extra never lands exactly on the boundary.
	ExtraPaymentEpsilon = 0.01

	DefaultProjectionMonths = 6
	MaxProjectionMonths     = 120 // 10 years
)
