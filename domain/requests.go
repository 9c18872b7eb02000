package domain

// PayoffRequest asks for a full payoff simulation over raw account records.
type PayoffRequest struct {
	Accounts     []BankAccount `json:"accounts"`
	Currency     string        `json:"currency,omitempty"`
	Strategy     Strategy      `json:"strategy"`
	ExtraPayment float64       `json:"extra_payment"`
}

// CompareRequest asks for both strategies run over the same accounts.
type CompareRequest struct {
	Accounts     []BankAccount `json:"accounts"`
	Currency     string        `json:"currency,omitempty"`
	ExtraPayment float64       `json:"extra_payment"`
}

// GoalRequest asks for the smallest extra payment that clears the debt
// within TargetMonths.
type GoalRequest struct {
	Accounts     []BankAccount `json:"accounts"`
	Currency     string        `json:"currency,omitempty"`
	Strategy     Strategy      `json:"strategy"`
	TargetMonths int           `json:"target_months"`
}

// GoalResult is the goal solver's answer. ProjectedMonths is the payoff
// horizon a re-simulation with RequiredExtra actually achieves.
type GoalResult struct {
	RequiredExtra   float64  `json:"required_extra"`
	TargetMonths    int      `json:"target_months"`
	ProjectedMonths int      `json:"projected_months"`
	Strategy        Strategy `json:"strategy"`
}

// SummaryRequest asks for the aggregate credit view over raw accounts.
type SummaryRequest struct {
	Accounts []BankAccount `json:"accounts"`
	Currency string        `json:"currency,omitempty"`
}

// OutstandingRequest asks for a loan's current outstanding balance.
type OutstandingRequest struct {
	Loan          Loan               `json:"loan"`
	Contributions []LoanContribution `json:"contributions"`
}

// OutstandingResult reports the recomputed outstanding balance.
type OutstandingResult struct {
	Outstanding float64 `json:"outstanding"`
}

// ProjectionRequest asks for future month-end balances of a loan.
// MonthsAhead of zero means the default horizon.
type ProjectionRequest struct {
	Loan          Loan               `json:"loan"`
	Contributions []LoanContribution `json:"contributions"`
	MonthsAhead   int                `json:"months_ahead"`
}

// ProjectionResult is the projected growth series plus derived totals.
type ProjectionResult struct {
	CurrentOutstanding float64             `json:"current_outstanding"`
	Months             []MonthlyProjection `json:"months"`
	TotalInterest      float64             `json:"total_interest"`
}
