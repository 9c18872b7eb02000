package domain

// Loan is an immutable loan record. ReferenceOutstanding is the balance as of
// ReferenceDate; contributions after that date reduce it.
type Loan struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Principal            float64 `json:"principal"`
	ROI                  float64 `json:"roi"`
	ReferenceOutstanding float64 `json:"reference_outstanding"`
	ReferenceDate        Date    `json:"reference_date"`
	Currency             string  `json:"currency"`
}

// LoanContribution is one ledger entry against a loan. Only contributions
// dated strictly after the loan's reference date affect the outstanding
// balance; earlier ones are already baked into ReferenceOutstanding.
type LoanContribution struct {
	Amount           float64 `json:"amount"`
	ContributionDate Date    `json:"contribution_date"`
}

// MonthlyProjection is one projected month of loan growth.
type MonthlyProjection struct {
	Month          string  `json:"month"`
	MonthStart     Date    `json:"month_start"`
	DaysInMonth    int     `json:"days_in_month"`
	OpeningBalance float64 `json:"opening_balance"`
	InterestAdded  float64 `json:"interest_added"`
	ClosingBalance float64 `json:"closing_balance"`
}
