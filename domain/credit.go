package domain

// Strategy selects which debt receives extra payment each month.
type Strategy string

const (
	StrategyAvalanche Strategy = "avalanche" // highest APR first
	StrategySnowball  Strategy = "snowball"  // lowest balance first
)

// Valid reports whether s is a known payoff strategy.
func (s Strategy) Valid() bool {
	return s == StrategyAvalanche || s == StrategySnowball
}

// BankAccount is an account record as stored by the data layer. Nullable
// numeric fields are pointers so that an explicit zero stays distinguishable
// from a value that was never set.
type BankAccount struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	AccountType      string   `json:"account_type"`
	Currency         string   `json:"currency"`
	DueBalance       *float64 `json:"due_balance"`
	CreditLimit      *float64 `json:"credit_limit"`
	AvailableBalance *float64 `json:"available_balance"`
	APR              *float64 `json:"apr"`
	MinimumPayment   *float64 `json:"minimum_payment"`
}

// CreditCard is the normalized debt record the payoff engine operates on.
// Balance is always the amount owed, never available credit.
type CreditCard struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Balance                float64 `json:"balance"`
	APR                    float64 `json:"apr"`
	MinimumPayment         float64 `json:"minimum_payment"`
	Currency               string  `json:"currency"`
	APRProvided            bool    `json:"apr_provided"`
	MinimumPaymentProvided bool    `json:"minimum_payment_provided"`
}

// MonthlyPayment records one card's activity in one simulated month.
type MonthlyPayment struct {
	CardID           string  `json:"card_id"`
	CardName         string  `json:"card_name"`
	Payment          float64 `json:"payment"`
	InterestPaid     float64 `json:"interest_paid"`
	PrincipalPaid    float64 `json:"principal_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// MonthlyBreakdown aggregates all card payments for one simulated month.
type MonthlyBreakdown struct {
	Month          int              `json:"month"`
	Payments       []MonthlyPayment `json:"payments"`
	TotalPayment   float64          `json:"total_payment"`
	TotalInterest  float64          `json:"total_interest"`
	TotalRemaining float64          `json:"total_remaining"`
}

// PayoffOutcome tags the three exhaustive simulation outcomes.
type PayoffOutcome int

const (
	// OutcomeFeasible means every balance reached zero within the month cap.
	OutcomeFeasible PayoffOutcome = iota
	// OutcomeNegativeAmortization means payment capacity cannot cover the
	// monthly interest, so balances grow forever; no timeline is produced.
	OutcomeNegativeAmortization
	// OutcomeNotConverged means the simulation hit the month cap with debt
	// still outstanding.
	OutcomeNotConverged
)

var outcomeNames = map[PayoffOutcome]string{
	OutcomeFeasible:             "feasible",
	OutcomeNegativeAmortization: "negative_amortization",
	OutcomeNotConverged:         "not_converged",
}

func (o PayoffOutcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON encodes the outcome as its string name.
func (o PayoffOutcome) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

// UnmarshalJSON decodes an outcome from its string name.
func (o *PayoffOutcome) UnmarshalJSON(data []byte) error {
	s := string(data)
	for outcome, name := range outcomeNames {
		if s == `"`+name+`"` {
			*o = outcome
			return nil
		}
	}
	*o = OutcomeFeasible
	return nil
}

// PayoffResult is the full outcome of one payoff simulation. It is built
// fresh by every call and never mutated afterwards.
type PayoffResult struct {
	Timeline             []MonthlyBreakdown `json:"timeline"`
	TotalMonths          int                `json:"total_months"`
	TotalInterestPaid    float64            `json:"total_interest_paid"`
	TotalPaid            float64            `json:"total_paid"`
	PayoffOrder          []string           `json:"payoff_order"`
	Outcome              PayoffOutcome      `json:"outcome"`
	MinimumExtraRequired float64            `json:"minimum_extra_required,omitempty"`
}

// IsPayoffPossible reports whether the simulated plan converges.
func (r PayoffResult) IsPayoffPossible() bool {
	return r.Outcome == OutcomeFeasible
}

// NegativeAmortization reports whether the plan fails because payments
// cannot cover accruing interest.
func (r PayoffResult) NegativeAmortization() bool {
	return r.Outcome == OutcomeNegativeAmortization
}

// StrategyComparison holds both strategies run over the same inputs plus the
// deltas between them.
type StrategyComparison struct {
	Avalanche   PayoffResult `json:"avalanche"`
	Snowball    PayoffResult `json:"snowball"`
	Recommended Strategy     `json:"recommended"`
	Savings     struct {
		InterestSaved float64 `json:"interest_saved"`
		MonthsSaved   int     `json:"months_saved"`
	} `json:"savings"`
}

// CreditSummary is the aggregate view over a card set.
type CreditSummary struct {
	TotalBalance           float64  `json:"total_balance"`
	TotalMinimumPayments   float64  `json:"total_minimum_payments"`
	AverageAPR             float64  `json:"average_apr"`
	WeightedAverageAPR     float64  `json:"weighted_average_apr"`
	CardCount              int      `json:"card_count"`
	HasMissingData         bool     `json:"has_missing_data"`
	CardsMissingAPR        []string `json:"cards_missing_apr"`
	CardsMissingMinPayment []string `json:"cards_missing_min_payment"`
}
