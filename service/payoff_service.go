package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"payoff-agent/domain"
	"payoff-agent/repository"
)

// roundTo2Decimals rounds a monetary value to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// ceilToCents rounds a monetary value up to the next cent.
func ceilToCents(value float64) float64 {
	return math.Ceil(value*100) / 100
}

// sortByStrategy orders cards so the month's target card comes first.
// The comparator chain is fully deterministic: identical inputs always pick
// the same target, with the card id as the final tie-break.
func sortByStrategy(cards []*domain.CreditCard, strategy domain.Strategy) {
	sort.Slice(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if strategy == domain.StrategySnowball {
			if a.Balance != b.Balance {
				return a.Balance < b.Balance
			}
			if a.APR != b.APR {
				return a.APR > b.APR
			}
			return a.ID < b.ID
		}
		// avalanche
		if a.APR != b.APR {
			return a.APR > b.APR
		}
		if a.Balance != b.Balance {
			return a.Balance > b.Balance
		}
		return a.ID < b.ID
	})
}

// CalculatePayoff simulates month-by-month payoff of the given cards under a
// strategy. The caller's slice is never mutated; the simulation runs on an
// owned copy. An empty card set is vacuously payable.
//
// Before the month loop runs, total payment capacity is checked against total
// monthly interest: if payments can never cover the interest, the plan is
// negative amortization and no timeline is produced at all.
func CalculatePayoff(cards []domain.CreditCard, strategy domain.Strategy, extraPayment float64, maxMonths int) domain.PayoffResult {
	result := domain.PayoffResult{
		Timeline:    []domain.MonthlyBreakdown{},
		PayoffOrder: []string{},
		Outcome:     domain.OutcomeFeasible,
	}
	if len(cards) == 0 {
		return result
	}

	var totalMonthlyInterest, initialMinimums float64
	for _, card := range cards {
		totalMonthlyInterest += card.Balance * (card.APR / 100) / 12
		initialMinimums += card.MinimumPayment
	}
	if initialMinimums+extraPayment < totalMonthlyInterest {
		result.Outcome = domain.OutcomeNegativeAmortization
		result.MinimumExtraRequired = ceilToCents(totalMonthlyInterest - initialMinimums + ExtraPaymentEpsilon)
		return result
	}

	working := make([]domain.CreditCard, len(cards))
	copy(working, cards)

	paidOff := make(map[string]bool, len(working))
	month := 0

	for month < maxMonths {
		active := make([]*domain.CreditCard, 0, len(working))
		for i := range working {
			if working[i].Balance > 0 {
				active = append(active, &working[i])
			}
		}
		if len(active) == 0 {
			break
		}
		month++

		// Re-sort each month: relative order can change as balances shrink.
		sortByStrategy(active, strategy)
		target := active[0]

		// Minimums freed by already-paid-off cards roll over into the extra
		// payment pool for the target card.
		stillOwingMinimums := 0.0
		for _, card := range active {
			stillOwingMinimums += card.MinimumPayment
		}
		effectiveExtra := extraPayment + (initialMinimums - stillOwingMinimums)

		payments := make([]domain.MonthlyPayment, 0, len(active))
		var monthPayment, monthInterest, monthRemaining float64

		for _, card := range active {
			// Interest accrues before any payment is applied.
			interest := card.Balance * (card.APR / 100) / 12
			card.Balance += interest

			payment := math.Min(card.MinimumPayment, card.Balance)
			if card == target {
				payment = math.Min(payment+effectiveExtra, card.Balance)
			}
			principal := math.Max(0, payment-interest)

			card.Balance = roundTo2Decimals(card.Balance - payment)
			if card.Balance < BalanceEpsilon {
				card.Balance = 0
				if !paidOff[card.ID] {
					paidOff[card.ID] = true
					result.PayoffOrder = append(result.PayoffOrder, card.ID)
				}
			}

			payments = append(payments, domain.MonthlyPayment{
				CardID:           card.ID,
				CardName:         card.Name,
				Payment:          roundTo2Decimals(payment),
				InterestPaid:     roundTo2Decimals(interest),
				PrincipalPaid:    roundTo2Decimals(principal),
				RemainingBalance: card.Balance,
			})

			monthPayment += payment
			monthInterest += interest
			monthRemaining += card.Balance
			result.TotalPaid += payment
			result.TotalInterestPaid += interest
		}

		result.Timeline = append(result.Timeline, domain.MonthlyBreakdown{
			Month:          month,
			Payments:       payments,
			TotalPayment:   roundTo2Decimals(monthPayment),
			TotalInterest:  roundTo2Decimals(monthInterest),
			TotalRemaining: roundTo2Decimals(monthRemaining),
		})
	}

	result.TotalMonths = month
	result.TotalInterestPaid = roundTo2Decimals(result.TotalInterestPaid)
	result.TotalPaid = roundTo2Decimals(result.TotalPaid)
	if month >= maxMonths {
		result.Outcome = domain.OutcomeNotConverged
	}
	return result
}

// RequiredExtraForGoal binary-searches the smallest extra payment that clears
// all cards within targetMonths. The search runs a fixed number of
// iterations; precision is bounded by the iteration count rather than a
// convergence threshold. The result is rounded up to the next cent.
func RequiredExtraForGoal(cards []domain.CreditCard, strategy domain.Strategy, targetMonths int) float64 {
	if len(cards) == 0 {
		return 0
	}

	var totalBalance float64
	for _, card := range cards {
		totalBalance += card.Balance
	}

	low, high := 0.0, totalBalance
	for i := 0; i < GoalSolverIterations; i++ {
		mid := (low + high) / 2
		candidate := CalculatePayoff(cards, strategy, mid, targetMonths+10)
		if candidate.IsPayoffPossible() && candidate.TotalMonths <= targetMonths {
			high = mid
		} else {
			low = mid
		}
	}
	return ceilToCents(high)
}

// ComparePayoffStrategies runs both strategies over the same inputs and
// reports the deltas, recommending whichever pays less interest.
func ComparePayoffStrategies(cards []domain.CreditCard, extraPayment float64, maxMonths int) domain.StrategyComparison {
	comparison := domain.StrategyComparison{
		Avalanche: CalculatePayoff(cards, domain.StrategyAvalanche, extraPayment, maxMonths),
		Snowball:  CalculatePayoff(cards, domain.StrategySnowball, extraPayment, maxMonths),
	}

	comparison.Recommended = domain.StrategySnowball
	if comparison.Avalanche.TotalInterestPaid < comparison.Snowball.TotalInterestPaid {
		comparison.Recommended = domain.StrategyAvalanche
	}
	comparison.Savings.InterestSaved = roundTo2Decimals(
		math.Max(0, comparison.Snowball.TotalInterestPaid-comparison.Avalanche.TotalInterestPaid),
	)
	comparison.Savings.MonthsSaved = comparison.Snowball.TotalMonths - comparison.Avalanche.TotalMonths

	return comparison
}

// PayoffService validates requests, normalizes accounts and runs the payoff
// engine, with computed plans saved to the repository and results cached by
// input hash.
type PayoffService struct {
	repo  repository.PlanRepository
	cache repository.CacheRepository
}

// NewPayoffService creates a PayoffService backed by the given repository
// and cache.
func NewPayoffService(repo repository.PlanRepository, cache repository.CacheRepository) *PayoffService {
	return &PayoffService{repo: repo, cache: cache}
}

// BuildPlan runs a full payoff simulation for the request.
func (s *PayoffService) BuildPlan(req domain.PayoffRequest) (domain.PayoffResult, error) {
	if !req.Strategy.Valid() {
		return domain.PayoffResult{}, errors.New("invalid strategy")
	}
	if err := validateAccounts(req.Accounts, req.ExtraPayment); err != nil {
		return domain.PayoffResult{}, err
	}

	key := cacheKey("plan", req)
	var cached domain.PayoffResult
	if s.lookup(key, &cached) {
		return cached, nil
	}

	cards := BankAccountsToCreditCards(req.Accounts, req.Currency)
	result := CalculatePayoff(cards, req.Strategy, req.ExtraPayment, DefaultMaxPayoffMonths)

	// Persisting the plan is not critical to the response.
	if s.repo != nil {
		if err := s.repo.Save(req, result); err != nil {
			log.Printf("Warning: failed to save payoff plan: %v", err)
		}
	}
	s.store(key, result)

	return result, nil
}

// CompareStrategies runs both strategies for the request.
func (s *PayoffService) CompareStrategies(req domain.CompareRequest) (domain.StrategyComparison, error) {
	if err := validateAccounts(req.Accounts, req.ExtraPayment); err != nil {
		return domain.StrategyComparison{}, err
	}

	key := cacheKey("compare", req)
	var cached domain.StrategyComparison
	if s.lookup(key, &cached) {
		return cached, nil
	}

	cards := BankAccountsToCreditCards(req.Accounts, req.Currency)
	result := ComparePayoffStrategies(cards, req.ExtraPayment, DefaultMaxPayoffMonths)
	s.store(key, result)

	return result, nil
}

// RequiredExtra solves for the smallest extra payment hitting the target
// payoff horizon.
func (s *PayoffService) RequiredExtra(req domain.GoalRequest) (domain.GoalResult, error) {
	if !req.Strategy.Valid() {
		return domain.GoalResult{}, errors.New("invalid strategy")
	}
	if req.TargetMonths <= 0 {
		return domain.GoalResult{}, errors.New("target months must be positive")
	}
	if req.TargetMonths > DefaultMaxPayoffMonths {
		return domain.GoalResult{}, fmt.Errorf("target months exceeds the maximum of %d", DefaultMaxPayoffMonths)
	}
	if err := validateAccounts(req.Accounts, 0); err != nil {
		return domain.GoalResult{}, err
	}

	key := cacheKey("goal", req)
	var cached domain.GoalResult
	if s.lookup(key, &cached) {
		return cached, nil
	}

	cards := BankAccountsToCreditCards(req.Accounts, req.Currency)
	extra := RequiredExtraForGoal(cards, req.Strategy, req.TargetMonths)
	check := CalculatePayoff(cards, req.Strategy, extra, DefaultMaxPayoffMonths)

	result := domain.GoalResult{
		RequiredExtra:   extra,
		TargetMonths:    req.TargetMonths,
		ProjectedMonths: check.TotalMonths,
		Strategy:        req.Strategy,
	}
	s.store(key, result)

	return result, nil
}

// Summarize aggregates the request's accounts into a credit summary.
func (s *PayoffService) Summarize(req domain.SummaryRequest) (domain.CreditSummary, error) {
	if err := validateAccounts(req.Accounts, 0); err != nil {
		return domain.CreditSummary{}, err
	}
	cards := BankAccountsToCreditCards(req.Accounts, req.Currency)
	return GetCreditSummary(cards), nil
}

// validateAccounts applies request-level limits. Missing APRs or minimum
// payments are not errors here; the engine surfaces those through the
// summary's missing-data flags.
func validateAccounts(accounts []domain.BankAccount, extraPayment float64) error {
	if len(accounts) > MaxCardsPerRequest {
		return fmt.Errorf("number of accounts exceeds the maximum of %d", MaxCardsPerRequest)
	}
	if extraPayment < 0 {
		return errors.New("extra payment cannot be negative")
	}
	if extraPayment > MaxBalance {
		return fmt.Errorf("extra payment exceeds the maximum of $%.2f", MaxBalance)
	}

	seen := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		if acc.ID != "" {
			if seen[acc.ID] {
				return fmt.Errorf("duplicate account id: %s", acc.ID)
			}
			seen[acc.ID] = true
		}
		if acc.APR != nil && (*acc.APR < 0 || *acc.APR > MaxInterestRate) {
			return fmt.Errorf("apr for %s is out of range", acc.Name)
		}
		if acc.MinimumPayment != nil && *acc.MinimumPayment < 0 {
			return fmt.Errorf("minimum payment for %s cannot be negative", acc.Name)
		}
		if acc.DueBalance != nil && *acc.DueBalance > MaxBalance {
			return fmt.Errorf("balance for %s exceeds the maximum of $%.2f", acc.Name, MaxBalance)
		}
	}
	return nil
}

// cacheKey hashes the canonical JSON form of a request.
func cacheKey(op string, req any) string {
	data, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return "payoff:" + op + ":" + hex.EncodeToString(sum[:])
}

func (s *PayoffService) lookup(key string, out any) bool {
	if s.cache == nil || key == "" {
		return false
	}
	raw, ok := s.cache.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("Warning: discarding unreadable cache entry %s: %v", key, err)
		return false
	}
	return true
}

func (s *PayoffService) store(key string, value any) {
	if s.cache == nil || key == "" {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(key, string(data)); err != nil {
		log.Printf("Warning: failed to cache result: %v", err)
	}
}
