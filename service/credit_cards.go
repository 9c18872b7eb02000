package service

import (
	"payoff-agent/domain"
)

// BankAccountsToCreditCards normalizes raw account records into the debt
// records the payoff engine works on. Only credit-type accounts survive, and
// only those that still owe something. When currency is non-empty, accounts
// in other currencies are dropped (the engine never converts between
// currencies). The input slice is never modified.
func BankAccountsToCreditCards(accounts []domain.BankAccount, currency string) []domain.CreditCard {
	cards := make([]domain.CreditCard, 0, len(accounts))

	for _, acc := range accounts {
		if acc.AccountType != "credit" {
			continue
		}
		if currency != "" && acc.Currency != currency {
			continue
		}

		card := domain.CreditCard{
			ID:                     acc.ID,
			Name:                   acc.Name,
			Balance:                deriveBalance(acc),
			Currency:               acc.Currency,
			APRProvided:            acc.APR != nil,
			MinimumPaymentProvided: acc.MinimumPayment != nil,
		}
		if acc.APR != nil {
			card.APR = *acc.APR
		}
		if acc.MinimumPayment != nil {
			card.MinimumPayment = *acc.MinimumPayment
		}

		if card.Balance <= 0 {
			continue
		}
		cards = append(cards, card)
	}

	return cards
}

// deriveBalance resolves the amount owed: the explicit due balance wins, then
// credit limit minus available balance, then zero. The result is debt, never
// available credit.
func deriveBalance(acc domain.BankAccount) float64 {
	if acc.DueBalance != nil {
		return *acc.DueBalance
	}
	if acc.CreditLimit != nil && acc.AvailableBalance != nil {
		return *acc.CreditLimit - *acc.AvailableBalance
	}
	return 0
}

// GetCreditSummary aggregates a card set. Cards without a provided APR are
// excluded from both APR averages entirely, so a missing rate never drags the
// average toward zero.
func GetCreditSummary(cards []domain.CreditCard) domain.CreditSummary {
	summary := domain.CreditSummary{
		CardCount:              len(cards),
		CardsMissingAPR:        []string{},
		CardsMissingMinPayment: []string{},
	}

	var aprSum, weightedAPRSum, weightedBalanceSum float64
	aprCount := 0

	for _, card := range cards {
		summary.TotalBalance += card.Balance
		summary.TotalMinimumPayments += card.MinimumPayment

		if card.APRProvided {
			aprSum += card.APR
			weightedAPRSum += card.APR * card.Balance
			weightedBalanceSum += card.Balance
			aprCount++
		} else {
			summary.CardsMissingAPR = append(summary.CardsMissingAPR, card.Name)
		}

		if !card.MinimumPaymentProvided || card.MinimumPayment <= 0 {
			summary.CardsMissingMinPayment = append(summary.CardsMissingMinPayment, card.Name)
		}
	}

	if aprCount > 0 {
		summary.AverageAPR = roundTo2Decimals(aprSum / float64(aprCount))
	}
	if weightedBalanceSum > 0 {
		summary.WeightedAverageAPR = roundTo2Decimals(weightedAPRSum / weightedBalanceSum)
	}

	summary.TotalBalance = roundTo2Decimals(summary.TotalBalance)
	summary.TotalMinimumPayments = roundTo2Decimals(summary.TotalMinimumPayments)
	summary.HasMissingData = len(summary.CardsMissingAPR) > 0 || len(summary.CardsMissingMinPayment) > 0

	return summary
}
