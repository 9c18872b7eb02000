package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"payoff-agent/domain"
)

// CalculateMonthlyInterest accrues reducing-balance interest for one calendar
// month using actual day counts: outstanding * (roi/100) * (days/daysInYear),
// with a 366-day year when monthDate falls in a leap year.
func CalculateMonthlyInterest(outstanding, roi float64, daysInMonth int, monthDate time.Time) float64 {
	if roi <= 0 || outstanding <= 0 {
		return 0
	}
	daysInYear := 365.0
	if isLeapYear(monthDate.Year()) {
		daysInYear = 366.0
	}
	return outstanding * (roi / 100) * (float64(daysInMonth) / daysInYear)
}

// CalculateCurrentOutstanding recomputes a loan's outstanding balance from
// its reference point. Only contributions dated strictly after the reference
// date count; same-day contributions are already part of the reference
// balance and must not be applied twice. Never returns a negative value.
func CalculateCurrentOutstanding(loan domain.Loan, contributions []domain.LoanContribution) float64 {
	outstanding := loan.ReferenceOutstanding
	for _, c := range contributions {
		if c.ContributionDate.After(loan.ReferenceDate.Time) {
			outstanding -= c.Amount
		}
	}
	return math.Max(outstanding, 0)
}

// GenerateProjection projects month-end balances for monthsAhead consecutive
// calendar months starting the month after the loan's reference date. No
// payments are subtracted: the series shows growth absent further
// contributions. A loan already at zero still yields a fixed-length series
// of zero-amount rows, with real month labels and day counts.
func GenerateProjection(loan domain.Loan, contributions []domain.LoanContribution, monthsAhead int) []domain.MonthlyProjection {
	if monthsAhead <= 0 {
		return []domain.MonthlyProjection{}
	}

	outstanding := CalculateCurrentOutstanding(loan, contributions)
	ref := loan.ReferenceDate
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

	months := make([]domain.MonthlyProjection, 0, monthsAhead)
	for i := 0; i < monthsAhead; i++ {
		days := daysInMonth(monthStart)
		row := domain.MonthlyProjection{
			Month:       monthStart.Format("Jan 2006"),
			MonthStart:  domain.Date{Time: monthStart},
			DaysInMonth: days,
		}

		if outstanding > 0 {
			row.OpeningBalance = roundTo2Decimals(outstanding)
			row.InterestAdded = roundTo2Decimals(CalculateMonthlyInterest(outstanding, loan.ROI, days, monthStart))
			row.ClosingBalance = roundTo2Decimals(row.OpeningBalance + row.InterestAdded)
			outstanding = row.ClosingBalance
		}

		months = append(months, row)
		monthStart = monthStart.AddDate(0, 1, 0)
	}
	return months
}

// CalculateTotalInterest sums the interest a projection would accrue over
// monthsAhead months.
func CalculateTotalInterest(loan domain.Loan, contributions []domain.LoanContribution, monthsAhead int) float64 {
	total := 0.0
	for _, row := range GenerateProjection(loan, contributions, monthsAhead) {
		total += row.InterestAdded
	}
	return roundTo2Decimals(total)
}

func daysInMonth(t time.Time) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ProjectionService validates requests and runs the loan projector.
type ProjectionService struct{}

// NewProjectionService creates a ProjectionService.
func NewProjectionService() *ProjectionService {
	return &ProjectionService{}
}

// Outstanding recomputes the loan's current outstanding balance.
func (s *ProjectionService) Outstanding(req domain.OutstandingRequest) (domain.OutstandingResult, error) {
	if err := validateLoan(req.Loan); err != nil {
		return domain.OutstandingResult{}, err
	}
	outstanding := CalculateCurrentOutstanding(req.Loan, req.Contributions)
	return domain.OutstandingResult{Outstanding: roundTo2Decimals(outstanding)}, nil
}

// Project builds the fixed-length growth series for the loan.
func (s *ProjectionService) Project(req domain.ProjectionRequest) (domain.ProjectionResult, error) {
	if err := validateLoan(req.Loan); err != nil {
		return domain.ProjectionResult{}, err
	}

	monthsAhead := req.MonthsAhead
	if monthsAhead == 0 {
		monthsAhead = DefaultProjectionMonths
	}
	if monthsAhead < 0 {
		return domain.ProjectionResult{}, errors.New("months ahead cannot be negative")
	}
	if monthsAhead > MaxProjectionMonths {
		return domain.ProjectionResult{}, fmt.Errorf("months ahead exceeds the maximum of %d", MaxProjectionMonths)
	}

	months := GenerateProjection(req.Loan, req.Contributions, monthsAhead)
	totalInterest := 0.0
	for _, row := range months {
		totalInterest += row.InterestAdded
	}

	return domain.ProjectionResult{
		CurrentOutstanding: roundTo2Decimals(CalculateCurrentOutstanding(req.Loan, req.Contributions)),
		Months:             months,
		TotalInterest:      roundTo2Decimals(totalInterest),
	}, nil
}

func validateLoan(loan domain.Loan) error {
	if loan.ReferenceDate.IsZero() {
		return errors.New("loan reference date is required")
	}
	if loan.ReferenceOutstanding < 0 {
		return errors.New("reference outstanding cannot be negative")
	}
	if loan.ReferenceOutstanding > MaxBalance {
		return fmt.Errorf("reference outstanding exceeds the maximum of $%.2f", MaxBalance)
	}
	if loan.ROI < 0 {
		return errors.New("interest rate cannot be negative")
	}
	if loan.ROI > MaxInterestRate {
		return fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	return nil
}
