package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payoff-agent/domain"
)

func testLoan() domain.Loan {
	return domain.Loan{
		ID:                   "loan-1",
		Name:                 "Home loan",
		Principal:            15000,
		ROI:                  12,
		ReferenceOutstanding: 10000,
		ReferenceDate:        domain.NewDate(2024, time.January, 15),
		Currency:             "USD",
	}
}

func TestCalculateMonthlyInterest(t *testing.T) {
	feb2024 := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	// Leap year: 29 days over a 366-day year.
	got := CalculateMonthlyInterest(10000, 12, 29, feb2024)
	assert.InDelta(t, 10000*0.12*(29.0/366.0), got, 1e-9)

	feb2023 := time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)
	got = CalculateMonthlyInterest(10000, 12, 28, feb2023)
	assert.InDelta(t, 10000*0.12*(28.0/365.0), got, 1e-9)

	assert.Zero(t, CalculateMonthlyInterest(10000, 0, 30, feb2024))
	assert.Zero(t, CalculateMonthlyInterest(10000, -1, 30, feb2024))
	assert.Zero(t, CalculateMonthlyInterest(0, 12, 30, feb2024))
}

func TestCalculateCurrentOutstanding_StrictDateFilter(t *testing.T) {
	loan := testLoan()

	contributions := []domain.LoanContribution{
		// Same day as the reference date: already baked into the balance.
		{Amount: 500, ContributionDate: domain.NewDate(2024, time.January, 15)},
		{Amount: 300, ContributionDate: domain.NewDate(2024, time.January, 10)},
		{Amount: 700, ContributionDate: domain.NewDate(2024, time.January, 16)},
		{Amount: 250, ContributionDate: domain.NewDate(2024, time.March, 1)},
	}

	assert.Equal(t, 9050.0, CalculateCurrentOutstanding(loan, contributions))
}

func TestCalculateCurrentOutstanding_NeverNegative(t *testing.T) {
	loan := testLoan()
	contributions := []domain.LoanContribution{
		{Amount: 25000, ContributionDate: domain.NewDate(2024, time.February, 1)},
	}

	assert.Zero(t, CalculateCurrentOutstanding(loan, contributions))
}

func TestGenerateProjection_LeapYearMonth(t *testing.T) {
	months := GenerateProjection(testLoan(), nil, 1)

	require.Len(t, months, 1)
	first := months[0]
	assert.Equal(t, "Feb 2024", first.Month)
	assert.Equal(t, 29, first.DaysInMonth)
	assert.Equal(t, 10000.0, first.OpeningBalance)
	// 10000 * 12% * 29/366, rounded to cents.
	assert.Equal(t, 95.08, first.InterestAdded)
	assert.Equal(t, 10095.08, first.ClosingBalance)
}

func TestGenerateProjection_CarriesClosingBalanceForward(t *testing.T) {
	months := GenerateProjection(testLoan(), nil, 3)

	require.Len(t, months, 3)
	assert.Equal(t, "Feb 2024", months[0].Month)
	assert.Equal(t, "Mar 2024", months[1].Month)
	assert.Equal(t, "Apr 2024", months[2].Month)
	assert.Equal(t, 31, months[1].DaysInMonth)
	assert.Equal(t, 30, months[2].DaysInMonth)

	for i := 1; i < len(months); i++ {
		assert.Equal(t, months[i-1].ClosingBalance, months[i].OpeningBalance)
	}
	for _, m := range months {
		assert.Equal(t, m.ClosingBalance, roundTo2Decimals(m.OpeningBalance+m.InterestAdded))
	}
}

func TestGenerateProjection_ZeroOutstandingEmitsFixedLengthSeries(t *testing.T) {
	loan := testLoan()
	loan.ReferenceOutstanding = 0

	months := GenerateProjection(loan, nil, 6)

	require.Len(t, months, 6)
	for _, m := range months {
		assert.Zero(t, m.OpeningBalance)
		assert.Zero(t, m.InterestAdded)
		assert.Zero(t, m.ClosingBalance)
		assert.NotEmpty(t, m.Month)
		assert.Positive(t, m.DaysInMonth)
	}
}

func TestGenerateProjection_YearRollover(t *testing.T) {
	loan := testLoan()
	loan.ReferenceDate = domain.NewDate(2023, time.December, 20)

	months := GenerateProjection(loan, nil, 2)

	require.Len(t, months, 2)
	assert.Equal(t, "Jan 2024", months[0].Month)
	assert.Equal(t, 31, months[0].DaysInMonth)
	assert.Equal(t, "Feb 2024", months[1].Month)
	assert.Equal(t, 29, months[1].DaysInMonth)
}

func TestCalculateTotalInterest(t *testing.T) {
	loan := testLoan()

	months := GenerateProjection(loan, nil, 6)
	var sum float64
	for _, m := range months {
		sum += m.InterestAdded
	}

	assert.Equal(t, roundTo2Decimals(sum), CalculateTotalInterest(loan, nil, 6))
	assert.Zero(t, CalculateTotalInterest(loan, nil, 0))
}

func TestProjectionService_Project(t *testing.T) {
	svc := NewProjectionService()

	result, err := svc.Project(domain.ProjectionRequest{Loan: testLoan()})
	require.NoError(t, err)
	// Zero months ahead means the default horizon.
	assert.Len(t, result.Months, DefaultProjectionMonths)
	assert.Equal(t, 10000.0, result.CurrentOutstanding)
	assert.Positive(t, result.TotalInterest)
}

func TestProjectionService_Validation(t *testing.T) {
	svc := NewProjectionService()

	_, err := svc.Project(domain.ProjectionRequest{Loan: domain.Loan{ReferenceOutstanding: 100}})
	assert.Error(t, err, "missing reference date")

	badROI := testLoan()
	badROI.ROI = -3
	_, err = svc.Project(domain.ProjectionRequest{Loan: badROI})
	assert.Error(t, err)

	_, err = svc.Project(domain.ProjectionRequest{Loan: testLoan(), MonthsAhead: MaxProjectionMonths + 1})
	assert.Error(t, err)

	_, err = svc.Project(domain.ProjectionRequest{Loan: testLoan(), MonthsAhead: -1})
	assert.Error(t, err)
}

func TestProjectionService_Outstanding(t *testing.T) {
	svc := NewProjectionService()

	result, err := svc.Outstanding(domain.OutstandingRequest{
		Loan: testLoan(),
		Contributions: []domain.LoanContribution{
			{Amount: 1000, ContributionDate: domain.NewDate(2024, time.February, 1)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 9000.0, result.Outstanding)
}
