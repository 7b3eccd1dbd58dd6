package calculator

import (
	"errors"
	"math"

	"github.com/finlearn/finlearn-api/internal/models"
)

// Error strings are part of the API surface and keep the casing clients see.
var (
	ErrInvalidInput  = errors.New("Invalid input")
	ErrInvalidIncome = errors.New("Invalid income")
)

const (
	// Monthly breakdown rows are capped to bound response size.
	breakdownCapMonths = 60
	// Savings simulation hard stop: 50 years.
	savingsCapMonths = 600
)

// SIP projects the future value of a monthly investment using the
// annuity-due formula FV = P * (((1+r)^n - 1) / r) * (1+r).
func SIP(amount, years, annualReturn float64) (*models.SIPResult, error) {
	if amount <= 0 || years <= 0 {
		return nil, ErrInvalidInput
	}

	monthlyRate := annualReturn / 12 / 100
	months := int(years * 12)

	futureValue := sipValue(amount, monthlyRate, months)
	totalInvested := amount * float64(months)

	breakdown := make([]models.MonthlyValue, 0, breakdownCapMonths)
	for month := 1; month <= months && month <= breakdownCapMonths; month++ {
		value := sipValue(amount, monthlyRate, month)
		invested := amount * float64(month)
		breakdown = append(breakdown, models.MonthlyValue{
			Month:    month,
			Invested: invested,
			Value:    round2(value),
			Gains:    round2(value - invested),
		})
	}

	return &models.SIPResult{
		TotalInvested:    round2(totalInvested),
		EstimatedGains:   round2(futureValue - totalInvested),
		MaturityValue:    round2(futureValue),
		AnnualReturn:     annualReturn,
		MonthlyBreakdown: breakdown,
	}, nil
}

// sipValue computes the annuity-due future value after n months. A zero
// rate degenerates to the plain contribution sum.
func sipValue(amount, monthlyRate float64, months int) float64 {
	if monthlyRate == 0 {
		return amount * float64(months)
	}
	return amount * (math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate * (1 + monthlyRate)
}

// Budget splits a monthly income by the 50/30/20 rule.
func Budget(income float64) (*models.BudgetResult, error) {
	if income <= 0 {
		return nil, ErrInvalidIncome
	}
	return &models.BudgetResult{
		Income:  income,
		Needs:   round2(income * 0.50),
		Wants:   round2(income * 0.30),
		Savings: round2(income * 0.20),
	}, nil
}

// Savings computes how long a fixed monthly contribution takes to reach a
// goal. With interest the balance is simulated month by month, capped at
// 600 months; GoalReached reports whether the cap cut the simulation short.
func Savings(goalAmount, monthlySavings, annualInterest float64) (*models.SavingsResult, error) {
	if goalAmount <= 0 || monthlySavings <= 0 {
		return nil, ErrInvalidInput
	}

	monthlyRate := annualInterest / 100 / 12

	var months int
	goalReached := true
	if monthlyRate > 0 {
		balance := 0.0
		for balance < goalAmount && months < savingsCapMonths {
			balance = balance*(1+monthlyRate) + monthlySavings
			months++
		}
		goalReached = balance >= goalAmount
	} else {
		months = int(goalAmount / monthlySavings)
	}

	return &models.SavingsResult{
		Months:      months,
		Years:       round1(float64(months) / 12),
		TotalSaved:  round2(monthlySavings * float64(months)),
		GoalAmount:  goalAmount,
		GoalReached: goalReached,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
