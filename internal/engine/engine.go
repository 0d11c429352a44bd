// Package engine implements the rent-vs-buy projection engine: three
// year-by-year simulations (rent cost, ownership cost and equity, rent and
// invest the difference) reduced to a single net-worth comparison.
//
// Each run is a deterministic, side-effect-free computation over an immutable
// set of inputs. There is no caching: a changed input means a full rerun.
package engine

import (
	"math"

	"rentbuy/internal/model"
)

// Run validates the inputs, executes the three projections in dependency
// order, and derives the final comparison.
func Run(in model.Inputs) (*model.Result, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	rent, err := RentScenario(in)
	if err != nil {
		return nil, err
	}
	buy, err := BuyScenario(in)
	if err != nil {
		return nil, err
	}
	invest, err := RentInvestScenario(in, rent, buy)
	if err != nil {
		return nil, err
	}

	return &model.Result{
		Rent:    rent,
		Buy:     buy,
		Invest:  invest,
		Summary: Compare(in, rent, buy, invest),
	}, nil
}

// Validate checks the cross-cutting input invariants. Scenario-specific
// preconditions (mortgage term, horizon) are re-checked by the scenario
// functions so they stay safe to call on their own.
func Validate(in model.Inputs) error {
	if in.General.AnalysisYears < 1 {
		return invalidInput("analysis_years", "must be at least 1")
	}
	if in.Buy.MortgageTermYears <= 0 {
		return invalidInput("mortgage_term_years", "must be positive")
	}

	rates := []struct {
		field string
		value float64
	}{
		{"inflation_rate", in.General.InflationRate},
		{"savings_rate", in.General.SavingsRate},
		{"appreciation_rate", in.General.AppreciationRate},
		{"rent_increase_rate", in.General.RentIncreaseRate},
		{"mortgage_rate", in.Buy.MortgageRate},
		{"interest_deduction_rate", in.Buy.InterestDeductionRate},
		{"property_tax_rate_below", in.Buy.PropertyTaxRateBelow},
		{"property_tax_rate_above", in.Buy.PropertyTaxRateAbove},
		{"land_tax_rate", in.Buy.LandTaxRate},
		{"revaluation_rate", in.Buy.RevaluationRate},
		{"valuation_discount", in.Buy.ValuationDiscount},
		{"agent_commission_rate", in.Selling.AgentCommissionRate},
		{"capital_gains_tax_rate", in.Selling.CapitalGainsTaxRate},
	}
	for _, r := range rates {
		if r.value < 0 {
			return invalidInput(r.field, "must not be negative")
		}
	}

	if in.Buy.PurchasePrice < in.Buy.Downpayment {
		return invalidInput("downpayment", "exceeds purchase price")
	}
	if in.Buy.Downpayment+in.Buy.ClosingCosts < 0 {
		return invalidInput("closing_costs", "upfront capital must not be negative")
	}

	return nil
}

// compound escalates a base amount by an annual rate for a 1-based year.
// Year 1 is the base amount itself.
func compound(base, rate float64, year int) float64 {
	return base * math.Pow(1+rate, float64(year-1))
}
