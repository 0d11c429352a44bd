package engine

import "rentbuy/internal/model"

// BuyScenario projects the yearly cost and equity position of buying.
//
// The projection is sequential: each year's house value chains off the
// previous year's, and the tax-authority valuations follow their own
// revaluation track across years. Once the mortgage term is exhausted the
// remaining years carry zero interest, principal, and balance; the house can
// be owned well past payoff when the analysis horizon is longer than the
// term.
func BuyScenario(in model.Inputs) ([]model.BuyYear, error) {
	b := in.Buy
	if b.MortgageTermYears <= 0 {
		return nil, invalidInput("mortgage_term_years", "must be positive")
	}
	if in.General.AnalysisYears < 1 {
		return nil, invalidInput("analysis_years", "must be at least 1")
	}

	loan := b.PurchasePrice - b.Downpayment
	schedule, err := AmortizationSchedule(loan, b.MortgageRate, b.MortgageTermYears)
	if err != nil {
		return nil, err
	}

	houseValue := b.PurchasePrice
	propertyValuation := b.PropertyValuation
	landValuation := b.LandValuation

	years := make([]model.BuyYear, 0, in.General.AnalysisYears)
	for y := 1; y <= in.General.AnalysisYears; y++ {
		var grossInterest, principal, balanceEnd float64
		lo := (y - 1) * 12
		if lo < len(schedule) {
			months := schedule[lo : lo+12]
			for _, m := range months {
				grossInterest += m.Interest
				principal += m.Principal
			}
			balanceEnd = months[len(months)-1].Balance
		}

		valueStart := houseValue
		valueEnd := valueStart * (1 + in.General.AppreciationRate)

		propertyTax := propertyValueTax(propertyValuation, b)
		landTax := landValuation * (1 - b.ValuationDiscount) * b.LandTaxRate

		insurance := compound(b.BaseInsurance, in.General.InflationRate, y)
		maintenance := compound(b.BaseMaintenance, in.General.InflationRate, y)
		renovations := compound(b.BaseRenovations, in.General.InflationRate, y)
		community := compound(b.MonthlyCommunityFee*12, in.General.InflationRate, y)
		carLease := compound(b.MonthlyCarLease*12, in.General.InflationRate, y)

		netInterest := grossInterest * (1 - b.InterestDeductionRate)

		total := netInterest + principal + propertyTax + landTax +
			insurance + maintenance + renovations + community + carLease

		years = append(years, model.BuyYear{
			Year:             y,
			Interest:         netInterest,
			Principal:        principal,
			PropertyValueTax: propertyTax,
			LandTax:          landTax,
			Insurance:        insurance,
			Maintenance:      maintenance,
			Renovations:      renovations,
			CommunityCost:    community,
			CarLease:         carLease,
			TotalOutflow:     total,
			MortgageBalance:  balanceEnd,
			HouseValueStart:  valueStart,
			HouseValueEnd:    valueEnd,
			NetEquity:        valueEnd - balanceEnd,
		})

		houseValue = valueEnd
		propertyValuation *= 1 + b.RevaluationRate
		landValuation *= 1 + b.RevaluationRate
	}

	return years, nil
}

// propertyValueTax applies the statutory valuation discount and then the
// marginal two-bracket schedule: the below rate up to the threshold, the
// above rate on the excess. At exactly the threshold both branches agree.
func propertyValueTax(valuation float64, b model.BuyInputs) float64 {
	taxable := valuation * (1 - b.ValuationDiscount)
	if taxable <= b.PropertyTaxThreshold {
		return taxable * b.PropertyTaxRateBelow
	}
	return b.PropertyTaxThreshold*b.PropertyTaxRateBelow +
		(taxable-b.PropertyTaxThreshold)*b.PropertyTaxRateAbove
}
