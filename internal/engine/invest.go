package engine

import "rentbuy/internal/model"

// RentInvestScenario simulates what a renter accumulates by investing the
// capital a buyer spends upfront (downpayment plus closing costs) and any
// yearly cost difference between the two paths.
//
// The difference is treated as contributed at the start of the year: interest
// applies to the full adjusted balance, not just the carried-over part.
func RentInvestScenario(in model.Inputs, rent []model.RentYear, buy []model.BuyYear) ([]model.InvestYear, error) {
	if len(rent) == 0 || len(rent) != len(buy) {
		return nil, invalidInput("series", "rent and buy series must align year by year")
	}

	balance := in.Buy.Downpayment + in.Buy.ClosingCosts
	years := make([]model.InvestYear, 0, len(rent))

	for i := range rent {
		diff := buy[i].TotalOutflow - rent[i].TotalCost
		start := balance
		end := (start + diff) * (1 + in.General.SavingsRate)
		balance = end

		years = append(years, model.InvestYear{
			Year:         rent[i].Year,
			RentOutflow:  rent[i].TotalCost,
			BuyOutflow:   buy[i].TotalOutflow,
			Difference:   diff,
			BalanceStart: start,
			BalanceEnd:   end,
		})
	}

	final := years[len(years)-1].BalanceEnd
	for i := range years {
		years[i].FinalNetWorth = final
	}

	return years, nil
}
