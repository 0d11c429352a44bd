package engine

import "rentbuy/internal/model"

// Compare reduces the three completed series to the terminal comparison.
// Selling costs (agent commission, capital gains tax) are applied here only,
// against the last year's position; the per-year equity figures ignore them.
func Compare(in model.Inputs, rent []model.RentYear, buy []model.BuyYear, invest []model.InvestYear) model.Summary {
	var s model.Summary

	for _, r := range rent {
		s.TotalRentOutflow += r.TotalCost
	}
	for _, b := range buy {
		s.TotalBuyOutflow += b.TotalOutflow
	}
	if len(invest) > 0 {
		s.FinalRentNetWorth = invest[len(invest)-1].FinalNetWorth
	}

	if len(buy) > 0 {
		last := buy[len(buy)-1]
		rawEquity := last.HouseValueEnd - last.MortgageBalance

		commission := last.HouseValueEnd * in.Selling.AgentCommissionRate
		gain := last.HouseValueEnd - in.Buy.PurchasePrice
		if gain < 0 {
			gain = 0
		}
		capitalGainsTax := gain * in.Selling.CapitalGainsTaxRate

		s.FinalBuyNetEquity = rawEquity - commission - capitalGainsTax
	}

	s.Difference = s.FinalBuyNetEquity - s.FinalRentNetWorth
	return s
}
