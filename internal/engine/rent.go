package engine

import "rentbuy/internal/model"

// RentScenario projects the yearly cost of continuing to rent. The rent
// itself escalates each year; the renters insurance is charged flat. That
// asymmetry with the buy side (where all recurring costs inflate) is carried
// over from the original model on purpose.
func RentScenario(in model.Inputs) ([]model.RentYear, error) {
	if in.General.AnalysisYears < 1 {
		return nil, invalidInput("analysis_years", "must be at least 1")
	}

	years := make([]model.RentYear, 0, in.General.AnalysisYears)
	for y := 1; y <= in.General.AnalysisYears; y++ {
		monthly := compound(in.Rent.MonthlyRent, in.General.RentIncreaseRate, y)
		annual := monthly * 12

		years = append(years, model.RentYear{
			Year:        y,
			MonthlyRent: monthly,
			AnnualRent:  annual,
			Insurance:   in.Rent.AnnualInsurance,
			TotalCost:   annual + in.Rent.AnnualInsurance,
		})
	}

	return years, nil
}
