package model

// AmortizationMonth is one row of the monthly mortgage schedule.
// Balance is the end-of-month balance, clamped at zero.
type AmortizationMonth struct {
	Month     int
	Interest  float64
	Principal float64
	Balance   float64
}

// RentYear holds the renting costs for one year (1-based).
type RentYear struct {
	Year        int
	MonthlyRent float64
	AnnualRent  float64
	Insurance   float64
	TotalCost   float64
}

// BuyYear holds the ownership costs and equity position for one year.
type BuyYear struct {
	Year             int
	Interest         float64 // net of the interest deduction
	Principal        float64
	PropertyValueTax float64
	LandTax          float64
	Insurance        float64
	Maintenance      float64
	Renovations      float64
	CommunityCost    float64
	CarLease         float64
	TotalOutflow     float64
	MortgageBalance  float64 // end of year
	HouseValueStart  float64
	HouseValueEnd    float64
	NetEquity        float64 // house value end minus balance end, before selling costs
}

// InvestYear holds one year of the rent-and-invest simulation.
// FinalNetWorth is the terminal balance of the whole simulation, replicated
// onto every row so the comparator can read it from any record.
type InvestYear struct {
	Year          int
	RentOutflow   float64
	BuyOutflow    float64
	Difference    float64 // buy minus rent; positive means renting freed up cash
	BalanceStart  float64
	BalanceEnd    float64
	FinalNetWorth float64
}

// Summary reduces the three series to the terminal comparison.
// Difference is buy minus rent: positive favors buying, negative renting.
type Summary struct {
	TotalRentOutflow  float64
	TotalBuyOutflow   float64
	FinalRentNetWorth float64
	FinalBuyNetEquity float64
	Difference        float64
}

// Result bundles everything one engine run produces.
type Result struct {
	Rent    []RentYear
	Buy     []BuyYear
	Invest  []InvestYear
	Summary Summary
}
