// Package model defines the value types shared by the projection engine
// and the presentation layer. Everything here is plain data: inputs go in,
// yearly series and a summary come out, and nothing is mutated after a run.
package model

// Inputs is the complete set of assumptions for one comparison run.
// All rates are decimal fractions per year (0.025 = 2.5%). An Inputs value
// is treated as immutable once handed to the engine.
type Inputs struct {
	General GeneralInputs
	Rent    RentInputs
	Buy     BuyInputs
	Selling SellingInputs
}

// GeneralInputs holds the economy-wide assumptions.
type GeneralInputs struct {
	AnalysisYears    int
	InflationRate    float64
	SavingsRate      float64 // return on invested savings in the rent path
	AppreciationRate float64 // market appreciation of the house
	RentIncreaseRate float64
}

// RentInputs holds the renting-scenario parameters.
type RentInputs struct {
	MonthlyRent     float64
	AnnualInsurance float64
}

// BuyInputs holds the ownership-scenario parameters.
type BuyInputs struct {
	PurchasePrice         float64
	Downpayment           float64
	ClosingCosts          float64 // one-time upfront
	MortgageRate          float64
	MortgageTermYears     int
	InterestDeductionRate float64
	MonthlyCarLease       float64

	// Year-1 base amounts; escalated with inflation in later years.
	BaseInsurance       float64
	BaseMaintenance     float64
	BaseRenovations     float64
	MonthlyCommunityFee float64

	// Property value tax is marginal: the below rate applies up to the
	// threshold, the above rate to the excess.
	PropertyTaxRateBelow float64
	PropertyTaxRateAbove float64
	PropertyTaxThreshold float64
	LandTaxRate          float64

	// Tax-authority valuations. These follow their own revaluation track,
	// independent of the market appreciation used for equity. The discount
	// is the statutory haircut applied before any tax rate.
	PropertyValuation float64
	LandValuation     float64
	RevaluationRate   float64
	ValuationDiscount float64
}

// SellingInputs holds the costs applied only at the terminal sale.
type SellingInputs struct {
	AgentCommissionRate float64
	CapitalGainsTaxRate float64
}
