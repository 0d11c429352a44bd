package cmd

import (
	"testing"

	"rentbuy/internal/config"
)

// A config where every field differs from the defaults. If the wizard skips a
// field, the round trip below falls back to the default and the comparison
// catches it.
func distinctConfig() config.Config {
	return config.Config{
		General: config.GeneralConfig{
			AnalysisYears:   17,
			InflationPct:    1.1,
			SavingsRatePct:  2.2,
			AppreciationPct: 3.3,
			RentIncreasePct: 4.4,
		},
		Rent: config.RentConfig{
			MonthlyRent:     11_111,
			AnnualInsurance: 2_222,
		},
		Buy: config.BuyConfig{
			PurchasePrice:        3_333_333,
			Downpayment:          444_444,
			ClosingCosts:         55_555,
			MortgageRatePct:      6.6,
			MortgageTermYears:    23,
			InterestDeductionPct: 27,
			MonthlyCarLease:      1_234,
			BaseInsurance:        12_000,
			BaseMaintenance:      7_000,
			BaseRenovations:      8_000,
			MonthlyCommunityFee:  3_210,
			Tax: config.TaxConfig{
				PropertyRateBelowPct: 0.7,
				PropertyRateAbovePct: 1.8,
				PropertyThreshold:    7_700_000,
				LandRatePct:          0.9,
				PropertyValuation:    4_444_000,
				LandValuation:        2_222_000,
				RevaluationPct:       2.1,
				ValuationDiscountPct: 15,
			},
		},
		Selling: config.SellingConfig{
			AgentCommissionPct: 3.5,
			CapitalGainsPct:    42,
		},
		Appearance: config.AppearanceConfig{
			Theme: "tokyo-night",
		},
	}
}

func TestSetupValues_RoundTripCoversEveryField(t *testing.T) {
	want := distinctConfig()

	vals := newSetupValues(want)
	got := config.DefaultConfig()
	vals.apply(&got)

	if got != want {
		t.Errorf("wizard round trip lost fields:\n got %+v\nwant %+v", got, want)
	}
}

func TestSetupValues_ApplyParsesNumbers(t *testing.T) {
	vals := newSetupValues(config.DefaultConfig())
	vals.years = "12"
	vals.mortgageRate = "4.25"
	vals.taxThreshold = "8000000"

	cfg := config.DefaultConfig()
	vals.apply(&cfg)

	if cfg.General.AnalysisYears != 12 {
		t.Errorf("AnalysisYears = %d, want 12", cfg.General.AnalysisYears)
	}
	if cfg.Buy.MortgageRatePct != 4.25 {
		t.Errorf("MortgageRatePct = %v, want 4.25", cfg.Buy.MortgageRatePct)
	}
	if cfg.Buy.Tax.PropertyThreshold != 8_000_000 {
		t.Errorf("PropertyThreshold = %v, want 8000000", cfg.Buy.Tax.PropertyThreshold)
	}
}

func TestValidateAmount(t *testing.T) {
	if err := validateAmount("17654"); err != nil {
		t.Errorf("rejected valid amount: %v", err)
	}
	if err := validateAmount("-1"); err == nil {
		t.Error("accepted a negative amount")
	}
	if err := validateAmount("abc"); err == nil {
		t.Error("accepted a non-number")
	}
	if err := validatePositiveInt("0"); err == nil {
		t.Error("accepted zero years")
	}
}
