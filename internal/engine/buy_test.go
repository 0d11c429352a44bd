package engine

import (
	"math"
	"testing"
)

func TestBuyScenario_YearsBeyondMortgageTermAreDebtFree(t *testing.T) {
	in := testInputs()
	in.General.AnalysisYears = 35
	in.Buy.MortgageTermYears = 30

	years, err := BuyScenario(in)
	if err != nil {
		t.Fatalf("BuyScenario: %v", err)
	}

	for _, y := range years[30:] {
		if y.Interest != 0 || y.Principal != 0 || y.MortgageBalance != 0 {
			t.Errorf("year %d after payoff: interest=%.2f principal=%.2f balance=%.2f, want all 0",
				y.Year, y.Interest, y.Principal, y.MortgageBalance)
		}
		// The house keeps appreciating after payoff; equity equals its value.
		if !closeTo(y.NetEquity, y.HouseValueEnd, 1e-6) {
			t.Errorf("year %d equity = %.2f, want house value %.2f", y.Year, y.NetEquity, y.HouseValueEnd)
		}
	}
}

func TestBuyScenario_HouseValueChainsAcrossYears(t *testing.T) {
	in := testInputs()
	in.General.AnalysisYears = 5
	in.General.AppreciationRate = 0.04

	years, err := BuyScenario(in)
	if err != nil {
		t.Fatalf("BuyScenario: %v", err)
	}

	if years[0].HouseValueStart != in.Buy.PurchasePrice {
		t.Errorf("year 1 start value = %.2f, want purchase price", years[0].HouseValueStart)
	}
	for i := 1; i < len(years); i++ {
		if years[i].HouseValueStart != years[i-1].HouseValueEnd {
			t.Errorf("year %d start value %.2f != prior end value %.2f",
				years[i].Year, years[i].HouseValueStart, years[i-1].HouseValueEnd)
		}
		want := years[i].HouseValueStart * 1.04
		if !closeTo(years[i].HouseValueEnd, want, 1e-6) {
			t.Errorf("year %d end value = %.2f, want %.2f", years[i].Year, years[i].HouseValueEnd, want)
		}
	}
}

func TestBuyScenario_PropertyTaxBracketContinuity(t *testing.T) {
	in := testInputs()
	in.General.AnalysisYears = 1
	in.Buy.RevaluationRate = 0
	in.Buy.PropertyTaxRateBelow = 0.0051
	in.Buy.PropertyTaxRateAbove = 0.0140

	// Valuation chosen so the discounted taxable value lands exactly on the
	// threshold: the single-bracket branch must match the marginal formula.
	in.Buy.PropertyValuation = in.Buy.PropertyTaxThreshold / (1 - in.Buy.ValuationDiscount)
	years, err := BuyScenario(in)
	if err != nil {
		t.Fatalf("BuyScenario: %v", err)
	}
	atThreshold := years[0].PropertyValueTax
	want := in.Buy.PropertyTaxThreshold * in.Buy.PropertyTaxRateBelow
	if !closeTo(atThreshold, want, 1e-6) {
		t.Errorf("tax at threshold = %.4f, want %.4f", atThreshold, want)
	}

	// A hair above the threshold only the excess is taxed at the upper rate:
	// no cliff.
	in.Buy.PropertyValuation = (in.Buy.PropertyTaxThreshold + 1000) / (1 - in.Buy.ValuationDiscount)
	years, err = BuyScenario(in)
	if err != nil {
		t.Fatalf("BuyScenario: %v", err)
	}
	justAbove := years[0].PropertyValueTax
	if !closeTo(justAbove-atThreshold, 1000*in.Buy.PropertyTaxRateAbove, 1e-6) {
		t.Errorf("marginal tax on 1000 excess = %.4f, want %.4f",
			justAbove-atThreshold, 1000*in.Buy.PropertyTaxRateAbove)
	}
}

func TestBuyScenario_ValuationRevaluesIndependently(t *testing.T) {
	in := testInputs()
	in.General.AnalysisYears = 3
	in.General.AppreciationRate = 0.10 // market runs hot
	in.Buy.RevaluationRate = 0.02      // the tax office lags

	years, err := BuyScenario(in)
	if err != nil {
		t.Fatalf("BuyScenario: %v", err)
	}

	// Year 2 property tax uses the once-revalued valuation, untouched by the
	// 10% market appreciation.
	taxable := in.Buy.PropertyValuation * 1.02 * (1 - in.Buy.ValuationDiscount)
	want := taxable * in.Buy.PropertyTaxRateBelow
	if !closeTo(years[1].PropertyValueTax, want, 1e-6) {
		t.Errorf("year 2 property tax = %.4f, want %.4f", years[1].PropertyValueTax, want)
	}

	wantLand := in.Buy.LandValuation * 1.02 * (1 - in.Buy.ValuationDiscount) * in.Buy.LandTaxRate
	if !closeTo(years[1].LandTax, wantLand, 1e-6) {
		t.Errorf("year 2 land tax = %.4f, want %.4f", years[1].LandTax, wantLand)
	}
}

func TestBuyScenario_RecurringCostsInflate(t *testing.T) {
	in := testInputs()
	in.General.AnalysisYears = 4
	in.General.InflationRate = 0.03
	in.Buy.MonthlyCarLease = 2_000

	years, err := BuyScenario(in)
	if err != nil {
		t.Fatalf("BuyScenario: %v", err)
	}

	factor := math.Pow(1.03, 3) // year 4
	checks := []struct {
		name string
		got  float64
		base float64
	}{
		{"insurance", years[3].Insurance, in.Buy.BaseInsurance},
		{"maintenance", years[3].Maintenance, in.Buy.BaseMaintenance},
		{"renovations", years[3].Renovations, in.Buy.BaseRenovations},
		{"community", years[3].CommunityCost, in.Buy.MonthlyCommunityFee * 12},
		{"car lease", years[3].CarLease, in.Buy.MonthlyCarLease * 12},
	}
	for _, c := range checks {
		if want := c.base * factor; !closeTo(c.got, want, 1e-6) {
			t.Errorf("year 4 %s = %.4f, want %.4f", c.name, c.got, want)
		}
	}
}

func TestBuyScenario_InterestDeduction(t *testing.T) {
	in := testInputs()
	in.General.AnalysisYears = 1
	in.Buy.InterestDeductionRate = 0.33

	years, err := BuyScenario(in)
	if err != nil {
		t.Fatalf("BuyScenario: %v", err)
	}

	schedule, err := AmortizationSchedule(
		in.Buy.PurchasePrice-in.Buy.Downpayment, in.Buy.MortgageRate, in.Buy.MortgageTermYears)
	if err != nil {
		t.Fatalf("AmortizationSchedule: %v", err)
	}
	var gross float64
	for _, m := range schedule[:12] {
		gross += m.Interest
	}

	if want := gross * 0.67; !closeTo(years[0].Interest, want, 1e-6) {
		t.Errorf("year 1 net interest = %.4f, want %.4f", years[0].Interest, want)
	}
}

func TestBuyScenario_InvalidTerm(t *testing.T) {
	in := testInputs()
	in.Buy.MortgageTermYears = 0

	_, err := BuyScenario(in)
	if err == nil {
		t.Fatal("BuyScenario accepted a zero-year mortgage term")
	}
	wantInvalidInput(t, err, "mortgage_term_years")
}
