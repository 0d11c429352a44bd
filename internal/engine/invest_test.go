package engine

import "testing"

func TestRentInvestScenario_InitialBalanceIsUpfrontCapital(t *testing.T) {
	in := testInputs()

	rent, err := RentScenario(in)
	if err != nil {
		t.Fatalf("RentScenario: %v", err)
	}
	buy, err := BuyScenario(in)
	if err != nil {
		t.Fatalf("BuyScenario: %v", err)
	}
	invest, err := RentInvestScenario(in, rent, buy)
	if err != nil {
		t.Fatalf("RentInvestScenario: %v", err)
	}

	want := in.Buy.Downpayment + in.Buy.ClosingCosts
	if invest[0].BalanceStart != want {
		t.Errorf("year 1 start balance = %.2f, want %.2f", invest[0].BalanceStart, want)
	}
}

// Each year must satisfy end = (prior end + buy - rent) * (1 + savings rate):
// the difference is contributed before interest accrues.
func TestRentInvestScenario_Recurrence(t *testing.T) {
	in := testInputs()
	in.General.AnalysisYears = 15

	rent, _ := RentScenario(in)
	buy, _ := BuyScenario(in)
	invest, err := RentInvestScenario(in, rent, buy)
	if err != nil {
		t.Fatalf("RentInvestScenario: %v", err)
	}

	balance := in.Buy.Downpayment + in.Buy.ClosingCosts
	for i, y := range invest {
		wantDiff := buy[i].TotalOutflow - rent[i].TotalCost
		if !closeTo(y.Difference, wantDiff, 1e-9) {
			t.Fatalf("year %d difference = %.6f, want %.6f", y.Year, y.Difference, wantDiff)
		}
		if !closeTo(y.BalanceStart, balance, 1e-6) {
			t.Fatalf("year %d start = %.6f, want prior end %.6f", y.Year, y.BalanceStart, balance)
		}
		wantEnd := (balance + wantDiff) * (1 + in.General.SavingsRate)
		if !closeTo(y.BalanceEnd, wantEnd, 1e-6) {
			t.Fatalf("year %d end = %.6f, want %.6f", y.Year, y.BalanceEnd, wantEnd)
		}
		balance = y.BalanceEnd
	}
}

func TestRentInvestScenario_FinalNetWorthReplicatedOnEveryRow(t *testing.T) {
	in := testInputs()
	in.General.AnalysisYears = 8

	rent, _ := RentScenario(in)
	buy, _ := BuyScenario(in)
	invest, err := RentInvestScenario(in, rent, buy)
	if err != nil {
		t.Fatalf("RentInvestScenario: %v", err)
	}

	final := invest[len(invest)-1].BalanceEnd
	for _, y := range invest {
		if y.FinalNetWorth != final {
			t.Errorf("year %d FinalNetWorth = %.2f, want terminal %.2f", y.Year, y.FinalNetWorth, final)
		}
	}
}

func TestRentInvestScenario_MismatchedSeries(t *testing.T) {
	in := testInputs()

	rent, _ := RentScenario(in)
	buy, _ := BuyScenario(in)

	if _, err := RentInvestScenario(in, rent[:5], buy); err == nil {
		t.Fatal("accepted rent and buy series of different lengths")
	}
	if _, err := RentInvestScenario(in, nil, nil); err == nil {
		t.Fatal("accepted empty series")
	}
}
