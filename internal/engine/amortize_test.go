package engine

import (
	"math"
	"testing"
)

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	got, err := MonthlyPayment(120_000, 0, 10)
	if err != nil {
		t.Fatalf("MonthlyPayment: %v", err)
	}
	if got != 1000 {
		t.Errorf("payment = %.4f, want 1000 (straight-line at zero rate)", got)
	}
}

func TestMonthlyPayment_AnnuityFormula(t *testing.T) {
	// 100,000 at 12% over 30 years: 1% monthly on 360 payments.
	got, err := MonthlyPayment(100_000, 0.12, 30)
	if err != nil {
		t.Fatalf("MonthlyPayment: %v", err)
	}
	want := 100_000 * (0.01 / (1 - math.Pow(1.01, -360)))
	if !closeTo(got, want, 1e-9) {
		t.Errorf("payment = %.6f, want %.6f", got, want)
	}
	if !closeTo(got, 1028.61, 0.01) {
		t.Errorf("payment = %.2f, want ~1028.61", got)
	}
}

func TestMonthlyPayment_InvalidInputs(t *testing.T) {
	if _, err := MonthlyPayment(100_000, 0.05, 0); err == nil {
		t.Error("accepted a zero-year term")
	}
	if _, err := MonthlyPayment(-1, 0.05, 10); err == nil {
		t.Error("accepted a negative principal")
	} else {
		wantInvalidInput(t, err, "principal")
	}
	if _, err := MonthlyPayment(100_000, -0.05, 10); err == nil {
		t.Error("accepted a negative rate")
	}
}

func TestAmortizationSchedule_LengthAndZeroRatePayoff(t *testing.T) {
	schedule, err := AmortizationSchedule(120_000, 0, 10)
	if err != nil {
		t.Fatalf("AmortizationSchedule: %v", err)
	}

	if len(schedule) != 120 {
		t.Fatalf("len(schedule) = %d, want 120", len(schedule))
	}
	for _, m := range schedule {
		if m.Interest != 0 {
			t.Fatalf("month %d interest = %.4f, want 0", m.Month, m.Interest)
		}
		if m.Principal != 1000 {
			t.Fatalf("month %d principal = %.4f, want 1000", m.Month, m.Principal)
		}
	}
	if final := schedule[len(schedule)-1].Balance; final != 0 {
		t.Errorf("final balance = %.6f, want exactly 0", final)
	}
}

func TestAmortizationSchedule_BalanceNeverNegative(t *testing.T) {
	schedule, err := AmortizationSchedule(1_234_567.89, 0.0503, 7)
	if err != nil {
		t.Fatalf("AmortizationSchedule: %v", err)
	}

	for _, m := range schedule {
		if m.Balance < 0 {
			t.Fatalf("month %d balance = %.6f, clamp failed", m.Month, m.Balance)
		}
	}
	if final := schedule[len(schedule)-1].Balance; !closeTo(final, 0, 1e-4) {
		t.Errorf("final balance = %.6f, want ~0", final)
	}
}

func TestAmortizationSchedule_BalanceDecreasesMonotonically(t *testing.T) {
	schedule, err := AmortizationSchedule(5_000_000, 0.0503, 30)
	if err != nil {
		t.Fatalf("AmortizationSchedule: %v", err)
	}

	prev := 5_000_000.0
	for _, m := range schedule {
		if m.Balance > prev {
			t.Fatalf("month %d balance %.2f above previous %.2f", m.Month, m.Balance, prev)
		}
		prev = m.Balance
	}
}
