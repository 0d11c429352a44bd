package config

import (
	"math"
	"path/filepath"
	"testing"

	"rentbuy/internal/engine"
)

func closeTo(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDefaultConfig_ProducesValidInputs(t *testing.T) {
	in := DefaultConfig().Inputs()

	if err := engine.Validate(in); err != nil {
		t.Fatalf("default config fails engine validation: %v", err)
	}

	// Spot-check the percent-to-fraction conversion. The division by 100 is
	// not exact in binary floats, so compare within a tolerance.
	if !closeTo(in.Buy.MortgageRate, 0.0503, 1e-12) {
		t.Errorf("MortgageRate = %v, want 0.0503", in.Buy.MortgageRate)
	}
	if !closeTo(in.General.InflationRate, 0.025, 1e-12) {
		t.Errorf("InflationRate = %v, want 0.025", in.General.InflationRate)
	}
	if !closeTo(in.Buy.ValuationDiscount, 0.20, 1e-12) {
		t.Errorf("ValuationDiscount = %v, want 0.20", in.Buy.ValuationDiscount)
	}
	if in.Buy.PropertyTaxThreshold != 9_200_000 {
		t.Errorf("PropertyTaxThreshold = %v, want 9200000", in.Buy.PropertyTaxThreshold)
	}
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Error("missing file did not yield defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.General.AnalysisYears = 25
	cfg.Buy.MortgageRatePct = 4.25
	cfg.Rent.MonthlyRent = 12_000
	cfg.Appearance.Theme = "terminal"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if loaded != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("RENTBUY_CONFIG", "/tmp/custom/rentbuy.toml")
	if got := Path(); got != "/tmp/custom/rentbuy.toml" {
		t.Errorf("Path() = %q, want env override", got)
	}
}

func TestPath_XDGDefault(t *testing.T) {
	t.Setenv("RENTBUY_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "rentbuy", "config.toml")
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
