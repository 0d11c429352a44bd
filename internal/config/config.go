// Package config loads and saves the rentbuy configuration file.
//
// The file stores the same parameter groups the engine consumes, with rates
// written as percentages (5.03 means 5.03%) because that is how people think
// about them. Inputs() converts everything to the decimal fractions the
// engine expects.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"rentbuy/internal/model"
)

// Config holds all rentbuy configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Rent       RentConfig       `toml:"rent"`
	Buy        BuyConfig        `toml:"buy"`
	Selling    SellingConfig    `toml:"selling"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds the economy-wide assumptions.
type GeneralConfig struct {
	AnalysisYears   int     `toml:"analysis_years"`
	InflationPct    float64 `toml:"inflation_pct"`
	SavingsRatePct  float64 `toml:"savings_rate_pct"`
	AppreciationPct float64 `toml:"appreciation_pct"`
	RentIncreasePct float64 `toml:"rent_increase_pct"`
}

// RentConfig holds the renting-scenario parameters.
type RentConfig struct {
	MonthlyRent     float64 `toml:"monthly_rent"`
	AnnualInsurance float64 `toml:"annual_insurance"`
}

// BuyConfig holds the ownership-scenario parameters.
type BuyConfig struct {
	PurchasePrice        float64   `toml:"purchase_price"`
	Downpayment          float64   `toml:"downpayment"`
	ClosingCosts         float64   `toml:"closing_costs"`
	MortgageRatePct      float64   `toml:"mortgage_rate_pct"`
	MortgageTermYears    int       `toml:"mortgage_term_years"`
	InterestDeductionPct float64   `toml:"interest_deduction_pct"`
	MonthlyCarLease      float64   `toml:"monthly_car_lease"`
	BaseInsurance        float64   `toml:"base_insurance"`
	BaseMaintenance      float64   `toml:"base_maintenance"`
	BaseRenovations      float64   `toml:"base_renovations"`
	MonthlyCommunityFee  float64   `toml:"monthly_community_fee"`
	Tax                  TaxConfig `toml:"tax"`
}

// TaxConfig holds property taxation parameters. The threshold and the
// valuation discount are jurisdiction-specific knobs, not constants.
type TaxConfig struct {
	PropertyRateBelowPct float64 `toml:"property_rate_below_pct"`
	PropertyRateAbovePct float64 `toml:"property_rate_above_pct"`
	PropertyThreshold    float64 `toml:"property_threshold"`
	LandRatePct          float64 `toml:"land_rate_pct"`
	PropertyValuation    float64 `toml:"property_valuation"`
	LandValuation        float64 `toml:"land_valuation"`
	RevaluationPct       float64 `toml:"revaluation_pct"`
	ValuationDiscountPct float64 `toml:"valuation_discount_pct"`
}

// SellingConfig holds the costs applied at the terminal sale.
type SellingConfig struct {
	AgentCommissionPct float64 `toml:"agent_commission_pct"`
	CapitalGainsPct    float64 `toml:"capital_gains_pct"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the shipped defaults: a Copenhagen-flavored scenario
// in DKK.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			AnalysisYears:   30,
			InflationPct:    2.5,
			SavingsRatePct:  3.5,
			AppreciationPct: 2.5,
			RentIncreasePct: 1.5,
		},
		Rent: RentConfig{
			MonthlyRent:     17654,
			AnnualInsurance: 0,
		},
		Buy: BuyConfig{
			PurchasePrice:        6_200_000,
			Downpayment:          1_200_000,
			ClosingCosts:         200_000,
			MortgageRatePct:      5.03,
			MortgageTermYears:    30,
			InterestDeductionPct: 33,
			MonthlyCarLease:      0,
			BaseInsurance:        30_000,
			BaseMaintenance:      5_000,
			BaseRenovations:      10_000,
			MonthlyCommunityFee:  5_609,
			Tax: TaxConfig{
				PropertyRateBelowPct: 0.51,
				PropertyRateAbovePct: 1.40,
				PropertyThreshold:    9_200_000,
				LandRatePct:          0.51,
				PropertyValuation:    6_822_000,
				LandValuation:        3_869_000,
				RevaluationPct:       1.5,
				ValuationDiscountPct: 20,
			},
		},
		Selling: SellingConfig{
			AgentCommissionPct: 2.0,
			CapitalGainsPct:    0,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Inputs converts the percent-based config into the engine's input bundle.
func (c Config) Inputs() model.Inputs {
	pct := func(p float64) float64 { return p / 100 }

	return model.Inputs{
		General: model.GeneralInputs{
			AnalysisYears:    c.General.AnalysisYears,
			InflationRate:    pct(c.General.InflationPct),
			SavingsRate:      pct(c.General.SavingsRatePct),
			AppreciationRate: pct(c.General.AppreciationPct),
			RentIncreaseRate: pct(c.General.RentIncreasePct),
		},
		Rent: model.RentInputs{
			MonthlyRent:     c.Rent.MonthlyRent,
			AnnualInsurance: c.Rent.AnnualInsurance,
		},
		Buy: model.BuyInputs{
			PurchasePrice:         c.Buy.PurchasePrice,
			Downpayment:           c.Buy.Downpayment,
			ClosingCosts:          c.Buy.ClosingCosts,
			MortgageRate:          pct(c.Buy.MortgageRatePct),
			MortgageTermYears:     c.Buy.MortgageTermYears,
			InterestDeductionRate: pct(c.Buy.InterestDeductionPct),
			MonthlyCarLease:       c.Buy.MonthlyCarLease,
			BaseInsurance:         c.Buy.BaseInsurance,
			BaseMaintenance:       c.Buy.BaseMaintenance,
			BaseRenovations:       c.Buy.BaseRenovations,
			MonthlyCommunityFee:   c.Buy.MonthlyCommunityFee,
			PropertyTaxRateBelow:  pct(c.Buy.Tax.PropertyRateBelowPct),
			PropertyTaxRateAbove:  pct(c.Buy.Tax.PropertyRateAbovePct),
			PropertyTaxThreshold:  c.Buy.Tax.PropertyThreshold,
			LandTaxRate:           pct(c.Buy.Tax.LandRatePct),
			PropertyValuation:     c.Buy.Tax.PropertyValuation,
			LandValuation:         c.Buy.Tax.LandValuation,
			RevaluationRate:       pct(c.Buy.Tax.RevaluationPct),
			ValuationDiscount:     pct(c.Buy.Tax.ValuationDiscountPct),
		},
		Selling: model.SellingInputs{
			AgentCommissionRate: pct(c.Selling.AgentCommissionPct),
			CapitalGainsTaxRate: pct(c.Selling.CapitalGainsPct),
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rentbuy")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rentbuy")
}

// Path returns the config file path. RENTBUY_CONFIG overrides the default
// location (handy with a .env file).
func Path() string {
	if p := os.Getenv("RENTBUY_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config from the default path, returning defaults if the
// file doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to the default path, creating the directory.
func Save(cfg Config) error {
	return SaveTo(cfg, Path())
}

// SaveTo writes the config to an explicit path.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists at the default path.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
