package cmd

import (
	"fmt"

	"rentbuy/internal/cli"
	"rentbuy/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := config.Path()
	if flagConfig != "" {
		path = flagConfig
	}
	fmt.Printf("  Config file: %s\n", path)
	if config.Exists() || flagConfig != "" {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Analysis years:    %d\n", cfg.General.AnalysisYears)
	fmt.Printf("    Inflation:         %.2f%%\n", cfg.General.InflationPct)
	fmt.Printf("    Savings return:    %.2f%%\n", cfg.General.SavingsRatePct)
	fmt.Printf("    Appreciation:      %.2f%%\n", cfg.General.AppreciationPct)
	fmt.Printf("    Rent increase:     %.2f%%\n", cfg.General.RentIncreasePct)
	fmt.Println()

	fmt.Println("  [Rent]")
	fmt.Printf("    Monthly rent:      %s\n", cli.FormatAmount(cfg.Rent.MonthlyRent))
	fmt.Printf("    Annual insurance:  %s\n", cli.FormatAmount(cfg.Rent.AnnualInsurance))
	fmt.Println()

	fmt.Println("  [Buy]")
	fmt.Printf("    Purchase price:    %s\n", cli.FormatAmount(cfg.Buy.PurchasePrice))
	fmt.Printf("    Downpayment:       %s\n", cli.FormatAmount(cfg.Buy.Downpayment))
	fmt.Printf("    Closing costs:     %s\n", cli.FormatAmount(cfg.Buy.ClosingCosts))
	fmt.Printf("    Mortgage:          %.2f%% over %d years\n", cfg.Buy.MortgageRatePct, cfg.Buy.MortgageTermYears)
	fmt.Printf("    Interest deduction: %.0f%%\n", cfg.Buy.InterestDeductionPct)
	fmt.Printf("    Community fee:     %s/month\n", cli.FormatAmount(cfg.Buy.MonthlyCommunityFee))
	fmt.Printf("    Car lease:         %s/month\n", cli.FormatAmount(cfg.Buy.MonthlyCarLease))
	fmt.Printf("    Upkeep:            %s insurance, %s maintenance, %s renovations\n",
		cli.FormatAmount(cfg.Buy.BaseInsurance),
		cli.FormatAmount(cfg.Buy.BaseMaintenance),
		cli.FormatAmount(cfg.Buy.BaseRenovations))
	fmt.Println()

	fmt.Println("  [Buy.Tax]")
	fmt.Printf("    Property value tax: %.2f%% / %.2f%% above %s\n",
		cfg.Buy.Tax.PropertyRateBelowPct, cfg.Buy.Tax.PropertyRateAbovePct,
		cli.FormatAmount(cfg.Buy.Tax.PropertyThreshold))
	fmt.Printf("    Land tax:          %.2f%%\n", cfg.Buy.Tax.LandRatePct)
	fmt.Printf("    Valuations:        %s property, %s land\n",
		cli.FormatAmount(cfg.Buy.Tax.PropertyValuation),
		cli.FormatAmount(cfg.Buy.Tax.LandValuation))
	fmt.Printf("    Revaluation:       %.2f%%/year, %.0f%% discount\n",
		cfg.Buy.Tax.RevaluationPct, cfg.Buy.Tax.ValuationDiscountPct)
	fmt.Println()

	fmt.Println("  [Selling]")
	fmt.Printf("    Agent commission:  %.2f%%\n", cfg.Selling.AgentCommissionPct)
	fmt.Printf("    Capital gains tax: %.2f%%\n", cfg.Selling.CapitalGainsPct)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `rentbuy setup` to reconfigure.")
	return nil
}
