package cmd

import (
	"fmt"
	"strconv"

	"rentbuy/internal/config"
	"rentbuy/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive wizard that writes the config file",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		// Start from defaults if the existing file is broken.
		cfg = config.DefaultConfig()
	}

	vals := newSetupValues(cfg)

	themeOptions := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themeOptions[i] = huh.NewOption(th.Name, th.Name)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Analysis horizon (years)").
				Value(&vals.years).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Inflation (% per year)").
				Value(&vals.inflation).
				Validate(validateAmount),
			huh.NewInput().
				Title("Savings return (% per year)").
				Value(&vals.savingsRate).
				Validate(validateAmount),
			huh.NewInput().
				Title("House appreciation (% per year)").
				Value(&vals.appreciation).
				Validate(validateAmount),
			huh.NewInput().
				Title("Rent increase (% per year)").
				Value(&vals.rentIncrease).
				Validate(validateAmount),
		).Title("General"),
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly rent (DKK)").
				Value(&vals.monthlyRent).
				Validate(validateAmount),
			huh.NewInput().
				Title("Renters insurance (DKK per year)").
				Value(&vals.rentInsurance).
				Validate(validateAmount),
		).Title("Renting"),
		huh.NewGroup(
			huh.NewInput().
				Title("Purchase price (DKK)").
				Value(&vals.price).
				Validate(validateAmount),
			huh.NewInput().
				Title("Downpayment (DKK)").
				Value(&vals.downpayment).
				Validate(validateAmount),
			huh.NewInput().
				Title("Closing costs (DKK)").
				Value(&vals.closingCosts).
				Validate(validateAmount),
			huh.NewInput().
				Title("Mortgage rate (% per year)").
				Value(&vals.mortgageRate).
				Validate(validateAmount),
			huh.NewInput().
				Title("Mortgage term (years)").
				Value(&vals.mortgageTerm).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Interest deduction (%)").
				Value(&vals.deduction).
				Validate(validateAmount),
		).Title("Buying"),
		huh.NewGroup(
			huh.NewInput().
				Title("Home insurance (DKK per year)").
				Value(&vals.insurance).
				Validate(validateAmount),
			huh.NewInput().
				Title("Maintenance (DKK per year)").
				Value(&vals.maintenance).
				Validate(validateAmount),
			huh.NewInput().
				Title("Renovations (DKK per year)").
				Value(&vals.renovations).
				Validate(validateAmount),
			huh.NewInput().
				Title("Community fee (DKK per month)").
				Value(&vals.communityFee).
				Validate(validateAmount),
			huh.NewInput().
				Title("Car lease (DKK per month)").
				Value(&vals.carLease).
				Validate(validateAmount),
		).Title("Ownership costs"),
		huh.NewGroup(
			huh.NewInput().
				Title("Property value tax below threshold (%)").
				Value(&vals.taxRateBelow).
				Validate(validateAmount),
			huh.NewInput().
				Title("Property value tax above threshold (%)").
				Value(&vals.taxRateAbove).
				Validate(validateAmount),
			huh.NewInput().
				Title("Bracket threshold (DKK)").
				Value(&vals.taxThreshold).
				Validate(validateAmount),
			huh.NewInput().
				Title("Land tax (%)").
				Value(&vals.landTaxRate).
				Validate(validateAmount),
			huh.NewInput().
				Title("Tax-authority property valuation (DKK)").
				Value(&vals.propertyValuation).
				Validate(validateAmount),
			huh.NewInput().
				Title("Tax-authority land valuation (DKK)").
				Value(&vals.landValuation).
				Validate(validateAmount),
			huh.NewInput().
				Title("Valuation revaluation (% per year)").
				Value(&vals.revaluation).
				Validate(validateAmount),
			huh.NewInput().
				Title("Valuation discount (%)").
				Value(&vals.valuationDiscount).
				Validate(validateAmount),
		).Title("Property taxes"),
		huh.NewGroup(
			huh.NewInput().
				Title("Agent commission at sale (%)").
				Value(&vals.agentCommission).
				Validate(validateAmount),
			huh.NewInput().
				Title("Capital gains tax (%)").
				Value(&vals.capitalGains).
				Validate(validateAmount),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&vals.theme),
		).Title("Selling & appearance"),
	)

	if err := form.Run(); err != nil {
		return err
	}

	vals.apply(&cfg)
	path := config.Path()
	if flagConfig != "" {
		path = flagConfig
	}
	if err := config.SaveTo(cfg, path); err != nil {
		return err
	}

	fmt.Printf("Saved %s\n", path)
	return nil
}

// setupValues holds the wizard's text fields; everything is parsed on apply.
type setupValues struct {
	years        string
	inflation    string
	savingsRate  string
	appreciation string
	rentIncrease string

	monthlyRent   string
	rentInsurance string

	price        string
	downpayment  string
	closingCosts string
	mortgageRate string
	mortgageTerm string
	deduction    string

	insurance    string
	maintenance  string
	renovations  string
	communityFee string
	carLease     string

	taxRateBelow      string
	taxRateAbove      string
	taxThreshold      string
	landTaxRate       string
	propertyValuation string
	landValuation     string
	revaluation       string
	valuationDiscount string

	agentCommission string
	capitalGains    string
	theme           string
}

func newSetupValues(cfg config.Config) setupValues {
	n := formatSetupNumber
	return setupValues{
		years:        strconv.Itoa(cfg.General.AnalysisYears),
		inflation:    n(cfg.General.InflationPct),
		savingsRate:  n(cfg.General.SavingsRatePct),
		appreciation: n(cfg.General.AppreciationPct),
		rentIncrease: n(cfg.General.RentIncreasePct),

		monthlyRent:   n(cfg.Rent.MonthlyRent),
		rentInsurance: n(cfg.Rent.AnnualInsurance),

		price:        n(cfg.Buy.PurchasePrice),
		downpayment:  n(cfg.Buy.Downpayment),
		closingCosts: n(cfg.Buy.ClosingCosts),
		mortgageRate: n(cfg.Buy.MortgageRatePct),
		mortgageTerm: strconv.Itoa(cfg.Buy.MortgageTermYears),
		deduction:    n(cfg.Buy.InterestDeductionPct),

		insurance:    n(cfg.Buy.BaseInsurance),
		maintenance:  n(cfg.Buy.BaseMaintenance),
		renovations:  n(cfg.Buy.BaseRenovations),
		communityFee: n(cfg.Buy.MonthlyCommunityFee),
		carLease:     n(cfg.Buy.MonthlyCarLease),

		taxRateBelow:      n(cfg.Buy.Tax.PropertyRateBelowPct),
		taxRateAbove:      n(cfg.Buy.Tax.PropertyRateAbovePct),
		taxThreshold:      n(cfg.Buy.Tax.PropertyThreshold),
		landTaxRate:       n(cfg.Buy.Tax.LandRatePct),
		propertyValuation: n(cfg.Buy.Tax.PropertyValuation),
		landValuation:     n(cfg.Buy.Tax.LandValuation),
		revaluation:       n(cfg.Buy.Tax.RevaluationPct),
		valuationDiscount: n(cfg.Buy.Tax.ValuationDiscountPct),

		agentCommission: n(cfg.Selling.AgentCommissionPct),
		capitalGains:    n(cfg.Selling.CapitalGainsPct),
		theme:           cfg.Appearance.Theme,
	}
}

func (v setupValues) apply(cfg *config.Config) {
	cfg.General.AnalysisYears, _ = strconv.Atoi(v.years)
	cfg.General.InflationPct = parseSetupNumber(v.inflation)
	cfg.General.SavingsRatePct = parseSetupNumber(v.savingsRate)
	cfg.General.AppreciationPct = parseSetupNumber(v.appreciation)
	cfg.General.RentIncreasePct = parseSetupNumber(v.rentIncrease)

	cfg.Rent.MonthlyRent = parseSetupNumber(v.monthlyRent)
	cfg.Rent.AnnualInsurance = parseSetupNumber(v.rentInsurance)

	cfg.Buy.PurchasePrice = parseSetupNumber(v.price)
	cfg.Buy.Downpayment = parseSetupNumber(v.downpayment)
	cfg.Buy.ClosingCosts = parseSetupNumber(v.closingCosts)
	cfg.Buy.MortgageRatePct = parseSetupNumber(v.mortgageRate)
	cfg.Buy.MortgageTermYears, _ = strconv.Atoi(v.mortgageTerm)
	cfg.Buy.InterestDeductionPct = parseSetupNumber(v.deduction)

	cfg.Buy.BaseInsurance = parseSetupNumber(v.insurance)
	cfg.Buy.BaseMaintenance = parseSetupNumber(v.maintenance)
	cfg.Buy.BaseRenovations = parseSetupNumber(v.renovations)
	cfg.Buy.MonthlyCommunityFee = parseSetupNumber(v.communityFee)
	cfg.Buy.MonthlyCarLease = parseSetupNumber(v.carLease)

	cfg.Buy.Tax.PropertyRateBelowPct = parseSetupNumber(v.taxRateBelow)
	cfg.Buy.Tax.PropertyRateAbovePct = parseSetupNumber(v.taxRateAbove)
	cfg.Buy.Tax.PropertyThreshold = parseSetupNumber(v.taxThreshold)
	cfg.Buy.Tax.LandRatePct = parseSetupNumber(v.landTaxRate)
	cfg.Buy.Tax.PropertyValuation = parseSetupNumber(v.propertyValuation)
	cfg.Buy.Tax.LandValuation = parseSetupNumber(v.landValuation)
	cfg.Buy.Tax.RevaluationPct = parseSetupNumber(v.revaluation)
	cfg.Buy.Tax.ValuationDiscountPct = parseSetupNumber(v.valuationDiscount)

	cfg.Selling.AgentCommissionPct = parseSetupNumber(v.agentCommission)
	cfg.Selling.CapitalGainsPct = parseSetupNumber(v.capitalGains)
	cfg.Appearance.Theme = v.theme
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a whole number above zero")
	}
	return nil
}

func validateAmount(s string) error {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func parseSetupNumber(s string) float64 {
	n, _ := strconv.ParseFloat(s, 64)
	return n
}

func formatSetupNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
