package cmd

import (
	"fmt"

	"rentbuy/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Net-worth comparison after the full horizon",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	inputs, result, err := runEngine()
	if err != nil {
		return err
	}
	s := result.Summary
	years := inputs.General.AnalysisYears

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RENT VS BUY  %d-year horizon", years)))
	fmt.Println()
	fmt.Println(cli.Verdict(s.Difference, years))
	fmt.Println()

	rows := [][]string{
		{"Final Net Worth (Buying)", cli.FormatAmount(s.FinalBuyNetEquity)},
		{"Final Net Worth (Rent + Invest)", cli.FormatAmount(s.FinalRentNetWorth)},
		{"Difference (Buy - Rent)", cli.FormatSigned(s.Difference)},
		{"---"},
		{"Total Buy Outflow", cli.FormatAmount(s.TotalBuyOutflow)},
		{"Total Rent Outflow", cli.FormatAmount(s.TotalRentOutflow)},
		{"---"},
		{"Purchase Price", cli.FormatAmount(inputs.Buy.PurchasePrice)},
		{"Upfront Capital", cli.FormatAmount(inputs.Buy.Downpayment + inputs.Buy.ClosingCosts)},
		{"Mortgage Rate", cli.FormatPercent(inputs.Buy.MortgageRate)},
		{"Savings Rate", cli.FormatPercent(inputs.General.SavingsRate)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "DKK"},
		Rows:    rows,
	}))

	fmt.Println("\n  All figures are estimates, not guaranteed results.")
	fmt.Println("  Run `rentbuy charts` or `rentbuy tui` for the full picture.")
	fmt.Println()

	return nil
}
