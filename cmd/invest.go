package cmd

import (
	"fmt"

	"rentbuy/internal/cli"

	"github.com/spf13/cobra"
)

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "Yearly table for the rent-and-invest scenario",
	RunE:  runInvest,
}

func init() {
	rootCmd.AddCommand(investCmd)
}

func runInvest(_ *cobra.Command, _ []string) error {
	inputs, result, err := runEngine()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RENT + INVEST  %d years", inputs.General.AnalysisYears)))
	fmt.Println()

	rows := make([][]string, 0, len(result.Invest))
	for _, y := range result.Invest {
		rows = append(rows, []string{
			fmt.Sprintf("%d", y.Year),
			cli.FormatAmount(y.RentOutflow),
			cli.FormatAmount(y.BuyOutflow),
			cli.FormatSigned(y.Difference),
			cli.FormatAmount(y.BalanceStart),
			cli.FormatAmount(y.BalanceEnd),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Rent Cost", "Buy Cost", "Invested", "Balance Start", "Balance End"},
		Rows:    rows,
	}))

	last := result.Invest[len(result.Invest)-1]
	fmt.Printf("\n  Starting capital: %s (downpayment + closing costs)\n",
		cli.FormatAmount(inputs.Buy.Downpayment+inputs.Buy.ClosingCosts))
	fmt.Printf("  Final portfolio after %d years at %s: %s\n\n",
		inputs.General.AnalysisYears,
		cli.FormatPercent(inputs.General.SavingsRate),
		cli.FormatAmount(last.FinalNetWorth))

	return nil
}
