package cmd

import (
	"fmt"

	"rentbuy/internal/cli"

	"github.com/spf13/cobra"
)

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Yearly cost and equity tables for the buying scenario",
	RunE:  runBuy,
}

func init() {
	rootCmd.AddCommand(buyCmd)
}

func runBuy(_ *cobra.Command, _ []string) error {
	inputs, result, err := runEngine()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUY SCENARIO  %d years", inputs.General.AnalysisYears)))
	fmt.Println()

	costRows := make([][]string, 0, len(result.Buy)+2)
	for _, y := range result.Buy {
		costRows = append(costRows, []string{
			fmt.Sprintf("%d", y.Year),
			cli.FormatAmount(y.Interest),
			cli.FormatAmount(y.Principal),
			cli.FormatAmount(y.PropertyValueTax + y.LandTax),
			cli.FormatAmount(y.Insurance + y.Maintenance + y.Renovations),
			cli.FormatAmount(y.CommunityCost + y.CarLease),
			cli.FormatAmount(y.TotalOutflow),
		})
	}
	costRows = append(costRows, []string{"---"})
	costRows = append(costRows, []string{
		"TOTAL", "", "", "", "", "",
		cli.FormatAmount(result.Summary.TotalBuyOutflow),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Annual costs",
		Headers: []string{"Year", "Interest", "Principal", "Taxes", "Upkeep", "Fees", "Total"},
		Rows:    costRows,
	}))
	fmt.Println()

	equityRows := make([][]string, 0, len(result.Buy))
	for _, y := range result.Buy {
		equityRows = append(equityRows, []string{
			fmt.Sprintf("%d", y.Year),
			cli.FormatAmount(y.HouseValueEnd),
			cli.FormatAmount(y.MortgageBalance),
			cli.FormatAmount(y.NetEquity),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Equity build-up",
		Headers: []string{"Year", "House Value", "Mortgage Balance", "Net Equity"},
		Rows:    equityRows,
	}))
	fmt.Println()

	return nil
}
