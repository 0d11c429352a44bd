package cmd

import (
	"fmt"

	"rentbuy/internal/cli"

	"github.com/spf13/cobra"
)

var rentCmd = &cobra.Command{
	Use:   "rent",
	Short: "Yearly cost table for the renting scenario",
	RunE:  runRent,
}

func init() {
	rootCmd.AddCommand(rentCmd)
}

func runRent(_ *cobra.Command, _ []string) error {
	inputs, result, err := runEngine()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RENT SCENARIO  %d years", inputs.General.AnalysisYears)))
	fmt.Println()

	rows := make([][]string, 0, len(result.Rent)+2)
	for _, y := range result.Rent {
		rows = append(rows, []string{
			fmt.Sprintf("%d", y.Year),
			cli.FormatAmount2(y.MonthlyRent),
			cli.FormatAmount2(y.AnnualRent),
			cli.FormatAmount2(y.Insurance),
			cli.FormatAmount2(y.TotalCost),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"TOTAL", "", "", "",
		cli.FormatAmount2(result.Summary.TotalRentOutflow),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Monthly Rent", "Annual Rent", "Insurance", "Total"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
