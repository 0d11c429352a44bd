package cmd

import (
	"fmt"

	"rentbuy/internal/cli"
	"rentbuy/internal/engine"

	"github.com/spf13/cobra"
)

var flagScheduleYear int

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Monthly mortgage amortization schedule",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().IntVar(&flagScheduleYear, "year", 0, "Show only the given loan year")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(_ *cobra.Command, _ []string) error {
	inputs, err := loadInputs()
	if err != nil {
		return err
	}

	principal := inputs.Buy.PurchasePrice - inputs.Buy.Downpayment
	if principal <= 0 {
		fmt.Println("No mortgage: the downpayment covers the full purchase price.")
		return nil
	}

	payment, err := engine.MonthlyPayment(principal, inputs.Buy.MortgageRate, inputs.Buy.MortgageTermYears)
	if err != nil {
		return err
	}
	schedule, err := engine.AmortizationSchedule(principal, inputs.Buy.MortgageRate, inputs.Buy.MortgageTermYears)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("AMORTIZATION  %s over %d years",
		cli.FormatAmount(principal), inputs.Buy.MortgageTermYears)))
	fmt.Println()
	fmt.Printf("  Monthly payment: %s at %s\n\n",
		cli.FormatAmount2(payment), cli.FormatPercent(inputs.Buy.MortgageRate))

	rows := make([][]string, 0, len(schedule))
	for _, m := range schedule {
		year := (m.Month-1)/12 + 1
		if flagScheduleYear > 0 && year != flagScheduleYear {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Month),
			cli.FormatAmount2(m.Interest),
			cli.FormatAmount2(m.Principal),
			cli.FormatAmount2(m.Balance),
		})
	}
	if len(rows) == 0 {
		return fmt.Errorf("year %d is outside the %d-year loan term", flagScheduleYear, inputs.Buy.MortgageTermYears)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Interest", "Principal", "Balance"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
