package cmd

import (
	"fmt"
	"strconv"

	"rentbuy/internal/cli"
	"rentbuy/internal/model"

	"github.com/spf13/cobra"
)

const (
	chartWidth  = 72
	chartHeight = 10
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render all comparison charts",
	RunE:  runCharts,
}

func init() {
	rootCmd.AddCommand(chartsCmd)
}

func runCharts(_ *cobra.Command, _ []string) error {
	inputs, result, err := runEngine()
	if err != nil {
		return err
	}

	labels := yearLabels(inputs.General.AnalysisYears)

	chart := func(title, body string) {
		fmt.Println()
		fmt.Println(cli.RenderTitle(title))
		fmt.Println()
		fmt.Println(body)
	}

	rentTotals := make([]float64, len(result.Rent))
	for i, y := range result.Rent {
		rentTotals[i] = y.TotalCost
	}
	buyTotals := make([]float64, len(result.Buy))
	for i, y := range result.Buy {
		buyTotals[i] = y.TotalOutflow
	}

	chart("ANNUAL OUTFLOW", cli.GroupedBarChart(
		rentTotals, buyTotals, labels, "Rent", "Buy", chartWidth, chartHeight))

	balances := make([]float64, len(result.Invest))
	for i, y := range result.Invest {
		balances[i] = y.BalanceEnd
	}
	chart("INVESTMENT PORTFOLIO (RENT + INVEST)", cli.BarChart(
		balances, labels, cli.ColorGreen, chartWidth, chartHeight))

	equity := make([]float64, len(result.Buy))
	for i, y := range result.Buy {
		equity[i] = y.NetEquity
	}
	chart("NET EQUITY (BUYING)", cli.BarChart(
		equity, labels, cli.ColorBlue, chartWidth, chartHeight))

	chart("BUY COST BREAKDOWN", cli.StackedBarChart(
		buyComponents(result.Buy),
		[]string{"Interest", "Principal", "Value Tax", "Land Tax", "Insurance",
			"Maintenance", "Renovations", "Community", "Car Lease"},
		labels, chartWidth, chartHeight))

	rents := make([]float64, len(result.Rent))
	insurance := make([]float64, len(result.Rent))
	for i, y := range result.Rent {
		rents[i] = y.AnnualRent
		insurance[i] = y.Insurance
	}
	chart("RENT COST BREAKDOWN", cli.StackedBarChart(
		[][]float64{rents, insurance},
		[]string{"Rent", "Insurance"},
		labels, chartWidth, chartHeight))

	values := make([]float64, len(result.Buy))
	balancesLeft := make([]float64, len(result.Buy))
	for i, y := range result.Buy {
		values[i] = y.HouseValueEnd
		balancesLeft[i] = y.MortgageBalance
	}
	chart("HOUSE VALUE VS MORTGAGE BALANCE", cli.GroupedBarChart(
		values, balancesLeft, labels, "House Value", "Mortgage", chartWidth, chartHeight))

	diffs := make([]float64, len(result.Buy))
	for i := range result.Buy {
		diffs[i] = result.Buy[i].NetEquity - result.Invest[i].BalanceEnd
	}
	chart("NET WORTH DIFFERENCE (BUY - RENT)", cli.DivergingBarChart(
		diffs, labels, chartWidth, chartHeight))

	cumRent := make([]float64, len(rentTotals))
	cumBuy := make([]float64, len(buyTotals))
	var rsum, bsum float64
	for i := range rentTotals {
		rsum += rentTotals[i]
		bsum += buyTotals[i]
		cumRent[i] = rsum
		cumBuy[i] = bsum
	}
	chart("CUMULATIVE OUTFLOW", cli.GroupedBarChart(
		cumRent, cumBuy, labels, "Rent", "Buy", chartWidth, chartHeight))

	fmt.Println(cli.Verdict(result.Summary.Difference, inputs.General.AnalysisYears))
	fmt.Println()

	return nil
}

func yearLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}

// buyComponents splits each buy year into the stacked chart's cost series.
func buyComponents(years []model.BuyYear) [][]float64 {
	pick := func(f func(model.BuyYear) float64) []float64 {
		vals := make([]float64, len(years))
		for i, y := range years {
			vals[i] = f(y)
		}
		return vals
	}
	return [][]float64{
		pick(func(y model.BuyYear) float64 { return y.Interest }),
		pick(func(y model.BuyYear) float64 { return y.Principal }),
		pick(func(y model.BuyYear) float64 { return y.PropertyValueTax }),
		pick(func(y model.BuyYear) float64 { return y.LandTax }),
		pick(func(y model.BuyYear) float64 { return y.Insurance }),
		pick(func(y model.BuyYear) float64 { return y.Maintenance }),
		pick(func(y model.BuyYear) float64 { return y.Renovations }),
		pick(func(y model.BuyYear) float64 { return y.CommunityCost }),
		pick(func(y model.BuyYear) float64 { return y.CarLease }),
	}
}
