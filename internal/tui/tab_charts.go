package tui

import (
	"strings"

	"rentbuy/internal/cli"
	"rentbuy/internal/model"
	"rentbuy/internal/tui/components"
)

func (a App) renderChartsTab(cw int) string {
	labels := a.yearLabels()
	innerW := components.CardInnerWidth(cw)
	var b strings.Builder

	card := func(title, body string) {
		b.WriteString(components.ContentCard(title, body, cw))
		b.WriteString("\n")
	}

	rentTotals := make([]float64, len(a.result.Rent))
	for i, y := range a.result.Rent {
		rentTotals[i] = y.TotalCost
	}
	buyTotals := make([]float64, len(a.result.Buy))
	for i, y := range a.result.Buy {
		buyTotals[i] = y.TotalOutflow
	}
	card("Annual Outflow", cli.GroupedBarChart(
		rentTotals, buyTotals, labels, "Rent", "Buy", innerW, 10))

	card("Buy Cost Breakdown", cli.StackedBarChart(
		buyCostSeries(a.result.Buy),
		[]string{"Interest", "Principal", "Taxes", "Upkeep", "Fees"},
		labels, innerW, 10))

	values := make([]float64, len(a.result.Buy))
	mortgage := make([]float64, len(a.result.Buy))
	for i, y := range a.result.Buy {
		values[i] = y.HouseValueEnd
		mortgage[i] = y.MortgageBalance
	}
	card("House Value vs Mortgage", cli.GroupedBarChart(
		values, mortgage, labels, "House Value", "Mortgage", innerW, 10))

	cumRent := make([]float64, len(rentTotals))
	cumBuy := make([]float64, len(buyTotals))
	var rsum, bsum float64
	for i := range rentTotals {
		rsum += rentTotals[i]
		bsum += buyTotals[i]
		cumRent[i] = rsum
		cumBuy[i] = bsum
	}
	card("Cumulative Outflow", cli.GroupedBarChart(
		cumRent, cumBuy, labels, "Rent", "Buy", innerW, 10))

	return strings.TrimRight(b.String(), "\n")
}

// buyCostSeries groups the nine cost components into five stacked series so
// the legend stays readable at dashboard size.
func buyCostSeries(years []model.BuyYear) [][]float64 {
	n := len(years)
	series := make([][]float64, 5)
	for i := range series {
		series[i] = make([]float64, n)
	}
	for i, y := range years {
		series[0][i] = y.Interest
		series[1][i] = y.Principal
		series[2][i] = y.PropertyValueTax + y.LandTax
		series[3][i] = y.Insurance + y.Maintenance + y.Renovations
		series[4][i] = y.CommunityCost + y.CarLease
	}
	return series
}
