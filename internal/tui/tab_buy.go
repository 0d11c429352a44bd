package tui

import (
	"fmt"
	"strings"

	"rentbuy/internal/cli"
	"rentbuy/internal/tui/components"
	"rentbuy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBuyTab(cw int) string {
	t := theme.Active
	buy := a.result.Buy
	last := buy[len(buy)-1]
	loan := a.inputs.Buy.PurchasePrice - a.inputs.Buy.Downpayment
	var b strings.Builder

	metrics := []components.Metric{
		{Label: "Purchase Price", Value: cli.FormatAmount(a.inputs.Buy.PurchasePrice),
			Note: fmt.Sprintf("loan %s", cli.FormatAmount(loan))},
		{Label: "House Value (final)", Value: cli.FormatAmount(last.HouseValueEnd),
			Note: fmt.Sprintf("+%s/year", cli.FormatPercent(a.inputs.General.AppreciationRate))},
		{Label: "Net Equity (final)", Value: cli.FormatAmount(last.NetEquity),
			Note: "value minus debt"},
		{Label: "Total Outflow", Value: cli.FormatAmount(a.result.Summary.TotalBuyOutflow),
			Note: "all ownership costs"},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Mortgage payoff and equity share bars
	paidOff := 1.0
	if loan > 0 {
		paidOff = 1 - last.MortgageBalance/loan
	}
	equityShare := 0.0
	if last.HouseValueEnd > 0 {
		equityShare = last.NetEquity / last.HouseValueEnd
	}
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 26
	if barW < 10 {
		barW = 10
	}
	bars := components.ShareBar("Mortgage paid off", paidOff, 18, barW) + "\n" +
		components.ShareBar("Equity share", equityShare, 18, barW)
	b.WriteString(components.ContentCard("Position After Final Year", bars, cw))
	b.WriteString("\n")

	// Net equity chart
	equity := make([]float64, len(buy))
	for i, y := range buy {
		equity[i] = y.NetEquity
	}
	b.WriteString(components.ContentCard(
		"Net Equity by Year",
		cli.BarChart(equity, a.yearLabels(), t.Blue, innerW, 10),
		cw,
	))
	b.WriteString("\n")

	// Year-by-year cost table
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var table strings.Builder
	table.WriteString(headStyle.Render(fmt.Sprintf("%4s %12s %12s %11s %11s %11s %13s",
		"Year", "Interest", "Principal", "Taxes", "Upkeep", "Fees", "Total")))
	table.WriteString("\n")
	for _, y := range buy {
		table.WriteString(rowStyle.Render(fmt.Sprintf("%4d %12s %12s %11s %11s %11s %13s",
			y.Year,
			cli.FormatAmount(y.Interest),
			cli.FormatAmount(y.Principal),
			cli.FormatAmount(y.PropertyValueTax+y.LandTax),
			cli.FormatAmount(y.Insurance+y.Maintenance+y.Renovations),
			cli.FormatAmount(y.CommunityCost+y.CarLease),
			cli.FormatAmount(y.TotalOutflow))))
		table.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Annual Costs (interest net of deduction)",
		strings.TrimRight(table.String(), "\n"), cw))

	return b.String()
}
