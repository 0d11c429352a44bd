package tui

import (
	"fmt"
	"strings"

	"rentbuy/internal/cli"
	"rentbuy/internal/tui/components"
	"rentbuy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderInvestTab(cw int) string {
	t := theme.Active
	invest := a.result.Invest
	last := invest[len(invest)-1]
	upfront := a.inputs.Buy.Downpayment + a.inputs.Buy.ClosingCosts
	var b strings.Builder

	metrics := []components.Metric{
		{Label: "Starting Capital", Value: cli.FormatAmount(upfront),
			Note: "downpayment + closing costs"},
		{Label: "Final Portfolio", Value: cli.FormatAmount(last.BalanceEnd),
			Note: fmt.Sprintf("at %s/year", cli.FormatPercent(a.inputs.General.SavingsRate))},
		{Label: "Growth", Value: cli.FormatSigned(last.BalanceEnd - upfront),
			Note: "contributions + returns"},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	balances := make([]float64, len(invest))
	for i, y := range invest {
		balances[i] = y.BalanceEnd
	}
	b.WriteString(components.ContentCard(
		"Portfolio Balance",
		cli.BarChart(balances, a.yearLabels(), t.Green, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var table strings.Builder
	table.WriteString(headStyle.Render(fmt.Sprintf("%4s %13s %13s %13s %14s",
		"Year", "Rent Cost", "Buy Cost", "Invested", "Balance")))
	table.WriteString("\n")
	for _, y := range invest {
		table.WriteString(rowStyle.Render(fmt.Sprintf("%4d %13s %13s %13s %14s",
			y.Year,
			cli.FormatAmount(y.RentOutflow),
			cli.FormatAmount(y.BuyOutflow),
			cli.FormatSigned(y.Difference),
			cli.FormatAmount(y.BalanceEnd))))
		table.WriteString("\n")
	}
	b.WriteString(components.ContentCard(
		"Year by Year (invests what buying would have cost extra)",
		strings.TrimRight(table.String(), "\n"), cw))

	return b.String()
}
