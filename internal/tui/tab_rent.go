package tui

import (
	"fmt"
	"strings"

	"rentbuy/internal/cli"
	"rentbuy/internal/tui/components"
	"rentbuy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderRentTab(cw int) string {
	t := theme.Active
	rent := a.result.Rent
	first := rent[0]
	last := rent[len(rent)-1]
	var b strings.Builder

	metrics := []components.Metric{
		{Label: "Monthly Rent (now)", Value: cli.FormatAmount(first.MonthlyRent),
			Note: fmt.Sprintf("+%s/year", cli.FormatPercent(a.inputs.General.RentIncreaseRate))},
		{Label: "Monthly Rent (final)", Value: cli.FormatAmount(last.MonthlyRent),
			Note: fmt.Sprintf("year %d", last.Year)},
		{Label: "Total Outflow", Value: cli.FormatAmount(a.result.Summary.TotalRentOutflow),
			Note: "rent + insurance"},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Annual cost chart
	totals := make([]float64, len(rent))
	for i, y := range rent {
		totals[i] = y.TotalCost
	}
	b.WriteString(components.ContentCard(
		"Annual Rent Cost",
		cli.BarChart(totals, a.yearLabels(), t.Orange, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Year-by-year table
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var table strings.Builder
	table.WriteString(headStyle.Render(fmt.Sprintf("%4s %14s %14s %12s %14s",
		"Year", "Monthly", "Annual", "Insurance", "Total")))
	table.WriteString("\n")
	for _, y := range rent {
		table.WriteString(rowStyle.Render(fmt.Sprintf("%4d %14s %14s %12s %14s",
			y.Year,
			cli.FormatAmount(y.MonthlyRent),
			cli.FormatAmount(y.AnnualRent),
			cli.FormatAmount(y.Insurance),
			cli.FormatAmount(y.TotalCost))))
		table.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Year by Year", strings.TrimRight(table.String(), "\n"), cw))

	return b.String()
}
