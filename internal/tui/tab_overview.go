package tui

import (
	"fmt"
	"strings"

	"rentbuy/internal/cli"
	"rentbuy/internal/tui/components"
	"rentbuy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.result.Summary
	years := a.inputs.General.AnalysisYears
	var b strings.Builder

	// Row 1: Metric cards
	metrics := []components.Metric{
		{Label: "Buy Net Worth", Value: cli.FormatAmount(s.FinalBuyNetEquity),
			Note: "equity after sale costs"},
		{Label: "Rent Net Worth", Value: cli.FormatAmount(s.FinalRentNetWorth),
			Note: "invested portfolio"},
		{Label: "Difference", Value: cli.FormatSigned(s.Difference),
			Note: "buy minus rent"},
		{Label: "Horizon", Value: fmt.Sprintf("%d years", years),
			Note: fmt.Sprintf("savings at %s", cli.FormatPercent(a.inputs.General.SavingsRate))},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: Verdict
	var verdictStyle lipgloss.Style
	var verdict string
	switch {
	case s.Difference > 0:
		verdictStyle = lipgloss.NewStyle().Foreground(t.Green).Bold(true)
		verdict = fmt.Sprintf("Buying comes out ahead by %s DKK over %d years.",
			cli.FormatAmount(s.Difference), years)
	case s.Difference < 0:
		verdictStyle = lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
		verdict = fmt.Sprintf("Renting and investing comes out ahead by %s DKK over %d years.",
			cli.FormatAmount(-s.Difference), years)
	default:
		verdictStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
		verdict = "Both paths land on the same net worth."
	}
	b.WriteString(components.ContentCard("", verdictStyle.Render(verdict), cw))
	b.WriteString("\n")

	// Row 3: Yearly net-worth gap
	diffs := make([]float64, len(a.result.Buy))
	for i := range a.result.Buy {
		diffs[i] = a.result.Buy[i].NetEquity - a.result.Invest[i].BalanceEnd
	}
	b.WriteString(components.ContentCard(
		"Net Worth Gap by Year (Buy - Rent)",
		cli.DivergingBarChart(diffs, a.yearLabels(), components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Row 4: Total outflows side by side
	halves := components.LayoutRow(cw, 2)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var rentBody strings.Builder
	fmt.Fprintf(&rentBody, "%s %s\n",
		labelStyle.Render("Total paid:     "),
		valueStyle.Render(cli.FormatAmount(s.TotalRentOutflow)))
	fmt.Fprintf(&rentBody, "%s %s",
		labelStyle.Render("Final monthly:  "),
		valueStyle.Render(cli.FormatAmount(a.result.Rent[len(a.result.Rent)-1].MonthlyRent)))

	var buyBody strings.Builder
	fmt.Fprintf(&buyBody, "%s %s\n",
		labelStyle.Render("Total paid:     "),
		valueStyle.Render(cli.FormatAmount(s.TotalBuyOutflow)))
	fmt.Fprintf(&buyBody, "%s %s",
		labelStyle.Render("Final equity:   "),
		valueStyle.Render(cli.FormatAmount(a.result.Buy[len(a.result.Buy)-1].NetEquity)))

	b.WriteString(components.CardRow([]string{
		components.ContentCard("Renting", rentBody.String(), halves[0]),
		components.ContentCard("Buying", buyBody.String(), halves[1]),
	}))

	return b.String()
}

func (a App) yearLabels() []string {
	labels := make([]string, len(a.result.Rent))
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+1)
	}
	return labels
}
