package components

import (
	"strings"
	"testing"

	"rentbuy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7} {
		widths := LayoutRow(100, n)
		if len(widths) != n {
			t.Fatalf("LayoutRow(100, %d) returned %d widths", n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != 100 {
			t.Errorf("LayoutRow(100, %d) sums to %d", n, sum)
		}
	}
	if LayoutRow(100, 0) != nil {
		t.Error("LayoutRow with zero columns should return nil")
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("joined height should match tallest card: got %d, want %d", got, tallLines)
	}
}

func TestMetricCardRowRendersAllLabels(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := MetricCardRow([]Metric{
		{Label: "Buy Net Worth", Value: "4,000,000"},
		{Label: "Rent Net Worth", Value: "3,500,000", Note: "invested"},
	}, 80)

	for _, want := range []string{"Buy Net Worth", "Rent Net Worth", "invested"} {
		if !strings.Contains(out, want) {
			t.Errorf("metric row missing %q", want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('b'); idx < 0 || Tabs[idx].Name != "Buy" {
		t.Errorf("TabIdxByKey('b') = %d", idx)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", idx)
	}
}
