package cli

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChartTickStep(t *testing.T) {
	cases := []struct {
		max  float64
		want float64
	}{
		{100, 20},
		{1000, 200},
		{500000, 100000},
		{7, 1},
		{0, 1},
	}
	for _, c := range cases {
		if got := chartTickStep(c.max); got != c.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", c.max, got, c.want)
		}
	}
}

func TestBarChart_RendersAxisAndBars(t *testing.T) {
	out := BarChart([]float64{10, 20, 30}, []string{"1", "2", "3"}, ColorBlue, 40, 8)

	if out == "" {
		t.Fatal("empty chart")
	}
	if !strings.Contains(out, "█") {
		t.Error("chart has no full bars")
	}
	if !strings.Contains(out, "└") {
		t.Error("chart has no x axis")
	}
}

func TestBarChart_SamplesWideSeries(t *testing.T) {
	values := make([]float64, 200)
	labels := make([]string, 200)
	for i := range values {
		values[i] = float64(i)
		labels[i] = "y"
	}

	out := BarChart(values, labels, ColorBlue, 60, 8)
	for _, line := range strings.Split(out, "\n") {
		// Strip ANSI codes and count runes, not bytes: block characters are
		// multi-byte but occupy a single cell.
		if cells := utf8.RuneCountInString(stripANSI(line)); cells > 60 {
			t.Fatalf("line wider than chart budget: %d cells", cells)
		}
	}
}

func TestGroupedBarChart_IncludesLegend(t *testing.T) {
	out := GroupedBarChart(
		[]float64{1, 2}, []float64{2, 1}, []string{"1", "2"},
		"Rent", "Buy", 40, 6)

	if !strings.Contains(out, "Rent") || !strings.Contains(out, "Buy") {
		t.Error("legend missing series names")
	}
}

func TestStackedBarChart_IncludesLegend(t *testing.T) {
	out := StackedBarChart(
		[][]float64{{1, 2}, {3, 4}},
		[]string{"Principal", "Interest"},
		[]string{"1", "2"}, 40, 6)

	if !strings.Contains(out, "Principal") || !strings.Contains(out, "Interest") {
		t.Error("legend missing component names")
	}
}

func TestDivergingBarChart_HasZeroAxis(t *testing.T) {
	out := DivergingBarChart([]float64{-5, 3, 8}, []string{"1", "2", "3"}, 40, 8)

	if !strings.Contains(out, "┼") {
		t.Error("diverging chart has no zero axis")
	}
}

// stripANSI removes escape sequences so tests can measure printable width.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if r == 'm' {
				inEsc = false
			}
		case r == '\x1b':
			inEsc = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
