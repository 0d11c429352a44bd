package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The chart toolkit renders yearly series as unicode bar charts with a
// scaled y-axis. Four kinds cover everything the calculator plots: plain
// bars, grouped pairs (rent vs buy), stacked cost breakdowns, and diverging
// bars around a zero axis for the net-worth difference.

// barSegment is one stacked slice of a column, bottom-up.
type barSegment struct {
	value float64
	color lipgloss.Color
}

// barColumn is one x position: a stack of segments.
type barColumn struct {
	segments []barSegment
}

func (c barColumn) total() float64 {
	var t float64
	for _, s := range c.segments {
		t += s.value
	}
	return t
}

// BarChart renders a single series as vertical bars.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	cols := make([]barColumn, len(values))
	for i, v := range values {
		cols[i] = barColumn{segments: []barSegment{{value: v, color: color}}}
	}
	return renderColumns(cols, labels, 1, width, height)
}

// GroupedBarChart renders two series side by side per x position, with a
// legend line naming each series.
func GroupedBarChart(a, b []float64, labels []string, nameA, nameB string, width, height int) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	cols := make([]barColumn, 0, 2*n)
	for i := 0; i < n; i++ {
		cols = append(cols,
			barColumn{segments: []barSegment{{value: a[i], color: ColorBlue}}},
			barColumn{segments: []barSegment{{value: b[i], color: ColorOrange}}},
		)
	}

	chart := renderColumns(cols, labels, 2, width, height)
	return chart + "\n" + legend([]string{nameA, nameB}, []lipgloss.Color{ColorBlue, ColorOrange})
}

// StackedBarChart renders one column per x position composed of the given
// component series, bottom-up in the order supplied.
func StackedBarChart(components [][]float64, names []string, labels []string, width, height int) string {
	if len(components) == 0 {
		return ""
	}
	n := len(components[0])
	colors := stackPalette(len(components))

	cols := make([]barColumn, n)
	for i := 0; i < n; i++ {
		segs := make([]barSegment, 0, len(components))
		for j, series := range components {
			if i < len(series) {
				segs = append(segs, barSegment{value: series[i], color: colors[j]})
			}
		}
		cols[i] = barColumn{segments: segs}
	}

	chart := renderColumns(cols, labels, 1, width, height)
	return chart + "\n" + legend(names, colors)
}

// DivergingBarChart renders signed values around a zero axis: positive bars
// grow upward in green, negative downward in red.
func DivergingBarChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}

	peak := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		peak = 1
	}

	halfH := height / 2
	if halfH < 2 {
		halfH = 2
	}
	ceiling := math.Ceil(peak/chartTickStep(peak)) * chartTickStep(peak)

	yLabelW := len(FormatCompact(ceiling)) + 2
	if yLabelW < 5 {
		yLabelW = 5
	}
	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	values, labels = sampleColumns(values, labels, chartW, 1)
	n := len(values)
	barW, gap := barGeometry(n, chartW, 1)
	axisLen := n*barW + (n-1)*gap

	axisStyle := lipgloss.NewStyle().Foreground(ColorTextDim)
	posStyle := lipgloss.NewStyle().Foreground(ColorGreen)
	negStyle := lipgloss.NewStyle().Foreground(ColorRed)

	var b strings.Builder

	row := func(top, bottom float64, style lipgloss.Style, label string) {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))
		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			// A bar covers this row when its magnitude reaches past the
			// row's midpoint on the matching side of the axis.
			mid := (top + bottom) / 2
			filled := (top > 0 && v >= mid) || (top < 0 && v <= mid)
			if filled {
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			} else {
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	for r := halfH; r >= 1; r-- {
		label := ""
		if r == halfH {
			label = FormatCompact(ceiling) + " "
		}
		row(ceiling*float64(r)/float64(halfH), ceiling*float64(r-1)/float64(halfH), posStyle, label)
	}

	// Zero axis
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0 ")))
	b.WriteString(axisStyle.Render("┼"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	for r := 1; r <= halfH; r++ {
		label := ""
		if r == halfH {
			label = "-" + FormatCompact(ceiling) + " "
		}
		row(-ceiling*float64(r)/float64(halfH), -ceiling*float64(r-1)/float64(halfH), negStyle, label)
	}

	b.WriteString(xAxisLabels(labels, n, barW, gap, yLabelW, axisLen))
	return strings.TrimRight(b.String(), "\n")
}

// renderColumns is the shared positive-axis renderer. Columns are laid out
// in groups of groupSize: no gap within a group, one space between groups.
func renderColumns(cols []barColumn, labels []string, groupSize, width, height int) string {
	if len(cols) == 0 {
		return ""
	}
	if height < 3 {
		height = 3
	}

	peak := 0.0
	for _, c := range cols {
		if t := c.total(); t > peak {
			peak = t
		}
	}
	if peak == 0 {
		peak = 1
	}

	// Y-axis: tick step and ceiling targeting ~height/2 intervals.
	tickStep := chartTickStep(peak)
	maxIntervals := height / 2
	if maxIntervals < 2 {
		maxIntervals = 2
	}
	for int(math.Ceil(peak/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(peak/tickStep) * tickStep
	numIntervals := int(math.Round(ceiling / tickStep))
	if numIntervals < 1 {
		numIntervals = 1
	}
	rowsPerTick := height / numIntervals
	if rowsPerTick < 2 {
		rowsPerTick = 2
	}
	chartH := rowsPerTick * numIntervals

	yLabelW := len(FormatCompact(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = FormatCompact(tickStep * float64(i))
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	cols, labels = sampleColumnGroups(cols, labels, chartW, groupSize)
	n := len(cols)
	groups := n / groupSize
	barW, gap := barGeometry(groups*groupSize, chartW, groupSize)
	axisLen := groups*groupSize*barW + (groups-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(ColorTextDim)

	var b strings.Builder

	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, c := range cols {
			if i > 0 && i%groupSize == 0 && gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}

			total := c.total()
			switch {
			case total >= rowTop:
				color := segmentAt(c, (rowTop+rowBottom)/2)
				b.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barW)))
			case total > rowBottom:
				frac := (total - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				color := c.segments[len(c.segments)-1].color
				b.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	// X axis
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")
	b.WriteString(xAxisLabels(labels, groups, barW*groupSize, gap, yLabelW, axisLen))

	return strings.TrimRight(b.String(), "\n")
}

// segmentAt returns the color of the segment covering the given height.
func segmentAt(c barColumn, at float64) lipgloss.Color {
	cum := 0.0
	for _, s := range c.segments {
		cum += s.value
		if at <= cum {
			return s.color
		}
	}
	return c.segments[len(c.segments)-1].color
}

// barGeometry picks a bar width and inter-group gap for n bars in chartW
// cells, n being a multiple of groupSize.
func barGeometry(n, chartW, groupSize int) (barW, gap int) {
	if n <= 0 {
		return 1, 1
	}
	gap = 1
	groups := n / groupSize
	if groups <= 1 {
		gap = 0
	}
	barW = (chartW - (groups-1)*gap) / n
	if barW < 1 {
		barW = 1
	}
	if barW > 6 {
		barW = 6
	}
	return barW, gap
}

// sampleColumns thins a series so it fits the chart width, always keeping
// the first and last points.
func sampleColumns(values []float64, labels []string, chartW, minColW int) ([]float64, []string) {
	n := len(values)
	maxN := chartW / (minColW + 1)
	if n <= maxN || maxN < 2 {
		return values, labels
	}
	sampled := make([]float64, maxN)
	var sampledLabels []string
	if len(labels) == n {
		sampledLabels = make([]string, maxN)
	}
	for i := range sampled {
		src := i * (n - 1) / (maxN - 1)
		sampled[i] = values[src]
		if sampledLabels != nil {
			sampledLabels[i] = labels[src]
		}
	}
	return sampled, sampledLabels
}

func sampleColumnGroups(cols []barColumn, labels []string, chartW, groupSize int) ([]barColumn, []string) {
	groups := len(cols) / groupSize
	maxGroups := chartW / (groupSize + 1)
	if groups <= maxGroups || maxGroups < 2 {
		return cols, labels
	}
	sampled := make([]barColumn, 0, maxGroups*groupSize)
	var sampledLabels []string
	if len(labels) == groups {
		sampledLabels = make([]string, maxGroups)
	}
	for i := 0; i < maxGroups; i++ {
		src := i * (groups - 1) / (maxGroups - 1)
		sampled = append(sampled, cols[src*groupSize:(src+1)*groupSize]...)
		if sampledLabels != nil {
			sampledLabels[i] = labels[src]
		}
	}
	return sampled, sampledLabels
}

// xAxisLabels writes group labels under the axis with minimum spacing.
func xAxisLabels(labels []string, groups, groupW, gap, yLabelW, axisLen int) string {
	if len(labels) != groups || groups == 0 || axisLen <= 0 {
		return ""
	}

	buf := make([]byte, axisLen)
	for i := range buf {
		buf[i] = ' '
	}

	minSpacing := 6
	step := 1
	if groups*minSpacing > axisLen {
		step = (groups*minSpacing + axisLen - 1) / axisLen
	}

	lastEnd := -1
	for i := 0; i < groups; i += step {
		pos := i * (groupW + gap)
		lbl := labels[i]
		end := pos + len(lbl)
		if pos <= lastEnd || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end + 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(ColorTextDim)
	return strings.Repeat(" ", yLabelW+1) + labelStyle.Render(strings.TrimRight(string(buf), " "))
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// stackPalette returns n distinct colors for stacked components.
func stackPalette(n int) []lipgloss.Color {
	base := []lipgloss.Color{
		ColorBlue, ColorOrange, ColorGreen, ColorRed,
		ColorPurple, ColorYellow, ColorAccent, ColorTextMuted, ColorTextDim,
	}
	colors := make([]lipgloss.Color, n)
	for i := range colors {
		colors[i] = base[i%len(base)]
	}
	return colors
}

// legend renders "■ name" entries on one line.
func legend(names []string, colors []lipgloss.Color) string {
	var parts []string
	for i, name := range names {
		sw := lipgloss.NewStyle().Foreground(colors[i]).Render("■")
		parts = append(parts, sw+" "+dimStyle.Render(name))
	}
	return "  " + strings.Join(parts, "  ")
}
