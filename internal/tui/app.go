// Package tui provides the interactive Bubble Tea dashboard for rentbuy.
package tui

import (
	"fmt"
	"strings"

	"rentbuy/internal/engine"
	"rentbuy/internal/model"
	"rentbuy/internal/tui/components"
	"rentbuy/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model. All numbers are computed up front; the
// model only navigates and renders.
type App struct {
	inputs model.Inputs
	result *model.Result

	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab vertical scroll offsets
	scroll [5]int
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 180

	scrollOverhead    = 4 // tab bar + status bar height for half-page calc
	minHalfPageScroll = 1
	minContentHeight  = 5
)

// NewApp computes the comparison and returns the dashboard model.
func NewApp(inputs model.Inputs) (App, error) {
	result, err := engine.Run(inputs)
	if err != nil {
		return App{}, err
	}
	return App{inputs: inputs, result: result}, nil
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" || key == "q" {
			return a, tea.Quit
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "l", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "j", "down":
			a.scroll[a.activeTab]++
		case "k", "up":
			if a.scroll[a.activeTab] > 0 {
				a.scroll[a.activeTab]--
			}
		case "g":
			a.scroll[a.activeTab] = 0
		case "ctrl+d":
			a.scroll[a.activeTab] += a.halfPage()
		case "ctrl+u":
			a.scroll[a.activeTab] -= a.halfPage()
			if a.scroll[a.activeTab] < 0 {
				a.scroll[a.activeTab] = 0
			}
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	return a, nil
}

func (a App) halfPage() int {
	half := (a.height - scrollOverhead) / 2
	if half < minHalfPageScroll {
		half = minHalfPageScroll
	}
	return half
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  rentbuy needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o r b i c", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Scroll"},
		{"^d ^u", "Half-page scroll"},
		{"g", "Back to top"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.inputs.General.AnalysisYears)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderRentTab(cw)
	case 2:
		content = a.renderBuyTab(cw)
	case 3:
		content = a.renderInvestTab(cw)
	case 4:
		content = a.renderChartsTab(cw)
	}

	// Apply scroll, then truncate + pad to exactly contentH lines
	content = dropLines(content, a.scroll[a.activeTab])
	content = padHeight(truncateHeight(content, contentH), contentH)

	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func dropLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if n >= len(lines) {
		return ""
	}
	return strings.Join(lines[n:], "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}
