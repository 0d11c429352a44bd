package cmd

import (
	"fmt"

	"rentbuy/internal/tui"
	"rentbuy/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	themeName := cfg.Appearance.Theme
	if flagTheme != "" {
		themeName = flagTheme
	}
	theme.SetActive(themeName)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	inputs := cfg.Inputs()
	if flagYears > 0 {
		inputs.General.AnalysisYears = flagYears
	}

	app, err := tui.NewApp(inputs)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
