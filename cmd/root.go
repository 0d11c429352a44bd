// Package cmd implements the rentbuy CLI commands.
package cmd

import (
	"os"

	"rentbuy/internal/config"
	"rentbuy/internal/engine"
	"rentbuy/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagYears  int
	flagTheme  string
)

var rootCmd = &cobra.Command{
	Use:   "rentbuy",
	Short: "Rent vs buy financial calculator",
	Long: "Project the year-by-year cost and net worth of renting versus buying a home\n" +
		"under your own economic assumptions, and see which comes out ahead.",
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file path (default: XDG config dir)")
	rootCmd.PersistentFlags().IntVarP(&flagYears, "years", "y", 0, "Override the analysis horizon in years")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Override the TUI color theme")
}

// loadConfig is the shared config loading path used by all commands.
func loadConfig() (config.Config, error) {
	if flagConfig != "" {
		return config.LoadFrom(flagConfig)
	}
	return config.Load()
}

// loadInputs builds the engine inputs from config plus flag overrides.
func loadInputs() (model.Inputs, error) {
	cfg, err := loadConfig()
	if err != nil {
		return model.Inputs{}, err
	}

	inputs := cfg.Inputs()
	if flagYears > 0 {
		inputs.General.AnalysisYears = flagYears
	}
	return inputs, nil
}

// runEngine loads inputs and executes a full comparison run.
func runEngine() (model.Inputs, *model.Result, error) {
	inputs, err := loadInputs()
	if err != nil {
		return model.Inputs{}, nil, err
	}
	result, err := engine.Run(inputs)
	if err != nil {
		return model.Inputs{}, nil, err
	}
	return inputs, result, nil
}
