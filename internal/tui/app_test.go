package tui

import (
	"strings"
	"testing"

	"rentbuy/internal/config"
	"rentbuy/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func testApp(t *testing.T) App {
	t.Helper()

	inputs := config.DefaultConfig().Inputs()
	inputs.General.AnalysisYears = 5

	app, err := NewApp(inputs)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app
}

func sized(app App, w, h int) App {
	m, _ := app.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m.(App)
}

func TestNewApp_RejectsBadInputs(t *testing.T) {
	inputs := config.DefaultConfig().Inputs()
	inputs.General.AnalysisYears = 0

	if _, err := NewApp(inputs); err == nil {
		t.Fatal("expected error for zero-year horizon")
	}
}

func TestNewApp_BadInputsZeroValue(t *testing.T) {
	if _, err := NewApp(model.Inputs{}); err == nil {
		t.Fatal("expected error for empty inputs")
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	app := sized(testApp(t), 100, 40)

	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	app = m.(App)
	if app.activeTab != 2 {
		t.Errorf("after 'b': activeTab = %d, want 2", app.activeTab)
	}

	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyRight})
	app = m.(App)
	if app.activeTab != 3 {
		t.Errorf("after right: activeTab = %d, want 3", app.activeTab)
	}

	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyLeft})
	app = m.(App)
	if app.activeTab != 2 {
		t.Errorf("after left: activeTab = %d, want 2", app.activeTab)
	}
}

func TestUpdate_ScrollClampsAtTop(t *testing.T) {
	app := sized(testApp(t), 100, 40)

	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	app = m.(App)
	if app.scroll[app.activeTab] != 0 {
		t.Errorf("scroll went negative: %d", app.scroll[app.activeTab])
	}

	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	app = m.(App)
	if app.scroll[app.activeTab] != 1 {
		t.Errorf("scroll after j = %d, want 1", app.scroll[app.activeTab])
	}
}

func TestView_AllTabsRender(t *testing.T) {
	app := sized(testApp(t), 120, 45)

	for tab := 0; tab < 5; tab++ {
		app.activeTab = tab
		if out := app.View(); out == "" {
			t.Errorf("tab %d rendered empty", tab)
		}
	}
}

func TestView_TooNarrow(t *testing.T) {
	app := sized(testApp(t), 40, 20)

	if out := app.View(); !strings.Contains(out, "too narrow") {
		t.Error("narrow terminal should show a width warning")
	}
}

func TestView_HelpOverlay(t *testing.T) {
	app := sized(testApp(t), 100, 40)

	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	app = m.(App)
	if out := app.View(); !strings.Contains(out, "Keyboard Shortcuts") {
		t.Error("help overlay missing")
	}

	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	app = m.(App)
	if app.showHelp {
		t.Error("any key should dismiss help")
	}
}
