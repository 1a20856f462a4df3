package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Continue", Disabled: true},
		{Label: "Start"},
		{Label: "Settings", Disabled: true},
		{Label: "Quit"},
	})

	if m.Selected != 1 {
		t.Fatalf("initial selection %d, want 1", m.Selected)
	}

	m, _ = m.Update(keyPress('j'))
	if m.Selected != 3 {
		t.Errorf("after down: selection %d, want 3", m.Selected)
	}

	m, _ = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Errorf("after up: selection %d, want 1", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{
		{Label: "Start", Action: func() tea.Cmd {
			ran = true
			return nil
		}},
	})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("enter did not run the selected action")
	}
}

func TestOptionListCursorAndReveal(t *testing.T) {
	o := NewOptionList([]string{"30 km/h", "50 km/h", "70 km/h", "90 km/h"})

	o, _ = o.Update(keyPress('j'))
	o, _ = o.Update(keyPress('j'))
	if o.Cursor != 2 {
		t.Fatalf("cursor %d, want 2", o.Cursor)
	}

	o.Reveal(1, 2)
	if !o.Revealed() {
		t.Fatal("Revealed() = false after Reveal")
	}

	// Input after reveal is ignored.
	o, _ = o.Update(keyPress('k'))
	if o.Cursor != 2 {
		t.Errorf("revealed list moved cursor to %d", o.Cursor)
	}

	view := o.View(theme.Default())
	if !strings.Contains(view, "50 km/h") {
		t.Errorf("view missing option text:\n%s", view)
	}
}

func TestProgressBarClampsFill(t *testing.T) {
	skin := theme.Default()
	over := ProgressBar{Percent: 1.5, Width: 30}.View(skin)
	under := ProgressBar{Percent: -0.2, Width: 30}.View(skin)
	if over == "" || under == "" {
		t.Fatal("empty render")
	}
}
