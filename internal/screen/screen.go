package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/ui/layout"
)

// Screen is the contract every application view implements. Screens
// render only their own content; the shared header and footer are
// composed around them.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen plus an
	// optional command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body for the given content area.
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that want custom footer
// key hints instead of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Leaver is implemented by screens that must run cleanup when
// navigation removes them, for example abandoning an active quiz.
type Leaver interface {
	Leave() tea.Cmd
}
