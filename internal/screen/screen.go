package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edpick/internal/ui/layout"
)

// Screen is one page of the TUI managed by the router stack.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen show a short status on the right of the
// header, such as quiz progress.
type StatusProvider interface {
	Status() string
}
