package home

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edpick/internal/quizfile"
	"github.com/abhisek/edpick/internal/router"
	"github.com/abhisek/edpick/internal/screen"
	"github.com/abhisek/edpick/internal/screens/candidates"
	"github.com/abhisek/edpick/internal/screens/quiz"
	"github.com/abhisek/edpick/internal/ui/components"
)

// HomeScreen is the root screen of the application.
type HomeScreen struct {
	def        quizfile.Definition
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen for the given questionnaire.
func New(def quizfile.Definition, log *slog.Logger) *HomeScreen {
	menuLabels := []string{"START QUIZ", "CANDIDATES", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return router.Push(quiz.New(def, log))
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return router.Push(candidates.New(def.Candidates))
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		def:        def,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes header and footer; add them back to judge the terminal.
	compact := height+8 < 30 || width < 80
	cw := contentWidth(width)

	sections := []string{
		renderBanner(cw, compact),
		renderSummary(h.def.Title, len(h.def.Candidates), len(h.def.Questions), cw),
	}
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
