package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edpick/internal/engine"
	"github.com/abhisek/edpick/internal/router"
	"github.com/abhisek/edpick/internal/screen"
	"github.com/abhisek/edpick/internal/ui/layout"
	"github.com/abhisek/edpick/internal/ui/theme"
)

// maxRunnersUp limits the ranking shown under the winner.
const maxRunnersUp = 5

// Outcome is everything the result screen shows about a finished session.
type Outcome struct {
	SessionID string
	Result    engine.Result
	Ranking   []engine.Candidate
	Answers   []engine.Answer
}

// NewOutcome collects the outcome of a finished session.
func NewOutcome(sessionID string, s *engine.Session) (Outcome, error) {
	res, err := engine.ComputeWinner(s)
	if err != nil {
		return Outcome{}, err
	}
	ranking, err := engine.Rank(s)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		SessionID: sessionID,
		Result:    res,
		Ranking:   ranking,
		Answers:   s.Answers(),
	}, nil
}

// ResultScreen shows the recommendation.
type ResultScreen struct {
	outcome Outcome
	restart func() screen.Screen
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. restart builds a fresh quiz screen when the
// user asks to try again; it may be nil.
func New(outcome Outcome, restart func() screen.Screen) *ResultScreen {
	return &ResultScreen{outcome: outcome, restart: restart}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Your Editor"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	if r.restart != nil {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Try again"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "enter", "esc", "q":
		return r, router.Pop()
	case "r":
		if r.restart != nil {
			return r, router.Replace(r.restart())
		}
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	var b strings.Builder
	res := r.outcome.Result

	heading := "We recommend"
	if !res.Found {
		heading = "Every candidate was ruled out"
	}
	b.WriteString(layout.Center(width, theme.Hint.Render(heading)))
	b.WriteString("\n\n")

	card := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(res.Candidate.Name),
		theme.Link.Render(res.Candidate.Link),
	)
	b.WriteString(layout.Center(width, theme.WinnerCard.Render(card)))
	b.WriteString("\n\n")

	if res.Found && len(r.outcome.Ranking) > 1 {
		b.WriteString(layout.Center(width, theme.Hint.Render("Runners-up")))
		b.WriteString("\n")
		runners := r.outcome.Ranking[1:]
		if len(runners) > maxRunnersUp {
			runners = runners[:maxRunnersUp]
		}
		for i, c := range runners {
			line := fmt.Sprintf("%d. %-24s %s", i+2, c.Name, formatScore(c.Score))
			b.WriteString(layout.Center(width, theme.Body.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(r.outcome.Answers) > 0 && height > 16 {
		b.WriteString(layout.Center(width, theme.Hint.Render("Your answers")))
		b.WriteString("\n")
		for _, a := range r.outcome.Answers {
			line := fmt.Sprintf("%s  %s", a.Prompt, lipgloss.NewStyle().Foreground(theme.Accent).Render(a.Label))
			b.WriteString(layout.Center(width, theme.Body.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// formatScore prints whole scores without decimals.
func formatScore(score float64) string {
	if score == float64(int64(score)) {
		return fmt.Sprintf("%+d", int64(score))
	}
	return fmt.Sprintf("%+.2f", score)
}
