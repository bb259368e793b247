package quiz

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/edpick/internal/engine"
	"github.com/abhisek/edpick/internal/quizfile"
	"github.com/abhisek/edpick/internal/router"
	"github.com/abhisek/edpick/internal/screen"
	"github.com/abhisek/edpick/internal/screens/result"
	"github.com/abhisek/edpick/internal/ui/components"
	"github.com/abhisek/edpick/internal/ui/layout"
	"github.com/abhisek/edpick/internal/ui/theme"
)

// QuizScreen walks the user through one questionnaire session.
type QuizScreen struct {
	def       quizfile.Definition
	log       *slog.Logger
	sessionID string
	session   *engine.Session
	choice    components.MultiChoice
	notice    string
	fatal     string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New starts a fresh session over def. Every call gets its own session.
func New(def quizfile.Definition, log *slog.Logger) *QuizScreen {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	q := &QuizScreen{
		def:       def,
		sessionID: uuid.New().String(),
	}
	q.log = log.With("session", q.sessionID)

	s, err := def.NewSession()
	if err != nil {
		q.fatal = err.Error()
		q.log.Error("start session", "err", err)
		return q
	}
	s.Begin()
	q.session = s
	q.loadPrompt()
	q.log.Info("session started", "questions", s.Len())
	return q
}

// SessionID returns the id used to tag this session's log records.
func (q *QuizScreen) SessionID() string {
	return q.sessionID
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	if q.def.Title != "" {
		return q.def.Title
	}
	return "Questionnaire"
}

func (q *QuizScreen) Status() string {
	if q.session == nil {
		return ""
	}
	p := q.session.CurrentPrompt()
	if p.Done {
		return fmt.Sprintf("%d/%d", p.Total, p.Total)
	}
	return fmt.Sprintf("Question %d/%d", p.Number, p.Total)
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Choose"},
		{Key: "1-9", Description: "Pick"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if q.session == nil {
		return q, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		return q, nil
	}

	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(msg)
	if !q.choice.Submitted {
		return q, cmd
	}
	return q.answer(q.choice.Chosen)
}

// answer applies the chosen option and either shows the next question or
// hands over to the result screen.
func (q *QuizScreen) answer(index int) (screen.Screen, tea.Cmd) {
	prompt := q.session.CurrentPrompt()
	err := q.session.SelectOption(index)

	var optErr *engine.InvalidOptionError
	switch {
	case errors.As(err, &optErr):
		q.notice = fmt.Sprintf("There is no option %d. Pick 1-%d.", optErr.Index+1, optErr.Count)
		q.choice.Reset()
		q.log.Debug("rejected option", "question", prompt.Number, "index", index)
		return q, nil
	case err != nil:
		q.fatal = err.Error()
		q.log.Error("select option", "err", err)
		return q, nil
	}

	q.log.Debug("answered", "question", prompt.Number, "option", prompt.Options[index])
	q.notice = ""

	if !q.session.Finished() {
		q.loadPrompt()
		return q, nil
	}

	outcome, err := result.NewOutcome(q.sessionID, q.session)
	if err != nil {
		q.fatal = err.Error()
		q.log.Error("compute result", "err", err)
		return q, nil
	}
	q.log.Info("session finished",
		"winner", outcome.Result.Candidate.Name,
		"found", outcome.Result.Found,
		"score", outcome.Result.Candidate.Score)

	def, log := q.def, q.log
	restart := func() screen.Screen { return New(def, log) }
	return q, router.Replace(result.New(outcome, restart))
}

func (q *QuizScreen) loadPrompt() {
	p := q.session.CurrentPrompt()
	q.choice = components.NewMultiChoice(p.Text, p.Options)
}

func (q *QuizScreen) View(width, height int) string {
	if q.fatal != "" {
		return layout.Center(width, theme.Warning.Render("Cannot continue: "+q.fatal))
	}

	var b strings.Builder
	p := q.session.CurrentPrompt()
	done := p.Number - 1
	if p.Done {
		done = p.Total
	}
	barWidth := min(width-8, 60)
	b.WriteString(layout.Center(width, components.NewProgressBar(done, p.Total, barWidth).View()))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(width, theme.Card.Render(q.choice.View())))

	if q.notice != "" {
		b.WriteString("\n")
		b.WriteString(layout.Center(width, theme.Warning.Render(q.notice)))
	}
	return b.String()
}
