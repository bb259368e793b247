package candidates

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edpick/internal/quizfile"
	"github.com/abhisek/edpick/internal/router"
	"github.com/abhisek/edpick/internal/screen"
	"github.com/abhisek/edpick/internal/ui/components"
	"github.com/abhisek/edpick/internal/ui/layout"
	"github.com/abhisek/edpick/internal/ui/theme"
)

// CandidatesScreen lists every candidate of the loaded questionnaire with a
// live filter.
type CandidatesScreen struct {
	all    []quizfile.Candidate
	filter components.TextInput
	offset int
}

var _ screen.Screen = (*CandidatesScreen)(nil)
var _ screen.KeyHintProvider = (*CandidatesScreen)(nil)
var _ screen.StatusProvider = (*CandidatesScreen)(nil)

// New creates a CandidatesScreen over the given candidates.
func New(list []quizfile.Candidate) *CandidatesScreen {
	return &CandidatesScreen{
		all:    list,
		filter: components.NewTextInput("type to filter", 40),
	}
}

func (c *CandidatesScreen) Init() tea.Cmd {
	return c.filter.Init()
}

func (c *CandidatesScreen) Title() string {
	return "Candidates"
}

func (c *CandidatesScreen) Status() string {
	return fmt.Sprintf("%d/%d", len(c.visible()), len(c.all))
}

func (c *CandidatesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (c *CandidatesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return c, router.Pop()
		case "up":
			if c.offset > 0 {
				c.offset--
			}
			return c, nil
		case "down":
			if c.offset < len(c.visible())-1 {
				c.offset++
			}
			return c, nil
		}
	}

	before := c.filter.Value()
	var cmd tea.Cmd
	c.filter, cmd = c.filter.Update(msg)
	if c.filter.Value() != before {
		c.offset = 0
	}
	return c, cmd
}

func (c *CandidatesScreen) visible() []quizfile.Candidate {
	return filterCandidates(c.all, c.filter.Value())
}

func (c *CandidatesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(layout.Center(width, c.filter.View()))
	b.WriteString("\n\n")

	list := c.visible()
	if len(list) == 0 {
		b.WriteString(layout.Center(width, theme.Hint.Render("No candidate matches.")))
		return b.String()
	}

	rows := max(height-4, 1)
	end := min(c.offset+rows, len(list))
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	idStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var lines []string
	for _, cand := range list[c.offset:end] {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			nameStyle.Render(fmt.Sprintf("%-20s", cand.Name)),
			idStyle.Render(fmt.Sprintf("%-12s", cand.ID)),
			theme.Link.Render(cand.Link)))
	}
	b.WriteString(layout.Center(width, strings.Join(lines, "\n")))
	return b.String()
}

// filterCandidates keeps the candidates whose name or id contains query,
// ignoring case. An empty query keeps everything.
func filterCandidates(list []quizfile.Candidate, query string) []quizfile.Candidate {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}
	var out []quizfile.Candidate
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.ID), query) {
			out = append(out, c)
		}
	}
	return out
}
