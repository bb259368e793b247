package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	m := NewMultiChoice("Terminal or GUI?", []string{"Terminal", "GUI", "Either One"})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(key('j'))
	m, _ = m.Update(key('j')) // clamps at the last option
	if m.Selected != 2 {
		t.Fatalf("Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(key('k'))

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.Submitted || m.Chosen != 1 {
		t.Fatalf("expected submission of option 1, got submitted=%v chosen=%d", m.Submitted, m.Chosen)
	}

	// Further input is ignored until Reset.
	m, _ = m.Update(key('3'))
	if m.Chosen != 1 {
		t.Errorf("Chosen changed after submit: %d", m.Chosen)
	}
	m.Reset()
	if m.Submitted || m.Chosen != -1 {
		t.Errorf("Reset did not clear submission: %+v", m)
	}
}

func TestMultiChoice_DigitsReportOutOfRange(t *testing.T) {
	m := NewMultiChoice("q", []string{"a", "b"})

	m, _ = m.Update(key('9'))
	if !m.Submitted || m.Chosen != 8 {
		t.Errorf("digit 9 should submit index 8, got submitted=%v chosen=%d", m.Submitted, m.Chosen)
	}
}

func TestMultiChoice_View(t *testing.T) {
	m := NewMultiChoice("Pick one", []string{"Alpha", "Beta"})
	view := m.View()
	for _, want := range []string{"Pick one", "1)  Alpha", "2)  Beta", "▸"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestMenu_WrapsAndRunsAction(t *testing.T) {
	ran := ""
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd {
			ran = label
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("START"), item("LIST"), item("QUIT")})

	m, _ = m.Update(key('k'))
	if m.Selected != 2 {
		t.Fatalf("up from first should wrap to last, got %d", m.Selected)
	}
	m, _ = m.Update(key('j'))
	if m.Selected != 0 {
		t.Fatalf("down from last should wrap to first, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ran != "START" {
		t.Errorf("expected START action, got %q", ran)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 6, 0},
		{3, 6, 0.5},
		{6, 6, 1},
		{7, 6, 1},
		{1, 0, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar(tt.done, tt.total, 40)
		if got := p.Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}

	if view := NewProgressBar(2, 6, 40).View(); !strings.Contains(view, "2/6") {
		t.Errorf("view missing counter: %q", view)
	}
}
