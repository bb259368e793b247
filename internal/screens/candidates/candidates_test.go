package candidates

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edpick/internal/catalog"
	"github.com/abhisek/edpick/internal/quizfile"
	"github.com/abhisek/edpick/internal/router"
)

func TestFilterCandidates(t *testing.T) {
	list := []quizfile.Candidate{
		{ID: "emacs", Name: "GNU Emacs"},
		{ID: "vim", Name: "Vim"},
		{ID: "gvim", Name: "GVim"},
		{ID: "nano", Name: "GNU Nano"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"emacs", "vim", "gvim", "nano"}},
		{"  ", []string{"emacs", "vim", "gvim", "nano"}},
		{"VIM", []string{"vim", "gvim"}},
		{"gnu", []string{"emacs", "nano"}},
		{"ema", []string{"emacs"}},
		{"sublime", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []string
			for _, c := range filterCandidates(list, tt.query) {
				got = append(got, c.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCandidatesScreen_TypingFilters(t *testing.T) {
	s := New(catalog.Default().Candidates)
	assert.Equal(t, "8/8", s.Status())

	for _, r := range "vim" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "vim", s.filter.Value())
	assert.Equal(t, "2/8", s.Status())

	view := s.View(80, 20)
	assert.Contains(t, view, "gVim")
	assert.NotContains(t, view, "GNU Nano")
}

func TestCandidatesScreen_NoMatch(t *testing.T) {
	s := New(catalog.Default().Candidates)
	s.filter.SetValue("zzz")
	assert.Contains(t, s.View(80, 20), "No candidate matches.")
}

func TestCandidatesScreen_EscPops(t *testing.T) {
	s := New(catalog.Default().Candidates)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
