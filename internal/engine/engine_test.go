package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoCandidates() []CandidateDef {
	return []CandidateDef{
		{ID: "a", Name: "Alpha", Link: "https://a.example"},
		{ID: "b", Name: "Beta", Link: "https://b.example"},
	}
}

func terminalOrGUI() Question {
	return Question{
		Prompt:             "Terminal or GUI",
		BenefitWeight:      1,
		DisadvantageWeight: 1,
		Options: []Option{
			{Label: "Terminal", Benefits: []string{"a"}, Disadvantages: []string{"b"}},
			{Label: "GUI", Benefits: []string{"b"}, Disadvantages: []string{"a"}},
		},
	}
}

func scoreOf(t *testing.T, s *Session, id string) Candidate {
	t.Helper()
	for _, c := range s.Candidates() {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("candidate %q not found", id)
	return Candidate{}
}

func TestTerminalScenario(t *testing.T) {
	s, err := Start(twoCandidates(), []Question{terminalOrGUI()})
	require.NoError(t, err)

	require.NoError(t, s.SelectOption(0))

	assert.Equal(t, 1.0, scoreOf(t, s, "a").Score)
	assert.Equal(t, -1.0, scoreOf(t, s, "b").Score)

	res, err := ComputeWinner(s)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "a", res.Candidate.ID)
}

func TestScoreIsSumOfSignedWeights(t *testing.T) {
	defs := []CandidateDef{{ID: "x"}, {ID: "y"}, {ID: "z"}}
	questions := []Question{
		{
			Prompt: "q1", BenefitWeight: 2.5, DisadvantageWeight: 0.5,
			Options: []Option{{Label: "o", Benefits: []string{"x"}, Disadvantages: []string{"y"}}},
		},
		{
			Prompt: "q2", BenefitWeight: 1, DisadvantageWeight: 3,
			Options: []Option{
				{Label: "skip"},
				{Label: "o", Benefits: []string{"y"}, Disadvantages: []string{"x"}, Eliminates: []string{"z"}},
			},
		},
		{
			Prompt: "q3", BenefitWeight: 4, DisadvantageWeight: 1,
			Options: []Option{{Label: "o", Benefits: []string{"x", "z"}}},
		},
	}
	s, err := Start(defs, questions)
	require.NoError(t, err)

	for _, choice := range []int{0, 1, 0} {
		require.NoError(t, s.SelectOption(choice))
	}

	assert.InDelta(t, 2.5-3+4, scoreOf(t, s, "x").Score, 1e-9)
	assert.InDelta(t, -0.5+1, scoreOf(t, s, "y").Score, 1e-9)
	// Elimination does not touch the score, and later benefits still apply.
	z := scoreOf(t, s, "z")
	assert.InDelta(t, 4, z.Score, 1e-9)
	assert.False(t, z.Eligible)
}

func TestEliminationKeepsScoreFromSameQuestion(t *testing.T) {
	q := Question{
		Prompt: "q", BenefitWeight: 5, DisadvantageWeight: 1,
		Options: []Option{{Label: "o", Benefits: []string{"a"}, Eliminates: []string{"b"}}},
	}
	q2 := Question{
		Prompt: "q2", BenefitWeight: 1, DisadvantageWeight: 1,
		Options: []Option{{Label: "o", Benefits: []string{"b"}, Eliminates: []string{"a"}}},
	}
	s, err := Start(twoCandidates(), []Question{q, q2})
	require.NoError(t, err)
	require.NoError(t, s.SelectOption(0))
	require.NoError(t, s.SelectOption(0))

	a := scoreOf(t, s, "a")
	assert.Equal(t, 5.0, a.Score)
	assert.False(t, a.Eligible)

	res, err := ComputeWinner(s)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, NoResultName, res.Candidate.Name)
	assert.Equal(t, NoResultLink, res.Candidate.Link)
}

func TestWinnerSkipsEliminatedLeader(t *testing.T) {
	defs := []CandidateDef{{ID: "lead"}, {ID: "second"}, {ID: "third"}}
	questions := []Question{
		{
			Prompt: "boost", BenefitWeight: 3, DisadvantageWeight: 1,
			Options: []Option{{Label: "o", Benefits: []string{"lead"}}},
		},
		{
			Prompt: "drop", BenefitWeight: 1, DisadvantageWeight: 1,
			Options: []Option{{Label: "o", Benefits: []string{"second"}, Eliminates: []string{"lead"}}},
		},
	}
	s, err := Start(defs, questions)
	require.NoError(t, err)
	require.NoError(t, s.SelectOption(0))
	require.NoError(t, s.SelectOption(0))

	res, err := ComputeWinner(s)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "second", res.Candidate.ID)
	assert.True(t, res.Candidate.Eligible)
}

func TestTieBreakFirstRegistered(t *testing.T) {
	defs := []CandidateDef{{ID: "late"}, {ID: "early"}, {ID: "other"}}
	q := Question{
		Prompt: "tie", BenefitWeight: 1, DisadvantageWeight: 1,
		Options: []Option{{Label: "o", Benefits: []string{"early", "late"}}},
	}

	for i := 0; i < 20; i++ {
		s, err := Start(defs, []Question{q})
		require.NoError(t, err)
		require.NoError(t, s.SelectOption(0))

		res, err := ComputeWinner(s)
		require.NoError(t, err)
		assert.Equal(t, "late", res.Candidate.ID, "run %d", i)

		ranked, err := Rank(s)
		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.Equal(t, []string{"late", "early", "other"},
			[]string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
	}
}

func TestNegativeScoresStillWin(t *testing.T) {
	q := Question{
		Prompt: "q", BenefitWeight: 1, DisadvantageWeight: 2,
		Options: []Option{{Label: "o", Disadvantages: []string{"a", "b"}}},
	}
	s, err := Start(twoCandidates(), []Question{q})
	require.NoError(t, err)
	require.NoError(t, s.SelectOption(0))

	res, err := ComputeWinner(s)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, "a", res.Candidate.ID)
	assert.Equal(t, -2.0, res.Candidate.Score)
}

func TestSessionCompletion(t *testing.T) {
	questions := []Question{terminalOrGUI(), terminalOrGUI(), terminalOrGUI()}
	s, err := Start(twoCandidates(), questions)
	require.NoError(t, err)

	assert.Equal(t, -1, s.Index())
	p := s.CurrentPrompt()
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, []string{"Terminal", "GUI"}, p.Options)
	assert.Equal(t, -1, s.Index(), "CurrentPrompt must not mutate")

	_, err = ComputeWinner(s)
	assert.ErrorIs(t, err, ErrSessionNotFinished)
	_, err = Rank(s)
	assert.ErrorIs(t, err, ErrSessionNotFinished)

	for i := 0; i < len(questions); i++ {
		assert.False(t, s.CurrentPrompt().Done)
		require.NoError(t, s.SelectOption(i%2))
	}

	assert.True(t, s.Finished())
	assert.True(t, s.CurrentPrompt().Done)
	assert.ErrorIs(t, s.SelectOption(0), ErrSessionFinished)

	answers := s.Answers()
	require.Len(t, answers, 3)
	assert.Equal(t, "Terminal", answers[0].Label)
	assert.Equal(t, "GUI", answers[1].Label)
	assert.Equal(t, 2, answers[2].Question)
}

func TestBegin(t *testing.T) {
	s, err := Start(twoCandidates(), []Question{terminalOrGUI()})
	require.NoError(t, err)

	s.Begin()
	assert.Equal(t, 0, s.Index())
	s.Begin()
	assert.Equal(t, 0, s.Index())
}

func TestInvalidOptionLeavesStateUnchanged(t *testing.T) {
	s, err := Start(twoCandidates(), []Question{terminalOrGUI(), terminalOrGUI()})
	require.NoError(t, err)
	require.NoError(t, s.SelectOption(0))

	before := s.Candidates()
	for _, idx := range []int{2, 5, -1} {
		err := s.SelectOption(idx)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidOption)

		var optErr *InvalidOptionError
		require.True(t, errors.As(err, &optErr))
		assert.Equal(t, idx, optErr.Index)
		assert.Equal(t, 2, optErr.Count)
	}

	assert.Equal(t, before, s.Candidates())
	assert.Equal(t, 1, s.Index())
	assert.Len(t, s.Answers(), 1)
}

func TestStartRejectsUnknownCandidate(t *testing.T) {
	q := terminalOrGUI()
	q.Options[1].Eliminates = []string{"ghost"}

	s, err := Start(twoCandidates(), []Question{q})
	require.Error(t, err)
	assert.Nil(t, s)

	var unk *UnknownCandidateError
	require.True(t, errors.As(err, &unk))
	assert.Equal(t, "ghost", unk.ID)
	assert.Equal(t, 0, unk.Question)
	assert.Equal(t, 1, unk.Option)
	assert.Contains(t, err.Error(), "question 1 option 2")
}

func TestStartRejectsMalformedDefinitions(t *testing.T) {
	tests := []struct {
		name       string
		candidates []CandidateDef
		questions  []Question
		wantIssue  string
	}{
		{
			name:       "duplicate candidate",
			candidates: []CandidateDef{{ID: "a"}, {ID: "a"}},
			questions:  []Question{{Prompt: "p", BenefitWeight: 1, DisadvantageWeight: 1, Options: []Option{{Label: "o"}}}},
			wantIssue:  "duplicate id",
		},
		{
			name:       "empty candidate id",
			candidates: []CandidateDef{{ID: " "}},
			questions:  []Question{{Prompt: "p", BenefitWeight: 1, DisadvantageWeight: 1, Options: []Option{{Label: "o"}}}},
			wantIssue:  "empty id",
		},
		{
			name:       "no questions",
			candidates: twoCandidates(),
			wantIssue:  "at least one question",
		},
		{
			name:       "no options",
			candidates: twoCandidates(),
			questions:  []Question{{Prompt: "p", BenefitWeight: 1, DisadvantageWeight: 1}},
			wantIssue:  "no options",
		},
		{
			name:       "zero weight",
			candidates: twoCandidates(),
			questions:  []Question{{Prompt: "p", DisadvantageWeight: 1, Options: []Option{{Label: "o"}}}},
			wantIssue:  "benefit weight must be positive",
		},
		{
			name:       "negative disadvantage weight",
			candidates: twoCandidates(),
			questions:  []Question{{Prompt: "p", BenefitWeight: 1, DisadvantageWeight: -1, Options: []Option{{Label: "o"}}}},
			wantIssue:  "disadvantage weight must be positive",
		},
		{
			name:       "empty label",
			candidates: twoCandidates(),
			questions:  []Question{{Prompt: "p", BenefitWeight: 1, DisadvantageWeight: 1, Options: []Option{{Label: ""}}}},
			wantIssue:  "empty label",
		},
		{
			name:       "id in two sets",
			candidates: twoCandidates(),
			questions: []Question{{Prompt: "p", BenefitWeight: 1, DisadvantageWeight: 1, Options: []Option{
				{Label: "o", Benefits: []string{"a"}, Eliminates: []string{"a"}},
			}}},
			wantIssue: "both benefits and eliminates",
		},
		{
			name:       "id repeated in one set",
			candidates: twoCandidates(),
			questions: []Question{{Prompt: "p", BenefitWeight: 1, DisadvantageWeight: 1, Options: []Option{
				{Label: "o", Benefits: []string{"a", "a"}},
			}}},
			wantIssue: `candidate "a" listed twice in benefits`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Start(tt.candidates, tt.questions)
			require.Error(t, err)

			var defErr *DefinitionError
			require.True(t, errors.As(err, &defErr), "got %T: %v", err, err)
			assert.Contains(t, err.Error(), tt.wantIssue)
		})
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	defs := twoCandidates()
	questions := []Question{terminalOrGUI()}

	s1, err := Start(defs, questions)
	require.NoError(t, err)
	s2, err := Start(defs, questions)
	require.NoError(t, err)

	// Mutating caller-owned inputs after Start must not leak into sessions.
	questions[0].Options[0].Benefits[0] = "b"
	defs[0].Name = "changed"

	require.NoError(t, s1.SelectOption(0))
	assert.Equal(t, 1.0, scoreOf(t, s1, "a").Score)
	assert.Equal(t, "Alpha", scoreOf(t, s1, "a").Name)
	assert.Equal(t, 0.0, scoreOf(t, s2, "a").Score)
	assert.Equal(t, -1, s2.Index())
}
