package engine

import (
	"cmp"
	"slices"
)

// Sentinel values rendered when every candidate was eliminated.
const (
	NoResultName = "Unknown! Try again!"
	NoResultLink = "#"
)

// Result is the outcome of a finished session. When Found is false the
// Candidate holds the "no result" sentinel so it can be rendered like a
// real recommendation.
type Result struct {
	Candidate Candidate
	Found     bool
}

// NoResult returns the result used when no candidate remains eligible.
func NoResult() Result {
	return Result{
		Candidate: Candidate{Name: NoResultName, Link: NoResultLink},
	}
}

// ComputeWinner returns the eligible candidate with the highest score.
// Among equal scores the first registered candidate wins.
func ComputeWinner(s *Session) (Result, error) {
	if !s.Finished() {
		return Result{}, ErrSessionNotFinished
	}

	var best Candidate
	found := false
	for c := range s.registry.Eligible() {
		if !found || c.Score > best.Score {
			best = c
			found = true
		}
	}

	if !found {
		return NoResult(), nil
	}
	return Result{Candidate: best, Found: true}, nil
}

// Rank returns every eligible candidate ordered by descending score, ties
// kept in registration order. The first entry, if any, is the winner.
func Rank(s *Session) ([]Candidate, error) {
	if !s.Finished() {
		return nil, ErrSessionNotFinished
	}

	var ranked []Candidate
	for c := range s.registry.Eligible() {
		ranked = append(ranked, c)
	}
	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked, nil
}
