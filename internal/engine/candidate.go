package engine

import (
	"fmt"
	"iter"
	"strings"
)

// CandidateDef is the static definition of a recommendable candidate.
type CandidateDef struct {
	ID   string
	Name string
	Link string
}

// Candidate is a candidate's runtime state within one session.
type Candidate struct {
	ID       string
	Name     string
	Link     string
	Score    float64
	Eligible bool
}

// Registry holds candidates in registration order with an id index.
// A Registry belongs to exactly one session.
type Registry struct {
	order []*Candidate
	byID  map[string]*Candidate
}

// NewRegistry registers defs in order. Every candidate starts at score 0
// and eligible.
func NewRegistry(defs []CandidateDef) (*Registry, error) {
	r := &Registry{
		order: make([]*Candidate, 0, len(defs)),
		byID:  make(map[string]*Candidate, len(defs)),
	}

	var issues []string
	for i, d := range defs {
		id := d.ID
		if strings.TrimSpace(id) == "" {
			issues = append(issues, fmt.Sprintf("candidate %d: empty id", i+1))
			continue
		}
		if _, dup := r.byID[id]; dup {
			issues = append(issues, fmt.Sprintf("candidate %d: duplicate id %q", i+1, id))
			continue
		}
		c := &Candidate{ID: id, Name: d.Name, Link: d.Link, Eligible: true}
		r.order = append(r.order, c)
		r.byID[id] = c
	}

	if len(issues) > 0 {
		return nil, &DefinitionError{Issues: issues}
	}
	return r, nil
}

func (r *Registry) lookup(id string) (*Candidate, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, &UnknownCandidateError{ID: id, Question: -1, Option: -1}
	}
	return c, nil
}

// ApplyBenefit adds weight to the candidate's score.
func (r *Registry) ApplyBenefit(id string, weight float64) error {
	c, err := r.lookup(id)
	if err != nil {
		return err
	}
	c.Score += weight
	return nil
}

// ApplyDisadvantage subtracts weight from the candidate's score.
func (r *Registry) ApplyDisadvantage(id string, weight float64) error {
	c, err := r.lookup(id)
	if err != nil {
		return err
	}
	c.Score -= weight
	return nil
}

// Eliminate marks the candidate ineligible. Eliminating twice is a no-op.
func (r *Registry) Eliminate(id string) error {
	c, err := r.lookup(id)
	if err != nil {
		return err
	}
	c.Eligible = false
	return nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Get returns a copy of the candidate's current state.
func (r *Registry) Get(id string) (Candidate, bool) {
	c, ok := r.byID[id]
	if !ok {
		return Candidate{}, false
	}
	return *c, true
}

// Len returns the number of registered candidates.
func (r *Registry) Len() int {
	return len(r.order)
}

// All yields every candidate in registration order.
func (r *Registry) All() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, c := range r.order {
			if !yield(*c) {
				return
			}
		}
	}
}

// Eligible yields the candidates that have not been eliminated, in
// registration order. Each call starts a fresh pass.
func (r *Registry) Eligible() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, c := range r.order {
			if !c.Eligible {
				continue
			}
			if !yield(*c) {
				return
			}
		}
	}
}
