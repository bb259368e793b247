package quizfile

import (
	"slices"

	"github.com/abhisek/edpick/internal/engine"
)

// SupportedMajor is the questionnaire format major version this build reads.
const SupportedMajor = "v1"

// DefaultWeight applies when a question omits benefit_weight or
// disadvantage_weight.
const DefaultWeight = 1.0

// Definition is a questionnaire loaded from YAML or JSON.
type Definition struct {
	Version    string      `json:"version,omitempty" yaml:"version"`
	Title      string      `json:"title,omitempty" yaml:"title,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty" yaml:"candidates"`
	Questions  []Question  `json:"questions,omitempty" yaml:"questions"`
}

// Candidate is a recommendable item.
type Candidate struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Question is one prompt. Nil weights mean DefaultWeight.
type Question struct {
	Prompt             string   `json:"prompt" yaml:"prompt"`
	BenefitWeight      *float64 `json:"benefit_weight,omitempty" yaml:"benefit_weight,omitempty"`
	DisadvantageWeight *float64 `json:"disadvantage_weight,omitempty" yaml:"disadvantage_weight,omitempty"`
	Options            []Option `json:"options,omitempty" yaml:"options"`
}

// Option is a selectable answer and its effects.
type Option struct {
	Label         string   `json:"label" yaml:"label"`
	Benefits      []string `json:"benefits,omitempty" yaml:"benefits,omitempty"`
	Disadvantages []string `json:"disadvantages,omitempty" yaml:"disadvantages,omitempty"`
	Eliminates    []string `json:"eliminates,omitempty" yaml:"eliminates,omitempty"`
}

// Engine converts the definition into engine inputs. Call it on a
// normalized definition; missing weights fall back to DefaultWeight.
func (d Definition) Engine() ([]engine.CandidateDef, []engine.Question) {
	candidates := make([]engine.CandidateDef, len(d.Candidates))
	for i, c := range d.Candidates {
		candidates[i] = engine.CandidateDef{ID: c.ID, Name: c.Name, Link: c.Link}
	}

	questions := make([]engine.Question, len(d.Questions))
	for i, q := range d.Questions {
		options := make([]engine.Option, len(q.Options))
		for j, o := range q.Options {
			options[j] = engine.Option{
				Label:         o.Label,
				Benefits:      o.Benefits,
				Disadvantages: o.Disadvantages,
				Eliminates:    o.Eliminates,
			}
		}
		questions[i] = engine.Question{
			Prompt:             q.Prompt,
			BenefitWeight:      weightOrDefault(q.BenefitWeight),
			DisadvantageWeight: weightOrDefault(q.DisadvantageWeight),
			Options:            options,
		}
	}
	return candidates, questions
}

// Clone returns a deep copy that shares no slices or weights with d.
func (d Definition) Clone() Definition {
	out := d
	out.Candidates = slices.Clone(d.Candidates)
	if d.Questions != nil {
		out.Questions = make([]Question, len(d.Questions))
	}
	for i, q := range d.Questions {
		q.BenefitWeight = cloneWeight(q.BenefitWeight)
		q.DisadvantageWeight = cloneWeight(q.DisadvantageWeight)
		opts := q.Options
		if opts != nil {
			q.Options = make([]Option, len(opts))
		}
		for j, o := range opts {
			q.Options[j] = Option{
				Label:         o.Label,
				Benefits:      slices.Clone(o.Benefits),
				Disadvantages: slices.Clone(o.Disadvantages),
				Eliminates:    slices.Clone(o.Eliminates),
			}
		}
		out.Questions[i] = q
	}
	return out
}

func cloneWeight(w *float64) *float64 {
	if w == nil {
		return nil
	}
	v := *w
	return &v
}

// NewSession starts an engine session over the definition.
func (d Definition) NewSession() (*engine.Session, error) {
	candidates, questions := d.Engine()
	return engine.Start(candidates, questions)
}

func weightOrDefault(w *float64) float64 {
	if w == nil {
		return DefaultWeight
	}
	return *w
}
