package engine

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Option is one selectable answer to a question and the effects it has on
// candidates when chosen.
type Option struct {
	Label         string
	Benefits      []string
	Disadvantages []string
	Eliminates    []string
}

// Question is a prompt with per-question weights and an ordered option list.
type Question struct {
	Prompt             string
	BenefitWeight      float64
	DisadvantageWeight float64
	Options            []Option
}

// Labels returns the option labels in declared order.
func (q Question) Labels() []string {
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Label
	}
	return labels
}

func (q Question) clone() Question {
	out := q
	out.Options = make([]Option, len(q.Options))
	for i, o := range q.Options {
		out.Options[i] = Option{
			Label:         o.Label,
			Benefits:      slices.Clone(o.Benefits),
			Disadvantages: slices.Clone(o.Disadvantages),
			Eliminates:    slices.Clone(o.Eliminates),
		}
	}
	return out
}

// validateQuestions checks questions against the registered candidates.
// An unknown candidate reference wins over structural issues so callers can
// rely on the error kind.
func validateQuestions(reg *Registry, questions []Question) error {
	var issues []string
	var unknown *UnknownCandidateError

	if len(questions) == 0 {
		issues = append(issues, "at least one question is required")
	}

	for qi, q := range questions {
		prefix := fmt.Sprintf("question %d", qi+1)
		if strings.TrimSpace(q.Prompt) == "" {
			issues = append(issues, prefix+": empty prompt")
		}
		if !validWeight(q.BenefitWeight) {
			issues = append(issues, fmt.Sprintf("%s: benefit weight must be positive, got %v", prefix, q.BenefitWeight))
		}
		if !validWeight(q.DisadvantageWeight) {
			issues = append(issues, fmt.Sprintf("%s: disadvantage weight must be positive, got %v", prefix, q.DisadvantageWeight))
		}
		if len(q.Options) == 0 {
			issues = append(issues, prefix+": no options")
		}

		for oi, o := range q.Options {
			optPrefix := fmt.Sprintf("%s option %d", prefix, oi+1)
			if strings.TrimSpace(o.Label) == "" {
				issues = append(issues, optPrefix+": empty label")
			}

			seen := make(map[string]string)
			sets := []struct {
				name string
				ids  []string
			}{
				{"benefits", o.Benefits},
				{"disadvantages", o.Disadvantages},
				{"eliminates", o.Eliminates},
			}
			for _, set := range sets {
				for _, id := range set.ids {
					if !reg.Has(id) {
						if unknown == nil {
							unknown = &UnknownCandidateError{ID: id, Question: qi, Option: oi}
						}
						continue
					}
					if prev, dup := seen[id]; dup {
						if prev == set.name {
							issues = append(issues, fmt.Sprintf("%s: candidate %q listed twice in %s", optPrefix, id, set.name))
						} else {
							issues = append(issues, fmt.Sprintf("%s: candidate %q listed in both %s and %s", optPrefix, id, prev, set.name))
						}
						continue
					}
					seen[id] = set.name
				}
			}
		}
	}

	if unknown != nil {
		return unknown
	}
	if len(issues) > 0 {
		return &DefinitionError{Issues: issues}
	}
	return nil
}

func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 1)
}
