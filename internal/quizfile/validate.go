package quizfile

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Issue captures a validation problem in a questionnaire.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("questionnaire validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Normalize trims text fields, fills default weights and checks the rules
// the schema cannot express. Candidate references are not resolved here;
// engine.Start reports those as *engine.UnknownCandidateError.
func Normalize(def Definition) (Definition, error) {
	collector := &issueCollector{}

	def.Version = strings.TrimSpace(def.Version)
	switch {
	case def.Version == "":
		collector.add("version", "is required")
	case !semver.IsValid(def.Version):
		collector.add("version", fmt.Sprintf("invalid version %q", def.Version))
	case semver.Major(def.Version) != SupportedMajor:
		collector.add("version", fmt.Sprintf("unsupported version %q (want %s)", def.Version, SupportedMajor))
	}
	def.Title = strings.TrimSpace(def.Title)

	if len(def.Candidates) == 0 {
		collector.add("candidates", "must include at least one entry")
	}
	candidates := make([]Candidate, len(def.Candidates))
	seen := make(map[string]struct{}, len(def.Candidates))
	for i, c := range def.Candidates {
		prefix := fmt.Sprintf("candidates[%d]", i)
		c.ID = strings.TrimSpace(c.ID)
		c.Name = strings.TrimSpace(c.Name)
		c.Link = strings.TrimSpace(c.Link)
		if c.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, dup := seen[c.ID]; dup {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", c.ID))
		} else {
			seen[c.ID] = struct{}{}
		}
		if c.Name == "" {
			collector.add(prefix+".name", "is required")
		}
		candidates[i] = c
	}
	def.Candidates = candidates

	if len(def.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}
	questions := make([]Question, len(def.Questions))
	for i, q := range def.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q.Prompt = strings.TrimSpace(q.Prompt)
		if q.Prompt == "" {
			collector.add(prefix+".prompt", "is required")
		}
		q.BenefitWeight = normalizeWeight(collector, prefix+".benefit_weight", q.BenefitWeight)
		q.DisadvantageWeight = normalizeWeight(collector, prefix+".disadvantage_weight", q.DisadvantageWeight)

		if len(q.Options) == 0 {
			collector.add(prefix+".options", "must include at least one entry")
		}
		options := make([]Option, len(q.Options))
		for j, o := range q.Options {
			o.Label = strings.TrimSpace(o.Label)
			if o.Label == "" {
				collector.add(fmt.Sprintf("%s.options[%d].label", prefix, j), "is required")
			}
			o.Benefits = normalizeIDs(o.Benefits)
			o.Disadvantages = normalizeIDs(o.Disadvantages)
			o.Eliminates = normalizeIDs(o.Eliminates)
			options[j] = o
		}
		q.Options = options
		questions[i] = q
	}
	def.Questions = questions

	if err := collector.result(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

func normalizeWeight(collector *issueCollector, field string, w *float64) *float64 {
	if w == nil {
		v := DefaultWeight
		return &v
	}
	if *w <= 0 {
		collector.add(field, fmt.Sprintf("must be positive, got %v", *w))
	}
	v := *w
	return &v
}

func normalizeIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strings.TrimSpace(id))
	}
	return out
}
