package engine

// notStarted is the index of a session whose first question has not been
// shown yet.
const notStarted = -1

// Prompt is what the presentation layer renders for the active question.
type Prompt struct {
	// Number is the 1-based position of the question.
	Number int
	// Total is the number of questions in the session.
	Total   int
	Text    string
	Options []string
	// Done is set once every question has been answered; the other fields
	// are then zero apart from Total.
	Done bool
}

// Answer records one applied selection.
type Answer struct {
	Question int
	Prompt   string
	Option   int
	Label    string
}

// Session is one run of the questionnaire. It owns its registry and shares
// no state with other sessions. A Session is not safe for concurrent use.
type Session struct {
	index     int
	registry  *Registry
	questions []Question
	answers   []Answer
}

// Start builds a fresh session. Every candidate id referenced by any option
// must be present in candidates, otherwise an *UnknownCandidateError is
// returned and no session is created.
func Start(candidates []CandidateDef, questions []Question) (*Session, error) {
	reg, err := NewRegistry(candidates)
	if err != nil {
		return nil, err
	}
	if err := validateQuestions(reg, questions); err != nil {
		return nil, err
	}

	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = q.clone()
	}

	return &Session{
		index:     notStarted,
		registry:  reg,
		questions: qs,
	}, nil
}

// Begin moves a not-yet-started session onto its first question. It is a
// no-op once the session has started.
func (s *Session) Begin() {
	if s.index == notStarted {
		s.index = 0
	}
}

// Index returns the active question index, -1 before Begin.
func (s *Session) Index() int {
	return s.index
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// Finished reports whether every question has been answered.
func (s *Session) Finished() bool {
	return s.index >= len(s.questions)
}

func (s *Session) active() int {
	if s.index == notStarted {
		return 0
	}
	return s.index
}

// CurrentPrompt returns the active question, or a Done prompt once the
// session has finished. It never mutates the session.
func (s *Session) CurrentPrompt() Prompt {
	if s.Finished() {
		return Prompt{Total: len(s.questions), Done: true}
	}
	i := s.active()
	q := s.questions[i]
	return Prompt{
		Number:  i + 1,
		Total:   len(s.questions),
		Text:    q.Prompt,
		Options: q.Labels(),
	}
}

// SelectOption applies the chosen option of the active question: benefits
// first, then disadvantages, then eliminations, so an eliminated candidate
// still carries this question's score. The session then advances.
func (s *Session) SelectOption(optionIndex int) error {
	if s.Finished() {
		return ErrSessionFinished
	}
	i := s.active()
	q := s.questions[i]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return &InvalidOptionError{Index: optionIndex, Count: len(q.Options)}
	}
	opt := q.Options[optionIndex]

	// Ids were validated in Start, so the lookups below cannot fail.
	for _, id := range opt.Benefits {
		if err := s.registry.ApplyBenefit(id, q.BenefitWeight); err != nil {
			return err
		}
	}
	for _, id := range opt.Disadvantages {
		if err := s.registry.ApplyDisadvantage(id, q.DisadvantageWeight); err != nil {
			return err
		}
	}
	for _, id := range opt.Eliminates {
		if err := s.registry.Eliminate(id); err != nil {
			return err
		}
	}

	s.answers = append(s.answers, Answer{
		Question: i,
		Prompt:   q.Prompt,
		Option:   optionIndex,
		Label:    opt.Label,
	})
	s.index = i + 1
	return nil
}

// Answers returns the selections applied so far, in order.
func (s *Session) Answers() []Answer {
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Candidates returns a snapshot of every candidate in registration order.
func (s *Session) Candidates() []Candidate {
	out := make([]Candidate, 0, s.registry.Len())
	for c := range s.registry.All() {
		out = append(out, c)
	}
	return out
}
