package session

// State is everything the client knows about the current learner for one
// program run. It is owned by the app model and mutated only from the Bubble
// Tea update loop.
type State struct {
	// Profile holds the submitted profile choices.
	Profile Profile

	// Questions is the fetched assessment, in server order.
	Questions []Question

	// Current is the index of the question on screen.
	Current int

	// Answers is index-aligned with Questions; nil means unanswered.
	Answers []*string

	// Evaluation is the last scored result, if any.
	Evaluation *Evaluation

	// Review holds the per-question verdicts that came with Evaluation.
	Review []ReviewItem

	// Roadmap is the last generated study plan, if any.
	Roadmap *Roadmap

	Chat Chat
}

// New returns an empty state.
func New() *State {
	return &State{}
}

// SetProfile stores the profile choices.
func (s *State) SetProfile(p Profile) {
	s.Profile = p
}

// LoadQuestions replaces the assessment and clears every answer.
func (s *State) LoadQuestions(qs []Question) {
	s.Questions = qs
	s.Answers = make([]*string, len(qs))
	s.Current = 0
}

// CurrentQuestion returns the question at the current index.
func (s *State) CurrentQuestion() (Question, bool) {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Current], true
}

// Next moves forward one question. It reports whether the index changed.
func (s *State) Next() bool {
	if s.Current >= len(s.Questions)-1 {
		return false
	}
	s.Current++
	return true
}

// Previous moves back one question. It reports whether the index changed.
func (s *State) Previous() bool {
	if s.Current <= 0 {
		return false
	}
	s.Current--
	return true
}

// IsFirst reports whether the current question is the first one.
func (s *State) IsFirst() bool {
	return s.Current == 0
}

// IsLast reports whether the current question is the last one.
func (s *State) IsLast() bool {
	return len(s.Questions) == 0 || s.Current == len(s.Questions)-1
}

// Select records optionID as the answer to the current question.
// Selecting again overwrites the previous choice.
func (s *State) Select(optionID string) {
	if s.Current < 0 || s.Current >= len(s.Answers) {
		return
	}
	id := optionID
	s.Answers[s.Current] = &id
}

// Answer returns the recorded answer for question i.
func (s *State) Answer(i int) (string, bool) {
	if i < 0 || i >= len(s.Answers) || s.Answers[i] == nil {
		return "", false
	}
	return *s.Answers[i], true
}

// Unanswered counts questions without an answer.
func (s *State) Unanswered() int {
	n := 0
	for _, a := range s.Answers {
		if a == nil {
			n++
		}
	}
	return n
}

// Progress returns the position in the assessment as a 0-100 percentage.
func (s *State) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Current+1) / float64(len(s.Questions)) * 100
}

// SetEvaluation stores a scored result together with its review items.
func (s *State) SetEvaluation(e *Evaluation) {
	s.Evaluation = e
	s.Review = nil
	if e != nil {
		s.Review = e.Review
	}
}

// SetRoadmap stores a generated roadmap.
func (s *State) SetRoadmap(r *Roadmap) {
	s.Roadmap = r
}

// QuestionByID looks up a question by id.
func (s *State) QuestionByID(id QuestionID) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Reset returns every field to its initial value.
func (s *State) Reset() {
	*s = State{}
}
