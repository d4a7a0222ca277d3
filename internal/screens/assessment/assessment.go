// Package assessment runs the quiz: one question at a time, free navigation,
// submit on the last question.
package assessment

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/views"
)

// Evaluator submits the answers.
type Evaluator interface {
	SubmitEvaluation() tea.Cmd
}

// AssessmentScreen shows the current question and records answers.
type AssessmentScreen struct {
	state   *session.State
	eval    Evaluator
	options components.OptionList
	confirm bool
	pending int
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.Activator = (*AssessmentScreen)(nil)

// New creates the assessment screen.
func New(state *session.State, eval Evaluator) *AssessmentScreen {
	return &AssessmentScreen{state: state, eval: eval}
}

func (s *AssessmentScreen) Init() tea.Cmd { return nil }

func (s *AssessmentScreen) Title() string { return "Assessment" }

// Activate rebuilds the option list for the current question.
func (s *AssessmentScreen) Activate() tea.Cmd {
	s.confirm = false
	s.syncOptions()
	return nil
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.confirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit anyway"},
			{Key: "N", Description: "Keep answering"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Choose"},
	}
	if !s.state.IsFirst() {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	if s.state.IsLast() {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
	}
	return hints
}

// Confirming reports whether the unanswered-questions prompt is open.
func (s *AssessmentScreen) Confirming() bool { return s.confirm }

// RequestSubmit submits straight away when every question is answered and
// otherwise opens the confirmation prompt.
func (s *AssessmentScreen) RequestSubmit() tea.Cmd {
	if n := s.state.Unanswered(); n > 0 {
		s.confirm = true
		s.pending = n
		return nil
	}
	return s.eval.SubmitEvaluation()
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.confirm {
		switch key {
		case "y", "Y":
			s.confirm = false
			return s, s.eval.SubmitEvaluation()
		case "n", "N", "esc":
			s.confirm = false
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		s.options.MoveUp()
	case "down", "j":
		s.options.MoveDown()
	case "enter", "space", " ":
		if id, ok := s.options.CursorID(); ok {
			s.choose(id)
		}
	case "right", "n":
		if s.state.Next() {
			s.syncOptions()
		}
	case "left", "p":
		if s.state.Previous() {
			s.syncOptions()
		}
	case "s":
		if s.state.IsLast() {
			return s, s.RequestSubmit()
		}
	default:
		s.chooseByKey(key)
	}
	return s, nil
}

// chooseByKey selects an option whose id matches key, or the n-th option
// for digit keys.
func (s *AssessmentScreen) chooseByKey(key string) {
	for i, id := range s.options.IDs {
		if id == key {
			s.options.Cursor = i
			s.choose(id)
			return
		}
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		i := int(key[0] - '1')
		if i < len(s.options.IDs) {
			s.options.Cursor = i
			s.choose(s.options.IDs[i])
		}
	}
}

func (s *AssessmentScreen) choose(id string) {
	s.state.Select(id)
	s.options.Chosen = id
}

func (s *AssessmentScreen) syncOptions() {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		s.options = components.OptionList{}
		return
	}
	opts := components.OptionList{
		IDs:   make([]string, len(q.Options)),
		Texts: make([]string, len(q.Options)),
	}
	for i, o := range q.Options {
		opts.IDs[i] = o.ID
		opts.Texts[i] = views.Sanitize(o.Text)
	}
	if chosen, ok := s.state.Answer(s.state.Current); ok {
		opts.Chosen = chosen
		for i, id := range opts.IDs {
			if id == chosen {
				opts.Cursor = i
			}
		}
	}
	s.options = opts
}

func (s *AssessmentScreen) counter() string {
	return fmt.Sprintf("Question %d of %d", s.state.Current+1, len(s.state.Questions))
}
