package assessment

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnpath/internal/session"
)

type submitMsg struct{}

type countingEvaluator struct {
	calls int
}

func (e *countingEvaluator) SubmitEvaluation() tea.Cmd {
	e.calls++
	return func() tea.Msg { return submitMsg{} }
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen(n int) (*AssessmentScreen, *session.State, *countingEvaluator) {
	state := session.New()
	qs := make([]session.Question, n)
	for i := range qs {
		qs[i] = session.Question{
			ID:       session.QuestionID(string(rune('1' + i))),
			Question: "Question?",
			Options: []session.Option{
				{ID: "a", Text: "first"},
				{ID: "b", Text: "second"},
				{ID: "c", Text: "third"},
			},
			CorrectAnswer: "a",
		}
	}
	state.LoadQuestions(qs)
	eval := &countingEvaluator{}
	s := New(state, eval)
	s.Activate()
	return s, state, eval
}

func TestAssessment_SelectAndNavigate(t *testing.T) {
	s, state, _ := newTestScreen(3)

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))
	got, ok := state.Answer(0)
	require.True(t, ok)
	assert.Equal(t, "b", got)

	s.Update(specialKey(tea.KeyRight))
	assert.Equal(t, 1, state.Current)
	assert.Equal(t, 0, s.options.Cursor)

	s.Update(keyPress('c'))
	got, _ = state.Answer(1)
	assert.Equal(t, "c", got)

	s.Update(keyPress('1'))
	got, _ = state.Answer(1)
	assert.Equal(t, "a", got, "digits pick by position and overwrite")

	s.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, 0, state.Current)
	assert.Equal(t, 1, s.options.Cursor, "cursor starts on the recorded answer")
	assert.Equal(t, "b", s.options.Chosen)

	s.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, 0, state.Current)
}

func TestAssessment_SubmitOnlyOnLastQuestion(t *testing.T) {
	s, _, eval := newTestScreen(2)
	s.Update(keyPress('a'))

	_, cmd := s.Update(keyPress('s'))
	assert.Nil(t, cmd)
	assert.False(t, s.Confirming())

	s.Update(keyPress('n'))
	s.Update(keyPress('b'))
	_, cmd = s.Update(keyPress('s'))
	require.NotNil(t, cmd)
	assert.Equal(t, submitMsg{}, cmd())
	assert.Equal(t, 1, eval.calls)
}

func TestAssessment_ConfirmUnanswered(t *testing.T) {
	s, state, eval := newTestScreen(3)
	s.Update(keyPress('a'))
	s.Update(keyPress('n'))
	s.Update(keyPress('n'))

	_, cmd := s.Update(keyPress('s'))
	assert.Nil(t, cmd)
	require.True(t, s.Confirming())
	assert.Equal(t, "You have 2 unanswered questions. Do you want to submit anyway?", confirmText(2))
	// The modal wraps the prompt, so check its pieces.
	out := ansi.Strip(s.View(100, 30))
	assert.Contains(t, out, "You have 2 unanswered questions.")
	assert.Contains(t, out, "submit anyway?")

	// Declining leaves everything as it was.
	s.Update(keyPress('n'))
	assert.False(t, s.Confirming())
	assert.Equal(t, 0, eval.calls)
	assert.Equal(t, 2, state.Current)
	assert.Equal(t, 2, state.Unanswered())

	s.Update(keyPress('s'))
	_, cmd = s.Update(keyPress('y'))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, eval.calls)
}

func TestAssessment_View(t *testing.T) {
	s, _, _ := newTestScreen(4)
	out := ansi.Strip(s.View(100, 30))
	assert.Contains(t, out, "Question 1 of 4")
	assert.Contains(t, out, "25%")
	assert.Contains(t, out, "Next →")
	assert.NotContains(t, out, "Submit")

	for i := 0; i < 3; i++ {
		s.Update(specialKey(tea.KeyRight))
	}
	out = ansi.Strip(s.View(100, 30))
	assert.Contains(t, out, "Question 4 of 4")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "Submit")
}

func TestAssessment_ActivateClosesPrompt(t *testing.T) {
	s, _, _ := newTestScreen(1)
	s.RequestSubmit()
	require.True(t, s.Confirming())
	s.Activate()
	assert.False(t, s.Confirming())
}
