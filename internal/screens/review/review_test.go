package review

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
)

func strPtr(s string) *string { return &s }

func reviewedState() *session.State {
	state := session.New()
	state.LoadQuestions([]session.Question{
		{ID: "1", Question: "Which is a map?", CorrectAnswer: "a", Options: []session.Option{
			{ID: "a", Text: "map[string]int"}, {ID: "b", Text: "[]int"},
		}},
		{ID: "2", Question: "Which is a slice?", CorrectAnswer: "b", Options: []session.Option{
			{ID: "a", Text: "chan int"}, {ID: "b", Text: "[]int"},
		}},
	})
	state.SetEvaluation(&session.Evaluation{
		Score: 50,
		Review: []session.ReviewItem{
			{QuestionID: "1", UserAnswer: strPtr("a"), Correct: true, Explanation: "Maps map keys."},
			{QuestionID: "missing", UserAnswer: nil},
			{QuestionID: "2", UserAnswer: strPtr("a"), Correct: false, Explanation: "Slices use []."},
		},
	})
	return state
}

func TestReview_RendersCards(t *testing.T) {
	s := New(reviewedState())
	s.Activate()
	require.Len(t, s.cards, 2)

	out := ansi.Strip(s.View(100, 60))
	assert.Contains(t, out, "Question 1")
	assert.Contains(t, out, "Question 2")
	assert.NotContains(t, out, "Question 3")
	assert.Contains(t, out, "✓ a)  map[string]int")
	assert.Contains(t, out, "✗ a)  chan int")
	assert.Contains(t, out, "→ b)  []int")
	assert.Contains(t, out, "Slices use [].")
}

func TestReview_Empty(t *testing.T) {
	s := New(session.New())
	s.Activate()
	assert.Contains(t, ansi.Strip(s.View(80, 20)), "Nothing to review.")
}

func TestReview_BackToResults(t *testing.T) {
	s := New(session.New())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.ShowPanelMsg{Panel: screen.PanelResults}, cmd())
}
