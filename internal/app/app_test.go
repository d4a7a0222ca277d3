package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/export"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// send delivers msg and keeps feeding resulting messages back into the
// model, the way the Bubble Tea runtime would.
func send(m AppModel, msg tea.Msg) AppModel {
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0 && steps < 100; steps++ {
		next := queue[0]
		queue = queue[1:]
		if _, ok := next.(tea.QuitMsg); ok {
			break
		}
		updated, cmd := m.Update(next)
		m = updated.(AppModel)
		queue = append(queue, collect(cmd)...)
	}
	return m
}

func keys(m AppModel, msgs ...tea.KeyPressMsg) AppModel {
	for _, k := range msgs {
		m = send(m, k)
	}
	return m
}

func view(m AppModel) string {
	return ansi.Strip(m.render())
}

func questions() []session.Question {
	opts := []session.Option{{ID: "a", Text: "yes"}, {ID: "b", Text: "no"}}
	return []session.Question{
		{ID: "1", Question: "Is Go compiled?", Options: opts, CorrectAnswer: "a"},
		{ID: "2", Question: "Is Go interpreted?", Options: opts, CorrectAnswer: "b"},
	}
}

type harness struct {
	backend *api.MockBackend
	fs      afero.Fs
	model   AppModel
}

func newHarness() *harness {
	h := &harness{backend: api.NewMockBackend(), fs: afero.NewMemMapFs()}
	h.model = New(Options{Backend: h.backend, Writer: export.NewWriter(h.fs, "/out")})
	h.model.Init()
	h.model = send(h.model, tea.WindowSizeMsg{Width: 120, Height: 60})
	return h
}

// fillProfile picks the first choice of every field and presses Start.
func fillProfile(m AppModel) AppModel {
	return keys(m,
		keyPress('1'), specialKey(tea.KeyEnter),
		keyPress('1'), specialKey(tea.KeyEnter),
		keyPress('1'), specialKey(tea.KeyEnter),
		specialKey(tea.KeyEnter),
	)
}

func TestApp_FullFlow(t *testing.T) {
	h := newHarness()
	h.backend.
		Queue(api.EndpointQuestions, api.MockResponse{Questions: questions()}).
		Queue(api.EndpointSubmitAnswers, api.MockResponse{Evaluation: &session.Evaluation{
			Score: 50,
			Areas: session.Areas{{Name: "Basics", AreaScore: session.AreaScore{Score: 50, Recommended: 80}}},
		}}).
		Queue(api.EndpointRoadmap, api.MockResponse{Roadmap: &session.Roadmap{
			Title: "Go Path", Level: "Beginner", OverallScore: 50,
			Weeks: []session.Week{{Week: 1, Focus: "Syntax", Hours: 5, Modules: 1, Lessons: 2}},
		}})

	m := fillProfile(h.model)
	require.Equal(t, screen.PanelAssessment, m.router.ActivePanel())
	assert.Contains(t, view(m), "Question 1 of 2")
	assert.Contains(t, view(m), "step 2/5")

	m = keys(m, keyPress('a'), keyPress('n'), keyPress('b'), keyPress('s'))
	require.Equal(t, screen.PanelResults, m.router.ActivePanel())
	assert.Contains(t, view(m), "Your score: 50%")

	m = keys(m, keyPress('g'))
	require.Equal(t, screen.PanelRoadmap, m.router.ActivePanel())
	assert.Contains(t, view(m), "Week 1: Syntax")

	m = keys(m, keyPress('d'))
	assert.Contains(t, view(m), "Roadmap saved to /out/learning-roadmap.md")
	ok, err := afero.Exists(h.fs, "/out/learning-roadmap.md")
	require.NoError(t, err)
	assert.True(t, ok)

	m = keys(m, specialKey(tea.KeyEnter))
	assert.NotContains(t, view(m), "Roadmap saved")

	m = keys(m, keyPress('r'))
	assert.Equal(t, screen.PanelProfile, m.router.ActivePanel())
	assert.Len(t, h.backend.CallsTo(api.EndpointClearSession), 1)
	assert.Nil(t, m.ctrl.State().Roadmap)

	submitted := h.backend.CallsTo(api.EndpointSubmitAnswers)
	require.Len(t, submitted, 1)
}

func TestApp_IncompleteProfileShowsAlert(t *testing.T) {
	h := newHarness()
	m := keys(h.model,
		specialKey(tea.KeyDown), specialKey(tea.KeyDown), specialKey(tea.KeyDown),
		specialKey(tea.KeyEnter))

	assert.Contains(t, view(m), "Please fill in all the fields before continuing")
	assert.Equal(t, 0, h.backend.CallCount())
	assert.Equal(t, screen.PanelProfile, m.router.ActivePanel())
}

func TestApp_FailedStartReturnsToProfile(t *testing.T) {
	h := newHarness()
	h.backend.Queue(api.EndpointQuestions, api.MockResponse{Err: errors.New("boom")})

	m := fillProfile(h.model)
	assert.Equal(t, screen.PanelProfile, m.router.ActivePanel())
	require.NotNil(t, m.alert)
	assert.Contains(t, view(m), "There was an error starting the evaluation")

	// Keys go to the alert until it is dismissed.
	m = keys(m, keyPress('2'))
	assert.NotNil(t, m.alert)
	m = keys(m, specialKey(tea.KeyEscape))
	assert.Nil(t, m.alert)
	assert.Equal(t, "beginner", m.ctrl.State().Profile.Experience, "profile is kept after a failed start")
}

func TestApp_FatalQuits(t *testing.T) {
	h := newHarness()
	boom := errors.New("boom")
	updated, cmd := h.model.Update(router.FatalMsg{Err: boom})
	m := updated.(AppModel)
	assert.ErrorIs(t, m.Err(), boom)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_TooSmall(t *testing.T) {
	h := newHarness()
	m := send(h.model, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, view(m), "Terminal too small")
}

func TestApp_QuitHintShownOnce(t *testing.T) {
	h := newHarness()
	assert.Equal(t, 1, strings.Count(view(h.model), "Ctrl+C"))
}
