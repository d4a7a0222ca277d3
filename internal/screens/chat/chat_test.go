package chat

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

type sentMsg string

// recordingSender mimics the controller: it begins the exchange on the
// shared state and records what was sent.
type recordingSender struct {
	state *session.State
	sent  []string
}

func (r *recordingSender) SendChat(text string) tea.Cmd {
	msg, ok := r.state.Chat.Begin(text)
	if !ok {
		return nil
	}
	r.sent = append(r.sent, msg)
	return func() tea.Msg { return sentMsg(msg) }
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *ChatScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func newTestScreen() (*ChatScreen, *session.State, *recordingSender) {
	state := session.New()
	sender := &recordingSender{state: state}
	s := New(state, sender)
	s.Activate()
	return s, state, sender
}

func TestChat_WelcomeOnFirstEntry(t *testing.T) {
	s, state, _ := newTestScreen()
	require.Len(t, state.Chat.Transcript, 1)
	assert.Contains(t, ansi.Strip(s.View(100, 30)), "How can I help you")
}

func TestChat_SendClearsInput(t *testing.T) {
	s, state, sender := newTestScreen()

	typeText(s, "hi there")
	assert.Equal(t, "hi there", s.input.Value())

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, sentMsg("hi there"), cmd())
	assert.Equal(t, []string{"hi there"}, sender.sent)
	assert.Equal(t, "", s.input.Value())

	out := ansi.Strip(s.View(100, 30))
	assert.Contains(t, out, "hi there")
	assert.Contains(t, out, typingText)

	// A second send while the reply is pending is ignored and keeps the text.
	typeText(s, "again")
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, "again", s.input.Value())

	state.Chat.Complete("Hello back")
	out = ansi.Strip(s.View(100, 30))
	assert.Contains(t, out, "Hello back")
	assert.NotContains(t, out, typingText)
}

func TestChat_BlankInputIgnored(t *testing.T) {
	s, _, sender := newTestScreen()
	typeText(s, "   ")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Empty(t, sender.sent)
}

func TestChat_RendersCodeBlocks(t *testing.T) {
	s, state, _ := newTestScreen()
	state.Chat.Begin("show me")
	state.Chat.Complete("Try this:\n```go\nfmt.Println(\"hi\")\n```\nDone.")

	out := ansi.Strip(s.View(100, 40))
	assert.Contains(t, out, "Try this:")
	assert.Contains(t, out, `fmt.Println("hi")`)
	assert.NotContains(t, out, "```")
	assert.Contains(t, out, "Done.")
}

func TestChat_EscReturnsToRoadmap(t *testing.T) {
	s, _, _ := newTestScreen()
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.Equal(t, router.ShowPanelMsg{Panel: screen.PanelRoadmap}, cmd())
}

func TestChat_ReentryReplaysHistory(t *testing.T) {
	s, state, _ := newTestScreen()
	state.Chat.Begin("one")
	state.Chat.Complete("reply one")
	state.Chat.Begin("two")
	state.Chat.Fail()

	s.Activate()
	assert.Len(t, state.Chat.Transcript, 3, "welcome plus one exchange; the apology is not replayed")
}
