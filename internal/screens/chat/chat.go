// Package chat is the assistant panel: a scrolling transcript and an input
// line.
package chat

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
)

const maxMessageLength = 2000

// Sender sends a chat message.
type Sender interface {
	SendChat(text string) tea.Cmd
}

// ChatScreen shows the conversation with the learning assistant.
type ChatScreen struct {
	state  *session.State
	sender Sender
	input  components.TextInput

	// back is how many lines the view is scrolled up from the bottom.
	back int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.Activator = (*ChatScreen)(nil)

// New creates the chat screen.
func New(state *session.State, sender Sender) *ChatScreen {
	return &ChatScreen{
		state:  state,
		sender: sender,
		input:  components.NewTextInput("Ask about your learning path...", maxMessageLength),
	}
}

func (s *ChatScreen) Init() tea.Cmd { return s.input.Init() }

func (s *ChatScreen) Title() string { return "Learning Assistant" }

// Activate replays the conversation and focuses the input.
func (s *ChatScreen) Activate() tea.Cmd {
	s.state.Chat.Enter()
	s.back = 0
	s.input.Reset()
	return s.input.Focus()
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back to roadmap"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			cmd := s.sender.SendChat(s.input.Value())
			if cmd != nil {
				s.input.Reset()
				s.back = 0
			}
			return s, cmd
		case "esc":
			return s, router.Show(screen.PanelRoadmap)
		case "pgup", "up":
			s.back += 5
			return s, nil
		case "pgdown", "down":
			s.back -= 5
			if s.back < 0 {
				s.back = 0
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}
