// Package loading is the busy panel shown while a backend call runs.
package loading

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

const frameInterval = 100 * time.Millisecond

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// tickMsg advances the spinner of activation id.
type tickMsg struct {
	id int
}

// MessageSource supplies the text to show.
type MessageSource interface {
	LoadingMessage() string
}

// LoadingScreen shows a spinner and the current loading message. It ignores
// all keys.
type LoadingScreen struct {
	source MessageSource
	frame  int

	// id invalidates ticks from earlier activations.
	id int
}

var _ screen.Screen = (*LoadingScreen)(nil)
var _ screen.Activator = (*LoadingScreen)(nil)

// New creates the loading screen.
func New(source MessageSource) *LoadingScreen {
	return &LoadingScreen{source: source}
}

func (s *LoadingScreen) Init() tea.Cmd { return nil }

func (s *LoadingScreen) Title() string { return "Please wait" }

// Activate restarts the spinner.
func (s *LoadingScreen) Activate() tea.Cmd {
	s.id++
	s.frame = 0
	return s.tick()
}

func (s *LoadingScreen) tick() tea.Cmd {
	id := s.id
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func (s *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if t, ok := msg.(tickMsg); ok && t.id == s.id {
		s.frame = (s.frame + 1) % len(frames)
		return s, s.tick()
	}
	return s, nil
}

func (s *LoadingScreen) View(width, height int) string {
	text := lipgloss.NewStyle().Foreground(theme.Accent).Render(frames[s.frame]) + "  " +
		theme.Body.Render(s.source.LoadingMessage())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}
