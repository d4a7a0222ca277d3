// Package roadmap shows the generated study plan week by week.
package roadmap

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
	"github.com/abhisek/learnpath/internal/views"
)

// Actions are the follow-ups offered on the roadmap panel.
type Actions interface {
	DownloadRoadmap() tea.Cmd
	Restart() tea.Cmd
}

// RoadmapScreen renders the stored roadmap.
type RoadmapScreen struct {
	state   *session.State
	actions Actions

	week   int
	offset int

	// jump is set when a week was picked and the next render must scroll
	// to its card.
	jump bool
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)
var _ screen.Activator = (*RoadmapScreen)(nil)

// New creates the roadmap screen.
func New(state *session.State, actions Actions) *RoadmapScreen {
	return &RoadmapScreen{state: state, actions: actions}
}

func (s *RoadmapScreen) Init() tea.Cmd { return nil }

func (s *RoadmapScreen) Title() string { return "Learning Roadmap" }

// Activate scrolls to the top and selects the first week.
func (s *RoadmapScreen) Activate() tea.Cmd {
	s.offset = 0
	s.week = 0
	s.jump = false
	return nil
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Week"},
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "D", Description: "Download"},
		{Key: "C", Description: "Ask the assistant"},
		{Key: "R", Description: "Restart"},
	}
}

// SelectedWeek is the index of the active week in the selector.
func (s *RoadmapScreen) SelectedWeek() int { return s.week }

func (s *RoadmapScreen) weeks() int {
	if s.state.Roadmap == nil {
		return 0
	}
	return len(s.state.Roadmap.Weeks)
}

func (s *RoadmapScreen) selectWeek(i int) {
	if i < 0 || i >= s.weeks() {
		return
	}
	s.week = i
	s.jump = true
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key := kmsg.String(); key {
	case "left", "h":
		s.selectWeek(s.week - 1)
	case "right", "l":
		s.selectWeek(s.week + 1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.selectWeek(int(key[0] - '1'))
	case "up", "k":
		s.offset--
	case "down", "j":
		s.offset++
	case "pgup":
		s.offset -= 10
	case "pgdown":
		s.offset += 10
	case "d":
		return s, s.actions.DownloadRoadmap()
	case "c":
		return s, router.Show(screen.PanelChat)
	case "r":
		return s, s.actions.Restart()
	}
	return s, nil
}

func (s *RoadmapScreen) View(width, height int) string {
	rm, ok := views.BuildRoadmap(s.state.Roadmap)
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No roadmap yet."))
	}

	cw := components.ContentWidth(width)
	header := RenderHeader(rm, s.week, cw)
	body, starts := RenderWeeks(rm, cw)

	if s.jump && s.week < len(starts) {
		s.offset = starts[s.week]
		s.jump = false
	}

	viewHeight := height - lipgloss.Height(header) - 1
	visible, offset := layout.Scroll(body, s.offset, viewHeight)
	s.offset = offset

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(header+"\n"+visible))
}
