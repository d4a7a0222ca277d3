package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpath/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Activator is implemented by screens that refresh themselves every time
// they become the visible panel. Activate also resets the scroll position.
type Activator interface {
	Activate() tea.Cmd
}

// Panel names one of the fixed wizard panels.
type Panel string

const (
	PanelProfile    Panel = "profile"
	PanelLoading    Panel = "loading"
	PanelAssessment Panel = "assessment"
	PanelResults    Panel = "results"
	PanelReview     Panel = "review"
	PanelRoadmap    Panel = "roadmap"
	PanelChat       Panel = "chat"
)

// Panels lists every panel in wizard order.
var Panels = []Panel{
	PanelProfile,
	PanelLoading,
	PanelAssessment,
	PanelResults,
	PanelReview,
	PanelRoadmap,
	PanelChat,
}

// Valid reports whether p is one of the known panels.
func (p Panel) Valid() bool {
	for _, known := range Panels {
		if p == known {
			return true
		}
	}
	return false
}

// Step returns the 1-based wizard step shown in the header, or 0 for panels
// outside the numbered flow.
func (p Panel) Step() int {
	switch p {
	case PanelProfile:
		return 1
	case PanelAssessment:
		return 2
	case PanelResults, PanelReview:
		return 3
	case PanelRoadmap:
		return 4
	case PanelChat:
		return 5
	}
	return 0
}

// Steps is the number of numbered wizard steps.
const Steps = 5
