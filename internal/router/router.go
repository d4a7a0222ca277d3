package router

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpath/internal/screen"
)

// ErrUnknownPanel is returned when asked to show a panel that was never
// registered.
var ErrUnknownPanel = errors.New("unknown panel")

// ShowPanelMsg requests the router to make a panel visible.
type ShowPanelMsg struct {
	Panel screen.Panel
}

// FatalMsg reports an error the program cannot continue from.
type FatalMsg struct {
	Err error
}

// Show returns a command that requests panel p.
func Show(p screen.Panel) tea.Cmd {
	return func() tea.Msg { return ShowPanelMsg{Panel: p} }
}

// Router keeps one screen per panel and shows exactly one at a time.
type Router struct {
	screens map[screen.Panel]screen.Screen
	active  screen.Panel
}

// New creates a Router over screens with initial as the visible panel.
func New(screens map[screen.Panel]screen.Screen, initial screen.Panel) *Router {
	return &Router{screens: screens, active: initial}
}

// Init initialises every screen and activates the initial one.
func (r *Router) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range screen.Panels {
		if s, ok := r.screens[p]; ok {
			cmds = append(cmds, s.Init())
		}
	}
	if a, ok := r.screens[r.active].(screen.Activator); ok {
		cmds = append(cmds, a.Activate())
	}
	return tea.Batch(cmds...)
}

// Show hides the current panel, makes p visible and runs its activation hook.
func (r *Router) Show(p screen.Panel) (tea.Cmd, error) {
	s, ok := r.screens[p]
	if !ok || !p.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPanel, p)
	}
	r.active = p
	if a, ok := s.(screen.Activator); ok {
		return a.Activate(), nil
	}
	return nil, nil
}

// ActivePanel returns the visible panel.
func (r *Router) ActivePanel() screen.Panel {
	return r.active
}

// Active returns the visible screen.
func (r *Router) Active() screen.Screen {
	return r.screens[r.active]
}

// Screen returns the screen registered for p.
func (r *Router) Screen(p screen.Panel) screen.Screen {
	return r.screens[p]
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ShowPanelMsg); ok {
		cmd, err := r.Show(msg.Panel)
		if err != nil {
			return func() tea.Msg { return FatalMsg{Err: err} }
		}
		return cmd
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.screens[r.active] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
