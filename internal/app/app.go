// Package app wires the wizard controller, the panel router and the screens
// into the root Bubble Tea model.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/export"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/screens/assessment"
	"github.com/abhisek/learnpath/internal/screens/chat"
	"github.com/abhisek/learnpath/internal/screens/loading"
	"github.com/abhisek/learnpath/internal/screens/profile"
	"github.com/abhisek/learnpath/internal/screens/results"
	"github.com/abhisek/learnpath/internal/screens/review"
	"github.com/abhisek/learnpath/internal/screens/roadmap"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
	"github.com/abhisek/learnpath/internal/wizard"
)

// Options configures the application.
type Options struct {
	Backend api.Backend
	Writer  *export.Writer
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ctrl   *wizard.Controller
	log    *zap.Logger

	alert *wizard.AlertMsg
	err   error

	width  int
	height int
}

// New builds the model with every panel registered and the profile panel
// visible.
func New(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	state := session.New()
	screens := make(map[screen.Panel]screen.Screen, len(screen.Panels))
	r := router.New(screens, screen.PanelProfile)
	ctrl := wizard.New(state, opts.Backend, r, opts.Writer, log)

	screens[screen.PanelProfile] = profile.New(state, ctrl)
	screens[screen.PanelLoading] = loading.New(ctrl)
	screens[screen.PanelAssessment] = assessment.New(state, ctrl)
	screens[screen.PanelResults] = results.New(state, ctrl)
	screens[screen.PanelReview] = review.New(state)
	screens[screen.PanelRoadmap] = roadmap.New(state, ctrl)
	screens[screen.PanelChat] = chat.New(state, ctrl)

	return AppModel{router: r, ctrl: ctrl, log: log}
}

// Err is the fatal error that ended the program, if any.
func (m AppModel) Err() error { return m.err }

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.FatalMsg:
		m.log.Error("fatal", zap.Error(msg.Err))
		m.err = msg.Err
		return m, tea.Quit

	case wizard.AlertMsg:
		m.alert = &msg
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		if m.alert != nil {
			switch key {
			case "enter", "esc", "space", " ":
				m.alert = nil
			}
			return m, nil
		}
	}

	if cmd, ok := m.ctrl.Update(msg); ok {
		return m, cmd
	}
	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the whole frame as a string.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.router.ActivePanel().Step(), screen.Steps, m.width)
	footer := layout.RenderFooter(m.keyHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.alert != nil {
		content = renderAlert(*m.alert, m.width, contentHeight)
	} else {
		content = m.router.View(m.width, contentHeight)
	}

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) keyHints(active screen.Screen) []layout.KeyHint {
	if m.alert != nil {
		return []layout.KeyHint{{Key: "Enter", Description: "OK"}}
	}
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func renderAlert(a wizard.AlertMsg, width, height int) string {
	style := theme.Modal
	heading := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Notice")
	if a.Kind == wizard.AlertError {
		style = theme.ModalError
		heading = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong")
	}
	box := style.Width(min(width-4, 64)).Render(fmt.Sprintf("%s\n\n%s\n\n%s",
		heading,
		theme.Body.Render(a.Message),
		theme.Hint.Render("Press Enter to continue")))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// Run starts the Bubble Tea program and returns the error that ended it.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if m, ok := final.(AppModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
