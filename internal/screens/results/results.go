// Package results shows the scored evaluation: overall score, a comparison
// chart and one feedback card per knowledge area.
package results

import (
	"strings"

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

// Actions are the follow-ups offered on the results panel.
type Actions interface {
	GenerateRoadmap() tea.Cmd
	Restart() tea.Cmd
}

// ResultsScreen renders the evaluation.
type ResultsScreen struct {
	state   *session.State
	actions Actions
	menu    components.Menu

	results views.Results
	ok      bool
	chart   *components.ScoreChart
	offset  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.Activator = (*ResultsScreen)(nil)

// New creates the results screen.
func New(state *session.State, actions Actions) *ResultsScreen {
	s := &ResultsScreen{state: state, actions: actions}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Review answers", Key: "v", Action: func() tea.Cmd { return router.Show(screen.PanelReview) }},
		{Label: "Generate roadmap", Key: "g", Action: actions.GenerateRoadmap},
		{Label: "Restart", Key: "r", Action: actions.Restart},
	})
	return s
}

func (s *ResultsScreen) Init() tea.Cmd { return nil }

func (s *ResultsScreen) Title() string { return "Your Results" }

// Activate rebuilds the view from the stored evaluation. The chart is
// replaced, never added to. Without an evaluation the previous render stays.
func (s *ResultsScreen) Activate() tea.Cmd {
	s.offset = 0
	r, ok := views.BuildResults(s.state.Evaluation)
	if !ok {
		return nil
	}
	s.results, s.ok = r, true
	chart := components.NewScoreChart(r.Chart, 0)
	s.chart = &chart
	return nil
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "←/→", Description: "Action"},
		{Key: "Enter", Description: "Run"},
		{Key: "V/G/R", Description: "Review / Roadmap / Restart"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		s.offset--
		return s, nil
	case "down", "j":
		s.offset++
		return s, nil
	case "pgup":
		s.offset -= 10
		return s, nil
	case "pgdown":
		s.offset += 10
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	menu := s.menu.View()
	if !s.ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No results yet.")+"\n\n"+menu)
	}

	cw := components.ContentWidth(width)
	body := s.renderBody(cw)

	viewHeight := height - lipgloss.Height(menu) - 1
	visible, offset := layout.Scroll(body, s.offset, viewHeight)
	s.offset = offset

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(visible)+"\n"+menu)
}

func (s *ResultsScreen) renderBody(cw int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render("Overall Score"))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, theme.Badge.Render(s.results.Overall)))
	b.WriteString("\n\n")

	if s.chart != nil {
		chart := *s.chart
		chart.Width = components.CardInnerWidth(cw)
		b.WriteString(components.Card(chart.View(), cw))
		b.WriteString("\n\n")
	}

	for _, c := range s.results.Cards {
		b.WriteString(renderCard(c, cw))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCard(c views.AreaCard, cw int) string {
	inner := components.CardInnerWidth(cw)
	var b strings.Builder
	b.WriteString(theme.Heading.Render(c.Name))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", c.Fill, false, inner).View())
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(c.ScoreLabel))
	b.WriteString("   ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(c.RecommendedLabel))
	if c.Feedback != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(inner).Render(c.Feedback))
	}
	return components.Card(b.String(), cw)
}
