// Package review walks through every answered question with its verdict and
// explanation.
package review

import (
	"fmt"
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

// ReviewScreen lists the reviewed questions.
type ReviewScreen struct {
	state  *session.State
	cards  []views.ReviewCard
	offset int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)
var _ screen.Activator = (*ReviewScreen)(nil)

// New creates the review screen.
func New(state *session.State) *ReviewScreen {
	return &ReviewScreen{state: state}
}

func (s *ReviewScreen) Init() tea.Cmd { return nil }

func (s *ReviewScreen) Title() string { return "Answer Review" }

// Activate rebuilds the cards from the stored review.
func (s *ReviewScreen) Activate() tea.Cmd {
	s.offset = 0
	s.cards = views.BuildReview(s.state.Questions, s.state.Review)
	return nil
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back to results"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		s.offset--
	case "down", "j":
		s.offset++
	case "pgup":
		s.offset -= 10
	case "pgdown":
		s.offset += 10
	case "esc", "b":
		return s, router.Show(screen.PanelResults)
	}
	return s, nil
}

func (s *ReviewScreen) View(width, height int) string {
	if len(s.cards) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nothing to review."))
	}

	cw := components.ContentWidth(width)
	var b strings.Builder
	for _, c := range s.cards {
		b.WriteString(renderCard(c, cw))
		b.WriteString("\n")
	}

	visible, offset := layout.Scroll(b.String(), s.offset, height)
	s.offset = offset
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, visible)
}

func renderCard(c views.ReviewCard, cw int) string {
	inner := components.CardInnerWidth(cw)

	var b strings.Builder
	verdict := theme.Correct.Render("✓ Correct")
	if !c.Correct {
		verdict = theme.Incorrect.Render("✗ Incorrect")
	}
	b.WriteString(theme.Heading.Render(fmt.Sprintf("Question %d", c.Number)))
	b.WriteString("  ")
	b.WriteString(verdict)
	b.WriteString("\n")
	b.WriteString(theme.Body.Bold(true).Width(inner).Render(c.Question))
	b.WriteString("\n\n")

	for _, o := range c.Options {
		b.WriteString(optionStyle(o.Class).Width(inner).Render(fmt.Sprintf("%s %s)  %s", marker(o.Class), o.ID, o.Text)))
		b.WriteString("\n")
	}
	if c.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(inner).Render(c.Explanation))
	}
	return components.Card(b.String(), cw)
}

func optionStyle(c views.OptionClass) lipgloss.Style {
	switch c.Style() {
	case views.StyleCorrect:
		return theme.Correct
	case views.StyleIncorrect:
		return theme.Incorrect
	}
	return theme.Unselected
}

func marker(c views.OptionClass) string {
	switch c {
	case views.CorrectChosen:
		return "✓"
	case views.IncorrectChosen:
		return "✗"
	case views.CorrectNotChosen:
		return "→"
	}
	return " "
}
