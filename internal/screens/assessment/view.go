package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/theme"
	"github.com/abhisek/learnpath/internal/views"
)

func (s *AssessmentScreen) View(width, height int) string {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No questions loaded."))
	}
	if s.confirm {
		return renderConfirm(s.pending, width, height)
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(theme.Heading.Render(s.counter()))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", s.state.Progress()/100, true, cw).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Bold(true).Width(cw).Render(views.Sanitize(q.Question)))
	b.WriteString("\n\n")

	b.WriteString(s.options.View(cw))
	b.WriteString("\n")
	b.WriteString(s.renderNav())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}

func (s *AssessmentScreen) renderNav() string {
	prev := theme.Tag.Render("← Previous")
	if s.state.IsFirst() {
		prev = theme.Disabled.Padding(0, 1).Render("← Previous")
	}
	next := theme.Tag.Render("Next →")
	if s.state.IsLast() {
		next = theme.Badge.Render("Submit [s]")
	}
	return prev + "  " + next
}

// confirmText is the unanswered-questions prompt.
func confirmText(unanswered int) string {
	return fmt.Sprintf("You have %d unanswered questions. Do you want to submit anyway?", unanswered)
}

func renderConfirm(unanswered, width, height int) string {
	text := confirmText(unanswered)
	box := theme.Modal.Width(min(width-4, 60)).Render(
		theme.Body.Render(text) + "\n\n" +
			theme.Hint.Render("[y] submit    [n] keep answering"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
