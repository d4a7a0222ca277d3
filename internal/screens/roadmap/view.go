package roadmap

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/theme"
	"github.com/abhisek/learnpath/internal/views"
)

// RenderHeader renders the title, level badge, score and week selector.
// active is the highlighted selector entry.
func RenderHeader(rm views.Roadmap, active, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(rm.Title))
	b.WriteString("\n")

	meta := theme.Badge.Render(rm.Level) + "  " +
		theme.Body.Render("Overall score: ") + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(rm.Score)
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, meta))
	b.WriteString("\n\n")

	tags := make([]string, len(rm.Selector))
	for i, label := range rm.Selector {
		if i == active {
			tags[i] = theme.TagActive.Render(label)
		} else {
			tags[i] = theme.Tag.Render(label)
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, strings.Join(tags, " ")))
	b.WriteString("\n")
	return b.String()
}

// RenderWeeks renders one card per week and returns the first line of each
// card within the result.
func RenderWeeks(rm views.Roadmap, cw int) (string, []int) {
	var b strings.Builder
	starts := make([]int, len(rm.Weeks))
	line := 0
	for i, w := range rm.Weeks {
		starts[i] = line
		card := renderWeek(w, cw)
		b.WriteString(card)
		b.WriteString("\n")
		line += lipgloss.Height(card)
	}
	return b.String(), starts
}

func renderWeek(w views.WeekCard, cw int) string {
	inner := components.CardInnerWidth(cw)

	var b strings.Builder
	b.WriteString(theme.Heading.Width(inner).Render(w.Heading))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(w.Stats))
	b.WriteString("\n")

	if len(w.Topics) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Body.Bold(true).Render("Topics"))
		b.WriteString("\n")
		tags := make([]string, len(w.Topics))
		for i, t := range w.Topics {
			tags[i] = theme.Tag.Render(t)
		}
		b.WriteString(lipgloss.NewStyle().Width(inner).Render(strings.Join(tags, " ")))
		b.WriteString("\n")
	}

	if len(w.Resources) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Body.Bold(true).Render("Resources"))
		b.WriteString("\n")
		for _, r := range w.Resources {
			kind := lipgloss.NewStyle().Foreground(theme.Accent).Render(r.Type + ":")
			title := theme.Body.Render(r.Title)
			if r.Linked() {
				title = theme.Link.Render(r.Title) + " " + theme.Hint.Render(r.URL)
			}
			b.WriteString(lipgloss.NewStyle().Width(inner).Render("• " + kind + " " + title))
			b.WriteString("\n")
		}
	}
	return components.Card(strings.TrimRight(b.String(), "\n"), cw)
}

// Render renders a whole roadmap for printing outside the TUI.
func Render(rm views.Roadmap, width int) string {
	cw := components.ContentWidth(width)
	body, _ := RenderWeeks(rm, cw)
	return RenderHeader(rm, -1, cw) + "\n" + body
}
