package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/ui/theme"
)

// Choice is one selectable value.
type Choice struct {
	Value string
	Label string
}

// ChoiceGroup is a labelled single-select field. Selected is -1 until the
// user picks something.
type ChoiceGroup struct {
	Label    string
	Choices  []Choice
	Selected int
}

// NewChoiceGroup creates a group with nothing selected.
func NewChoiceGroup(label string, choices []Choice) ChoiceGroup {
	return ChoiceGroup{Label: label, Choices: choices, Selected: -1}
}

// Next selects the following choice, wrapping around.
func (g *ChoiceGroup) Next() {
	if len(g.Choices) == 0 {
		return
	}
	g.Selected = (g.Selected + 1) % len(g.Choices)
}

// Prev selects the preceding choice, wrapping around.
func (g *ChoiceGroup) Prev() {
	if len(g.Choices) == 0 {
		return
	}
	if g.Selected <= 0 {
		g.Selected = len(g.Choices) - 1
		return
	}
	g.Selected--
}

// Select picks the choice with value v, or clears the selection when v is
// not one of the choices.
func (g *ChoiceGroup) Select(v string) {
	g.Selected = -1
	for i, c := range g.Choices {
		if c.Value == v {
			g.Selected = i
			return
		}
	}
}

// Value returns the selected value or "".
func (g ChoiceGroup) Value() string {
	if g.Selected < 0 || g.Selected >= len(g.Choices) {
		return ""
	}
	return g.Choices[g.Selected].Value
}

// View renders the group on two lines: the label and the choices.
func (g ChoiceGroup) View(focused bool) string {
	labelStyle := theme.Body.Bold(true)
	if focused {
		labelStyle = theme.Selected
	}
	cursor := "  "
	if focused {
		cursor = "▸ "
	}

	parts := make([]string, len(g.Choices))
	for i, c := range g.Choices {
		switch {
		case i == g.Selected && focused:
			parts[i] = theme.TagActive.Render(c.Label)
		case i == g.Selected:
			parts[i] = theme.Tag.Foreground(theme.Accent).Bold(true).Render(c.Label)
		default:
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1).Render(c.Label)
		}
	}

	status := ""
	if g.Selected < 0 {
		status = theme.Hint.Render("  (choose one)")
	}
	return fmt.Sprintf("%s%s%s\n  %s", cursor, labelStyle.Render(g.Label), status, strings.Join(parts, " "))
}
