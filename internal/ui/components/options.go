package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/ui/theme"
)

// OptionList renders the answer options of a question. Cursor is the
// highlighted row; Chosen is the recorded answer id, if any.
type OptionList struct {
	IDs    []string
	Texts  []string
	Cursor int
	Chosen string
}

// MoveUp moves the cursor one row up.
func (o *OptionList) MoveUp() {
	if o.Cursor > 0 {
		o.Cursor--
	}
}

// MoveDown moves the cursor one row down.
func (o *OptionList) MoveDown() {
	if o.Cursor < len(o.IDs)-1 {
		o.Cursor++
	}
}

// CursorID returns the id under the cursor.
func (o OptionList) CursorID() (string, bool) {
	if o.Cursor < 0 || o.Cursor >= len(o.IDs) {
		return "", false
	}
	return o.IDs[o.Cursor], true
}

// View renders the options, wrapping long text to width.
func (o OptionList) View(width int) string {
	var b strings.Builder
	for i, id := range o.IDs {
		prefix := "  "
		if i == o.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if id == o.Chosen {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, id, o.Texts[i])
		style := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
		switch {
		case id == o.Chosen:
			style = style.Foreground(theme.Success).Bold(true)
		case i == o.Cursor:
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
