package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/ui/theme"
	"github.com/abhisek/learnpath/internal/views"
)

// seriesColors are used in series order.
var seriesColors = []color.Color{theme.Primary, theme.Accent, theme.Success, theme.Secondary}

// ScoreChart renders a grouped horizontal bar chart with a 0..100 scale.
type ScoreChart struct {
	Data  views.ChartData
	Width int
}

// NewScoreChart creates a chart over data.
func NewScoreChart(data views.ChartData, width int) ScoreChart {
	return ScoreChart{Data: data, Width: width}
}

// View renders the legend and one bar per label and series.
func (c ScoreChart) View() string {
	if len(c.Data.Labels) == 0 {
		return theme.Hint.Render("No areas to chart.")
	}

	labelWidth := 0
	for _, l := range c.Data.Labels {
		if w := lipgloss.Width(l); w > labelWidth {
			labelWidth = w
		}
	}
	if labelWidth > 24 {
		labelWidth = 24
	}

	barWidth := c.Width - labelWidth - 8
	if barWidth < 10 {
		barWidth = 10
	}

	var b strings.Builder
	legend := make([]string, len(c.Data.Series))
	for i, s := range c.Data.Series {
		legend[i] = lipgloss.NewStyle().Foreground(seriesColor(i)).Render("█ ") +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Name)
	}
	b.WriteString(strings.Join(legend, "   "))
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(theme.Text).Width(labelWidth).MaxWidth(labelWidth)
	for li, l := range c.Data.Labels {
		for si, s := range c.Data.Series {
			name := ""
			if si == 0 {
				name = l
			}
			v := 0.0
			if li < len(s.Values) {
				v = s.Values[li]
			}
			b.WriteString(label.Render(name))
			b.WriteString("  ")
			b.WriteString(bar(v, barWidth, seriesColor(si)))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %3.0f", clampScore(v))))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func bar(v float64, width int, fill color.Color) string {
	filled := int(clampScore(v)/100*float64(width) + 0.5)
	return lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("·", width-filled))
}

func seriesColor(i int) color.Color {
	return seriesColors[i%len(seriesColors)]
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
