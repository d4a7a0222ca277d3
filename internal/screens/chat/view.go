package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
	"github.com/abhisek/learnpath/internal/views"
)

const typingText = "Assistant is typing..."

func (s *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	transcript := renderTranscript(views.BuildTranscript(s.state.Chat), s.state.Chat.Typing, cw)

	input := lipgloss.NewStyle().
		Width(cw).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Render(s.input.View())

	viewHeight := height - lipgloss.Height(input)
	total := lipgloss.Height(transcript)
	offset := total - viewHeight - s.back
	visible, offset := layout.Scroll(transcript, offset, viewHeight)
	s.back = max(total-viewHeight-offset, 0)

	pad := viewHeight - lipgloss.Height(visible)
	if pad > 0 {
		visible += strings.Repeat("\n", pad)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, visible+"\n"+input)
}

func renderTranscript(lines []views.ChatLine, typing bool, cw int) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(renderLine(l, cw))
		b.WriteString("\n\n")
	}
	if typing {
		b.WriteString(theme.Hint.Render(typingText))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderLine(l views.ChatLine, cw int) string {
	var b strings.Builder
	if l.Role == session.RoleUser {
		b.WriteString(theme.UserBubble.Render("You"))
	} else {
		b.WriteString(theme.AssistantBubble.Render("Assistant"))
	}
	b.WriteString("\n")

	for _, seg := range l.Segments {
		if seg.Code {
			b.WriteString(theme.CodeBlock.Width(cw - 2).Render(seg.Text))
			b.WriteString("\n")
			continue
		}
		text := strings.Trim(seg.Text, "\n")
		if text == "" {
			continue
		}
		b.WriteString(theme.Body.Width(cw).Render(text))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
