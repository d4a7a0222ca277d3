package views

import (
	"regexp"
	"strings"

	"github.com/abhisek/learnpath/internal/session"
)

var codeFence = regexp.MustCompile("(?s)```(.*?)```")

// Segment is a run of chat text; Code segments render as blocks.
type Segment struct {
	Code bool
	Text string
}

// Segments splits content on ```fenced``` blocks. An unterminated fence stays
// plain text. A language tag on the opening fence line is dropped.
func Segments(content string) []Segment {
	content = Sanitize(content)

	var out []Segment
	last := 0
	for _, m := range codeFence.FindAllStringSubmatchIndex(content, -1) {
		if m[0] > last {
			out = append(out, Segment{Text: content[last:m[0]]})
		}
		out = append(out, Segment{Code: true, Text: codeBody(content[m[2]:m[3]])})
		last = m[1]
	}
	if last < len(content) {
		out = append(out, Segment{Text: content[last:]})
	}
	return out
}

func codeBody(s string) string {
	if first, rest, ok := strings.Cut(s, "\n"); ok && isLangTag(first) {
		s = rest
	}
	return strings.Trim(s, "\n")
}

func isLangTag(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '#') {
			return false
		}
	}
	return true
}

// ChatLine is one rendered transcript entry.
type ChatLine struct {
	Role     string
	Segments []Segment
}

// BuildTranscript converts the chat transcript into rendered lines.
func BuildTranscript(c session.Chat) []ChatLine {
	lines := make([]ChatLine, len(c.Transcript))
	for i, m := range c.Transcript {
		lines[i] = ChatLine{Role: m.Role, Segments: Segments(m.Content)}
	}
	return lines
}
