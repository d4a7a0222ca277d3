// Package profile is the first wizard panel: the learner picks their
// experience, education and goal.
package profile

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
	"github.com/abhisek/learnpath/internal/ui/components"
	"github.com/abhisek/learnpath/internal/ui/layout"
	"github.com/abhisek/learnpath/internal/ui/theme"
)

// Submitter receives the completed form.
type Submitter interface {
	SubmitProfile(p session.Profile) tea.Cmd
}

var (
	experienceChoices = []components.Choice{
		{Value: "beginner", Label: "Beginner"},
		{Value: "intermediate", Label: "Intermediate"},
		{Value: "advanced", Label: "Advanced"},
	}
	educationChoices = []components.Choice{
		{Value: "cs-degree", Label: "CS Degree"},
		{Value: "bootcamp", Label: "Bootcamp"},
		{Value: "self-taught", Label: "Self-taught"},
		{Value: "none", Label: "None"},
	}
	goalChoices = []components.Choice{
		{Value: "interview-prep", Label: "Interview Prep"},
		{Value: "career-switch", Label: "Career Switch"},
		{Value: "skill-growth", Label: "Skill Growth"},
		{Value: "academic", Label: "Academic"},
	}
)

const (
	fieldExperience = iota
	fieldEducation
	fieldGoal
	fieldStart
)

// ProfileScreen collects the learner profile.
type ProfileScreen struct {
	state  *session.State
	submit Submitter
	groups [3]components.ChoiceGroup
	focus  int
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)
var _ screen.Activator = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(state *session.State, submit Submitter) *ProfileScreen {
	return &ProfileScreen{
		state:  state,
		submit: submit,
		groups: [3]components.ChoiceGroup{
			components.NewChoiceGroup("Experience level", experienceChoices),
			components.NewChoiceGroup("Education background", educationChoices),
			components.NewChoiceGroup("Learning goal", goalChoices),
		},
	}
}

func (s *ProfileScreen) Init() tea.Cmd { return nil }

func (s *ProfileScreen) Title() string { return "Your Profile" }

// Activate syncs the form with the stored profile, so a restart clears it.
func (s *ProfileScreen) Activate() tea.Cmd {
	p := s.state.Profile
	s.groups[fieldExperience].Select(p.Experience)
	s.groups[fieldEducation].Select(p.Education)
	s.groups[fieldGoal].Select(p.Goal)
	s.focus = fieldExperience
	return nil
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Field"},
		{Key: "←/→", Description: "Choose"},
		{Key: "Enter", Description: "Next / Start"},
	}
}

// Profile returns the profile currently selected in the form.
func (s *ProfileScreen) Profile() session.Profile {
	return session.Profile{
		Experience: s.groups[fieldExperience].Value(),
		Education:  s.groups[fieldEducation].Value(),
		Goal:       s.groups[fieldGoal].Value(),
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "up", "shift+tab", "k":
		if s.focus > 0 {
			s.focus--
		}
	case "down", "tab", "j":
		if s.focus < fieldStart {
			s.focus++
		}
	case "left", "h":
		if s.focus < fieldStart {
			s.groups[s.focus].Prev()
		}
	case "right", "l":
		if s.focus < fieldStart {
			s.groups[s.focus].Next()
		}
	case "1", "2", "3", "4":
		if s.focus < fieldStart {
			i := int(key[0] - '1')
			if i < len(s.groups[s.focus].Choices) {
				s.groups[s.focus].Selected = i
			}
		}
	case "enter":
		if s.focus < fieldStart {
			s.focus++
			return s, nil
		}
		return s, s.submit.SubmitProfile(s.Profile())
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Tell us about yourself"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("We'll tailor the assessment to your background."))
	b.WriteString("\n\n")

	for i, g := range s.groups {
		b.WriteString(g.View(s.focus == i))
		b.WriteString("\n\n")
	}

	start := "Start assessment"
	if s.focus == fieldStart {
		b.WriteString(theme.TagActive.Render("▸ " + start))
	} else {
		b.WriteString(theme.Tag.Render(start))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}
