package views

import (
	"fmt"
	"strings"

	"github.com/abhisek/learnpath/internal/session"
)

// ResourceLine is one study resource of a week.
type ResourceLine struct {
	Type  string
	Title string
	URL   string
}

// Linked reports whether the resource has a URL.
func (r ResourceLine) Linked() bool { return r.URL != "" }

// WeekCard is one week of the roadmap panel.
type WeekCard struct {
	Heading   string
	Stats     string
	Topics    []string
	Resources []ResourceLine
}

// Roadmap is the roadmap panel.
type Roadmap struct {
	Title string
	Level string
	Score string

	// Selector holds one short label per week, in week order.
	Selector []string
	Weeks    []WeekCard
}

// BuildRoadmap builds the roadmap panel.
func BuildRoadmap(r *session.Roadmap) (Roadmap, bool) {
	if r == nil {
		return Roadmap{}, false
	}

	out := Roadmap{
		Title:    Sanitize(r.Title),
		Level:    Sanitize(r.Level),
		Score:    Percent(r.OverallScore),
		Selector: make([]string, len(r.Weeks)),
		Weeks:    make([]WeekCard, len(r.Weeks)),
	}
	for i, w := range r.Weeks {
		out.Selector[i] = fmt.Sprintf("W%d", w.Week)
		card := WeekCard{
			Heading: fmt.Sprintf("Week %d: %s", w.Week, Sanitize(w.Focus)),
			Stats: strings.Join([]string{
				session.FormatNumber(w.Hours) + " hours",
				session.FormatNumber(w.Modules) + " modules",
				session.FormatNumber(w.Lessons) + " lessons",
			}, " · "),
		}
		for _, t := range w.Topics {
			card.Topics = append(card.Topics, Sanitize(t))
		}
		for _, res := range w.Resources {
			card.Resources = append(card.Resources, ResourceLine{
				Type:  Sanitize(res.Type),
				Title: Sanitize(res.Title),
				URL:   Sanitize(res.URL),
			})
		}
		out.Weeks[i] = card
	}
	return out, true
}
