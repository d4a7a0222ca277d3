// Package roadmap exports a study roadmap as Markdown and reads it back.
package roadmap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/learnpath/internal/session"
)

// FileName is the default export file name.
const FileName = "learning-roadmap.md"

const (
	levelPrefix     = "Level: "
	scorePrefix     = "Overall Score: "
	weekPrefix      = "## Week "
	hoursPrefix     = "* Study Time: "
	modulesPrefix   = "* Modules: "
	lessonsPrefix   = "* Lessons: "
	topicsHeader    = "### Topics to Cover:"
	resourcesHeader = "### Recommended Resources:"
)

// Markdown renders r as the exported roadmap document.
func Markdown(r session.Roadmap) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", oneLine(r.Title))
	fmt.Fprintf(&b, "%s%s\n", levelPrefix, oneLine(r.Level))
	fmt.Fprintf(&b, "%s%s%%\n\n", scorePrefix, session.FormatNumber(r.OverallScore))

	for _, w := range r.Weeks {
		fmt.Fprintf(&b, "%s%d: %s\n\n", weekPrefix, w.Week, oneLine(w.Focus))
		fmt.Fprintf(&b, "%s%s hours\n", hoursPrefix, session.FormatNumber(w.Hours))
		fmt.Fprintf(&b, "%s%s\n", modulesPrefix, session.FormatNumber(w.Modules))
		fmt.Fprintf(&b, "%s%s\n\n", lessonsPrefix, session.FormatNumber(w.Lessons))

		b.WriteString(topicsHeader + "\n")
		for _, t := range w.Topics {
			fmt.Fprintf(&b, "* %s\n", oneLine(t))
		}

		b.WriteString("\n" + resourcesHeader + "\n")
		for _, res := range w.Resources {
			if res.URL != "" {
				fmt.Fprintf(&b, "* %s: [%s](%s)\n", oneLine(res.Type), oneLine(res.Title), oneLine(res.URL))
			} else {
				fmt.Fprintf(&b, "* %s: %s\n", oneLine(res.Type), oneLine(res.Title))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// oneLine folds line breaks into spaces so a field stays on its own line.
func oneLine(s string) string {
	return lineBreaks.Replace(s)
}

// ParseError reports a malformed line in a roadmap document.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type section int

const (
	sectionNone section = iota
	sectionTopics
	sectionResources
)

// ParseMarkdown reads a document produced by Markdown.
func ParseMarkdown(r io.Reader) (*session.Roadmap, error) {
	var (
		out     session.Roadmap
		week    *session.Week
		sect    section
		lineNo  int
		sawHead bool
	)

	fail := func(text string, err error) error {
		return &ParseError{Line: lineNo, Text: text, Err: err}
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")

		switch {
		case strings.TrimSpace(line) == "":
			continue

		case !sawHead && strings.HasPrefix(line, "# "):
			out.Title = strings.TrimPrefix(line, "# ")
			sawHead = true

		case week == nil && strings.HasPrefix(line, levelPrefix):
			out.Level = strings.TrimPrefix(line, levelPrefix)

		case week == nil && strings.HasPrefix(line, scorePrefix):
			v, err := parseNumber(strings.TrimSuffix(strings.TrimPrefix(line, scorePrefix), "%"))
			if err != nil {
				return nil, fail(line, err)
			}
			out.OverallScore = v

		case strings.HasPrefix(line, weekPrefix):
			numText, focus, ok := strings.Cut(strings.TrimPrefix(line, weekPrefix), ": ")
			if !ok {
				numText, focus = strings.TrimSuffix(strings.TrimPrefix(line, weekPrefix), ":"), ""
			}
			n, err := strconv.Atoi(numText)
			if err != nil {
				return nil, fail(line, fmt.Errorf("week number: %w", err))
			}
			out.Weeks = append(out.Weeks, session.Week{Week: n, Focus: focus})
			week = &out.Weeks[len(out.Weeks)-1]
			sect = sectionNone

		case week == nil:
			return nil, fail(line, fmt.Errorf("unexpected line before first week"))

		case line == topicsHeader:
			sect = sectionTopics

		case line == resourcesHeader:
			sect = sectionResources

		case sect == sectionNone && strings.HasPrefix(line, hoursPrefix):
			v, err := parseNumber(strings.TrimSuffix(strings.TrimPrefix(line, hoursPrefix), " hours"))
			if err != nil {
				return nil, fail(line, err)
			}
			week.Hours = v

		case sect == sectionNone && strings.HasPrefix(line, modulesPrefix):
			v, err := parseNumber(strings.TrimPrefix(line, modulesPrefix))
			if err != nil {
				return nil, fail(line, err)
			}
			week.Modules = v

		case sect == sectionNone && strings.HasPrefix(line, lessonsPrefix):
			v, err := parseNumber(strings.TrimPrefix(line, lessonsPrefix))
			if err != nil {
				return nil, fail(line, err)
			}
			week.Lessons = v

		case sect == sectionTopics && strings.HasPrefix(line, "* "):
			week.Topics = append(week.Topics, strings.TrimPrefix(line, "* "))

		case sect == sectionResources && strings.HasPrefix(line, "* "):
			res, err := parseResource(strings.TrimPrefix(line, "* "))
			if err != nil {
				return nil, fail(line, err)
			}
			week.Resources = append(week.Resources, res)

		default:
			return nil, fail(line, fmt.Errorf("unrecognised line"))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read roadmap: %w", err)
	}
	if !sawHead {
		return nil, fmt.Errorf("read roadmap: missing title")
	}
	return &out, nil
}

// parseResource reads "type: [title](url)" or "type: title". A link is split
// at its last ": [" so the type may itself contain ": ". For a plain title the
// type ends at the first ": ".
func parseResource(s string) (session.Resource, error) {
	if strings.HasSuffix(s, ")") {
		if i := strings.LastIndex(s, ": ["); i > 0 {
			link := s[i+3 : len(s)-1]
			if j := strings.LastIndex(link, "]("); j >= 0 {
				return session.Resource{Type: s[:i], Title: link[:j], URL: link[j+2:]}, nil
			}
		}
	}
	typ, rest, ok := strings.Cut(s, ": ")
	if !ok {
		return session.Resource{}, fmt.Errorf("resource without type")
	}
	return session.Resource{Type: typ, Title: rest}, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("number: %w", err)
	}
	return v, nil
}
