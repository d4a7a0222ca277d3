package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// Profile is the learner's self-description collected before the assessment.
// An empty field means "not chosen".
type Profile struct {
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Goal       string `json:"goal"`
}

// IsZero reports whether no field has been chosen.
func (p Profile) IsZero() bool {
	return p.Experience == "" && p.Education == "" && p.Goal == ""
}

// Validate returns a *ValidationError naming every empty field.
func (p Profile) Validate() error {
	var missing []string
	if strings.TrimSpace(p.Experience) == "" {
		missing = append(missing, "experience")
	}
	if strings.TrimSpace(p.Education) == "" {
		missing = append(missing, "education")
	}
	if strings.TrimSpace(p.Goal) == "" {
		missing = append(missing, "goal")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// QuestionID identifies a question. The backend sends numbers; other
// deployments send strings. Both decode to the same string form so review
// items can be matched against questions regardless of the wire shape.
type QuestionID string

// UnmarshalJSON accepts a JSON string or number.
func (id *QuestionID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*id = ""
	case b[0] == '"':
		var s string
		if err := sonic.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("question id: %w", err)
		}
		*id = QuestionID(s)
	default:
		if _, err := strconv.ParseFloat(string(b), 64); err != nil {
			return fmt.Errorf("question id: unexpected value %s", b)
		}
		*id = QuestionID(b)
	}
	return nil
}

// MarshalJSON writes numeric ids back as numbers.
func (id QuestionID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(id), 64); err == nil && id != "" {
		return []byte(id), nil
	}
	return sonic.Marshal(string(id))
}

// Option is one answer choice of a question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a multiple-choice assessment item. Immutable once fetched.
type Question struct {
	ID            QuestionID `json:"id"`
	Question      string     `json:"question"`
	Options       []Option   `json:"options"`
	CorrectAnswer string     `json:"correctAnswer"`
}

// AreaScore is the evaluation of one knowledge area.
type AreaScore struct {
	Score       float64 `json:"score"`
	Recommended float64 `json:"recommended"`
	Feedback    string  `json:"feedback"`
}

// Area is a named AreaScore.
type Area struct {
	Name string
	AreaScore
}

// Areas keeps the evaluated areas in the order the server listed them.
type Areas []Area

// UnmarshalJSON decodes a JSON object keeping key order.
func (a *Areas) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("areas: %w", err)
	}
	if tok == nil {
		*a = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("areas: expected object, got %v", tok)
	}

	var out Areas
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("areas: %w", err)
		}
		name, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("areas: %q: %w", name, err)
		}
		var score AreaScore
		if err := sonic.Unmarshal(raw, &score); err != nil {
			return fmt.Errorf("areas: %q: %w", name, err)
		}
		out = append(out, Area{Name: name, AreaScore: score})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("areas: %w", err)
	}
	*a = out
	return nil
}

// MarshalJSON encodes the areas as an object in their current order.
func (a Areas) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, area := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := sonic.Marshal(area.Name)
		if err != nil {
			return nil, err
		}
		val, err := sonic.Marshal(area.AreaScore)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Names returns the area names in order.
func (a Areas) Names() []string {
	names := make([]string, len(a))
	for i, area := range a {
		names[i] = area.Name
	}
	return names
}

// ReviewItem is the server's verdict on one answered (or skipped) question.
type ReviewItem struct {
	QuestionID  QuestionID `json:"question_id"`
	UserAnswer  *string    `json:"user_answer"`
	Correct     bool       `json:"correct"`
	Explanation string     `json:"explanation"`
}

// Evaluation is the scored result of a submitted assessment.
type Evaluation struct {
	Score  float64      `json:"score"`
	Areas  Areas        `json:"areas"`
	Review []ReviewItem `json:"review,omitempty"`
}

// Resource is a study resource attached to a roadmap week.
type Resource struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// Week is one week of a roadmap.
type Week struct {
	Week      int        `json:"week"`
	Focus     string     `json:"focus"`
	Hours     float64    `json:"hours"`
	Modules   float64    `json:"modules"`
	Lessons   float64    `json:"lessons"`
	Topics    []string   `json:"topics"`
	Resources []Resource `json:"resources"`
}

// Roadmap is a generated week-by-week study plan.
type Roadmap struct {
	Title        string  `json:"title"`
	Level        string  `json:"level"`
	OverallScore float64 `json:"overall_score"`
	Weeks        []Week  `json:"weeks"`
}

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FormatNumber renders a score or count without a trailing ".0".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
