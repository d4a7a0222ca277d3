package session

import (
	"errors"
	"strings"
)

// ErrNoQuestions is returned when an assessment is started without questions.
var ErrNoQuestions = errors.New("no questions available")

// ValidationError reports profile fields left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing profile fields: " + strings.Join(e.Missing, ", ")
}

// UserMessage is the text shown to the learner.
func (e *ValidationError) UserMessage() string {
	return "Please fill in all the fields before continuing"
}
