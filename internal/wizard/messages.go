package wizard

import (
	"github.com/abhisek/learnpath/internal/session"
)

// AlertKind selects how an alert is styled.
type AlertKind int

const (
	AlertError AlertKind = iota
	AlertInfo
)

// AlertMsg asks the app to show a modal notice that the user must dismiss.
type AlertMsg struct {
	Kind    AlertKind
	Message string

	// Err is the underlying failure, if any.
	Err error
}

// questionsLoadedMsg carries the result of save_profile + get_questions.
type questionsLoadedMsg struct {
	Questions []session.Question
	Err       error
}

// evaluationMsg carries the result of submit_answers.
type evaluationMsg struct {
	Evaluation *session.Evaluation
	Err        error
}

// roadmapMsg carries the result of generate_roadmap.
type roadmapMsg struct {
	Roadmap *session.Roadmap
	Err     error
}

// chatReplyMsg carries the result of a chat call.
type chatReplyMsg struct {
	Reply string
	Err   error
	gen   int
}

// sessionClearedMsg carries the result of clear_session.
type sessionClearedMsg struct {
	Err error
}

// exportedMsg carries the result of a roadmap download.
type exportedMsg struct {
	Path string
	Err  error
}
