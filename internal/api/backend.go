package api

import (
	"context"

	"github.com/abhisek/learnpath/internal/session"
)

// Endpoint is a backend route.
type Endpoint string

const (
	EndpointSaveProfile   Endpoint = "/api/save_profile"
	EndpointQuestions     Endpoint = "/api/get_questions"
	EndpointSubmitAnswers Endpoint = "/api/submit_answers"
	EndpointRoadmap       Endpoint = "/api/generate_roadmap"
	EndpointChat          Endpoint = "/api/chat"
	EndpointClearSession  Endpoint = "/api/clear_session"
)

// Backend is the assessment service as seen by the client. Every method
// blocks until the server answers or the context ends.
type Backend interface {
	// SaveProfile stores the learner profile in the server-side session.
	SaveProfile(ctx context.Context, p session.Profile) error

	// Questions fetches the assessment for the saved profile.
	Questions(ctx context.Context) ([]session.Question, error)

	// SubmitAnswers scores the answers. Unanswered entries are nil and are
	// sent as JSON null.
	SubmitAnswers(ctx context.Context, answers []*string) (*session.Evaluation, error)

	// GenerateRoadmap builds a study plan from the last evaluation.
	GenerateRoadmap(ctx context.Context) (*session.Roadmap, error)

	// Chat sends one user message with the learner's context and returns the
	// assistant's reply.
	Chat(ctx context.Context, req ChatRequest) (string, error)

	// ClearSession drops the server-side session.
	ClearSession(ctx context.Context) error
}

// ChatContext is what the assistant knows about the learner. Empty profile
// fields and missing results are sent as null.
type ChatContext struct {
	Experience        *string             `json:"experience"`
	Education         *string             `json:"education"`
	Goal              *string             `json:"goal"`
	EvaluationResults *session.Evaluation `json:"evaluationResults"`
	RoadmapData       *session.Roadmap    `json:"roadmapData"`
}

// ChatRequest is the body of a chat call.
type ChatRequest struct {
	Message string      `json:"message"`
	Context ChatContext `json:"context"`
}

// NewChatContext builds the chat context from the current state.
func NewChatContext(s *session.State) ChatContext {
	return ChatContext{
		Experience:        nullable(s.Profile.Experience),
		Education:         nullable(s.Profile.Education),
		Goal:              nullable(s.Profile.Goal),
		EvaluationResults: s.Evaluation,
		RoadmapData:       s.Roadmap,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type questionsResponse struct {
	Questions []session.Question `json:"questions"`
}

type answersRequest struct {
	Answers []*string `json:"answers"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
}
