package api

import (
	"context"
	"sync"

	"github.com/abhisek/learnpath/internal/session"
)

// MockResponse is a canned answer for one MockBackend call. Only the field
// matching the endpoint is used.
type MockResponse struct {
	Questions  []session.Question
	Evaluation *session.Evaluation
	Roadmap    *session.Roadmap
	Reply      string
	Err        error
}

// MockCall records one call made to a MockBackend.
type MockCall struct {
	Endpoint Endpoint
	Body     any
}

// MockBackend is a deterministic Backend for testing. Responses are queued
// per endpoint and served in FIFO order. An empty queue acknowledges
// save_profile and clear_session and fails every other call.
type MockBackend struct {
	mu        sync.Mutex
	responses map[Endpoint][]MockResponse
	Calls     []MockCall
}

// NewMockBackend creates an empty MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{responses: make(map[Endpoint][]MockResponse)}
}

// Queue appends canned responses for endpoint.
func (m *MockBackend) Queue(endpoint Endpoint, resps ...MockResponse) *MockBackend {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[endpoint] = append(m.responses[endpoint], resps...)
	return m
}

func (m *MockBackend) next(endpoint Endpoint, body any) (MockResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Endpoint: endpoint, Body: body})

	queue := m.responses[endpoint]
	if len(queue) == 0 {
		return MockResponse{}, false
	}
	m.responses[endpoint] = queue[1:]
	return queue[0], true
}

func (m *MockBackend) SaveProfile(_ context.Context, p session.Profile) error {
	resp, _ := m.next(EndpointSaveProfile, p)
	return resp.Err
}

func (m *MockBackend) Questions(_ context.Context) ([]session.Question, error) {
	resp, ok := m.next(EndpointQuestions, nil)
	if !ok {
		return nil, &TransportError{Endpoint: EndpointQuestions, Err: ErrNoResponse}
	}
	return resp.Questions, resp.Err
}

func (m *MockBackend) SubmitAnswers(_ context.Context, answers []*string) (*session.Evaluation, error) {
	resp, ok := m.next(EndpointSubmitAnswers, append([]*string(nil), answers...))
	if !ok {
		return nil, &TransportError{Endpoint: EndpointSubmitAnswers, Err: ErrNoResponse}
	}
	return resp.Evaluation, resp.Err
}

func (m *MockBackend) GenerateRoadmap(_ context.Context) (*session.Roadmap, error) {
	resp, ok := m.next(EndpointRoadmap, nil)
	if !ok {
		return nil, &TransportError{Endpoint: EndpointRoadmap, Err: ErrNoResponse}
	}
	return resp.Roadmap, resp.Err
}

func (m *MockBackend) Chat(_ context.Context, req ChatRequest) (string, error) {
	resp, ok := m.next(EndpointChat, req)
	if !ok {
		return "", &TransportError{Endpoint: EndpointChat, Err: ErrNoResponse}
	}
	return resp.Reply, resp.Err
}

func (m *MockBackend) ClearSession(_ context.Context) error {
	resp, _ := m.next(EndpointClearSession, nil)
	return resp.Err
}

// CallCount returns the number of calls made.
func (m *MockBackend) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// CallsTo returns the recorded calls to endpoint.
func (m *MockBackend) CallsTo(endpoint Endpoint) []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []MockCall
	for _, c := range m.Calls {
		if c.Endpoint == endpoint {
			out = append(out, c)
		}
	}
	return out
}
