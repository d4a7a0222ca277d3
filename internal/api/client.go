package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/abhisek/learnpath/internal/session"
)

// Client talks to the assessment backend over HTTP/JSON. The server keys its
// session on a cookie, so the client keeps a cookie jar for its lifetime.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

type options struct {
	http    *http.Client
	timeout *time.Duration
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient uses a copy of hc as the underlying HTTP client. hc itself is
// never modified. A copy without a jar gets one.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.http = hc
	}
}

// WithTimeout sets a per-request timeout. Zero means none. It applies
// regardless of where it appears relative to WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = &d
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL %q: scheme must be http or https", baseURL)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	hc := &http.Client{}
	if o.http != nil {
		cp := *o.http
		hc = &cp
	}
	if o.timeout != nil {
		hc.Timeout = *o.timeout
	}
	if hc.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		hc.Jar = jar
	}
	return &Client{baseURL: u, http: hc}, nil
}

// BaseURL returns the backend address.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) SaveProfile(ctx context.Context, p session.Profile) error {
	return c.do(ctx, http.MethodPost, EndpointSaveProfile, p, nil, nil)
}

func (c *Client) Questions(ctx context.Context) ([]session.Question, error) {
	var out questionsResponse
	if err := c.do(ctx, http.MethodGet, EndpointQuestions, nil, &out, QuestionsSchema); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func (c *Client) SubmitAnswers(ctx context.Context, answers []*string) (*session.Evaluation, error) {
	if answers == nil {
		answers = []*string{}
	}
	var out session.Evaluation
	if err := c.do(ctx, http.MethodPost, EndpointSubmitAnswers, answersRequest{Answers: answers}, &out, EvaluationSchema); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateRoadmap(ctx context.Context) (*session.Roadmap, error) {
	var out session.Roadmap
	if err := c.do(ctx, http.MethodGet, EndpointRoadmap, nil, &out, RoadmapSchema); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	var out chatResponse
	if err := c.do(ctx, http.MethodPost, EndpointChat, req, &out, ChatSchema); err != nil {
		return "", err
	}
	return out.Response, nil
}

func (c *Client) ClearSession(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, EndpointClearSession, struct{}{}, nil, nil)
}

// do sends one request. A non-nil body is JSON-encoded; a non-nil out is
// decoded from the response after schema validation.
func (c *Client) do(ctx context.Context, method string, endpoint Endpoint, body, out any, schema *Schema) error {
	var reader io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+string(endpoint), reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", RequestIDFrom(ctx))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err := validateBody(endpoint, schema, raw); err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return &InvalidResponseError{Endpoint: endpoint, Body: raw, Err: err}
	}
	return nil
}

// errorMessage extracts the "error" field of an error body.
func errorMessage(raw []byte) string {
	var e errorResponse
	if err := sonic.Unmarshal(raw, &e); err != nil {
		return ""
	}
	return e.Error
}
