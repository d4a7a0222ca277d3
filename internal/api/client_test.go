package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnpath/internal/session"
)

const sessionCookie = "user_id"

// fakeServer mimics the assessment backend: it keys state on a cookie set by
// save_profile and rejects calls without it.
type fakeServer struct {
	profile   session.Profile
	answers   string
	chatBody  string
	requestID string
	cleared   bool
}

func (f *fakeServer) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	requireSession := func(c *gin.Context) {
		if _, err := c.Cookie(sessionCookie); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "User profile not found"})
			return
		}
		c.Next()
	}

	r.POST("/api/save_profile", func(c *gin.Context) {
		f.requestID = c.GetHeader("X-Request-ID")
		if err := c.ShouldBindJSON(&f.profile); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.SetCookie(sessionCookie, "u-1", 3600, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	api := r.Group("/api", requireSession)
	api.GET("/get_questions", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`{"questions":[
			{"id":1,"question":"What is a goroutine?","options":[{"id":"A","text":"a thread"},{"id":"B","text":"a lightweight thread"}],"correctAnswer":"B"},
			{"id":2,"question":"What is a channel?","options":[{"id":"A","text":"a pipe"},{"id":"B","text":"a lock"}],"correctAnswer":"A"}
		]}`))
	})
	api.POST("/submit_answers", func(c *gin.Context) {
		raw, _ := c.GetRawData()
		f.answers = string(raw)
		c.Data(http.StatusOK, "application/json", []byte(`{"score":80,
			"areas":{"Go":{"score":80,"recommended":90,"feedback":"solid"},"Concurrency":{"score":50,"recommended":70,"feedback":"practice"}},
			"review":[{"question_id":1,"user_answer":"B","correct":true,"explanation":"yes"},{"question_id":2,"user_answer":null,"correct":false,"explanation":"pipe"}]}`))
	})
	api.GET("/generate_roadmap", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`{"title":"Go Path","level":"Beginner","overall_score":80,"weeks":[
			{"week":1,"focus":"Basics","hours":10,"modules":3,"lessons":6,"topics":["syntax"],"resources":[{"type":"Book","title":"Tour","url":"https://go.dev/tour"},{"type":"Video","title":"Intro","url":null}]}
		]}`))
	})
	api.POST("/chat", func(c *gin.Context) {
		raw, _ := c.GetRawData()
		f.chatBody = string(raw)
		c.JSON(http.StatusOK, gin.H{"response": "Start with week 1."})
	})
	api.POST("/clear_session", func(c *gin.Context) {
		f.cleared = true
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL + "/")
	require.NoError(t, err)
	return c
}

func TestClient_Flow(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f.router())
	ctx := WithRequestID(context.Background(), "req-42")

	profile := session.Profile{Experience: "beginner", Education: "self-taught", Goal: "career-switch"}
	require.NoError(t, c.SaveProfile(ctx, profile))
	assert.Equal(t, profile, f.profile)
	assert.Equal(t, "req-42", f.requestID)

	qs, err := c.Questions(context.Background())
	require.NoError(t, err, "session cookie should be replayed")
	require.Len(t, qs, 2)
	assert.Equal(t, session.QuestionID("1"), qs[0].ID)
	assert.Equal(t, "B", qs[0].CorrectAnswer)

	b := "B"
	eval, err := c.SubmitAnswers(context.Background(), []*string{&b, nil})
	require.NoError(t, err)
	assert.JSONEq(t, `{"answers":["B",null]}`, f.answers)
	assert.Equal(t, 80.0, eval.Score)
	assert.Equal(t, []string{"Go", "Concurrency"}, eval.Areas.Names())
	require.Len(t, eval.Review, 2)
	assert.Nil(t, eval.Review[1].UserAnswer)

	rm, err := c.GenerateRoadmap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Go Path", rm.Title)
	require.Len(t, rm.Weeks, 1)
	assert.Equal(t, "https://go.dev/tour", rm.Weeks[0].Resources[0].URL)
	assert.Empty(t, rm.Weeks[0].Resources[1].URL)

	state := session.New()
	state.SetProfile(profile)
	reply, err := c.Chat(context.Background(), ChatRequest{Message: "where do I start?", Context: NewChatContext(state)})
	require.NoError(t, err)
	assert.Equal(t, "Start with week 1.", reply)
	assert.JSONEq(t, `{"message":"where do I start?","context":{"experience":"beginner","education":"self-taught","goal":"career-switch","evaluationResults":null,"roadmapData":null}}`, f.chatBody)

	require.NoError(t, c.ClearSession(context.Background()))
	assert.True(t, f.cleared)
}

func TestClient_StatusError(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f.router())

	_, err := c.Questions(context.Background())
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, "User profile not found", se.Message)
	assert.Equal(t, EndpointQuestions, EndpointOf(err))
}

func TestClient_StatusErrorWithoutBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.GenerateRoadmap(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Empty(t, se.Message)
}

func TestClient_InvalidResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
		call func(*Client) error
	}{
		{
			name: "questions missing",
			body: `{"items":[]}`,
			call: func(c *Client) error { _, err := c.Questions(context.Background()); return err },
		},
		{
			name: "not json",
			body: `<html>`,
			call: func(c *Client) error { _, err := c.GenerateRoadmap(context.Background()); return err },
		},
		{
			name: "area without score",
			body: `{"score":1,"areas":{"Go":{"feedback":"x"}}}`,
			call: func(c *Client) error { _, err := c.SubmitAnswers(context.Background(), nil); return err },
		},
		{
			name: "chat reply not a string",
			body: `{"response":42}`,
			call: func(c *Client) error { _, err := c.Chat(context.Background(), ChatRequest{Message: "hi"}); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			err := tt.call(c)
			var ie *InvalidResponseError
			require.True(t, errors.As(err, &ie), "got %v", err)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url, WithTimeout(time.Second))
	require.NoError(t, err)

	err = c.SaveProfile(context.Background(), session.Profile{})
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, EndpointSaveProfile, te.Endpoint)
}

func TestClient_GeneratesRequestID(t *testing.T) {
	var got string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, c.ClearSession(context.Background()))
	assert.Len(t, got, 36)
}

func TestClient_SubmitNilAnswersSendsArray(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = sonic.Unmarshal(raw, &body)
		_, _ = w.Write([]byte(`{"score":0,"areas":{}}`))
	}))

	_, err := c.SubmitAnswers(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []any{}, body["answers"])
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	for _, u := range []string{"localhost:5000", "ftp://host", "://"} {
		_, err := NewClient(u)
		assert.Error(t, err, u)
	}
}

func TestNewClient_OptionsLeaveCallerClientAlone(t *testing.T) {
	hc := &http.Client{}
	c, err := NewClient("http://localhost:8080", WithTimeout(time.Second), WithHTTPClient(hc))
	require.NoError(t, err)

	assert.Equal(t, time.Second, c.http.Timeout, "timeout applies whatever the option order")
	assert.NotNil(t, c.http.Jar)
	assert.NotSame(t, hc, c.http)
	assert.Nil(t, hc.Jar)
	assert.Zero(t, hc.Timeout)
}
