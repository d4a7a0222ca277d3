// Package wizard drives the assessment flow: it validates input, runs backend
// calls as commands, applies their results to the session state and decides
// which panel comes next.
package wizard

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/api"
	"github.com/abhisek/learnpath/internal/export"
	"github.com/abhisek/learnpath/internal/roadmap"
	"github.com/abhisek/learnpath/internal/router"
	"github.com/abhisek/learnpath/internal/screen"
	"github.com/abhisek/learnpath/internal/session"
)

// Loading messages.
const (
	LoadingAssessment = "Loading your personalized assessment..."
	LoadingEvaluation = "Evaluating your answers..."
	LoadingRoadmap    = "Generating your personalized learning path..."
)

// User-facing failure messages.
const (
	ErrTextStart    = "There was an error starting the evaluation. Please try again."
	ErrTextEvaluate = "There was an error evaluating your answers. Please try again."
	ErrTextRoadmap  = "There was an error generating your learning path. Please try again."
	ErrTextExport   = "The roadmap could not be saved."
)

// Navigator switches the visible panel.
type Navigator interface {
	Show(p screen.Panel) (tea.Cmd, error)
}

// Controller owns the flow between panels. All methods must be called from
// the Bubble Tea update loop.
type Controller struct {
	state   *session.State
	backend api.Backend
	nav     Navigator
	writer  *export.Writer
	log     *zap.Logger

	busy    bool
	loading string

	// gen changes on restart so replies from before it are dropped.
	gen int
}

// New creates a Controller.
func New(state *session.State, backend api.Backend, nav Navigator, writer *export.Writer, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		state:   state,
		backend: backend,
		nav:     nav,
		writer:  writer,
		log:     log,
	}
}

// State returns the session state.
func (c *Controller) State() *session.State { return c.state }

// Busy reports whether a wizard call is in flight.
func (c *Controller) Busy() bool { return c.busy }

// LoadingMessage is the text for the loading panel.
func (c *Controller) LoadingMessage() string { return c.loading }

// SubmitProfile validates p, stores it, then saves it and fetches questions.
func (c *Controller) SubmitProfile(p session.Profile) tea.Cmd {
	if err := p.Validate(); err != nil {
		var verr *session.ValidationError
		errors.As(err, &verr)
		return alert(AlertError, verr.UserMessage(), err)
	}
	if c.busy {
		return nil
	}

	c.state.SetProfile(p)
	backend := c.backend
	return c.startCall(LoadingAssessment, func() tea.Msg {
		ctx := context.Background()
		if err := backend.SaveProfile(ctx, p); err != nil {
			return questionsLoadedMsg{Err: err}
		}
		qs, err := backend.Questions(ctx)
		if err != nil {
			return questionsLoadedMsg{Err: err}
		}
		if len(qs) == 0 {
			return questionsLoadedMsg{Err: session.ErrNoQuestions}
		}
		return questionsLoadedMsg{Questions: qs}
	})
}

// SubmitEvaluation posts every answer, unanswered ones as null. Asking the
// learner to confirm unanswered questions is the caller's job.
func (c *Controller) SubmitEvaluation() tea.Cmd {
	if c.busy || len(c.state.Questions) == 0 {
		return nil
	}

	answers := append([]*string(nil), c.state.Answers...)
	backend := c.backend
	return c.startCall(LoadingEvaluation, func() tea.Msg {
		eval, err := backend.SubmitAnswers(context.Background(), answers)
		return evaluationMsg{Evaluation: eval, Err: err}
	})
}

// GenerateRoadmap asks the server for a study plan.
func (c *Controller) GenerateRoadmap() tea.Cmd {
	if c.busy {
		return nil
	}

	backend := c.backend
	return c.startCall(LoadingRoadmap, func() tea.Msg {
		rm, err := backend.GenerateRoadmap(context.Background())
		return roadmapMsg{Roadmap: rm, Err: err}
	})
}

// DownloadRoadmap saves the current roadmap as Markdown. Without a roadmap it
// does nothing.
func (c *Controller) DownloadRoadmap() tea.Cmd {
	if c.state.Roadmap == nil || c.writer == nil {
		return nil
	}

	doc := []byte(roadmap.Markdown(*c.state.Roadmap))
	writer := c.writer
	return func() tea.Msg {
		path, err := writer.Write(roadmap.FileName, doc)
		return exportedMsg{Path: path, Err: err}
	}
}

// SendChat sends a chat message. Blank input and sends while a reply is
// pending are ignored.
func (c *Controller) SendChat(text string) tea.Cmd {
	msg, ok := c.state.Chat.Begin(text)
	if !ok {
		return nil
	}

	req := api.ChatRequest{Message: msg, Context: api.NewChatContext(c.state)}
	backend, gen := c.backend, c.gen
	return func() tea.Msg {
		reply, err := backend.Chat(context.Background(), req)
		return chatReplyMsg{Reply: reply, Err: err, gen: gen}
	}
}

// Restart clears all state, tells the server to drop its session without
// waiting for the answer, and returns to the profile panel.
// A pending chat call is not waited for; its reply is dropped.
func (c *Controller) Restart() tea.Cmd {
	c.state.Reset()
	c.busy = false
	c.loading = ""
	c.gen++

	backend := c.backend
	clearSession := func() tea.Msg {
		return sessionClearedMsg{Err: backend.ClearSession(context.Background())}
	}
	return tea.Batch(c.show(screen.PanelProfile), clearSession)
}

// Update applies a controller message. It reports false for messages it does
// not own.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		c.busy = false
		if msg.Err != nil {
			c.log.Error("start assessment", zap.Error(msg.Err), zap.String("endpoint", string(api.EndpointOf(msg.Err))))
			return c.fail(screen.PanelProfile, ErrTextStart, msg.Err), true
		}
		c.state.LoadQuestions(msg.Questions)
		c.log.Info("assessment loaded", zap.Int("questions", len(msg.Questions)))
		return c.show(screen.PanelAssessment), true

	case evaluationMsg:
		c.busy = false
		if msg.Err == nil && msg.Evaluation == nil {
			msg.Err = errors.New("empty evaluation")
		}
		if msg.Err != nil {
			c.log.Error("evaluate answers", zap.Error(msg.Err))
			return c.fail(screen.PanelAssessment, ErrTextEvaluate, msg.Err), true
		}
		c.state.SetEvaluation(msg.Evaluation)
		c.log.Info("assessment evaluated", zap.Float64("score", msg.Evaluation.Score))
		return c.show(screen.PanelResults), true

	case roadmapMsg:
		c.busy = false
		if msg.Err == nil && msg.Roadmap == nil {
			msg.Err = errors.New("empty roadmap")
		}
		if msg.Err != nil {
			c.log.Error("generate roadmap", zap.Error(msg.Err))
			return c.fail(screen.PanelResults, ErrTextRoadmap, msg.Err), true
		}
		c.state.SetRoadmap(msg.Roadmap)
		c.log.Info("roadmap generated", zap.Int("weeks", len(msg.Roadmap.Weeks)))
		return c.show(screen.PanelRoadmap), true

	case chatReplyMsg:
		if msg.gen != c.gen {
			return nil, true
		}
		if msg.Err != nil {
			c.log.Warn("chat", zap.Error(msg.Err))
			c.state.Chat.Fail()
			return nil, true
		}
		c.state.Chat.Complete(msg.Reply)
		return nil, true

	case sessionClearedMsg:
		if msg.Err != nil {
			c.log.Warn("clear session", zap.Error(msg.Err))
		} else {
			c.log.Info("session cleared")
		}
		return nil, true

	case exportedMsg:
		if msg.Err != nil {
			c.log.Error("export roadmap", zap.Error(msg.Err))
			return alert(AlertError, ErrTextExport, msg.Err), true
		}
		c.log.Info("roadmap exported", zap.String("path", msg.Path))
		return alert(AlertInfo, "Roadmap saved to "+msg.Path, nil), true
	}
	return nil, false
}

// startCall shows the loading panel and runs call.
func (c *Controller) startCall(loading string, call tea.Cmd) tea.Cmd {
	c.busy = true
	c.loading = loading
	return tea.Batch(c.show(screen.PanelLoading), call)
}

// fail returns to panel p and raises an alert.
func (c *Controller) fail(p screen.Panel, text string, err error) tea.Cmd {
	return tea.Batch(c.show(p), alert(AlertError, text, err))
}

func (c *Controller) show(p screen.Panel) tea.Cmd {
	cmd, err := c.nav.Show(p)
	if err != nil {
		return func() tea.Msg { return router.FatalMsg{Err: err} }
	}
	return cmd
}

func alert(kind AlertKind, text string, err error) tea.Cmd {
	return func() tea.Msg { return AlertMsg{Kind: kind, Message: text, Err: err} }
}
