package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/learnpath/internal/session"
)

// LoggingBackend is a decorator that logs every backend call.
type LoggingBackend struct {
	inner Backend
	log   *zap.Logger
}

// WithLogging wraps a Backend with structured call logging.
func WithLogging(b Backend, log *zap.Logger) Backend {
	return &LoggingBackend{inner: b, log: log}
}

func (l *LoggingBackend) SaveProfile(ctx context.Context, p session.Profile) error {
	ctx, done := l.begin(ctx, EndpointSaveProfile)
	err := l.inner.SaveProfile(ctx, p)
	done(err, zap.String("experience", p.Experience), zap.String("education", p.Education), zap.String("goal", p.Goal))
	return err
}

func (l *LoggingBackend) Questions(ctx context.Context) ([]session.Question, error) {
	ctx, done := l.begin(ctx, EndpointQuestions)
	qs, err := l.inner.Questions(ctx)
	done(err, zap.Int("questions", len(qs)))
	return qs, err
}

func (l *LoggingBackend) SubmitAnswers(ctx context.Context, answers []*string) (*session.Evaluation, error) {
	ctx, done := l.begin(ctx, EndpointSubmitAnswers)
	eval, err := l.inner.SubmitAnswers(ctx, answers)
	fields := []zap.Field{zap.Int("answers", len(answers))}
	if eval != nil {
		fields = append(fields, zap.Float64("score", eval.Score), zap.Int("areas", len(eval.Areas)))
	}
	done(err, fields...)
	return eval, err
}

func (l *LoggingBackend) GenerateRoadmap(ctx context.Context) (*session.Roadmap, error) {
	ctx, done := l.begin(ctx, EndpointRoadmap)
	rm, err := l.inner.GenerateRoadmap(ctx)
	var fields []zap.Field
	if rm != nil {
		fields = append(fields, zap.Int("weeks", len(rm.Weeks)))
	}
	done(err, fields...)
	return rm, err
}

func (l *LoggingBackend) Chat(ctx context.Context, req ChatRequest) (string, error) {
	ctx, done := l.begin(ctx, EndpointChat)
	reply, err := l.inner.Chat(ctx, req)
	done(err, zap.Int("message_len", len(req.Message)), zap.Int("reply_len", len(reply)))
	return reply, err
}

func (l *LoggingBackend) ClearSession(ctx context.Context) error {
	ctx, done := l.begin(ctx, EndpointClearSession)
	err := l.inner.ClearSession(ctx)
	done(err)
	return err
}

// begin tags ctx with a request id and returns a func that logs the outcome.
func (l *LoggingBackend) begin(ctx context.Context, endpoint Endpoint) (context.Context, func(error, ...zap.Field)) {
	id := uuid.NewString()
	ctx = WithRequestID(ctx, id)
	start := time.Now()

	return ctx, func(err error, extra ...zap.Field) {
		fields := append([]zap.Field{
			zap.String("endpoint", string(endpoint)),
			zap.String("request_id", id),
			zap.Int64("latency_ms", time.Since(start).Milliseconds()),
			zap.Bool("success", err == nil),
		}, extra...)
		if err != nil {
			l.log.Warn("backend call failed", append(fields, zap.Error(err))...)
			return
		}
		l.log.Info("backend call", fields...)
	}
}
