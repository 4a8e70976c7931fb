package client

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/wikiquiz/internal/quiz"
)

// LoggingService is a decorator that logs every Service call.
type LoggingService struct {
	inner Service
	log   *zap.Logger
}

// WithLogging wraps a Service with structured call logging. A nil logger
// returns svc unchanged.
func WithLogging(svc Service, log *zap.Logger) Service {
	if log == nil {
		return svc
	}
	return &LoggingService{inner: svc, log: log.Named("client")}
}

func (l *LoggingService) GenerateQuiz(ctx context.Context, url string) (*quiz.Quiz, error) {
	start := time.Now()
	q, err := l.inner.GenerateQuiz(ctx, url)

	fields := append([]zap.Field{zap.String("url", url)}, quizFields(q)...)
	l.record(OpGenerateQuiz, start, err, fields...)
	return q, err
}

func (l *LoggingService) ListHistory(ctx context.Context) ([]quiz.HistoryEntry, error) {
	start := time.Now()
	entries, err := l.inner.ListHistory(ctx)
	l.record(OpListHistory, start, err, zap.Int("entries", len(entries)))
	return entries, err
}

func (l *LoggingService) FetchQuiz(ctx context.Context, id quiz.ID) (*quiz.Quiz, error) {
	start := time.Now()
	q, err := l.inner.FetchQuiz(ctx, id)
	fields := append([]zap.Field{zap.String("id", id.String())}, quizFields(q)...)
	l.record(OpFetchQuiz, start, err, fields...)
	return q, err
}

// quizFields describes q. Questions whose answer matches no option still
// render, so they are only counted here.
func quizFields(q *quiz.Quiz) []zap.Field {
	if q == nil {
		return nil
	}
	fields := []zap.Field{zap.String("title", q.ArticleTitle), zap.Int("questions", len(q.Questions))}
	unmatched := 0
	for _, question := range q.Questions {
		if !question.AnswerInOptions() {
			unmatched++
		}
	}
	if unmatched > 0 {
		fields = append(fields, zap.Int("unmatched_answers", unmatched))
	}
	return fields
}

func (l *LoggingService) record(op Op, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("op", string(op)),
		zap.Duration("latency", time.Since(start)),
	)
	if err == nil {
		l.log.Info("service call", fields...)
		return
	}

	var se *ServiceError
	if errors.As(err, &se) {
		fields = append(fields, zap.Stringer("kind", se.Kind), zap.Int("status", se.StatusCode))
		if se.Err != nil {
			fields = append(fields, zap.NamedError("cause", se.Err))
		}
	}
	fields = append(fields, zap.Error(err))
	if IsMalformed(err) {
		l.log.Error("service response rejected", fields...)
		return
	}
	l.log.Warn("service call failed", fields...)
}
