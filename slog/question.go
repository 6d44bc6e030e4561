package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/qbank"
)

// Ensure LoggingQuestionService implements qbank.QuestionService.
var _ qbank.QuestionService = (*LoggingQuestionService)(nil)

// LoggingQuestionService wraps a QuestionService and logs each call.
// Lookups log at debug level, writes at info.
type LoggingQuestionService struct {
	next   qbank.QuestionService
	logger *slog.Logger
}

// NewLoggingQuestionService creates a new LoggingQuestionService.
func NewLoggingQuestionService(next qbank.QuestionService, logger *slog.Logger) *LoggingQuestionService {
	return &LoggingQuestionService{next: next, logger: logger}
}

func (s *LoggingQuestionService) FindQuestionBySlug(ctx context.Context, slug string) (q *qbank.Question, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find question",
			"slug", slug,
			"found", q != nil,
			"duration", time.Since(begin),
			"err", errOrNotFound(err),
		)
	}(time.Now())
	return s.next.FindQuestionBySlug(ctx, slug)
}

func (s *LoggingQuestionService) FindQuestions(ctx context.Context, filter qbank.QuestionFilter) (qs []*qbank.Question, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find questions",
			"count", len(qs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindQuestions(ctx, filter)
}

func (s *LoggingQuestionService) CreateQuestion(ctx context.Context, q *qbank.Question) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create question",
			"slug", q.Slug,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateQuestion(ctx, q)
}

func (s *LoggingQuestionService) UpdateQuestion(ctx context.Context, slug string, upd qbank.QuestionUpdate) (q *qbank.Question, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update question",
			"slug", slug,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateQuestion(ctx, slug, upd)
}

// errOrNotFound keeps a missing slug, which is routine during ingestion,
// from reading as a failure in the logs.
func errOrNotFound(err error) any {
	if qbank.ErrorCode(err) == qbank.ENOTFOUND {
		return nil
	}
	return err
}
