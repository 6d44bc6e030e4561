package mock

import (
	"context"

	"github.com/fwojciec/qbank"
)

var _ qbank.QuestionService = (*QuestionService)(nil)

// QuestionService is a mock implementation of qbank.QuestionService.
type QuestionService struct {
	FindQuestionBySlugFn func(ctx context.Context, slug string) (*qbank.Question, error)
	FindQuestionsFn      func(ctx context.Context, filter qbank.QuestionFilter) ([]*qbank.Question, error)
	CreateQuestionFn     func(ctx context.Context, q *qbank.Question) error
	UpdateQuestionFn     func(ctx context.Context, slug string, upd qbank.QuestionUpdate) (*qbank.Question, error)
}

func (s *QuestionService) FindQuestionBySlug(ctx context.Context, slug string) (*qbank.Question, error) {
	return s.FindQuestionBySlugFn(ctx, slug)
}

func (s *QuestionService) FindQuestions(ctx context.Context, filter qbank.QuestionFilter) ([]*qbank.Question, error) {
	return s.FindQuestionsFn(ctx, filter)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, q *qbank.Question) error {
	return s.CreateQuestionFn(ctx, q)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, slug string, upd qbank.QuestionUpdate) (*qbank.Question, error) {
	return s.UpdateQuestionFn(ctx, slug, upd)
}
