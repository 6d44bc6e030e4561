package ingest_test

import (
	"context"
	"sync"

	"github.com/fwojciec/qbank"
	"github.com/fwojciec/qbank/mock"
)

// memStore is an in-memory catalog built on the QuestionService mock.
type memStore struct {
	mu   sync.Mutex
	rows map[string]*qbank.Question
}

func newMemStore() (*memStore, *mock.QuestionService) {
	m := &memStore{rows: make(map[string]*qbank.Question)}
	svc := &mock.QuestionService{
		FindQuestionBySlugFn: func(_ context.Context, slug string) (*qbank.Question, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			q, ok := m.rows[slug]
			if !ok {
				return nil, qbank.Errorf(qbank.ENOTFOUND, "question %q not found", slug)
			}
			cp := *q
			return &cp, nil
		},
		CreateQuestionFn: func(_ context.Context, q *qbank.Question) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.rows[q.Slug]; ok {
				return qbank.Errorf(qbank.ECONFLICT, "question %q already exists", q.Slug)
			}
			q.ID = "id-" + q.Slug
			cp := *q
			m.rows[q.Slug] = &cp
			return nil
		},
		UpdateQuestionFn: func(_ context.Context, slug string, upd qbank.QuestionUpdate) (*qbank.Question, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			q, ok := m.rows[slug]
			if !ok {
				return nil, qbank.Errorf(qbank.ENOTFOUND, "question %q not found", slug)
			}
			upd.Apply(q)
			cp := *q
			return &cp, nil
		},
	}
	return m, svc
}

func (m *memStore) get(slug string) *qbank.Question {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[slug]
}

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func question(slug, title string) *qbank.Question {
	return &qbank.Question{
		Slug:       slug,
		Title:      title,
		Category:   "core-concepts",
		Difficulty: qbank.DifficultyMedium,
		Tags:       []string{"core-concepts"},
		Content:    "Explain " + title + " in detail.",
		Answer:     "An answer about " + title + ".",
	}
}
