// Package ingest moves parsed questions into the catalog. The Coordinator
// applies the create-only or upsert policy per question; the Importer drives
// a whole run from configured sources to a Report.
package ingest

import (
	"context"
	"log/slog"

	"github.com/fwojciec/qbank"
)

// Action is what ingestion did with one question.
type Action string

// Ingestion actions.
const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
)

// Outcome records the action taken for one question.
type Outcome struct {
	Slug   string
	Action Action
	Err    error
}

// Result holds the counts of one Ingest call. Outcomes is parallel to the
// questions passed in.
type Result struct {
	Created  int
	Updated  int
	Skipped  int
	Failed   int
	Outcomes []Outcome
}

// Coordinator writes questions to a QuestionService one at a time.
type Coordinator struct {
	Questions qbank.QuestionService
	Mode      qbank.Mode
	Logger    *slog.Logger
}

// NewCoordinator returns a Coordinator writing to questions in the given mode.
func NewCoordinator(questions qbank.QuestionService, mode qbank.Mode, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{Questions: questions, Mode: mode, Logger: logger}
}

// Ingest stores each question according to the mode. In create-only mode an
// existing slug is skipped; in upsert mode it is updated in place. A failure
// on one question is logged and counted and the remaining questions are
// still processed. Each question is committed independently.
func (c *Coordinator) Ingest(ctx context.Context, questions []*qbank.Question) *Result {
	res := &Result{Outcomes: make([]Outcome, 0, len(questions))}

	for _, q := range questions {
		action, err := c.ingestOne(ctx, q)
		if err != nil {
			c.Logger.Error("failed to store question", "title", q.Title, "slug", q.Slug, "err", err)
			action = ActionFailed
		}

		switch action {
		case ActionCreated:
			res.Created++
		case ActionUpdated:
			res.Updated++
		case ActionSkipped:
			res.Skipped++
		case ActionFailed:
			res.Failed++
		}
		res.Outcomes = append(res.Outcomes, Outcome{Slug: q.Slug, Action: action, Err: err})
	}

	return res
}

func (c *Coordinator) ingestOne(ctx context.Context, q *qbank.Question) (Action, error) {
	existing, err := c.Questions.FindQuestionBySlug(ctx, q.Slug)
	switch {
	case qbank.ErrorCode(err) == qbank.ENOTFOUND:
		if err := c.Questions.CreateQuestion(ctx, q); err != nil {
			return ActionFailed, err
		}
		return ActionCreated, nil
	case err != nil:
		return ActionFailed, err
	}

	if c.Mode != qbank.ModeUpsert {
		c.Logger.Debug("question exists, skipping", "slug", q.Slug)
		return ActionSkipped, nil
	}

	updated, err := c.Questions.UpdateQuestion(ctx, existing.Slug, qbank.ReplaceWith(q))
	if err != nil {
		return ActionFailed, err
	}
	q.ID = updated.ID
	q.ContentHash = updated.ContentHash
	q.CreatedAt = updated.CreatedAt
	q.UpdatedAt = updated.UpdatedAt
	return ActionUpdated, nil
}
