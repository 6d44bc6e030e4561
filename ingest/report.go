package ingest

import (
	"fmt"
	"time"

	"github.com/fwojciec/qbank"
	"github.com/fwojciec/qbank/parse"
	"github.com/fwojciec/qbank/quality"
)

// Report describes one import run for console output and editorial review.
type Report struct {
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt time.Time  `json:"finishedAt"`
	Mode       qbank.Mode `json:"mode"`
	DryRun     bool       `json:"dryRun"`

	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
	Rejected int `json:"rejected"`

	DocumentsFetched int `json:"documentsFetched"`
	DocumentsTotal   int `json:"documentsTotal"`

	Documents []*DocumentReport `json:"documents"`
}

// DocumentReport describes one source document.
type DocumentReport struct {
	Location  string            `json:"location"`
	Category  string            `json:"category"`
	Error     string            `json:"error,omitempty"`
	Questions []*QuestionReport `json:"questions"`
	Rejected  []parse.Rejection `json:"rejected,omitempty"`
}

// QuestionReport describes one parsed question and what happened to it.
type QuestionReport struct {
	Slug             string           `json:"slug"`
	Title            string           `json:"title"`
	Order            int              `json:"order"`
	Difficulty       qbank.Difficulty `json:"difficulty"`
	DifficultySource qbank.Provenance `json:"difficultySource"`
	Tags             []string         `json:"tags"`
	AnswerStrategy   string           `json:"answerStrategy"`
	LowConfidence    bool             `json:"lowConfidence"`
	Quality          *quality.Report  `json:"quality,omitempty"`
	Outcome          Action           `json:"outcome,omitempty"`
	Error            string           `json:"error,omitempty"`
}

// Summary returns the one-line run totals.
func (r *Report) Summary() string {
	return fmt.Sprintf("created=%d updated=%d skipped=%d failed=%d rejected=%d documents=%d/%d",
		r.Created, r.Updated, r.Skipped, r.Failed, r.Rejected, r.DocumentsFetched, r.DocumentsTotal)
}

func newQuestionReport(q *qbank.Question) *QuestionReport {
	return &QuestionReport{
		Slug:             q.Slug,
		Title:            q.Title,
		Order:            q.Order,
		Difficulty:       q.Difficulty,
		DifficultySource: q.DifficultySource,
		Tags:             q.Tags,
		AnswerStrategy:   q.AnswerStrategy,
		LowConfidence:    q.LowConfidence,
	}
}
