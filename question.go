package qbank

import (
	"context"
	"strings"
	"time"
)

// Difficulty is the editorial difficulty of a question.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the enumerated levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty maps an authored difficulty label to a Difficulty.
// Common synonyms are accepted; the second return value is false when
// the label is not recognized.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "beginner", "basic":
		return DifficultyEasy, true
	case "medium", "intermediate", "moderate":
		return DifficultyMedium, true
	case "hard", "advanced", "expert", "difficult":
		return DifficultyHard, true
	}
	return "", false
}

// Provenance records whether a value was declared by the author or inferred.
type Provenance string

// Provenance values.
const (
	ProvenanceDeclared Provenance = "declared"
	ProvenanceInferred Provenance = "inferred"
)

// Answer strategies, in the order they are attempted.
const (
	AnswerStrategyDetails  = "details"
	AnswerStrategyHeading  = "heading"
	AnswerStrategyFallback = "fallback"
)

// Question represents one catalog entry parsed from a study document.
type Question struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Category         string     `json:"category"`
	Difficulty       Difficulty `json:"difficulty"`
	DifficultySource Provenance `json:"difficultySource"`
	Tags             []string   `json:"tags"`
	Content          string     `json:"content"`
	Answer           string     `json:"answer"`
	CodeExample      string     `json:"codeExample,omitempty"`
	ReadingTime      int        `json:"readingTime"`
	Order            int        `json:"order"`

	// AnswerStrategy names the strategy that split content from answer.
	// LowConfidence is set when no distinct answer region was found.
	AnswerStrategy string `json:"answerStrategy"`
	LowConfidence  bool   `json:"lowConfidence"`

	// QualityScore is nil until the question has been scored.
	QualityScore *int `json:"qualityScore,omitempty"`

	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the question contains invalid fields.
func (q *Question) Validate() error {
	if q.Slug == "" {
		return Errorf(EINVALID, "question slug required")
	}
	if q.Title == "" {
		return Errorf(EINVALID, "question title required")
	}
	if q.Category == "" {
		return Errorf(EINVALID, "question category required")
	}
	if !q.Difficulty.Valid() {
		return Errorf(EINVALID, "invalid question difficulty %q", q.Difficulty)
	}
	if len(q.Tags) == 0 {
		return Errorf(EINVALID, "question tags required")
	}
	if q.Content == "" {
		return Errorf(EINVALID, "question content required")
	}
	return nil
}

// QuestionService represents the keyed catalog store.
type QuestionService interface {
	// FindQuestionBySlug retrieves a question by its unique slug.
	// Returns ENOTFOUND if no question has the slug.
	FindQuestionBySlug(ctx context.Context, slug string) (*Question, error)

	// FindQuestions retrieves questions matching the filter.
	FindQuestions(ctx context.Context, filter QuestionFilter) ([]*Question, error)

	// CreateQuestion creates a new question. The store assigns ID and timestamps.
	// Returns ECONFLICT if the slug is already taken.
	CreateQuestion(ctx context.Context, q *Question) error

	// UpdateQuestion replaces the fields set in upd on the question with the
	// given slug and refreshes its modification time.
	// Returns ENOTFOUND if no question has the slug.
	UpdateQuestion(ctx context.Context, slug string, upd QuestionUpdate) (*Question, error)
}

// QuestionFilter represents a filter for FindQuestions.
type QuestionFilter struct {
	Slug       *string     `json:"slug"`
	Category   *string     `json:"category"`
	Difficulty *Difficulty `json:"difficulty"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// QuestionUpdate represents fields that can be updated on a question.
type QuestionUpdate struct {
	Title            *string     `json:"title"`
	Category         *string     `json:"category"`
	Difficulty       *Difficulty `json:"difficulty"`
	DifficultySource *Provenance `json:"difficultySource"`
	Tags             []string    `json:"tags"`
	Content          *string     `json:"content"`
	Answer           *string     `json:"answer"`
	CodeExample      *string     `json:"codeExample"`
	ReadingTime      *int        `json:"readingTime"`
	Order            *int        `json:"order"`
	AnswerStrategy   *string     `json:"answerStrategy"`
	LowConfidence    *bool       `json:"lowConfidence"`
	QualityScore     *int        `json:"qualityScore"`

	// ClearQualityScore removes any stored score. QualityScore wins when both are set.
	ClearQualityScore bool `json:"clearQualityScore,omitempty"`
}

// ReplaceWith returns an update that overwrites every extracted field with
// the values from q. The slug, ID and creation time are left alone.
func ReplaceWith(q *Question) QuestionUpdate {
	return QuestionUpdate{
		Title:             &q.Title,
		Category:          &q.Category,
		Difficulty:        &q.Difficulty,
		DifficultySource:  &q.DifficultySource,
		Tags:              q.Tags,
		Content:           &q.Content,
		Answer:            &q.Answer,
		CodeExample:       &q.CodeExample,
		ReadingTime:       &q.ReadingTime,
		Order:             &q.Order,
		AnswerStrategy:    &q.AnswerStrategy,
		LowConfidence:     &q.LowConfidence,
		QualityScore:      q.QualityScore,
		ClearQualityScore: q.QualityScore == nil,
	}
}

// Apply copies the fields set in upd onto q.
func (upd QuestionUpdate) Apply(q *Question) {
	if upd.Title != nil {
		q.Title = *upd.Title
	}
	if upd.Category != nil {
		q.Category = *upd.Category
	}
	if upd.Difficulty != nil {
		q.Difficulty = *upd.Difficulty
	}
	if upd.DifficultySource != nil {
		q.DifficultySource = *upd.DifficultySource
	}
	if upd.Tags != nil {
		q.Tags = upd.Tags
	}
	if upd.Content != nil {
		q.Content = *upd.Content
	}
	if upd.Answer != nil {
		q.Answer = *upd.Answer
	}
	if upd.CodeExample != nil {
		q.CodeExample = *upd.CodeExample
	}
	if upd.ReadingTime != nil {
		q.ReadingTime = *upd.ReadingTime
	}
	if upd.Order != nil {
		q.Order = *upd.Order
	}
	if upd.AnswerStrategy != nil {
		q.AnswerStrategy = *upd.AnswerStrategy
	}
	if upd.LowConfidence != nil {
		q.LowConfidence = *upd.LowConfidence
	}
	switch {
	case upd.QualityScore != nil:
		q.QualityScore = upd.QualityScore
	case upd.ClearQualityScore:
		q.QualityScore = nil
	}
}
