package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/qbank"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ qbank.QuestionService = (*QuestionService)(nil)

const questionColumns = `id, slug, title, category, difficulty, difficulty_source, tags,
	content, answer, code_example, reading_time, order_num, answer_strategy,
	low_confidence, quality_score, content_hash, created_at, updated_at`

// QuestionService implements qbank.QuestionService using SQLite.
type QuestionService struct {
	db *DB
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(db *DB) *QuestionService {
	return &QuestionService{db: db}
}

// CreateQuestion inserts q, assigning its ID, content hash and timestamps.
func (s *QuestionService) CreateQuestion(ctx context.Context, q *qbank.Question) error {
	if err := q.Validate(); err != nil {
		return err
	}

	tags, err := encodeTags(q.Tags)
	if err != nil {
		return err
	}

	id := uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	hash := hashContent(q.Content, q.Answer)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO questions (`+questionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, q.Slug, q.Title, q.Category, string(q.Difficulty), string(q.DifficultySource), tags,
		q.Content, q.Answer, q.CodeExample, q.ReadingTime, q.Order, q.AnswerStrategy,
		q.LowConfidence, nullInt(q.QualityScore), hash,
		now.Format(time.RFC3339), now.Format(time.RFC3339))
	if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
		return qbank.Errorf(qbank.ECONFLICT, "question %q already exists", q.Slug)
	}
	if err != nil {
		return err
	}

	q.ID = id
	q.ContentHash = hash
	q.CreatedAt = now
	q.UpdatedAt = now
	return nil
}

// FindQuestionBySlug retrieves a question by slug.
func (s *QuestionService) FindQuestionBySlug(ctx context.Context, slug string) (*qbank.Question, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+questionColumns+` FROM questions WHERE slug = ?`, slug)
	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, qbank.Errorf(qbank.ENOTFOUND, "question %q not found", slug)
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// FindQuestions retrieves questions matching the filter, ordered by category
// and then by their position in the source document.
func (s *QuestionService) FindQuestions(ctx context.Context, filter qbank.QuestionFilter) ([]*qbank.Question, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + questionColumns + " FROM questions WHERE 1=1")

	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Difficulty != nil {
		query.WriteString(" AND difficulty = ?")
		args = append(args, string(*filter.Difficulty))
	}

	query.WriteString(" ORDER BY category, order_num, slug")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*qbank.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// UpdateQuestion applies upd to the question with the given slug.
func (s *QuestionService) UpdateQuestion(ctx context.Context, slug string, upd qbank.QuestionUpdate) (*qbank.Question, error) {
	q, err := s.FindQuestionBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	upd.Apply(q)

	if err := q.Validate(); err != nil {
		return nil, err
	}

	tags, err := encodeTags(q.Tags)
	if err != nil {
		return nil, err
	}

	q.ContentHash = hashContent(q.Content, q.Answer)
	q.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE questions
		SET title = ?, category = ?, difficulty = ?, difficulty_source = ?, tags = ?,
			content = ?, answer = ?, code_example = ?, reading_time = ?, order_num = ?,
			answer_strategy = ?, low_confidence = ?, quality_score = ?, content_hash = ?,
			updated_at = ?
		WHERE slug = ?
	`, q.Title, q.Category, string(q.Difficulty), string(q.DifficultySource), tags,
		q.Content, q.Answer, q.CodeExample, q.ReadingTime, q.Order,
		q.AnswerStrategy, q.LowConfidence, nullInt(q.QualityScore), q.ContentHash,
		q.UpdatedAt.Format(time.RFC3339), slug)
	if err != nil {
		return nil, err
	}

	return q, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (*qbank.Question, error) {
	var (
		q                    qbank.Question
		difficulty, source   string
		tags                 string
		score                sql.NullInt64
		createdAt, updatedAt string
	)

	if err := row.Scan(&q.ID, &q.Slug, &q.Title, &q.Category, &difficulty, &source, &tags,
		&q.Content, &q.Answer, &q.CodeExample, &q.ReadingTime, &q.Order, &q.AnswerStrategy,
		&q.LowConfidence, &score, &q.ContentHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	q.Difficulty = qbank.Difficulty(difficulty)
	q.DifficultySource = qbank.Provenance(source)
	if score.Valid {
		v := int(score.Int64)
		q.QualityScore = &v
	}

	var err error
	if q.Tags, err = decodeTags(tags); err != nil {
		return nil, err
	}
	if q.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if q.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &q, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
