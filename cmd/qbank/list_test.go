package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/qbank"
	main "github.com/fwojciec/qbank/cmd/qbank"
	"github.com/fwojciec/qbank/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists questions with slug, difficulty, score and title", func(t *testing.T) {
		t.Parallel()

		score := 72
		questions := &mock.QuestionService{
			FindQuestionsFn: func(_ context.Context, _ qbank.QuestionFilter) ([]*qbank.Question, error) {
				return []*qbank.Question{
					{Slug: "core-concepts-closures", Title: "Closures", Difficulty: qbank.DifficultyMedium, QualityScore: &score},
					{Slug: "async-event-loop", Title: "Event loop", Difficulty: qbank.DifficultyHard},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       testContext(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Questions: questions,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t,
			"core-concepts-closures  medium  72  Closures\n"+
				"async-event-loop  hard  -  Event loop\n",
			stdout.String())
	})

	t.Run("passes filters to the service", func(t *testing.T) {
		t.Parallel()

		var got qbank.QuestionFilter
		questions := &mock.QuestionService{
			FindQuestionsFn: func(_ context.Context, filter qbank.QuestionFilter) ([]*qbank.Question, error) {
				got = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       testContext(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Questions: questions,
		}

		err := (&main.ListCmd{Category: "async", Difficulty: "Hard", Limit: 10}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Category)
		assert.Equal(t, "async", *got.Category)
		require.NotNil(t, got.Difficulty)
		assert.Equal(t, qbank.DifficultyHard, *got.Difficulty)
		assert.Equal(t, 10, got.Limit)
	})

	t.Run("rejects an unknown difficulty", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       testContext(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Questions: &mock.QuestionService{},
		}

		err := (&main.ListCmd{Difficulty: "brutal"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, qbank.EINVALID, qbank.ErrorCode(err))
		assert.Contains(t, stderr.String(), "unknown difficulty")
	})

	t.Run("shows helpful message when the catalog is empty", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Questions: &mock.QuestionService{
				FindQuestionsFn: func(context.Context, qbank.QuestionFilter) ([]*qbank.Question, error) {
					return nil, nil
				},
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "qbank import")
	})

	t.Run("reports service errors", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    testContext(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Questions: &mock.QuestionService{
				FindQuestionsFn: func(context.Context, qbank.QuestionFilter) ([]*qbank.Question, error) {
					return nil, errors.New("database locked")
				},
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
