package qbank_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/qbank"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple question", "What is a closure?", "what-is-a-closure"},
		{"collapses punctuation runs", "let vs. const -- when?", "let-vs-const-when"},
		{"drops leading and trailing separators", "  ...Hoisting!  ", "hoisting"},
		{"keeps digits", "ES2015 features", "es2015-features"},
		{"keeps non-ascii letters", "Qu'est-ce qu'une fermeture", "qu-est-ce-qu-une-fermeture"},
		{"empty input", "", ""},
		{"only punctuation", "?!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, qbank.Slugify(tt.input))
		})
	}
}

func TestQuestionSlug(t *testing.T) {
	t.Parallel()

	t.Run("prefixes category", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "core-concepts-what-is-a-closure", qbank.QuestionSlug("core-concepts", "What is a closure?"))
	})

	t.Run("normalizes category", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "core-concepts-hoisting", qbank.QuestionSlug("Core Concepts", "Hoisting"))
	})

	t.Run("truncates long titles without trailing hyphen", func(t *testing.T) {
		t.Parallel()

		title := strings.Repeat("word ", 40)
		slug := qbank.QuestionSlug("js", title)

		assert.LessOrEqual(t, len(slug), len("js-")+qbank.MaxTitleSlugLength)
		assert.False(t, strings.HasSuffix(slug, "-"))
		assert.True(t, strings.HasPrefix(slug, "js-word-word"))
	})

	t.Run("distinct titles give distinct slugs", func(t *testing.T) {
		t.Parallel()

		a := qbank.QuestionSlug("js", "What is a closure?")
		b := qbank.QuestionSlug("js", "What is hoisting?")
		assert.NotEqual(t, a, b)
	})
}
