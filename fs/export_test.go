package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/qbank"
	"github.com/fwojciec/qbank/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportQuestion() *qbank.Question {
	score := 64
	return &qbank.Question{
		Slug:             "core-concepts-what-is-a-closure",
		Title:            "What is a closure?",
		Category:         "core-concepts",
		Difficulty:       qbank.DifficultyEasy,
		DifficultySource: qbank.ProvenanceDeclared,
		Tags:             []string{"core-concepts", "scope"},
		Content:          "A closure retains access to ...\n",
		Answer:           "A closure is formed when ...",
		Order:            1,
		ReadingTime:      3,
		QualityScore:     &score,
	}
}

func TestFormatQuestion(t *testing.T) {
	t.Parallel()

	got, err := fs.FormatQuestion(exportQuestion())

	require.NoError(t, err)
	assert.Equal(t, "---\n"+
		"title: What is a closure?\n"+
		"slug: core-concepts-what-is-a-closure\n"+
		"category: core-concepts\n"+
		"difficulty: easy\n"+
		"difficultySource: declared\n"+
		"tags: [core-concepts, scope]\n"+
		"order: 1\n"+
		"readingTime: 3\n"+
		"qualityScore: 64\n"+
		"---\n\n"+
		"# What is a closure?\n\n"+
		"A closure retains access to ...\n\n"+
		"## Answer\n\n"+
		"A closure is formed when ...\n", got)
}

func TestExporter(t *testing.T) {
	t.Parallel()

	t.Run("commit moves files into place", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		e := fs.NewExporter(base, "catalog")

		require.NoError(t, e.Save(context.Background(), exportQuestion()))
		require.NoError(t, e.Commit())

		_, err := os.Stat(filepath.Join(base, "catalog", "core-concepts", "core-concepts-what-is-a-closure.md"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "catalog.tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("commit replaces a previous export", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		stale := filepath.Join(base, "catalog", "old.md")
		require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
		require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

		e := fs.NewExporter(base, "catalog")
		require.NoError(t, e.Commit())

		_, err := os.Stat(stale)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("abort discards saved files", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		e := fs.NewExporter(base, "catalog")
		require.NoError(t, e.Save(context.Background(), exportQuestion()))

		require.NoError(t, e.Abort())

		entries, err := os.ReadDir(base)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
