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

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("reads a local file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "js.md")
		require.NoError(t, os.WriteFile(path, []byte("### What is a closure?\n"), 0644))

		body, err := fs.NewFetcher().Fetch(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "### What is a closure?\n", body)
	})

	t.Run("accepts file URLs", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "js.md")
		require.NoError(t, os.WriteFile(path, []byte("body"), 0644))

		body, err := fs.NewFetcher().Fetch(context.Background(), "file://"+path)

		require.NoError(t, err)
		assert.Equal(t, "body", body)
	})

	t.Run("returns ENOTFOUND for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewFetcher().Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.md"))

		require.Error(t, err)
		assert.Equal(t, qbank.ENOTFOUND, qbank.ErrorCode(err))
	})

	t.Run("returns EUNAVAILABLE when the path is a directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewFetcher().Fetch(context.Background(), t.TempDir())

		require.Error(t, err)
		assert.Equal(t, qbank.EUNAVAILABLE, qbank.ErrorCode(err))
	})
}
