package main_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/qbank"
	main "github.com/fwojciec/qbank/cmd/qbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedDoc = "## Scope\n\n" +
	"### What is hoisting?\n" +
	"Explain how declarations move to the top of their scope.\n" +
	"#### Answer\n" +
	"Declarations are processed before any code runs.\n\n" +
	"### Hi\n" +
	"too short a title\n" +
	"to be a question\n"

func TestParseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints parsed questions and rejected blocks", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     testContext(),
			Stdout:  stdout,
			Stderr:  stderr,
			Logger:  discardLogger(),
			Fetcher: docFetcher(map[string]string{"notes/scope.md": mixedDoc}),
		}

		err := (&main.ParseCmd{File: "notes/scope.md", Category: "scope", Depth: 3}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "scope-what-is-hoisting")
		assert.Contains(t, stdout.String(), "    What is hoisting?\n")
		assert.Contains(t, stderr.String(), "rejected: line")
		assert.Contains(t, stderr.String(), ": Hi (")
	})

	t.Run("fails when the document cannot be read", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     testContext(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Logger:  discardLogger(),
			Fetcher: docFetcher(nil),
		}

		err := (&main.ParseCmd{File: "notes/missing.md", Category: "scope", Depth: 3}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "document not found")
	})

	t.Run("rejects an unsupported depth", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:     testContext(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Logger:  discardLogger(),
			Fetcher: docFetcher(nil),
		}

		err := (&main.ParseCmd{File: "notes/scope.md", Category: "scope", Depth: 5}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, qbank.EINVALID, qbank.ErrorCode(err))
	})
}
