package qbank_test

import (
	"testing"

	"github.com/fwojciec/qbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *qbank.Config {
	return &qbank.Config{
		Sources: []qbank.Source{{Location: "docs/js.md", Category: "core-concepts"}},
		Mode:    qbank.ModeUpsert,
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	cfg := &qbank.Config{}
	cfg.SetDefaults()

	assert.Equal(t, qbank.ModeCreateOnly, cfg.Mode)
	assert.Equal(t, qbank.DefaultBoundaryDepth, cfg.BoundaryDepth)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete configuration", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.SetDefaults()

		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects empty source list", func(t *testing.T) {
		t.Parallel()

		cfg := &qbank.Config{}
		cfg.SetDefaults()

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, qbank.EINVALID, qbank.ErrorCode(err))
	})

	t.Run("rejects source without category", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.Sources[0].Category = " "
		cfg.SetDefaults()

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, qbank.ErrorMessage(err), "category required")
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.Mode = "merge"
		cfg.SetDefaults()

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, qbank.ErrorMessage(err), "unknown mode")
	})

	t.Run("rejects unsupported boundary depth", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.BoundaryDepth = 4

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, qbank.EINVALID, qbank.ErrorCode(err))
	})

	t.Run("validates embedded rules", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.SetDefaults()
		cfg.Rules = &qbank.ClassifierRules{MaxTags: 0}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, qbank.ErrorMessage(err), "maxTags")
	})
}

func TestParseSource(t *testing.T) {
	t.Parallel()

	t.Run("splits location and category", func(t *testing.T) {
		t.Parallel()

		src, err := qbank.ParseSource("https://example.com/q.md?ref=main=core-concepts")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/q.md?ref=main", src.Location)
		assert.Equal(t, "core-concepts", src.Category)
	})

	t.Run("rejects missing category", func(t *testing.T) {
		t.Parallel()

		_, err := qbank.ParseSource("docs/js.md=")
		require.Error(t, err)
		assert.Equal(t, qbank.EINVALID, qbank.ErrorCode(err))
	})

	t.Run("rejects missing separator", func(t *testing.T) {
		t.Parallel()

		_, err := qbank.ParseSource("docs/js.md")
		require.Error(t, err)
	})
}

func TestDefaultClassifierRules_Valid(t *testing.T) {
	t.Parallel()

	require.NoError(t, qbank.DefaultClassifierRules().Validate())
}
