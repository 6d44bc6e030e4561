package qbank_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/qbank"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := qbank.Errorf(qbank.ENOTFOUND, "question %q not found", "test")

	assert.Equal(t, qbank.ENOTFOUND, qbank.ErrorCode(err))
	assert.Equal(t, "question \"test\" not found", qbank.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, qbank.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, qbank.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create question: %w", qbank.Errorf(qbank.ECONFLICT, "slug taken"))

	assert.Equal(t, qbank.ECONFLICT, qbank.ErrorCode(err))
	assert.Equal(t, "slug taken", qbank.ErrorMessage(err))
}

func TestErrorCode_PlainErrorIsInternal(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, qbank.EINTERNAL, qbank.ErrorCode(err))
	assert.Equal(t, "Internal error.", qbank.ErrorMessage(err))
}
