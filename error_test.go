package distill_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/distill"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := distill.Errorf(distill.ENOTFOUND, "article %q not found", "abc")

	assert.Equal(t, distill.ENOTFOUND, distill.ErrorCode(err))
	assert.Equal(t, "article \"abc\" not found", distill.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, distill.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, distill.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetching page: %w", distill.Errorf(distill.EFORBIDDEN, "disallowed by robots.txt"))

	assert.Equal(t, distill.EFORBIDDEN, distill.ErrorCode(err))
	assert.Equal(t, "disallowed by robots.txt", distill.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, distill.EINTERNAL, distill.ErrorCode(err))
	assert.Equal(t, "Internal error", distill.ErrorMessage(err))
}
