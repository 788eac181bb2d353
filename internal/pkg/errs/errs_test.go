//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"carflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("sentinel")
	cause := errors.New("boom")

	t.Run("nil err yields the mark itself", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("mark is visible to Is but not to errors.Is", func(t *testing.T) {
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.False(t, errors.Is(marked, sentinel), "a mark is not part of the Unwrap chain")
	})

	t.Run("cause survives marking", func(t *testing.T) {
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, cause))
		assert.True(t, errors.Is(marked, cause))
	})

	t.Run("Is sees marks through further wrapping", func(t *testing.T) {
		wrapped := errs.Wrap(errs.Mark(cause, sentinel), "outer")

		assert.True(t, errs.Is(wrapped, sentinel))
		assert.True(t, errs.Is(wrapped, cause))
	})

	t.Run("Is matches plain sentinels like errors.Is", func(t *testing.T) {
		assert.True(t, errs.Is(sentinel, sentinel))
		assert.False(t, errs.Is(cause, sentinel))
		assert.False(t, errs.Is(nil, sentinel))
	})
}
