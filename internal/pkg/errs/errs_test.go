//go:build unit

package errs_test

import (
	"testing"

	"ramillete/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStackLines(t *testing.T) {
	t.Run("nil error yields nothing", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 10))
	})

	t.Run("wrapped error carries its message and stack", func(t *testing.T) {
		err := errs.Wrap(errs.New("connection refused"), "failed to load recipient")

		lines := errs.ExtractStackLines(err, 0)
		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "failed to load recipient")
	})

	t.Run("output is capped at maxLines", func(t *testing.T) {
		err := errs.Wrap(errs.New("connection refused"), "failed to load recipient")

		lines := errs.ExtractStackLines(err, 3)
		assert.LessOrEqual(t, len(lines), 3)
	})
}
