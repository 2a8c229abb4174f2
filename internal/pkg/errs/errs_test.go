//go:build unit

package errs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"space-booking/internal/pkg/errs"
)

func TestMark(t *testing.T) {
	t.Parallel()

	sentinel := errs.New("capacity exceeded")

	t.Run("sentinel is matchable with errors.Is", func(t *testing.T) {
		t.Parallel()
		err := errs.Mark(errs.Newf("space %d is full", 42), sentinel)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("cause stays matchable through the mark", func(t *testing.T) {
		t.Parallel()
		cause := errs.New("row locked")
		err := errs.Mark(fmt.Errorf("booking: %w", cause), sentinel)
		require.ErrorIs(t, err, cause)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("message comes from the cause", func(t *testing.T) {
		t.Parallel()
		err := errs.Mark(errs.New("stock is short"), sentinel)
		require.Equal(t, "stock is short", err.Error())
	})

	t.Run("nil cause returns the sentinel itself", func(t *testing.T) {
		t.Parallel()
		require.Same(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("unrelated sentinel does not match", func(t *testing.T) {
		t.Parallel()
		other := errs.New("slot taken")
		err := errs.Mark(errs.New("detail"), sentinel)
		require.NotErrorIs(t, err, other)
	})

	t.Run("verbose format renders the cause", func(t *testing.T) {
		t.Parallel()
		err := errs.Mark(errs.New("boom"), sentinel)
		require.Contains(t, fmt.Sprintf("%+v", err), "boom")
	})
}

func TestExtractStackLines(t *testing.T) {
	t.Parallel()

	require.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	require.NotEmpty(t, lines)
	require.LessOrEqual(t, len(lines), 3)
	require.Equal(t, "boom", lines[0])
}
