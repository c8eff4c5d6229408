package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventTime(t *testing.T) {
	t.Parallel()

	t.Run("day first format", func(t *testing.T) {
		t.Parallel()

		got := ParseEventTime("25/12/2025 14:30:05")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, time.December, 25, 14, 30, 5, 0, time.UTC), *got)
	})

	t.Run("iso-like fallback", func(t *testing.T) {
		t.Parallel()

		got := ParseEventTime("2025-12-25 14:30:05")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, time.December, 25, 14, 30, 5, 0, time.UTC), *got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, ParseEventTime(""))
	})

	t.Run("garbage input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, ParseEventTime("yesterday at noon"))
	})
}
