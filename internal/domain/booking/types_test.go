//go:build unit

package booking_test

import (
	"testing"

	"shareit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassification(t *testing.T) {
	t.Run("accepts every known token", func(t *testing.T) {
		for _, token := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
			c, err := booking.ParseClassification(token)
			require.NoError(t, err, token)
			assert.Equal(t, token, c.String())
		}
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		for _, token := range []string{"", "UNKNOWN", "all", "Current", " ALL", "ALL ", "APPROVED2"} {
			_, err := booking.ParseClassification(token)
			assert.ErrorIs(t, err, booking.ErrUnknownClassification, token)
		}
	})
}

func TestStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		assert.True(t, booking.StatusWaiting.IsValid())
		assert.True(t, booking.StatusApproved.IsValid())
		assert.True(t, booking.StatusRejected.IsValid())
		assert.False(t, booking.Status("CANCELLED").IsValid())
		assert.False(t, booking.Status("").IsValid())
	})

	t.Run("terminality", func(t *testing.T) {
		assert.False(t, booking.StatusWaiting.IsTerminal())
		assert.True(t, booking.StatusApproved.IsTerminal())
		assert.True(t, booking.StatusRejected.IsTerminal())
	})
}
