package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	t.Run("allows up to the cap inside one second", func(t *testing.T) {
		rl := NewRateLimiter(3)

		assert.True(t, rl.Allow())
		assert.True(t, rl.Allow())
		assert.True(t, rl.Allow())
		assert.False(t, rl.Allow())
	})

	t.Run("window slides after a second", func(t *testing.T) {
		rl := NewRateLimiter(1)

		assert.True(t, rl.Allow())
		assert.False(t, rl.Allow())

		time.Sleep(1100 * time.Millisecond)
		assert.True(t, rl.Allow())
	})
}
