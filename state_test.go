package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateState(t *testing.T) {
	t.Run("rejects nil initial value", func(t *testing.T) {
		_, err := CreateState[any](nil)
		var nullErr *NullishSignalValueError
		assert.ErrorAs(t, err, &nullErr)
	})

	t.Run("rejects a guard-failing initial value", func(t *testing.T) {
		_, err := CreateState(-1, WithGuard(func(v int) bool { return v >= 0 }))
		var guardErr *InvalidSignalValueError
		require.ErrorAs(t, err, &guardErr)
	})

	t.Run("get/set/update round trip", func(t *testing.T) {
		s, err := CreateState(1)
		require.NoError(t, err)

		v, err := s.Get()
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		require.NoError(t, s.Set(2))
		v, _ = s.Get()
		assert.Equal(t, 2, v)

		require.NoError(t, s.Update(func(prev int) int { return prev + 10 }))
		v, _ = s.Get()
		assert.Equal(t, 12, v)
	})

	t.Run("equal writes are no-ops", func(t *testing.T) {
		s, _ := CreateState(5)
		runs := 0
		dispose := CreateEffect(func() func() {
			_, _ = s.Get()
			runs++
			return nil
		})
		defer dispose()

		require.NoError(t, s.Set(5))
		assert.Equal(t, 1, runs)
	})

	t.Run("IsState brand", func(t *testing.T) {
		s, _ := CreateState(0)
		assert.True(t, IsState(s))
		assert.False(t, IsMemo(s))
	})
}
