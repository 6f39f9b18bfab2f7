package partner_test

import (
	"testing"

	"dispatch/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShift(t *testing.T) {
	t.Run("should create valid shift", func(t *testing.T) {
		shift, err := partner.NewShift(9, 17)

		require.NoError(t, err)
		require.NoError(t, shift.Validate())
		assert.Equal(t, 9, shift.Start())
		assert.Equal(t, 17, shift.End())
	})

	t.Run("should accept full day window", func(t *testing.T) {
		shift, err := partner.NewShift(0, 23)

		require.NoError(t, err)
		assert.Equal(t, 0, shift.Start())
		assert.Equal(t, 23, shift.End())
	})

	t.Run("should accept single hour shift", func(t *testing.T) {
		shift, err := partner.NewShift(12, 12)

		require.NoError(t, err)
		assert.True(t, shift.Contains(12))
	})

	t.Run("should fail with start after end", func(t *testing.T) {
		_, err := partner.NewShift(17, 9)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "start hour 17 is after end hour 9")
	})

	t.Run("should fail with negative start", func(t *testing.T) {
		_, err := partner.NewShift(-1, 17)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shift start")
	})

	t.Run("should fail with end above 23", func(t *testing.T) {
		_, err := partner.NewShift(9, 24)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shift end")
	})
}

func TestShift_Contains(t *testing.T) {
	shift, err := partner.NewShift(9, 17)
	require.NoError(t, err)

	t.Run("should include both boundary hours", func(t *testing.T) {
		assert.True(t, shift.Contains(9))
		assert.True(t, shift.Contains(17))
	})

	t.Run("should include interior hours", func(t *testing.T) {
		assert.True(t, shift.Contains(10))
		assert.True(t, shift.Contains(16))
	})

	t.Run("should exclude hours outside the window", func(t *testing.T) {
		assert.False(t, shift.Contains(8))
		assert.False(t, shift.Contains(18))
		assert.False(t, shift.Contains(0))
		assert.False(t, shift.Contains(23))
	})
}

func TestShift_Validate(t *testing.T) {
	t.Run("should fail validation for zero value shift", func(t *testing.T) {
		var shift partner.Shift

		err := shift.Validate()

		require.Error(t, err)
		assert.Equal(t, partner.ErrShiftIsNotConstructed, err)
	})
}

func TestShift_IsEqual(t *testing.T) {
	a, _ := partner.NewShift(9, 17)
	b, _ := partner.NewShift(9, 17)
	c, _ := partner.NewShift(9, 18)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
