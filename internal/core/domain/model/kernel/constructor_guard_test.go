package kernel_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	guard := kernel.NewConstructorGuard()

	customError := errors.New("test object not constructed")
	assert.NoError(t, guard.Validate(customError))
	assert.NoError(t, guard.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly constructed guard returns nil", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()
		customError := errors.New("not constructed")

		err := guard.Validate(customError)

		assert.NoError(t, err)
	})

	t.Run("zero value guard returns custom error", func(t *testing.T) {
		var guard kernel.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := guard.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero value guard returns default error when nil", func(t *testing.T) {
		var guard kernel.ConstructorGuard

		err := guard.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
	})
}
