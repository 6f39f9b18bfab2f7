package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		customer, err := order.NewCustomer("Anita Rao", "+1-555-0101", "12 North Lane")

		require.NoError(t, err)
		require.NoError(t, customer.Validate())
		assert.Equal(t, "Anita Rao", customer.Name())
		assert.Equal(t, "+1-555-0101", customer.Phone())
		assert.Equal(t, "12 North Lane", customer.Address())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewCustomer("", "+1-555-0101", "12 North Lane")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer name")
	})

	t.Run("should fail with empty phone", func(t *testing.T) {
		_, err := order.NewCustomer("Anita Rao", "", "12 North Lane")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer phone")
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		_, err := order.NewCustomer("Anita Rao", "+1-555-0101", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer address")
	})

	t.Run("should collect all missing fields", func(t *testing.T) {
		_, err := order.NewCustomer("", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer name")
		assert.Contains(t, err.Error(), "customer phone")
		assert.Contains(t, err.Error(), "customer address")
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("should fail validation for zero value customer", func(t *testing.T) {
		var customer order.Customer

		err := customer.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrCustomerIsNotConstructed, err)
	})
}

func TestCustomer_IsEqual(t *testing.T) {
	t.Run("should compare by all attributes", func(t *testing.T) {
		a, _ := order.NewCustomer("Anita Rao", "+1-555-0101", "12 North Lane")
		b, _ := order.NewCustomer("Anita Rao", "+1-555-0101", "12 North Lane")
		c, _ := order.NewCustomer("Anita Rao", "+1-555-0102", "12 North Lane")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
