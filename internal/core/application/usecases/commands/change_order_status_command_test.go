package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Picked)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Picked, cmd.Status())
	assert.NoError(t, cmd.Validate())
}

func TestNewChangeOrderStatusCommand_EmptyOrderID(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.Picked)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "orderId")
}

func TestNewChangeOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeOrderStatusCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ChangeOrderStatusCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
