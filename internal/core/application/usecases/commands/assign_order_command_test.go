package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignOrderCommand_ValidInput(t *testing.T) {
	// Arrange
	orderID := kernel.NewUUID()
	partnerID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewAssignOrderCommand(orderID, partnerID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, partnerID, cmd.PartnerID())
	assert.NoError(t, cmd.Validate())
}

func TestNewAssignOrderCommand_EmptyOrderID(t *testing.T) {
	_, err := commands.NewAssignOrderCommand(kernel.UUID{}, kernel.NewUUID())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "orderId")
}

func TestNewAssignOrderCommand_EmptyPartnerID(t *testing.T) {
	_, err := commands.NewAssignOrderCommand(kernel.NewUUID(), kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "partnerId")
}

func TestAssignOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AssignOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignOrderCommandIsNotConstructed)
}
