package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeletePartnerCommand_ValidInput(t *testing.T) {
	partnerID := kernel.NewUUID()

	cmd, err := commands.NewDeletePartnerCommand(partnerID)

	require.NoError(t, err)
	assert.Equal(t, partnerID, cmd.PartnerID())
	assert.NoError(t, cmd.Validate())
}

func TestNewDeletePartnerCommand_EmptyPartnerID(t *testing.T) {
	_, err := commands.NewDeletePartnerCommand(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "partnerId")
}

func TestDeletePartnerCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.DeletePartnerCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeletePartnerCommandIsNotConstructed)
}
