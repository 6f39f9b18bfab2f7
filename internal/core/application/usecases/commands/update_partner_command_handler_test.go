package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdatePartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testPartner := assignTestPartner(t, []string{"north"}, 9, 17, 1)

	newShift, err := partner.NewShift(12, 20)
	require.NoError(t, err)
	inactive := partner.Inactive

	cmd, err := commands.NewUpdatePartnerCommand(
		testPartner.ID(),
		"Ravi K.",
		"",
		"",
		[]string{"west"},
		&newShift,
		&inactive,
	)
	require.NoError(t, err)

	partnerRepo := new(MockPartnersRepository)
	uow := new(MockPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", ctx, testPartner.ID()).Return(testPartner, nil).Once(),
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.DeliveryPartner")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdatePartnerCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ravi K.", updated.Name())
	assert.Equal(t, "ravi@dispatch.example", updated.Email(), "empty fields keep their value")
	assert.Equal(t, []string{"west"}, updated.Areas())
	assert.Equal(t, newShift, updated.Shift())
	assert.Equal(t, partner.Inactive, updated.Status())
	assert.Equal(t, 1, updated.CurrentLoad(), "load is never touched by profile updates")

	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdatePartnerCommandHandler_Handle_PartnerNotFound(t *testing.T) {
	ctx := t.Context()

	testPartner := assignTestPartner(t, []string{"north"}, 9, 17, 0)
	cmd, err := commands.NewUpdatePartnerCommand(
		testPartner.ID(), "Ravi K.", "", "", nil, nil, nil,
	)
	require.NoError(t, err)

	partnerRepo := new(MockPartnersRepository)
	uow := new(MockPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", ctx, testPartner.ID()).
			Return(nil, errs.NewObjectNotFoundError("partner", testPartner.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdatePartnerCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
	partnerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdatePartnerCommandHandler_Handle_EmptyAreasRejected(t *testing.T) {
	ctx := t.Context()

	testPartner := assignTestPartner(t, []string{"north"}, 9, 17, 0)
	cmd, err := commands.NewUpdatePartnerCommand(
		testPartner.ID(), "", "", "", []string{}, nil, nil,
	)
	require.NoError(t, err)

	partnerRepo := new(MockPartnersRepository)
	uow := new(MockPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", ctx, testPartner.ID()).Return(testPartner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdatePartnerCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Nil(t, updated)
	assert.Equal(t, []string{"north"}, testPartner.Areas())
	partnerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdatePartnerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdatePartnerCommand{} // not constructed properly

	factory := new(MockPartnerUoWFactory)
	handler := commands.NewUpdatePartnerCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdatePartnerCommandIsNotConstructed)
	assert.Nil(t, updated)
	factory.AssertNotCalled(t, "Create")
}
