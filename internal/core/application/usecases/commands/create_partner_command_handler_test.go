package commands_test

import (
	"context"
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPartnersRepository struct{ mock.Mock }

func (m *MockPartnersRepository) Add(ctx context.Context, p *partner.DeliveryPartner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnersRepository) Update(ctx context.Context, p *partner.DeliveryPartner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnersRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.DeliveryPartner), args.Error(1)
}

func (m *MockPartnersRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.DeliveryPartner), args.Error(1)
}

func (m *MockPartnersRepository) GetByEmail(ctx context.Context, email string) (*partner.DeliveryPartner, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.DeliveryPartner), args.Error(1)
}

func (m *MockPartnersRepository) GetAll(ctx context.Context) ([]*partner.DeliveryPartner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.DeliveryPartner), args.Error(1)
}

func (m *MockPartnersRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPartnerUoW struct{ mock.Mock }

func (m *MockPartnerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

func newCreatePartnerCommand(t *testing.T) commands.CreatePartnerCommand {
	t.Helper()
	shift, err := partner.NewShift(9, 17)
	require.NoError(t, err)

	cmd, err := commands.NewCreatePartnerCommand(
		"Ravi Kumar", "ravi@dispatch.example", "+1-555-0199", []string{"north", "east"}, shift,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreatePartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreatePartnerCommand(t)

	partnerRepo := new(MockPartnersRepository)
	uow := new(MockPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByEmail", ctx, "ravi@dispatch.example").
			Return(nil, errs.NewObjectNotFoundError("email", "ravi@dispatch.example")).Once(),
		partnerRepo.On("Add", ctx, mock.AnythingOfType("*partner.DeliveryPartner")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePartnerCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Ravi Kumar", created.Name())
	assert.Equal(t, 0, created.CurrentLoad())
	assert.Equal(t, partner.Active, created.Status())
	assert.Equal(t, []string{"north", "east"}, created.Areas())

	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePartnerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd := newCreatePartnerCommand(t)

	existing := assignTestPartner(t, []string{"north"}, 9, 17, 0)

	partnerRepo := new(MockPartnersRepository)
	uow := new(MockPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByEmail", ctx, "ravi@dispatch.example").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePartnerCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPartnerAlreadyExists)
	assert.Nil(t, created)
	partnerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreatePartnerCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreatePartnerCommand(t)

	partnerRepo := new(MockPartnersRepository)
	uow := new(MockPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByEmail", ctx, "ravi@dispatch.example").
			Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePartnerCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	assert.Nil(t, created)
	partnerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreatePartnerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreatePartnerCommand{} // not constructed properly

	factory := new(MockPartnerUoWFactory)
	handler := commands.NewCreatePartnerCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreatePartnerCommandIsNotConstructed)
	assert.Nil(t, created)
	factory.AssertNotCalled(t, "Create")
}
