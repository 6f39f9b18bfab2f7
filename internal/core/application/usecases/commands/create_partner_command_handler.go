package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
)

// ErrPartnerAlreadyExists is returned when a partner with the same contact
// email is already registered.
var ErrPartnerAlreadyExists = errors.New("delivery partner already exists")

// CreatePartnerCommandHandler registers new delivery partners.
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner registration.
func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{uowFactory: uowFactory}
}

// Handle registers the partner, rejecting duplicate contact emails.
// Returns the created partner with zero load and active status.
func (h CreatePartnerCommandHandler) Handle(
	ctx context.Context,
	command CreatePartnerCommand,
) (*partner.DeliveryPartner, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PartnerRepository()

	_, err := repo.GetByEmail(ctx, command.Email())
	if err == nil {
		return nil, ErrPartnerAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newPartner, err := partner.NewDeliveryPartner(
		kernel.NewUUID(),
		command.Name(),
		command.Email(),
		command.Phone(),
		command.Areas(),
		command.Shift(),
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, newPartner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newPartner, nil
}
