package commands

import (
	"context"

	"dispatch/internal/core/domain/model/partner"
)

// UpdatePartnerCommandHandler applies partial updates to partner details.
type UpdatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerCommandHandler creates a handler for partner updates.
func NewUpdatePartnerCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerCommandHandler {
	return UpdatePartnerCommandHandler{uowFactory: uowFactory}
}

// Handle loads the partner, applies the provided fields and persists it.
// Returns the updated partner.
func (h UpdatePartnerCommandHandler) Handle(
	ctx context.Context,
	command UpdatePartnerCommand,
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

	prt, err := repo.Get(ctx, command.PartnerID())
	if err != nil {
		return nil, err
	}

	if err = prt.UpdateContact(command.Name(), command.Email(), command.Phone()); err != nil {
		return nil, err
	}
	if command.Areas() != nil {
		if err = prt.ChangeAreas(command.Areas()); err != nil {
			return nil, err
		}
	}
	if command.Shift() != nil {
		if err = prt.ChangeShift(*command.Shift()); err != nil {
			return nil, err
		}
	}
	if command.Status() != nil {
		if err = prt.ChangeStatus(*command.Status()); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, prt); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return prt, nil
}
