package commands

import (
	"context"
)

// DeletePartnerCommandHandler removes partners from the roster.
type DeletePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewDeletePartnerCommandHandler creates a handler for partner removal.
func NewDeletePartnerCommandHandler(uowFactory PartnerUoWFactory) DeletePartnerCommandHandler {
	return DeletePartnerCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the partner, verifying existence first so callers get a
// not-found error rather than a silent no-op.
func (h DeletePartnerCommandHandler) Handle(ctx context.Context, command DeletePartnerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PartnerRepository()

	if _, err := repo.Get(ctx, command.PartnerID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, command.PartnerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
