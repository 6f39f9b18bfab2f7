package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies lifecycle transitions to orders.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, applies the transition and persists it.
// Returns the updated order, or an error when the order does not exist or
// the state machine forbids the transition.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	ord, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = ord.ChangeStatus(command.Status()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
