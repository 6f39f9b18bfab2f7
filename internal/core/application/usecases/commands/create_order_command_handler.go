package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists new orders arriving from order intake.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler using the system clock.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return NewCreateOrderCommandHandlerWithClock(uowFactory, systemClock{})
}

// NewCreateOrderCommandHandlerWithClock creates a handler with an explicit clock.
func NewCreateOrderCommandHandlerWithClock(uowFactory OrderUoWFactory, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle constructs the order aggregate and persists it, returning the
// created order. The aggregate enforces all intake invariants, including
// the scheduled-time-not-in-the-past rule anchored at the current instant.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	command CreateOrderCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		command.Customer(),
		command.Area(),
		command.Items(),
		command.ScheduledFor(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
