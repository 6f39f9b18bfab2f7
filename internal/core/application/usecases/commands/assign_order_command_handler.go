package commands

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// AssignOrderCommandHandler runs the assignment pipeline for one
// order-partner pairing and records the outcome.
//
// The handler is the evaluator-recorder unit: it fetches both aggregates,
// runs the rule pipeline, appends exactly one audit record per evaluation
// (success or failure), and on success increments the partner's load. All of
// it happens inside a single transaction, with the partner row locked for
// update, so two concurrent evaluations of the same partner cannot both read
// the same load value and overshoot the cap.
//
// Existence failures (unknown order or partner) abort before any record is
// written: the audit trail only covers evaluations of real entities. The
// order is checked first, so a request where both are missing reports the
// missing order.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	evaluator  services.AssignmentEvaluator
	clock      Clock
}

// NewAssignOrderCommandHandler creates a handler using the system clock.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return NewAssignOrderCommandHandlerWithClock(uowFactory, systemClock{})
}

// NewAssignOrderCommandHandlerWithClock creates a handler with an explicit
// clock, letting tests pin the evaluation instant.
func NewAssignOrderCommandHandlerWithClock(uowFactory UoWFactory, clock Clock) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		evaluator:  services.NewAssignmentEvaluator(),
		clock:      clock,
	}
}

// Handle evaluates the pairing and returns the persisted assignment record.
// A failed evaluation is a normal result: the returned record carries the
// rejection reason and err is nil. Errors are reserved for missing entities,
// invalid input and storage failures.
func (h AssignOrderCommandHandler) Handle(
	ctx context.Context,
	command AssignOrderCommand,
) (*assignment.Assignment, error) {
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

	// Row lock on the partner serializes the load check-and-increment.
	prt, err := uow.PartnerRepository().GetForUpdate(ctx, command.PartnerID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	outcome, err := h.evaluator.Evaluate(ord, prt, now)
	if err != nil {
		return nil, err
	}

	var record *assignment.Assignment
	if outcome.IsSuccess() {
		record, err = assignment.NewSuccessAssignment(kernel.NewUUID(), ord.ID(), prt.ID(), now)
	} else {
		record, err = assignment.NewFailedAssignment(kernel.NewUUID(), ord.ID(), prt.ID(), now, *outcome.Reason())
	}
	if err != nil {
		return nil, err
	}

	if err = uow.AssignmentRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if outcome.IsSuccess() {
		if err = prt.AcceptOrder(); err != nil {
			return nil, err
		}
		if err = uow.PartnerRepository().Update(ctx, prt); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
