package services

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
)

// Outcome is the terminal result of evaluating an order-partner pairing.
// A failed outcome is a first-class value carrying its rejection reason,
// never an error: business rules rejecting a pairing is normal operation.
type Outcome struct {
	status assignment.Status
	reason *string
}

// SuccessOutcome returns the outcome of an evaluation where every rule passed.
func SuccessOutcome() Outcome {
	return Outcome{status: assignment.Success}
}

// FailedOutcome returns a rejected outcome tagged with its reason.
func FailedOutcome(reason string) Outcome {
	return Outcome{status: assignment.Failed, reason: &reason}
}

// IsSuccess reports whether the pairing was accepted.
func (o Outcome) IsSuccess() bool {
	return o.status == assignment.Success
}

// Status returns the outcome as an assignment record status.
func (o Outcome) Status() assignment.Status {
	return o.status
}

// Reason returns the rejection reason, or nil for successful outcomes.
func (o Outcome) Reason() *string {
	return o.reason
}

// evaluationContext carries the inputs shared by every rule in the pipeline.
type evaluationContext struct {
	order   *order.Order
	partner *partner.DeliveryPartner
	now     time.Time
}

// rule checks one eligibility constraint. It returns ok=true to pass, or
// ok=false with the machine-readable reason to record on the failed attempt.
type rule func(ctx evaluationContext) (reason string, ok bool)

// AssignmentEvaluator is a domain service that decides whether a delivery
// partner may take an order. It runs an ordered pipeline of eligibility
// rules; the first failing rule is terminal and later rules are not
// evaluated, so a partner off shift and out of area reports only the shift
// reason.
//
// Rule order: shift window, then served area, then concurrent load.
//
// The evaluator is pure: it inspects the order and partner but mutates
// neither. Committing a successful outcome (incrementing the partner load,
// persisting the audit record) is the caller's responsibility.
type AssignmentEvaluator struct {
	rules []rule
}

// NewAssignmentEvaluator creates an evaluator with the standard rule pipeline.
func NewAssignmentEvaluator() AssignmentEvaluator {
	return AssignmentEvaluator{
		rules: []rule{
			shiftRule,
			areaRule,
			loadRule,
		},
	}
}

// Evaluate runs the rule pipeline for the given pairing at the given instant.
// The instant's local hour of day feeds the shift rule, so callers must pass
// the same timestamp they record on the resulting assignment.
//
// Returns an error only for invalid (improperly constructed) inputs; rule
// rejections come back as a failed Outcome.
func (e AssignmentEvaluator) Evaluate(
	o *order.Order,
	p *partner.DeliveryPartner,
	now time.Time,
) (Outcome, error) {
	if err := o.Validate(); err != nil {
		return Outcome{}, err
	}
	if err := p.Validate(); err != nil {
		return Outcome{}, err
	}

	ctx := evaluationContext{order: o, partner: p, now: now}
	for _, r := range e.rules {
		if reason, ok := r(ctx); !ok {
			return FailedOutcome(reason), nil
		}
	}

	return SuccessOutcome(), nil
}

// shiftRule passes iff the evaluation hour falls inside the partner's shift
// window, inclusive on both bounds.
func shiftRule(ctx evaluationContext) (string, bool) {
	if !ctx.partner.IsOnShift(ctx.now.Hour()) {
		return assignment.ReasonShiftMismatch, false
	}
	return "", true
}

// areaRule passes iff the partner serves the order's area, matched by exact
// string equality.
func areaRule(ctx evaluationContext) (string, bool) {
	if !ctx.partner.Serves(ctx.order.Area()) {
		return assignment.ReasonAreaMismatch, false
	}
	return "", true
}

// loadRule passes iff the partner is below the concurrent load cap.
func loadRule(ctx evaluationContext) (string, bool) {
	if !ctx.partner.CanAcceptOrder() {
		return assignment.ReasonLoadExceeded, false
	}
	return "", true
}
