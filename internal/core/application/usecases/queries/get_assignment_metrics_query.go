package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var ErrGetAssignmentMetricsQueryIsNotConstructed = errors.New(
	"GetAssignmentMetricsQuery must be created via NewGetAssignmentMetricsQuery constructor",
)

// GetAssignmentMetricsQuery requests the aggregate report over the full
// assignment history. It carries no parameters: the report always covers
// every recorded attempt, with no date-range filtering.
type GetAssignmentMetricsQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAssignmentMetricsQuery creates the query.
func NewGetAssignmentMetricsQuery() GetAssignmentMetricsQuery {
	return GetAssignmentMetricsQuery{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentMetricsQueryIsNotConstructed)
}
