package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
)

// AssignmentRepository defines the persistence contract for assignment audit
// records. Records are append-only: there is no update or delete, every
// evaluation attempt leaves exactly one immutable row.
type AssignmentRepository interface {
	// Add appends a new assignment record.
	Add(ctx context.Context, record *assignment.Assignment) error

	// GetAll retrieves the full assignment history, oldest first.
	GetAll(ctx context.Context) ([]*assignment.Assignment, error)
}
