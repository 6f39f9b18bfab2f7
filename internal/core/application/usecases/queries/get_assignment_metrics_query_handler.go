package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentMetricsQueryHandler computes the assignment metrics report.
// It scans the full assignment history in one pass and delegates the
// aggregation to the MetricsCalculator domain service, so two calls with no
// intervening writes produce identical reports.
type GetAssignmentMetricsQueryHandler struct {
	db         *gorm.DB
	calculator services.MetricsCalculator
	clock      Clock
}

// NewGetAssignmentMetricsQueryHandler creates a handler using the system clock.
func NewGetAssignmentMetricsQueryHandler(db *gorm.DB) GetAssignmentMetricsQueryHandler {
	return NewGetAssignmentMetricsQueryHandlerWithClock(db, systemClock{})
}

// NewGetAssignmentMetricsQueryHandlerWithClock creates a handler with an
// explicit clock, letting tests pin the report instant.
func NewGetAssignmentMetricsQueryHandlerWithClock(db *gorm.DB, clock Clock) GetAssignmentMetricsQueryHandler {
	return GetAssignmentMetricsQueryHandler{
		db:         db,
		calculator: services.NewMetricsCalculator(),
		clock:      clock,
	}
}

// Handle loads every assignment record and returns the aggregated report.
func (h GetAssignmentMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentMetricsQuery,
) (services.MetricsReport, error) {
	if err := query.Validate(); err != nil {
		return services.MetricsReport{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			partner_id,
			timestamp,
			status,
			reason
		FROM assignments
		ORDER BY timestamp
	`).Rows()
	if err != nil {
		return services.MetricsReport{}, err
	}
	defer rows.Close()

	records := make([]*assignment.Assignment, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			orderID   uuid.UUID
			partnerID uuid.UUID
			timestamp time.Time
			status    string
			reason    *string
		)

		if err = rows.Scan(&id, &orderID, &partnerID, &timestamp, &status, &reason); err != nil {
			return services.MetricsReport{}, err
		}

		record, restoreErr := restoreRecord(id, orderID, partnerID, timestamp, status, reason)
		if restoreErr != nil {
			return services.MetricsReport{}, restoreErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return services.MetricsReport{}, err
	}

	return h.calculator.Calculate(records, h.clock.Now()), nil
}

func restoreRecord(
	id, orderID, partnerID uuid.UUID,
	timestamp time.Time,
	status string,
	reason *string,
) (*assignment.Assignment, error) {
	recordID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	recordOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return nil, err
	}
	recordPartnerID, err := kernel.UUIDFromBytes(partnerID[:])
	if err != nil {
		return nil, err
	}
	recordStatus, err := assignment.StatusFromString(status)
	if err != nil {
		return nil, err
	}

	// Failed rows written before the reason column became mandatory carry
	// NULL; bucket them under the unknown reason instead of refusing to load.
	if recordStatus == assignment.Failed && (reason == nil || *reason == "") {
		unknown := assignment.ReasonUnknown
		reason = &unknown
	}

	return assignment.RestoreAssignment(recordID, recordOrderID, recordPartnerID, timestamp, recordStatus, reason)
}
