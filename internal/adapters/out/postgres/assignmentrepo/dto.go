// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment audit record persistence. Records are append-only, so the
// package exposes no update or delete mapping.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// audit records. The reason column is NULL for successful attempts.
type AssignmentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PartnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Timestamp time.Time `gorm:"not null;index"`
	Status    string    `gorm:"type:varchar(32);not null"`
	Reason    *string   `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for assignment entities.
// Overrides GORM's default naming convention to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain record to its database representation.
func fromDomain(record *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:        record.ID().Bytes(),
		OrderID:   record.OrderID().Bytes(),
		PartnerID: record.PartnerID().Bytes(),
		Timestamp: record.Timestamp(),
		Status:    record.Status().String(),
		Reason:    record.Reason(),
	}
}

// toDomain converts a database DTO to an assignment domain record.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := assignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	reason := dto.Reason
	if status == assignment.Failed && (reason == nil || *reason == "") {
		unknown := assignment.ReasonUnknown
		reason = &unknown
	}

	return assignment.RestoreAssignment(id, orderID, partnerID, dto.Timestamp, status, reason)
}
