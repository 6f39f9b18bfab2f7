// Package partnerrepo provides data transfer objects and mapping functions for
// delivery partner persistence. This package implements the repository pattern
// for the partner domain aggregate, handling the conversion between domain
// entities and database representations.
package partnerrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PartnerDTO represents the database structure for persisting partner aggregates.
// Service areas are stored as a native text array; the shift is flattened into
// two hour columns.
type PartnerDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Email       string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone       string         `gorm:"type:varchar(64);not null"`
	Areas       pq.StringArray `gorm:"type:text[];not null"`
	ShiftStart  int            `gorm:"type:smallint;not null"`
	ShiftEnd    int            `gorm:"type:smallint;not null"`
	CurrentLoad int            `gorm:"type:int;not null"`
	Status      string         `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "partners".
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(partner *partner.DeliveryPartner) PartnerDTO {
	return PartnerDTO{
		ID:          partner.ID().Bytes(),
		Name:        partner.Name(),
		Email:       partner.Email(),
		Phone:       partner.Phone(),
		Areas:       pq.StringArray(partner.Areas()),
		ShiftStart:  partner.Shift().Start(),
		ShiftEnd:    partner.Shift().End(),
		CurrentLoad: partner.CurrentLoad(),
		Status:      partner.Status().String(),
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
// Reconstructs the complete aggregate including its persisted load using
// RestoreDeliveryPartner.
func toDomain(dto PartnerDTO) (*partner.DeliveryPartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shift, err := partner.NewShift(dto.ShiftStart, dto.ShiftEnd)
	if err != nil {
		return nil, err
	}

	status, err := partner.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return partner.RestoreDeliveryPartner(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.Areas,
		shift,
		dto.CurrentLoad,
		status,
	)
}
