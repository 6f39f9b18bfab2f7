package postgres

import (
	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for every persisted
// aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&partnerrepo.PartnerDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
}
