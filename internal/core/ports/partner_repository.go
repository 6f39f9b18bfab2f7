package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	Add(ctx context.Context, partner *partner.DeliveryPartner) error

	// Update persists changes to an existing partner aggregate.
	Update(ctx context.Context, partner *partner.DeliveryPartner) error

	// Get retrieves a partner aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when the partner does not exist.
	Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)

	// GetForUpdate retrieves a partner like Get, additionally taking a row
	// lock for the duration of the enclosing transaction. The assignment
	// pipeline uses it so that concurrent evaluations of the same partner
	// serialize on the load check-and-increment instead of both reading the
	// same load value.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)

	// GetByEmail retrieves a partner by contact email.
	// Returns errs.ObjectNotFoundError when no partner uses the email.
	GetByEmail(ctx context.Context, email string) (*partner.DeliveryPartner, error)

	// GetAll retrieves all partners.
	GetAll(ctx context.Context) ([]*partner.DeliveryPartner, error)

	// Delete removes a partner aggregate from storage.
	// Returns errs.ObjectNotFoundError when the partner does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
