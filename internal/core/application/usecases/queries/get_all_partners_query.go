package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

var ErrGetAllPartnersQueryIsNotConstructed = errors.New(
	"GetAllPartnersQuery must be created via NewGetAllPartnersQuery constructor",
)

// GetAllPartnersQuery requests every registered delivery partner.
type GetAllPartnersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAllPartnersQuery creates the query.
func NewGetAllPartnersQuery() GetAllPartnersQuery {
	return GetAllPartnersQuery{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPartnersQueryIsNotConstructed)
}

// PartnerResponse is the partner read model returned by partner queries.
type PartnerResponse struct {
	ID          kernel.UUID
	Name        string
	Email       string
	Phone       string
	Areas       []string
	ShiftStart  int
	ShiftEnd    int
	CurrentLoad int
	Status      string
}
