package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery requests the full order list.
type GetAllOrdersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAllOrdersQuery creates the query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderItemResponse is the read model of a single ordered position.
type OrderItemResponse struct {
	Name     string
	Quantity int
	Price    float64
}

// OrderResponse is the flat read model of an order returned by the read side.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Area            string
	Items           []OrderItemResponse
	ScheduledFor    time.Time
	CreatedAt       time.Time
	Status          string
}
