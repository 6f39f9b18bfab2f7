// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Customer details are embedded into the orders table; line items live in a
// child table linked by foreign key.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Customer     CustomerDTO    `gorm:"embedded;embeddedPrefix:customer_"`
	Area         string         `gorm:"type:varchar(255);not null;index"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ScheduledFor time.Time      `gorm:"not null"`
	CreatedAt    time.Time      `gorm:"not null"`
	Status       string         `gorm:"type:varchar(32);not null;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer contact columns within the order table.
type CustomerDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Phone   string `gorm:"type:varchar(64);not null"`
	Address string `gorm:"type:varchar(512);not null"`
}

// OrderItemDTO represents the database structure for persisting order line items.
// Links to its order via foreign key.
type OrderItemDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Quantity int       `gorm:"type:int;not null"`
	Price    float64   `gorm:"type:decimal(12,2);not null"`
}

// TableName specifies the database table name for order item entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	orderID := order.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(order.Items()))

	for _, item := range order.Items() {
		items = append(items, OrderItemDTO{
			OrderID:  orderID,
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return OrderDTO{
		ID: orderID,
		Customer: CustomerDTO{
			Name:    order.Customer().Name(),
			Phone:   order.Customer().Phone(),
			Address: order.Customer().Address(),
		},
		Area:         order.Area(),
		Items:        items,
		ScheduledFor: order.ScheduledFor(),
		CreatedAt:    order.CreatedAt(),
		Status:       order.Status().String(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Phone, dto.Customer.Address)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := order.NewItem(itemDto.Name, itemDto.Quantity, itemDto.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customer, dto.Area, items, dto.ScheduledFor, dto.CreatedAt, status)
}
