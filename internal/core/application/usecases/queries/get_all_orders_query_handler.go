package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves every order as a flat read model.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the order list query.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query, returning orders sorted by creation time with
// their items attached.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := scanOrders(ctx, h.db, "", nil)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrders reads order rows (optionally filtered) and attaches their items.
// Shared by the list and single-order query handlers.
func scanOrders(ctx context.Context, db *gorm.DB, where string, arg any) ([]OrderResponse, error) {
	orderSQL := `
		SELECT
			id,
			customer_name,
			customer_phone,
			customer_address,
			area,
			scheduled_for,
			created_at,
			status
		FROM orders
	`
	if where != "" {
		orderSQL += " WHERE " + where
	}
	orderSQL += " ORDER BY created_at"

	tx := db.WithContext(ctx)
	var rows *gorm.DB
	if arg != nil {
		rows = tx.Raw(orderSQL, arg)
	} else {
		rows = tx.Raw(orderSQL)
	}

	sqlRows, err := rows.Rows()
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	orders := make([]OrderResponse, 0)
	index := make(map[uuid.UUID]int)
	ids := make([]uuid.UUID, 0)

	for sqlRows.Next() {
		var (
			id           uuid.UUID
			response     OrderResponse
			scheduledFor time.Time
			createdAt    time.Time
		)

		if err = sqlRows.Scan(
			&id,
			&response.CustomerName,
			&response.CustomerPhone,
			&response.CustomerAddress,
			&response.Area,
			&scheduledFor,
			&createdAt,
			&response.Status,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID
		response.ScheduledFor = scheduledFor
		response.CreatedAt = createdAt
		response.Items = make([]OrderItemResponse, 0)

		index[id] = len(orders)
		ids = append(ids, id)
		orders = append(orders, response)
	}
	if err = sqlRows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := tx.Raw(`
		SELECT
			order_id,
			name,
			quantity,
			price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			orderID uuid.UUID
			item    OrderItemResponse
		)
		if err = itemRows.Scan(&orderID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
