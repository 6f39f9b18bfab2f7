package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetAllPartnersQueryHandler retrieves every partner as a flat read model.
type GetAllPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPartnersQueryHandler creates a handler for the partner list query.
func NewGetAllPartnersQueryHandler(db *gorm.DB) GetAllPartnersQueryHandler {
	return GetAllPartnersQueryHandler{db: db}
}

// Handle executes the query, returning partners sorted by name.
func (h GetAllPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAllPartnersQuery,
) ([]PartnerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			areas,
			shift_start,
			shift_end,
			current_load,
			status
		FROM partners
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]PartnerResponse, 0)

	for rows.Next() {
		var (
			id       uuid.UUID
			areas    pq.StringArray
			response PartnerResponse
		)

		if err = rows.Scan(
			&id,
			&response.Name,
			&response.Email,
			&response.Phone,
			&areas,
			&response.ShiftStart,
			&response.ShiftEnd,
			&response.CurrentLoad,
			&response.Status,
		); err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = partnerID
		response.Areas = areas

		partners = append(partners, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
