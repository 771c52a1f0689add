package queries

import (
	"context"
	"time"

	"inventory/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves every order from the database for the
// admin dashboard.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the all-orders query.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			owner_username,
			item_id,
			item_name,
			quantity,
			status,
			created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderResponse
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&resp.ID,
			&resp.OwnerID,
			&resp.OwnerUsername,
			&resp.ItemID,
			&resp.ItemName,
			&resp.Quantity,
			&status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
