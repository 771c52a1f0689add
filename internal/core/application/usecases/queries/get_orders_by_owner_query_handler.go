package queries

import (
	"context"
	"time"

	"inventory/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersByOwnerQueryHandler retrieves one user's orders from the database.
type GetOrdersByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByOwnerQueryHandler creates a handler for per-owner order
// queries. Requires a GORM database connection for query execution.
func NewGetOrdersByOwnerQueryHandler(db *gorm.DB) GetOrdersByOwnerQueryHandler {
	return GetOrdersByOwnerQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first; an owner with
// no orders gets an empty slice, not an error.
func (h GetOrdersByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByOwnerQuery,
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
		WHERE owner_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.OwnerID()).Rows()
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
