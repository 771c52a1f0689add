package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order from the database by id.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// has the requested id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse
	var status int
	var createdAt time.Time

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.OwnerID,
		&resp.OwnerUsername,
		&resp.ItemID,
		&resp.ItemName,
		&resp.Quantity,
		&status,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	resp.Status = order.Status(status).String()
	resp.CreatedAt = createdAt

	return resp, nil
}
