// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"inventory/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by owner for the per-user history query and by status for the
// stuck-order sweep.
type OrderDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID       int64  `gorm:"index"`
	OwnerUsername string `gorm:"index"`
	ItemID        int64
	ItemName      string
	Quantity      int
	Status        int       `gorm:"index"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation. The zero ID of a new aggregate lets the store assign one.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID(),
		OwnerID:       o.OwnerID(),
		OwnerUsername: o.OwnerUsername(),
		ItemID:        o.ItemID(),
		ItemName:      o.ItemName(),
		Quantity:      o.Quantity(),
		Status:        int(o.Status()),
		CreatedAt:     o.CreatedAt(),
	}
}

// toDomain converts a database row to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.OwnerID,
		dto.OwnerUsername,
		dto.ItemID,
		dto.ItemName,
		dto.Quantity,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
