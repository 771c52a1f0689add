package orderrepo

import (
	"context"
	"errors"
	"time"

	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database and assigns the store-generated id
// back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus persists a status transition, guarded by a compare-and-set on
// the expected source status. The WHERE clause carries both id and status, so
// a concurrent transition on the same order makes this one affect zero rows
// instead of overwriting it.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id int64, from, to order.Status) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id, int(from)).
		Update("status", int(to))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		return nil
	}

	// Zero rows means either the order is gone or its status moved under us.
	var dto OrderDTO
	if err := r.db.WithContext(ctx).Select("status").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", id)
		}
		return err
	}

	return errs.NewInvalidStateError("order status", order.Status(dto.Status).String(), to.String())
}

// GetStuckProcessingIDs retrieves the ids of orders that have been in
// Processing since before the cutoff, oldest first.
func (r *GormOrderRepository) GetStuckProcessingIDs(ctx context.Context, cutoff time.Time) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND updated_at < ?", int(order.Processing), cutoff).
		Order("updated_at").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
