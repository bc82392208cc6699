package orderrepo

import (
	"context"
	"errors"

	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/core/domain/model/order"
	"orderstatus/internal/core/ports"
	"orderstatus/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStatus retrieves only the current status of an order.
func (r *GormOrderRepository) GetStatus(ctx context.Context, id kernel.UUID) (order.Status, error) {
	if err := id.Validate(); err != nil {
		return order.Unknown, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Select("status").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Unknown, errs.NewObjectNotFoundError("order", id.String())
		}
		return order.Unknown, err
	}

	status := order.Status(dto.Status)
	if err := status.Validate(); err != nil {
		return order.Unknown, err
	}

	return status, nil
}

// Exists reports whether an order with the given identifier is stored.
func (r *GormOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// CompareAndSetStatus persists the aggregate's state through a guarded
// update: the row is only written while its stored status still equals
// expected. Racing transitions against the same order therefore collapse
// into one winner; the loser gets ports.ErrStatusMismatch.
//
// A zero-row update is disambiguated with an existence probe, so a vanished
// order surfaces as a not-found error rather than a phantom conflict.
func (r *GormOrderRepository) CompareAndSetStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expected.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Select("status", "prep_time_minutes", "courier_id", "expected_delivery_time", "actual_delivery_time").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := r.Exists(ctx, aggregate.ID())
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return ports.ErrStatusMismatch
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllInTransitStatus retrieves all orders currently in transit.
func (r *GormOrderRepository) GetAllInTransitStatus(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(order.InTransit)).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
