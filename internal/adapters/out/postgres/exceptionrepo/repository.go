package exceptionrepo

import (
	"context"

	"orderstatus/internal/core/domain/model/exception"
	"orderstatus/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormExceptionRepository implements ExceptionRepository using GORM.
type GormExceptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormExceptionRepository creates a new GORM delivery exception repository.
func NewGormExceptionRepository(db *gorm.DB, tracker aggregateTracker) *GormExceptionRepository {
	return &GormExceptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery exception to the database.
func (r *GormExceptionRepository) Add(ctx context.Context, aggregate *exception.DeliveryException) error {
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

// GetAllByOrder retrieves every exception recorded for an order, oldest first.
func (r *GormExceptionRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*exception.DeliveryException, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ExceptionDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	exceptions := make([]*exception.DeliveryException, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		exceptions = append(exceptions, e)
	}

	return exceptions, nil
}

// HasUnresolved reports whether an order already carries an unresolved
// exception of the given kind.
func (r *GormExceptionRepository) HasUnresolved(ctx context.Context, orderID kernel.UUID, kind exception.Type) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}
	if err := kind.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&ExceptionDTO{}).
		Where("order_id = ? AND kind = ? AND resolved = ?", orderID.Bytes(), int(kind), false).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
