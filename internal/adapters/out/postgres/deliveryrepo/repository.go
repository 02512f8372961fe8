package deliveryrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Get retrieves a delivery by order ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, orderID kernel.OrderID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus persists the delivery's lifecycle fields, guarded by the
// expected source status. A guard miss means another transition moved the
// delivery first; the caller's view is stale and no row is written.
func (r *GormDeliveryRepository) UpdateStatus(
	ctx context.Context,
	aggregate *delivery.Delivery,
	from delivery.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := from.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("order_id = ? AND status = ?", dto.OrderID, from.String()).
		Updates(map[string]any{
			"status":        dto.Status,
			"modified_date": dto.ModifiedDate,
			"is_new":        dto.IsNew,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"delivery",
			fmt.Errorf("order %s is no longer in %s status", aggregate.OrderID(), from),
		)
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// DeleteTerminalBefore removes deliveries that completed or failed before the
// cutoff. Returns the number of rows removed.
func (r *GormDeliveryRepository) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status IN ? AND modified_date < ?",
			[]string{delivery.Completed.String(), delivery.Failed.String()}, cutoff).
		Delete(&DeliveryDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
