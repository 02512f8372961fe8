package packagingrepo

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackagingRepository implements PackagingRepository using GORM.
type GormPackagingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormPackagingRepository creates a new GORM packaging repository.
func NewGormPackagingRepository(db *gorm.DB, tracker aggregateTracker) *GormPackagingRepository {
	return &GormPackagingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new packaging request and its product lines to the database.
func (r *GormPackagingRepository) Add(ctx context.Context, aggregate *packaging.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rows := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Get retrieves a packaging request by order ID.
func (r *GormPackagingRepository) Get(ctx context.Context, orderID kernel.OrderID) (*packaging.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var rows []ItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("product_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("packaging request", orderID.String())
	}

	return toDomain(rows)
}

// UpdateStatus persists the lifecycle fields of the metadata row, guarded by
// the expected source status. A guard miss means another transition moved the
// request first; the caller's view is stale and no row is written.
func (r *GormPackagingRepository) UpdateStatus(
	ctx context.Context,
	aggregate *packaging.Request,
	from packaging.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := from.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("order_id = ? AND product_id = ? AND status = ?",
			aggregate.OrderID().Bytes(), metadataProductID, from.String()).
		Updates(map[string]any{
			"status":        aggregate.Status().String(),
			"modified_date": aggregate.ModifiedDate(),
			"new_date":      aggregate.NewDate(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"packaging request",
			fmt.Errorf("order %s is no longer in %s status", aggregate.OrderID(), from),
		)
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// DeleteCompletedBefore removes requests that completed before the cutoff,
// product lines included. Returns the number of rows removed.
func (r *GormPackagingRepository) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	completed := r.db.Model(&ItemDTO{}).
		Select("order_id").
		Where("product_id = ? AND status = ? AND modified_date < ?",
			metadataProductID, packaging.Completed.String(), cutoff)

	result := r.db.WithContext(ctx).
		Where("order_id IN (?)", completed).
		Delete(&ItemDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
