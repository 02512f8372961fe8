package outboxrepo

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add records events as pending rows in the outbox table.
func (r *GormOutboxRepository) Add(ctx context.Context, events ...ports.OutboxEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]EventDTO, 0, len(events))
	for _, event := range events {
		if event.ID == "" {
			return errs.NewValueIsRequiredError("outbox event id")
		}
		rows = append(rows, fromEvent(event))
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

// ListPending returns up to limit pending events in creation order.
func (r *GormOutboxRepository) ListPending(ctx context.Context, limit int) ([]ports.OutboxEvent, error) {
	var rows []EventDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(ports.OutboxPending)).
		Order("created_at").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]ports.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, toEvent(row))
	}

	return events, nil
}

// MarkSent flips an event to sent and stamps the dispatch time.
func (r *GormOutboxRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	return r.setStatus(ctx, id, map[string]any{
		"status":  string(ports.OutboxSent),
		"sent_at": sentAt,
	})
}

// MarkFailed flips an event to failed after the transport rejected it.
func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, map[string]any{
		"status": string(ports.OutboxFailed),
	})
}

func (r *GormOutboxRepository) setStatus(ctx context.Context, id string, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox event", id)
	}

	return nil
}
