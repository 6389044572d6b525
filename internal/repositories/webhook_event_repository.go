package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripvisito/internal/models/db_models"
)

type WebhookEventRepository interface {
	// MarkProcessed records the event id and reports whether this delivery is
	// the first one. The unique index makes the insert the arbiter under
	// concurrent redeliveries.
	MarkProcessed(ctx context.Context, eventID, eventType string) (bool, error)
	// Unmark releases the event id after a failed processing attempt so the
	// provider's retry of the same event is handled again instead of being
	// swallowed as a duplicate.
	Unmark(ctx context.Context, eventID string) error
}

type webhookEventRepository struct {
	db *gorm.DB
}

func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepository {
	return &webhookEventRepository{db: db}
}

func (r *webhookEventRepository) MarkProcessed(ctx context.Context, eventID, eventType string) (bool, error) {
	event := &db_models.WebhookEvent{EventID: eventID, Type: eventType}
	err := r.db.WithContext(ctx).Create(event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *webhookEventRepository) Unmark(ctx context.Context, eventID string) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&db_models.WebhookEvent{}).Error
}
