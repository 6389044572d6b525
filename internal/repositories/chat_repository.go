package repositories

import (
	"context"

	"gorm.io/gorm"

	"tripvisito/internal/models/db_models"
)

type ChatRepository interface {
	Insert(ctx context.Context, message *db_models.ChatMessage) error
	ListByRoom(ctx context.Context, roomID string) ([]db_models.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Insert(ctx context.Context, message *db_models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *chatRepository) ListByRoom(ctx context.Context, roomID string) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("timestamp ASC").
		Find(&messages).Error
	return messages, err
}
