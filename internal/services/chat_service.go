package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tripvisito/internal/models/db_models"
	"tripvisito/internal/models/response_models"
	"tripvisito/internal/repositories"
	"tripvisito/pkg/utils"
)

type ChatServiceInterface interface {
	SaveMessage(ctx context.Context, roomID, senderID, message string) (*response_models.ChatMessageResponse, error)
	History(ctx context.Context, roomID string) ([]response_models.ChatMessageResponse, error)
}

type ChatService struct {
	chatRepo repositories.ChatRepository
}

func NewChatService(chatRepo repositories.ChatRepository) ChatServiceInterface {
	return &ChatService{chatRepo: chatRepo}
}

// SaveMessage persists before anything is broadcast, so a message a client
// receives is always one that survived a restart.
func (c *ChatService) SaveMessage(ctx context.Context, roomID, senderID, message string) (*response_models.ChatMessageResponse, error) {
	if roomID == "" || message == "" {
		return nil, utils.ErrInvalidInput
	}
	sender, err := uuid.Parse(senderID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	chatMessage := &db_models.ChatMessage{
		RoomID:    roomID,
		SenderID:  sender,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := c.chatRepo.Insert(ctx, chatMessage); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return chatMessageResponse(chatMessage), nil
}

func (c *ChatService) History(ctx context.Context, roomID string) ([]response_models.ChatMessageResponse, error) {
	if roomID == "" {
		return nil, utils.ErrInvalidInput
	}

	messages, err := c.chatRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ChatMessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *chatMessageResponse(&messages[i]))
	}
	return responses, nil
}

func chatMessageResponse(message *db_models.ChatMessage) *response_models.ChatMessageResponse {
	return &response_models.ChatMessageResponse{
		ID:        message.ID.String(),
		Room:      message.RoomID,
		SenderID:  message.SenderID.String(),
		Message:   message.Message,
		TimeStamp: message.Timestamp,
	}
}
