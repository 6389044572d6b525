package services

import (
	"context"

	"github.com/google/uuid"

	"tripvisito/internal/models/db_models"
	"tripvisito/internal/models/response_models"
	"tripvisito/internal/repositories"
	"tripvisito/pkg/utils"
)

type NotificationServiceInterface interface {
	Notify(ctx context.Context, userID uuid.UUID, title, message string, kind db_models.NotificationType) error
	ListForUser(ctx context.Context, userID string) ([]response_models.NotificationResponse, error)
	ListAll(ctx context.Context) ([]response_models.NotificationResponse, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type NotificationService struct {
	notifyRepo repositories.NotificationRepository
}

func NewNotificationService(notifyRepo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{notifyRepo: notifyRepo}
}

func (n *NotificationService) Notify(ctx context.Context, userID uuid.UUID, title, message string, kind db_models.NotificationType) error {
	notification := &db_models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
	}
	if err := n.notifyRepo.Insert(ctx, notification); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (n *NotificationService) ListForUser(ctx context.Context, userID string) ([]response_models.NotificationResponse, error) {
	notifications, err := n.notifyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notificationResponses(notifications), nil
}

func (n *NotificationService) ListAll(ctx context.Context) ([]response_models.NotificationResponse, error) {
	notifications, err := n.notifyRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notificationResponses(notifications), nil
}

func (n *NotificationService) MarkRead(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrInvalidInput
	}
	if err := n.notifyRepo.MarkRead(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (n *NotificationService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrInvalidInput
	}
	if err := n.notifyRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func notificationResponses(notifications []db_models.Notification) []response_models.NotificationResponse {
	responses := make([]response_models.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		notification := &notifications[i]
		responses = append(responses, response_models.NotificationResponse{
			ID:        notification.ID.String(),
			UserID:    notification.UserID.String(),
			Title:     notification.Title,
			Message:   notification.Message,
			Type:      string(notification.Type),
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		})
	}
	return responses
}
