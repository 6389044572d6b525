package notification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripvisito/internal/api/controllers"
	"tripvisito/internal/repositories"
	"tripvisito/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo, provideNotificationService, provideNotificationController)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(notifyRepo repositories.NotificationRepository) services.NotificationServiceInterface {
	return services.NewNotificationService(notifyRepo)
}

func provideNotificationController(notificationService services.NotificationServiceInterface) *controllers.NotificationController {
	return controllers.NewNotificationController(notificationService)
}
