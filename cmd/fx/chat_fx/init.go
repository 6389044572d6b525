package chat_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripvisito/internal/api/controllers"
	"tripvisito/internal/repositories"
	"tripvisito/internal/services"
	"tripvisito/internal/ws"
)

var Module = fx.Provide(
	provideChatRepo,
	provideChatService,
	provideChatController,
	provideHub,
	provideWSHandler)

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideChatService(chatRepo repositories.ChatRepository) services.ChatServiceInterface {
	return services.NewChatService(chatRepo)
}

func provideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}

func provideHub() *ws.Hub {
	return ws.NewHub()
}

func provideWSHandler(hub *ws.Hub, chatService services.ChatServiceInterface) *ws.Handler {
	return ws.NewHandler(hub, chatService)
}
