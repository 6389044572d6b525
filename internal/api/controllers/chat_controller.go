package controllers

import (
	"github.com/gin-gonic/gin"

	"tripvisito/internal/services"
	"tripvisito/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// History godoc
// @Summary Fetch the message history of a chat room
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room id"
// @Success 200 {object} utils.APIResponse
// @Router /chat/history/{roomId} [get]
func (ch *ChatController) History(c *gin.Context) {
	messages, err := ch.chatService.History(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "")
}
