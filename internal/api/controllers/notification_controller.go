package controllers

import (
	"github.com/gin-gonic/gin"

	"tripvisito/internal/services"
	"tripvisito/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// ListMine returns the caller's notifications, newest first.
func (n *NotificationController) ListMine(c *gin.Context) {
	notifications, err := n.notificationService.ListForUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "")
}

// ListAll returns every notification in the system. Admin only.
func (n *NotificationController) ListAll(c *gin.Context) {
	notifications, err := n.notificationService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "")
}

func (n *NotificationController) MarkRead(c *gin.Context) {
	if err := n.notificationService.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification marked as read")
}

func (n *NotificationController) Delete(c *gin.Context) {
	if err := n.notificationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification deleted")
}
