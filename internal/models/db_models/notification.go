package db_models

import (
	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "INFO"
	NotificationPayment NotificationType = "PAYMENT"
	NotificationChat    NotificationType = "CHAT"
)

type Notification struct {
	BaseModel
	UserID  uuid.UUID        `gorm:"index" json:"user_id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `gorm:"default:INFO" json:"type"`
	IsRead  bool             `gorm:"default:false" json:"is_read"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
