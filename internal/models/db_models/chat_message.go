package db_models

import (
	"github.com/google/uuid"
)

// ChatMessage is append-only; a room is just a string key (an account id in
// practice), not a persisted entity.
type ChatMessage struct {
	BaseModel
	RoomID    string    `gorm:"index" json:"room_id"`
	SenderID  uuid.UUID `gorm:"index" json:"sender_id"`
	Message   string    `json:"message"`
	Timestamp int64     `gorm:"index" json:"time_stamp"`

	Sender User `gorm:"foreignKey:SenderID" json:"-"`
}
