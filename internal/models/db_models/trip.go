package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Trip struct {
	BaseModel
	TripDetails datatypes.JSON `gorm:"type:jsonb" json:"trip_details"`
	ImageURLs   pq.StringArray `gorm:"type:text[]" json:"image_urls"`
	PaymentLink string         `json:"payment_link"`
	UserID      uuid.UUID      `gorm:"index" json:"user_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
