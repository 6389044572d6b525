package db_models

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseModel
	UserID  uuid.UUID `gorm:"index" json:"user_id"`
	TripID  uuid.UUID `gorm:"index" json:"trip_id"`
	Rating  int       `json:"rating"` // 1..5, validated at the boundary
	Comment string    `json:"comment"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Trip Trip `gorm:"foreignKey:TripID" json:"-"`
}
