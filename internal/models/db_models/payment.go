package db_models

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

type Payment struct {
	BaseModel
	TripID uuid.UUID     `gorm:"index" json:"trip_id"`
	UserID uuid.UUID     `gorm:"index" json:"user_id"`
	Amount int64         `json:"amount"`
	Status PaymentStatus `gorm:"default:PENDING;index" json:"status"`
	IsPaid bool          `gorm:"default:false" json:"is_paid"`

	// StripeSessionID links the local record to the provider's checkout
	// session; the webhook looks bookings up by it.
	StripeSessionID *string `gorm:"uniqueIndex" json:"stripe_session_id,omitempty"`
	PaymentIntentID string  `json:"payment_intent_id,omitempty"`
	PaymentDate     *int64  `json:"payment_date,omitempty"`

	Trip Trip `gorm:"foreignKey:TripID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
