package db_models

// WebhookEvent records provider event ids that have already been applied.
// Checkout confirmation itself is idempotent field-wise, but the confirmation
// email is not, so duplicate deliveries must be caught before side effects.
type WebhookEvent struct {
	BaseModel
	EventID string `gorm:"uniqueIndex" json:"event_id"`
	Type    string `json:"type"`
}
