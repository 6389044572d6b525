package response_models

type CheckoutResponse struct {
	URL string `json:"url"`
}

// BookingResponse is a caller-facing payment record enriched with trip
// summary fields.
type BookingResponse struct {
	ID          string   `json:"id"`
	TripID      string   `json:"trip_id"`
	TripName    string   `json:"trip_name,omitempty"`
	TripImages  []string `json:"trip_images,omitempty"`
	Amount      int64    `json:"amount"`
	Status      string   `json:"status"`
	IsPaid      bool     `json:"is_paid"`
	PaymentDate *int64   `json:"payment_date,omitempty"`
	CreatedAt   int64    `json:"created_at"`
}
