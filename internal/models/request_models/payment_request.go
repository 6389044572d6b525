package request_models

type CheckoutRequest struct {
	TripID          string `json:"tripId" binding:"required"`
	TripName        string `json:"tripName" binding:"required"`
	TripImage       string `json:"tripImage"`
	TripDescription string `json:"tripDescription"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
}
