package request_models

type GenerateTripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	TravelStyle string   `json:"travelStyle" binding:"required"`
	Interests   []string `json:"interests" binding:"required,min=1"`
	Budget      string   `json:"budget" binding:"required"`
	Duration    int      `json:"duration" binding:"required,min=1,max=30"`
	GroupType   string   `json:"groupType" binding:"required"`
}

type EditTripRequest struct {
	TripDetails string   `json:"tripDetails" binding:"required"`
	ImageURLs   []string `json:"imageUrls"`
	PaymentLink string   `json:"paymentLink"`
}
