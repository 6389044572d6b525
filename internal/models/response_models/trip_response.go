package response_models

import "encoding/json"

// TripPlan is the structure the planner is instructed to return. The itinerary
// length must match the requested duration; the service enforces that after
// parsing instead of trusting the model.
type TripPlan struct {
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	EstimatedPrice  string       `json:"estimatedPrice"`
	Duration        int          `json:"duration"`
	BestTimeToVisit []string     `json:"bestTimeToVisit"`
	WeatherInfo     []string     `json:"weatherInfo"`
	Location        TripLocation `json:"location"`
	Itinerary       []DayPlan    `json:"itinerary"`
}

type TripLocation struct {
	City        string    `json:"city"`
	Coordinates []float64 `json:"coordinates"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Location   string     `json:"location"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

type TripResponse struct {
	ID          string          `json:"id"`
	TripDetails json.RawMessage `json:"trip_details"`
	ImageURLs   []string        `json:"image_urls"`
	PaymentLink string          `json:"payment_link,omitempty"`
	UserID      string          `json:"user_id"`
	CreatedAt   int64           `json:"created_at"`
}

type TripListResponse struct {
	Trips      []TripResponse `json:"trips"`
	TotalPages int64          `json:"totalPages"`
	TotalCount int64          `json:"totalCount"`
	Page       int            `json:"page"`
}
