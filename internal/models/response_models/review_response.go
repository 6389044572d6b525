package response_models

type ReviewResponse struct {
	ID        string `json:"id"`
	TripID    string `json:"tripId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"createdAt"`
}
