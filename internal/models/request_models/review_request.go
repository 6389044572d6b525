package request_models

type CreateReviewRequest struct {
	TripID  string `json:"tripId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}
