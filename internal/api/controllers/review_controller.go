package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripvisito/internal/models/request_models"
	"tripvisito/internal/services"
	"tripvisito/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// Create godoc
// @Summary Review a trip the caller has a confirmed booking for
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /review/create [post]
func (r *ReviewController) Create(c *gin.Context) {
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := r.reviewService.CreateReview(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review created successfully")
}

// ListByTrip godoc
// @Summary List reviews for a trip
// @Tags Reviews
// @Produce json
// @Param tripId path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Router /review/{tripId} [get]
func (r *ReviewController) ListByTrip(c *gin.Context) {
	reviews, err := r.reviewService.ListTripReviews(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "")
}
