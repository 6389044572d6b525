package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripvisito/internal/models/request_models"
	"tripvisito/internal/services"
	"tripvisito/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// Generate godoc
// @Summary Generate an AI itinerary and persist it as a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.GenerateTripRequest true "Trip parameters"
// @Success 201 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /trip/generate-trip [post]
func (t *TripController) Generate(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.GenerateTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip generated successfully")
}

// List godoc
// @Summary List all trips with pagination
// @Tags Trips
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /trip/all [get]
func (t *TripController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	trips, err := t.tripService.ListTrips(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "")
}

// ListMine godoc
// @Summary List the authenticated user's trips
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /trip/user-trips [get]
func (t *TripController) ListMine(c *gin.Context) {
	trips, err := t.tripService.ListUserTrips(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "")
}

// Get godoc
// @Summary Get a trip by id
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip/{tripId} [get]
func (t *TripController) Get(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "")
}

// Edit godoc
// @Summary Edit a trip the caller owns
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip id"
// @Param request body request_models.EditTripRequest true "Updated trip payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /trip/edit/{tripId} [put]
func (t *TripController) Edit(c *gin.Context) {
	var req request_models.EditTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.EditTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}
