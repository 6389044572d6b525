package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripvisito/internal/models/request_models"
	"tripvisito/internal/services"
	"tripvisito/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// Checkout godoc
// @Summary Create a checkout session for a trip booking
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Router /payment/checkout [post]
func (p *PaymentController) Checkout(c *gin.Context) {
	var req request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid access token")
		return
	}

	checkout, err := p.paymentService.CreateCheckout(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout session created")
}

// Webhook receives provider events. The raw body is passed through untouched
// because signature verification hashes the exact bytes on the wire.
func (p *PaymentController) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unreadable payload")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := p.paymentService.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "")
}

// Bookings godoc
// @Summary List the authenticated user's bookings
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /payment/my-bookings [get]
func (p *PaymentController) Bookings(c *gin.Context) {
	bookings, err := p.paymentService.ListBookings(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "")
}
