package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto the response envelope.
// Anything unrecognized is a 500 so internals never leak to the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "User already exists with this email")
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidRole), errors.Is(err, ErrWebhookSignature):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrTokenExpired):
		RespondError(c, http.StatusUnauthorized, "Access token expired")
	case errors.Is(err, ErrTokenInvalid):
		RespondError(c, http.StatusUnauthorized, "Invalid access token")
	case errors.Is(err, ErrUserBlocked):
		RespondError(c, http.StatusForbidden, "User is blocked")
	case errors.Is(err, ErrProtectedUser), errors.Is(err, ErrNotTripOwner):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrReviewNotAllowed):
		RespondError(c, http.StatusForbidden, "You can only review trips you have paid for")
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrTripNotFound), errors.Is(err, ErrPaymentNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrPlannerFailure):
		log.Printf("Planner error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to generate a trip")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
