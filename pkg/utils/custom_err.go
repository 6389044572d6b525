package utils

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBlocked        = errors.New("user is blocked")
	ErrUserNotFound       = errors.New("user not found")
	ErrProtectedUser      = errors.New("cannot modify admin accounts")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrInvalidRole        = errors.New("invalid role")
	ErrTripNotFound       = errors.New("trip not found")
	ErrNotTripOwner       = errors.New("not the trip owner")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrReviewNotAllowed   = errors.New("review requires a confirmed booking")
	ErrInvalidInput       = errors.New("invalid input")
	ErrWebhookSignature   = errors.New("webhook signature verification failed")
	ErrPlannerFailure     = errors.New("itinerary generation failed")
	ErrDatabaseError      = errors.New("database error")
)
