package services

import (
	"context"

	"github.com/google/uuid"

	"tripvisito/internal/models/db_models"
	"tripvisito/internal/models/request_models"
	"tripvisito/internal/models/response_models"
	"tripvisito/internal/repositories"
	"tripvisito/pkg/utils"
)

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, userID string, request request_models.CreateReviewRequest) (*response_models.ReviewResponse, error)
	ListTripReviews(ctx context.Context, tripID string) ([]response_models.ReviewResponse, error)
}

type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	paymentRepo repositories.PaymentRepository
	tripRepo    repositories.TripRepository
	userRepo    repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	paymentRepo repositories.PaymentRepository,
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		paymentRepo: paymentRepo,
		tripRepo:    tripRepo,
		userRepo:    userRepo,
	}
}

// CreateReview only accepts reviews from users holding a confirmed payment for
// the trip.
func (r *ReviewService) CreateReview(ctx context.Context, userID string, request request_models.CreateReviewRequest) (*response_models.ReviewResponse, error) {
	reviewerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	tripID, err := uuid.Parse(request.TripID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := r.tripRepo.FindByID(ctx, request.TripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	confirmed, err := r.paymentRepo.HasConfirmed(ctx, userID, request.TripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !confirmed {
		return nil, utils.ErrReviewNotAllowed
	}

	review := &db_models.Review{
		UserID:  reviewerID,
		TripID:  tripID,
		Rating:  request.Rating,
		Comment: request.Comment,
	}
	if err := r.reviewRepo.Insert(ctx, review); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return r.reviewResponse(ctx, review), nil
}

func (r *ReviewService) ListTripReviews(ctx context.Context, tripID string) ([]response_models.ReviewResponse, error) {
	trip, err := r.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	reviews, err := r.reviewRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *r.reviewResponse(ctx, &reviews[i]))
	}
	return responses, nil
}

func (r *ReviewService) reviewResponse(ctx context.Context, review *db_models.Review) *response_models.ReviewResponse {
	response := &response_models.ReviewResponse{
		ID:        review.ID.String(),
		TripID:    review.TripID.String(),
		UserID:    review.UserID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	if user, err := r.userRepo.FindByID(ctx, review.UserID.String()); err == nil && user != nil {
		response.UserName = user.Name
	}
	return response
}
