package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripvisito/internal/models/db_models"
	"tripvisito/internal/models/request_models"
	"tripvisito/pkg/utils"
)

type reviewFixture struct {
	service     ReviewServiceInterface
	paymentRepo *fakePaymentRepo
	tripRepo    *fakeTripRepo
	userRepo    *fakeUserRepo

	userID uuid.UUID
	tripID uuid.UUID
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	f := &reviewFixture{
		paymentRepo: newFakePaymentRepo(),
		tripRepo:    newFakeTripRepo(),
		userRepo:    newFakeUserRepo(),
		userID:      uuid.New(),
		tripID:      uuid.New(),
	}
	f.service = NewReviewService(&fakeReviewRepo{}, f.paymentRepo, f.tripRepo, f.userRepo)

	user := &db_models.User{Name: "Jo", Email: "jo@example.com"}
	user.ID = f.userID
	f.userRepo.users[f.userID.String()] = user

	trip := &db_models.Trip{TripDetails: []byte(`{"name":"Kyoto getaway"}`), UserID: f.userID}
	trip.ID = f.tripID
	require.NoError(t, f.tripRepo.Insert(context.Background(), trip))

	return f
}

func (f *reviewFixture) confirmPayment(t *testing.T) {
	t.Helper()
	sessionID := "cs_review_test"
	payment := &db_models.Payment{
		TripID:          f.tripID,
		UserID:          f.userID,
		Amount:          1200,
		Status:          db_models.PaymentStatusConfirmed,
		IsPaid:          true,
		StripeSessionID: &sessionID,
	}
	require.NoError(t, f.paymentRepo.Insert(context.Background(), payment))
}

func TestCreateReviewRequiresConfirmedPayment(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.service.CreateReview(context.Background(), f.userID.String(), request_models.CreateReviewRequest{
		TripID:  f.tripID.String(),
		Rating:  5,
		Comment: "Unforgettable",
	})
	assert.ErrorIs(t, err, utils.ErrReviewNotAllowed)
}

func TestCreateReviewAfterConfirmedPayment(t *testing.T) {
	f := newReviewFixture(t)
	f.confirmPayment(t)

	review, err := f.service.CreateReview(context.Background(), f.userID.String(), request_models.CreateReviewRequest{
		TripID:  f.tripID.String(),
		Rating:  5,
		Comment: "Unforgettable",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Jo", review.UserName)

	reviews, err := f.service.ListTripReviews(context.Background(), f.tripID.String())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Unforgettable", reviews[0].Comment)
}

func TestCreateReviewUnknownTrip(t *testing.T) {
	f := newReviewFixture(t)
	f.confirmPayment(t)

	_, err := f.service.CreateReview(context.Background(), f.userID.String(), request_models.CreateReviewRequest{
		TripID:  uuid.NewString(),
		Rating:  4,
		Comment: "Nice",
	})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestAnotherUserCannotReviewWithoutOwnPayment(t *testing.T) {
	f := newReviewFixture(t)
	f.confirmPayment(t)

	_, err := f.service.CreateReview(context.Background(), uuid.NewString(), request_models.CreateReviewRequest{
		TripID:  f.tripID.String(),
		Rating:  1,
		Comment: "Never went",
	})
	assert.ErrorIs(t, err, utils.ErrReviewNotAllowed)
}
