package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripvisito/internal/models/request_models"
	"tripvisito/internal/models/response_models"
	"tripvisito/pkg/utils"
)

func planJSON(days int) string {
	var itinerary []string
	for i := 1; i <= days; i++ {
		itinerary = append(itinerary, fmt.Sprintf(
			`{"day":%d,"location":"Kyoto","activities":[{"time":"Morning","description":"Fushimi Inari"}]}`, i))
	}
	return fmt.Sprintf(`{
		"name": "Kyoto getaway",
		"description": "Temples and food",
		"estimatedPrice": "$1200",
		"duration": %d,
		"bestTimeToVisit": ["Spring"],
		"weatherInfo": ["Mild"],
		"location": {"city": "Kyoto", "coordinates": [35.0116, 135.7681]},
		"itinerary": [%s]
	}`, days, strings.Join(itinerary, ","))
}

func generateRequest(duration int) request_models.GenerateTripRequest {
	return request_models.GenerateTripRequest{
		Destination: "Kyoto",
		TravelStyle: "Relaxed",
		Interests:   []string{"temples", "food"},
		Budget:      "Mid-range",
		Duration:    duration,
		GroupType:   "Couple",
	}
}

func TestGenerateTripPersistsPlanAndImages(t *testing.T) {
	tripRepo := newFakeTripRepo()
	planner := &fakePlanner{response: planJSON(3)}
	images := &fakeImageClient{urls: []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}}
	service := NewTripService(tripRepo, planner, images)

	trip, err := service.GenerateTrip(context.Background(), uuid.NewString(), generateRequest(3))
	require.NoError(t, err)

	var plan response_models.TripPlan
	require.NoError(t, json.Unmarshal(trip.TripDetails, &plan))
	assert.Equal(t, "Kyoto getaway", plan.Name)
	assert.Equal(t, 3, plan.Duration)
	assert.Len(t, plan.Itinerary, 3)
	assert.Equal(t, []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}, trip.ImageURLs)
	assert.Len(t, tripRepo.trips, 1)
}

func TestGenerateTripRejectsInvalidPlannerOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "not json", response: "I cannot plan that trip"},
		{name: "truncated json", response: `{"name":"Kyoto","itinerary":[`},
		{name: "wrong shape", response: `{"itinerary":"tomorrow"}`},
		{name: "too few days", response: planJSON(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tripRepo := newFakeTripRepo()
			service := NewTripService(tripRepo, &fakePlanner{response: tt.response}, &fakeImageClient{})

			_, err := service.GenerateTrip(context.Background(), uuid.NewString(), generateRequest(3))
			assert.ErrorIs(t, err, utils.ErrPlannerFailure)
			assert.Empty(t, tripRepo.trips, "nothing may be persisted on planner failure")
		})
	}
}

func TestGenerateTripTruncatesExtraDays(t *testing.T) {
	tripRepo := newFakeTripRepo()
	service := NewTripService(tripRepo, &fakePlanner{response: planJSON(5)}, &fakeImageClient{})

	trip, err := service.GenerateTrip(context.Background(), uuid.NewString(), generateRequest(3))
	require.NoError(t, err)

	var plan response_models.TripPlan
	require.NoError(t, json.Unmarshal(trip.TripDetails, &plan))
	assert.Len(t, plan.Itinerary, 3)
	assert.Equal(t, 3, plan.Duration)
	assert.Equal(t, 3, plan.Itinerary[2].Day)
}

func TestGenerateTripSurvivesImageLookupFailure(t *testing.T) {
	tripRepo := newFakeTripRepo()
	planner := &fakePlanner{response: planJSON(2)}
	images := &fakeImageClient{err: errors.New("rate limited")}
	service := NewTripService(tripRepo, planner, images)

	trip, err := service.GenerateTrip(context.Background(), uuid.NewString(), generateRequest(2))
	require.NoError(t, err)
	assert.Empty(t, trip.ImageURLs)
	assert.Len(t, tripRepo.trips, 1)
}

func TestGenerateTripFailsWhenPlannerErrors(t *testing.T) {
	tripRepo := newFakeTripRepo()
	service := NewTripService(tripRepo, &fakePlanner{err: errors.New("upstream timeout")}, &fakeImageClient{})

	_, err := service.GenerateTrip(context.Background(), uuid.NewString(), generateRequest(2))
	assert.ErrorIs(t, err, utils.ErrPlannerFailure)
	assert.Empty(t, tripRepo.trips)
}

func TestGetTripNotFound(t *testing.T) {
	service := NewTripService(newFakeTripRepo(), &fakePlanner{}, &fakeImageClient{})

	_, err := service.GetTrip(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestEditTripOwnership(t *testing.T) {
	tripRepo := newFakeTripRepo()
	planner := &fakePlanner{response: planJSON(2)}
	service := NewTripService(tripRepo, planner, &fakeImageClient{})

	ownerID := uuid.NewString()
	trip, err := service.GenerateTrip(context.Background(), ownerID, generateRequest(2))
	require.NoError(t, err)

	_, err = service.EditTrip(context.Background(), uuid.NewString(), trip.ID, request_models.EditTripRequest{
		TripDetails: `{"name":"Hijacked"}`,
	})
	assert.ErrorIs(t, err, utils.ErrNotTripOwner)

	_, err = service.EditTrip(context.Background(), ownerID, trip.ID, request_models.EditTripRequest{
		TripDetails: `{"name":`,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	updated, err := service.EditTrip(context.Background(), ownerID, trip.ID, request_models.EditTripRequest{
		TripDetails: `{"name":"Kyoto, revised"}`,
		ImageURLs:   []string{"https://img.example/new.jpg"},
		PaymentLink: "https://pay.example/t1",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Kyoto, revised"}`, string(updated.TripDetails))
	assert.Equal(t, []string{"https://img.example/new.jpg"}, updated.ImageURLs)
	assert.Equal(t, "https://pay.example/t1", updated.PaymentLink)
}
