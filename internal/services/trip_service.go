package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tripvisito/internal/models/db_models"
	"tripvisito/internal/models/request_models"
	"tripvisito/internal/models/response_models"
	"tripvisito/internal/repositories"
	"tripvisito/pkg/utils"
)

const maxTripImages = 3

type TripServiceInterface interface {
	GenerateTrip(ctx context.Context, userID string, request request_models.GenerateTripRequest) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, page, limit int) (*response_models.TripListResponse, error)
	ListUserTrips(ctx context.Context, userID string) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, tripID string) (*response_models.TripResponse, error)
	EditTrip(ctx context.Context, userID, tripID string, request request_models.EditTripRequest) (*response_models.TripResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	planner  utils.PlannerClientInterface
	images   utils.ImageSearchClientInterface
}

func NewTripService(
	tripRepo repositories.TripRepository,
	planner utils.PlannerClientInterface,
	images utils.ImageSearchClientInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		planner:  planner,
		images:   images,
	}
}

func tripResponse(trip *db_models.Trip) *response_models.TripResponse {
	return &response_models.TripResponse{
		ID:          trip.ID.String(),
		TripDetails: json.RawMessage(trip.TripDetails),
		ImageURLs:   trip.ImageURLs,
		PaymentLink: trip.PaymentLink,
		UserID:      trip.UserID.String(),
		CreatedAt:   trip.CreatedAt,
	}
}

func (t *TripService) GenerateTrip(ctx context.Context, userID string, request request_models.GenerateTripRequest) (*response_models.TripResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	prompt := buildItineraryPrompt(request)

	raw, err := t.planner.GenerateItinerary(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPlannerFailure, err)
	}

	plan, err := parseTripPlan(raw, request.Duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPlannerFailure, err)
	}

	// Image enrichment is best effort: a failed lookup must not fail the trip.
	imageURLs := t.searchTripImages(ctx, request)

	details, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPlannerFailure, err)
	}

	trip := &db_models.Trip{
		TripDetails: datatypes.JSON(details),
		ImageURLs:   imageURLs,
		UserID:      ownerID,
	}
	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	persisted, err := t.tripRepo.FindByID(ctx, trip.ID.String())
	if err != nil || persisted == nil {
		return nil, utils.ErrDatabaseError
	}

	return tripResponse(persisted), nil
}

func (t *TripService) searchTripImages(ctx context.Context, request request_models.GenerateTripRequest) []string {
	query := fmt.Sprintf("%s %s %s", request.Destination, strings.Join(request.Interests, " "), request.TravelStyle)
	urls, err := t.images.SearchImages(ctx, query, maxTripImages)
	if err != nil {
		log.Printf("Image search failed for %q: %v", query, err)
		return nil
	}
	return urls
}

func buildItineraryPrompt(request request_models.GenerateTripRequest) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Generate a %d-day travel itinerary for %s. Return **JSON only** matching this exact schema, no markdown, no prose:\n",
		request.Duration, request.Destination)
	prompt.WriteString(`{
  "name": "string",
  "description": "string",
  "estimatedPrice": "$X",
  "duration": 0,
  "bestTimeToVisit": ["string"],
  "weatherInfo": ["string"],
  "location": {"city": "string", "coordinates": [0.0, 0.0]},
  "itinerary": [{"day": 1, "location": "string", "activities": [{"time": "Morning", "description": "string"}]}]
}`)
	fmt.Fprintf(&prompt, "\n\nTraveler profile:\n- Budget: %s\n- Interests: %s\n- Travel style: %s\n- Group type: %s\n",
		request.Budget, strings.Join(request.Interests, ", "), request.TravelStyle, request.GroupType)
	fmt.Fprintf(&prompt, "\nHard constraints:\n- Exactly %d entries in \"itinerary\", day = 1..%d with no gaps.\n",
		request.Duration, request.Duration)
	prompt.WriteString("- \"duration\" matches the itinerary length.\n")
	prompt.WriteString("- coordinates is [latitude, longitude] of the destination.\n")
	prompt.WriteString("\nReturn JSON only.")

	return prompt.String()
}

// parseTripPlan parses the planner output strictly and bounds the itinerary to
// the requested duration: extra days are truncated, missing days are an error.
// The generator is instructed but never trusted on this.
func parseTripPlan(raw string, duration int) (*response_models.TripPlan, error) {
	if !utils.ValidJSON(raw) {
		return nil, fmt.Errorf("planner returned invalid JSON")
	}

	var plan response_models.TripPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("planner response does not match schema: %w", err)
	}

	if len(plan.Itinerary) < duration {
		return nil, fmt.Errorf("itinerary has %d days, expected %d", len(plan.Itinerary), duration)
	}
	if len(plan.Itinerary) > duration {
		plan.Itinerary = plan.Itinerary[:duration]
	}
	plan.Duration = duration

	for i := range plan.Itinerary {
		plan.Itinerary[i].Day = i + 1
		if len(plan.Itinerary[i].Activities) == 0 {
			return nil, fmt.Errorf("day %d has no activities", i+1)
		}
	}

	return &plan, nil
}

func (t *TripService) ListTrips(ctx context.Context, page, limit int) (*response_models.TripListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	trips, total, err := t.tripRepo.List(ctx, page, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		responses = append(responses, *tripResponse(&trips[i]))
	}

	return &response_models.TripListResponse{
		Trips:      responses,
		TotalPages: int64(math.Ceil(float64(total) / float64(limit))),
		TotalCount: total,
		Page:       page,
	}, nil
}

func (t *TripService) ListUserTrips(ctx context.Context, userID string) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		responses = append(responses, *tripResponse(&trips[i]))
	}
	return responses, nil
}

func (t *TripService) GetTrip(ctx context.Context, tripID string) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return tripResponse(trip), nil
}

func (t *TripService) EditTrip(ctx context.Context, userID, tripID string, request request_models.EditTripRequest) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID.String() != userID {
		return nil, utils.ErrNotTripOwner
	}

	if !utils.ValidJSON(request.TripDetails) {
		return nil, utils.ErrInvalidInput
	}

	trip.TripDetails = datatypes.JSON(request.TripDetails)
	if request.ImageURLs != nil {
		trip.ImageURLs = request.ImageURLs
	}
	if request.PaymentLink != "" {
		trip.PaymentLink = request.PaymentLink
	}

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tripResponse(trip), nil
}
