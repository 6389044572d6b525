package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripvisito/internal/api/controllers"
	"tripvisito/internal/repositories"
	"tripvisito/internal/services"
	"tripvisito/pkg/utils"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	planner utils.PlannerClientInterface,
	images utils.ImageSearchClientInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, planner, images)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
