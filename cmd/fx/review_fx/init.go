package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripvisito/internal/api/controllers"
	"tripvisito/internal/repositories"
	"tripvisito/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService, provideReviewController)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	paymentRepo repositories.PaymentRepository,
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, paymentRepo, tripRepo, userRepo)
}

func provideReviewController(reviewService services.ReviewServiceInterface) *controllers.ReviewController {
	return controllers.NewReviewController(reviewService)
}
