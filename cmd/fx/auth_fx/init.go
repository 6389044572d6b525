package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripvisito/internal/api/controllers"
	"tripvisito/internal/repositories"
	"tripvisito/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAuthService, provideAuthController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository) services.AuthServiceInterface {
	return services.NewAuthService(userRepo)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}
