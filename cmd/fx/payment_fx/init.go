package payment_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripvisito/internal/api/controllers"
	"tripvisito/internal/repositories"
	"tripvisito/internal/services"
)

var Module = fx.Provide(
	provideStripeConfig,
	providePaymentRepo,
	provideWebhookEventRepo,
	providePaymentService,
	providePaymentController)

func provideStripeConfig() services.StripeConfig {
	cfg := services.StripeConfig{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		ClientURL:     os.Getenv("CLIENT_URL"),
	}
	if cfg.SecretKey == "" || cfg.WebhookSecret == "" {
		log.Fatal("STRIPE_SECRET_KEY and STRIPE_WEBHOOK_SECRET are required")
	}
	return cfg
}

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func provideWebhookEventRepo(db *gorm.DB) repositories.WebhookEventRepository {
	return repositories.NewWebhookEventRepository(db)
}

func providePaymentService(
	paymentRepo repositories.PaymentRepository,
	eventRepo repositories.WebhookEventRepository,
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
	mailService services.IMailService,
	notifyRepo repositories.NotificationRepository,
	cfg services.StripeConfig,
) services.PaymentServiceInterface {
	return services.NewPaymentService(paymentRepo, eventRepo, tripRepo, userRepo, mailService, notifyRepo, cfg)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
