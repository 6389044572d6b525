package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripvisito/cmd/fx/auth_fx"
	"tripvisito/cmd/fx/chat_fx"
	"tripvisito/cmd/fx/db_fx"
	"tripvisito/cmd/fx/genai_fx"
	"tripvisito/cmd/fx/mail_fx"
	"tripvisito/cmd/fx/notification_fx"
	"tripvisito/cmd/fx/payment_fx"
	"tripvisito/cmd/fx/review_fx"
	"tripvisito/cmd/fx/stats_fx"
	"tripvisito/cmd/fx/trip_fx"
	"tripvisito/internal/api/controllers"
	"tripvisito/internal/services"
	"tripvisito/internal/ws"
	"tripvisito/pkg/middleware"
	"tripvisito/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		auth_fx.Module,
		mail_fx.Module,
		genai_fx.Module,
		trip_fx.Module,
		payment_fx.Module,
		review_fx.Module,
		chat_fx.Module,
		notification_fx.Module,
		stats_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(EnsureSuperAdmin),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// EnsureSuperAdmin reconciles the bootstrap admin account on every start, so
// a fresh database is usable without manual seeding.
func EnsureSuperAdmin(authService services.AuthServiceInterface) {
	if err := authService.EnsureSuperAdmin(context.Background()); err != nil {
		log.Fatalf("Failed to ensure super admin account: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	paymentController *controllers.PaymentController,
	reviewController *controllers.ReviewController,
	chatController *controllers.ChatController,
	notificationController *controllers.NotificationController,
	statsController *controllers.StatsController,
	wsHandler *ws.Handler) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		authController,
		tripController,
		paymentController,
		reviewController,
		chatController,
		notificationController,
		statsController,
		wsHandler)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	paymentController *controllers.PaymentController,
	reviewController *controllers.ReviewController,
	chatController *controllers.ChatController,
	notificationController *controllers.NotificationController,
	statsController *controllers.StatsController,
	wsHandler *ws.Handler) {

	api := r.Group("/api/v1")
	authed := middleware.JWTAuthMiddleware()
	adminOnly := middleware.RoleMiddleware(utils.RoleAdmin, utils.RoleSuperAdmin)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/google-login", authController.GoogleLogin)
	authGroup.POST("/refresh", authController.Refresh)
	authGroup.GET("/me", authed, authController.Profile)
	// Creating privileged accounts is reserved for the super admin.
	authGroup.POST("/register/admin", authed, middleware.RoleMiddleware(utils.RoleSuperAdmin), authController.AddUser)
	authGroup.GET("/users", authed, adminOnly, authController.ListUsers)
	authGroup.PUT("/status/:id", authed, adminOnly, authController.UpdateUserStatus)
	authGroup.DELETE("/delete/:id", authed, adminOnly, authController.DeleteUser)

	tripGroup := api.Group("/trip")
	tripGroup.GET("/all", tripController.List)
	tripGroup.GET("/user-trips", authed, tripController.ListMine)
	tripGroup.GET("/:tripId", tripController.Get)
	tripGroup.POST("/generate-trip", authed, tripController.Generate)
	tripGroup.PUT("/edit/:tripId", authed, tripController.Edit)

	paymentGroup := api.Group("/payment")
	paymentGroup.POST("/checkout", authed, paymentController.Checkout)
	// The webhook authenticates via provider signature, not a bearer token.
	paymentGroup.POST("/stripe-webhook", paymentController.Webhook)
	paymentGroup.GET("/my-bookings", authed, paymentController.Bookings)

	reviewGroup := api.Group("/review")
	reviewGroup.POST("/create", authed, reviewController.Create)
	reviewGroup.GET("/:tripId", reviewController.ListByTrip)

	chatGroup := api.Group("/chat")
	chatGroup.GET("/ws", wsHandler.Serve)
	chatGroup.GET("/history/:roomId", authed, chatController.History)

	notificationGroup := api.Group("/notification", authed)
	notificationGroup.GET("/my", notificationController.ListMine)
	notificationGroup.GET("/all", adminOnly, notificationController.ListAll)
	notificationGroup.PUT("/read/:id", notificationController.MarkRead)
	notificationGroup.DELETE("/:id", adminOnly, notificationController.Delete)

	statsGroup := api.Group("/stats", authed, adminOnly)
	statsGroup.GET("/dashboard", statsController.Dashboard)
	statsGroup.GET("/user-growth", statsController.UserGrowth)
}
