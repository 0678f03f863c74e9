package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/quickcourt/quickcourt/config"
	_ "github.com/quickcourt/quickcourt/docs" // Swagger docs
	authHandler "github.com/quickcourt/quickcourt/internal/domains/auth/handler"
	bookingHandler "github.com/quickcourt/quickcourt/internal/domains/bookings/handler"
	courtHandler "github.com/quickcourt/quickcourt/internal/domains/courts/handler"
	dashboardHandler "github.com/quickcourt/quickcourt/internal/domains/dashboard/handler"
	oauthHandler "github.com/quickcourt/quickcourt/internal/domains/oauth/handler"
	paymentHandler "github.com/quickcourt/quickcourt/internal/domains/payments/handler"
	userHandler "github.com/quickcourt/quickcourt/internal/domains/user/handler"
	venueHandler "github.com/quickcourt/quickcourt/internal/domains/venues/handler"

	"github.com/quickcourt/quickcourt/internal/delivery/http/middleware"
	"github.com/quickcourt/quickcourt/pkg/logger"
)

type Handlers struct {
	Auth      *authHandler.Handler
	OAuth     *oauthHandler.Handler
	User      *userHandler.Handler
	Venue     *venueHandler.Handler
	Court     *courtHandler.Handler
	Booking   *bookingHandler.Handler
	Payment   *paymentHandler.Handler
	Dashboard *dashboardHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title quickcourt API
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	apiV1Group := app.Group("/v1")
	{
		handlers.Auth.RegisterRoutes(apiV1Group)
		handlers.OAuth.RegisterRoutes(apiV1Group)
		handlers.User.RegisterRoutes(apiV1Group)
		handlers.Venue.RegisterRoutes(apiV1Group)
		handlers.Court.RegisterRoutes(apiV1Group)
		handlers.Booking.RegisterRoutes(apiV1Group)
		handlers.Payment.RegisterRoutes(apiV1Group)
		handlers.Dashboard.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
